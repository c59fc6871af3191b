// README: Concurrency tests for the allocation engine (run with -race).
package pooling

import (
	"fmt"
	"sync"
	"testing"

	"carpool/internal/modules/fleet"
)

func TestConcurrentRequestsLastSlot(t *testing.T) {
	s := newTestService()
	s.Reset([]fleet.Car{{ID: 1, Seats: 4}})

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	for _, groupID := range []int{1, 2} {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			errs <- s.RequestJourney(id, 4)
		}(groupID)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Exactly one group got the car, the other is queued; never both.
	stats := s.Stats()
	if stats.Journeys != 1 || stats.Waiting != 1 {
		t.Fatalf("expected 1 riding and 1 waiting, got %+v", stats)
	}
	checkInvariants(t, s)
}

func TestConcurrentDropoffSameGroup(t *testing.T) {
	s := newTestService()
	s.Reset([]fleet.Car{{ID: 1, Seats: 4}})
	mustRequest(t, s, 1, 4)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Dropoff(1)
		}()
	}
	wg.Wait()
	close(errs)

	success := 0
	for err := range errs {
		if err == nil {
			success++
			continue
		}
		if err != ErrGroupNotFound {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if success != 1 {
		t.Fatalf("expected exactly 1 successful dropoff, got %d", success)
	}
	if got := s.pool.Available(1); got != 4 {
		t.Fatalf("seats must be freed exactly once, got %d", got)
	}
}

// Workers fire request/dropoff/locate over disjoint group ranges while
// sharing a small fleet; the structures must stay mutually consistent.
func TestConcurrentMixedOps(t *testing.T) {
	s := newTestService()
	s.Reset([]fleet.Car{
		{ID: 1, Seats: 4},
		{ID: 2, Seats: 5},
		{ID: 3, Seats: 6},
	})

	const (
		workers         = 8
		groupsPerWorker = 50
	)
	var wg sync.WaitGroup
	errs := make(chan error, workers*groupsPerWorker*2)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			base := worker*groupsPerWorker + 1
			for i := 0; i < groupsPerWorker; i++ {
				groupID := base + i
				people := 1 + (groupID % fleet.MaxSeats)
				if err := s.RequestJourney(groupID, people); err != nil {
					errs <- fmt.Errorf("request %d: %w", groupID, err)
					continue
				}
				if _, err := s.Locate(groupID); err != nil {
					errs <- fmt.Errorf("locate %d: %w", groupID, err)
				}
				// Drop every other group to keep capacity churning.
				if groupID%2 == 0 {
					if err := s.Dropoff(groupID); err != nil {
						errs <- fmt.Errorf("dropoff %d: %w", groupID, err)
					}
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
	checkInvariants(t, s)

	stats := s.Stats()
	if got := stats.Waiting + stats.Journeys; got != workers*groupsPerWorker/2 {
		t.Fatalf("expected %d surviving groups, got %d", workers*groupsPerWorker/2, got)
	}
}

func TestConcurrentLocateDuringMutation(t *testing.T) {
	s := newTestService()
	s.Reset([]fleet.Car{{ID: 1, Seats: 6}})
	mustRequest(t, s, 1, 6)
	mustRequest(t, s, 2, 3)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			// Either waiting or riding; never an error while registered.
			if _, err := s.Locate(2); err != nil {
				t.Errorf("locate during mutation: %v", err)
				return
			}
		}
	}()

	if err := s.Dropoff(1); err != nil {
		t.Fatalf("dropoff: %v", err)
	}
	close(stop)
	wg.Wait()

	if car, _ := s.Locate(2); car == nil || car.ID != 1 {
		t.Fatalf("group 2 should ride car 1 after reallocation, got %+v", car)
	}
}
