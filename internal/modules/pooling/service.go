// README: Pooling service; orchestrates fleet, wait list and assignments.
package pooling

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"carpool/internal/modules/fleet"
	"carpool/internal/modules/waitlist"
)

var (
	ErrDuplicateGroup = errors.New("group already registered")
	ErrGroupNotFound  = errors.New("group not found")
)

// Service is the allocation engine. It owns the group registry and ties the
// fleet pool, the wait list and the assignment table together so that every
// operation is one atomic transition: no caller can observe a group in both
// the wait list and the assignment table, or in neither, while registered.
//
// Writes (Reset, RequestJourney, Dropoff) take the exclusive lock; Locate and
// Stats share a read lock. The per-operation work is bounded by the fleet's
// bucket count and the queue length, so the coarse lock is cheap.
type Service struct {
	mu          sync.RWMutex
	log         zerolog.Logger
	pool        *fleet.Pool
	queue       *waitlist.Queue
	groups      map[int]int
	assignments *assignmentTable
}

func NewService(pool *fleet.Pool, queue *waitlist.Queue, log zerolog.Logger) *Service {
	return &Service{
		log:         log,
		pool:        pool,
		queue:       queue,
		groups:      make(map[int]int),
		assignments: newAssignmentTable(),
	}
}

// Reset drops every group, journey and wait-list entry and loads the given
// cars fully available. Loading the same list twice lands in the same state.
func (s *Service) Reset(cars []fleet.Car) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.groups = make(map[int]int)
	s.queue.Clear()
	s.assignments.clear()
	s.pool.Reset(cars)

	s.log.Info().Int("cars_count", len(cars)).Msg("cars loaded, state reset")
}

// RequestJourney registers a group and either seats it in the best-fitting
// car or queues it. The group is registered even when it has to wait, so
// later lookups and drop-offs find it.
func (s *Service) RequestJourney(groupID, people int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[groupID]; ok {
		return ErrDuplicateGroup
	}
	s.groups[groupID] = people

	if carID, ok := s.pool.FindAndReserve(people); ok {
		s.assignments.set(groupID, carID)
		s.log.Info().
			Int("group_id", groupID).
			Int("people", people).
			Int("car_id", carID).
			Msg("journey assigned")
		return nil
	}

	s.queue.Enqueue(groupID, people)
	s.log.Info().
		Int("group_id", groupID).
		Int("people", people).
		Msg("journey queued, no car available")
	return nil
}

// Dropoff unregisters a group. A riding group frees its seats and triggers a
// re-allocation pass over the wait list; a waiting group just leaves the
// queue. The group record goes last either way.
func (s *Service) Dropoff(groupID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	people, ok := s.groups[groupID]
	if !ok {
		return ErrGroupNotFound
	}

	if carID, riding := s.assignments.get(groupID); riding {
		s.assignments.remove(groupID)
		s.reallocate(carID, people)
		s.log.Info().
			Int("group_id", groupID).
			Int("people", people).
			Int("car_id", carID).
			Msg("dropoff for riding group")
	} else {
		s.queue.Dequeue(groupID)
		s.log.Info().
			Int("group_id", groupID).
			Int("people", people).
			Msg("dropoff for waiting group")
	}

	delete(s.groups, groupID)
	return nil
}

// Locate reports where a group stands: the car it rides in, (nil, nil) while
// it waits, or ErrGroupNotFound for an unregistered group.
func (s *Service) Locate(groupID int) (*fleet.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.groups[groupID]; !ok {
		return nil, ErrGroupNotFound
	}
	carID, ok := s.assignments.get(groupID)
	if !ok {
		return nil, nil
	}
	car, ok := s.pool.Get(carID)
	if !ok {
		return nil, nil
	}
	return &car, nil
}

// Stats is a consistent snapshot of engine counters for metrics gauges.
type Stats struct {
	Cars      int
	Waiting   int
	Journeys  int
	FreeSeats int
}

func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Cars:      s.pool.Len(),
		Waiting:   s.queue.Len(),
		Journeys:  s.assignments.len(),
		FreeSeats: s.pool.FreeSeats(),
	}
}

// reallocate gives freed seats back to a car and walks the wait list in
// arrival order, seating every group that fits in the seats still free.
// Groups too large for the current opportunity are skipped in place, never
// reordered, so they keep their priority for the next one. Caller holds the
// write lock.
func (s *Service) reallocate(carID, freed int) {
	totalFree := s.pool.Release(carID, freed)

	remaining := totalFree
	var selected []waitlist.Entry
	for _, e := range s.queue.Snapshot() {
		if remaining <= 0 {
			break
		}
		if !s.queue.CanAnyFit(remaining) {
			break
		}
		if e.People <= remaining {
			selected = append(selected, e)
			remaining -= e.People
		}
	}

	seated := 0
	for _, e := range selected {
		if !s.pool.TryReserve(carID, e.People) {
			s.log.Warn().
				Int("car_id", carID).
				Int("group_id", e.GroupID).
				Int("people", e.People).
				Msg("seat reservation lost during reallocation")
			break
		}
		s.assignments.set(e.GroupID, carID)
		s.queue.Dequeue(e.GroupID)
		seated++
	}

	if len(selected) > 0 {
		s.log.Debug().
			Int("car_id", carID).
			Int("seats_freed", freed).
			Int("total_free_seats", totalFree).
			Int("groups_selected", len(selected)).
			Int("groups_seated", seated).
			Msg("reallocation pass finished")
	}
}
