// README: Load driver; hammers an in-process engine with mixed operations.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"carpool/internal/modules/fleet"
	"carpool/internal/modules/pooling"
	"carpool/internal/modules/waitlist"
)

func main() {
	var (
		cars     = flag.Int("cars", 500, "cars to load")
		workers  = flag.Int("workers", 16, "concurrent workers")
		duration = flag.Duration("duration", 5*time.Second, "run duration")
	)
	flag.Parse()

	svc := pooling.NewService(fleet.NewPool(), waitlist.NewQueue(), zerolog.Nop())

	load := make([]fleet.Car, *cars)
	for i := range load {
		load[i] = fleet.Car{ID: i + 1, Seats: 4 + i%3}
	}
	svc.Reset(load)

	var ops, dropErrs atomic.Int64
	var nextID atomic.Int64
	deadline := time.Now().Add(*duration)
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			var mine []int
			for time.Now().Before(deadline) {
				switch rng.Intn(10) {
				case 0, 1, 2, 3, 4, 5:
					id := int(nextID.Add(1))
					if err := svc.RequestJourney(id, 1+rng.Intn(fleet.MaxSeats)); err == nil {
						mine = append(mine, id)
					}
				case 6, 7:
					if len(mine) > 0 {
						i := rng.Intn(len(mine))
						if err := svc.Dropoff(mine[i]); err != nil {
							dropErrs.Add(1)
						}
						mine = append(mine[:i], mine[i+1:]...)
					}
				default:
					if len(mine) > 0 {
						_, _ = svc.Locate(mine[rng.Intn(len(mine))])
					}
				}
				ops.Add(1)
			}
		}(int64(w))
	}
	wg.Wait()

	elapsed := time.Since(start)
	stats := svc.Stats()
	fmt.Printf("ops=%d (%.0f/s) dropoff_errors=%d\n",
		ops.Load(), float64(ops.Load())/elapsed.Seconds(), dropErrs.Load())
	fmt.Printf("cars=%d waiting=%d journeys=%d free_seats=%d\n",
		stats.Cars, stats.Waiting, stats.Journeys, stats.FreeSeats)
}
