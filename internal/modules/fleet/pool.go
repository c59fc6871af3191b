// README: Fleet pool; buckets cars by available seats for best-fit reservation.
package fleet

import (
	"container/list"
	"sync"
)

// Pool holds the fleet and a bucket index keyed by current available seats.
// Bucket i contains the IDs of cars with exactly i free seats, in load order,
// so a lookup scans at most MaxSeats+1 buckets and the earliest-loaded car
// wins ties within a bucket. All operations are atomic under the pool's lock.
type Pool struct {
	mu      sync.Mutex
	cars    map[int]*car
	buckets [MaxSeats + 1]idSet
}

func NewPool() *Pool {
	p := &Pool{cars: make(map[int]*car)}
	for i := range p.buckets {
		p.buckets[i].init()
	}
	return p
}

// Reset replaces the whole fleet. Every car starts fully available. Cars with
// a capacity outside 1..MaxSeats are ignored; callers validate upstream.
func (p *Pool) Reset(cars []Car) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cars = make(map[int]*car, len(cars))
	for i := range p.buckets {
		p.buckets[i].clear()
	}
	for _, c := range cars {
		if c.Seats < 1 || c.Seats > MaxSeats {
			continue
		}
		p.cars[c.ID] = &car{id: c.ID, seats: c.Seats, available: c.Seats}
		p.buckets[c.Seats].add(c.ID)
	}
}

// FindAndReserve finds the car with the smallest sufficient availability and
// reserves seats on it. Scans buckets from seats upward; within a bucket the
// earliest-loaded car is taken. Returns false when no car fits.
func (p *Pool) FindAndReserve(seats int) (int, bool) {
	if seats < 1 || seats > MaxSeats {
		return 0, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := seats; i <= MaxSeats; i++ {
		if id, ok := p.buckets[i].first(); ok {
			p.adjust(p.cars[id], -seats)
			return id, true
		}
	}
	return 0, false
}

// Release returns seats to a car and reports its new availability. The value
// is clamped to the car's capacity so a stray double release cannot push it
// out of range. Unknown car IDs are a no-op returning 0.
func (p *Pool) Release(carID, seats int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.cars[carID]
	if !ok {
		return 0
	}
	return p.adjust(c, seats)
}

// TryReserve reserves seats on a specific car only if it still has room.
// Unknown car IDs report false.
func (p *Pool) TryReserve(carID, seats int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.cars[carID]
	if !ok || c.available < seats {
		return false
	}
	p.adjust(c, -seats)
	return true
}

// Available reports the current free seats of a car, 0 for unknown IDs.
func (p *Pool) Available(carID int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.cars[carID]
	if !ok {
		return 0
	}
	return c.available
}

// Get returns the public view of a car.
func (p *Pool) Get(carID int) (Car, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.cars[carID]
	if !ok {
		return Car{}, false
	}
	return Car{ID: c.id, Seats: c.seats}, true
}

// Len reports how many cars are loaded.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cars)
}

// FreeSeats reports the total free seats across the fleet.
func (p *Pool) FreeSeats() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := 0
	for _, c := range p.cars {
		total += c.available
	}
	return total
}

// adjust moves a car's availability by delta, clamped to [0, seats], and
// relocates it to the matching bucket. Caller holds p.mu.
func (p *Pool) adjust(c *car, delta int) int {
	next := c.available + delta
	if next < 0 {
		next = 0
	}
	if next > c.seats {
		next = c.seats
	}
	if next != c.available {
		p.buckets[c.available].remove(c.id)
		p.buckets[next].add(c.id)
		c.available = next
	}
	return c.available
}

// idSet is an insertion-ordered set of car IDs with O(1) add, remove and
// first. It backs one availability bucket.
type idSet struct {
	order *list.List
	elems map[int]*list.Element
}

func (s *idSet) init() {
	s.order = list.New()
	s.elems = make(map[int]*list.Element)
}

func (s *idSet) add(id int) {
	if _, ok := s.elems[id]; ok {
		return
	}
	s.elems[id] = s.order.PushBack(id)
}

func (s *idSet) remove(id int) {
	if e, ok := s.elems[id]; ok {
		s.order.Remove(e)
		delete(s.elems, id)
	}
}

func (s *idSet) first() (int, bool) {
	e := s.order.Front()
	if e == nil {
		return 0, false
	}
	return e.Value.(int), true
}

func (s *idSet) clear() {
	s.order.Init()
	for id := range s.elems {
		delete(s.elems, id)
	}
}
