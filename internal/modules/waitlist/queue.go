// README: FIFO wait list of unserved groups with a party-size histogram.
package waitlist

import (
	"container/list"
	"sync"
)

// Entry is one waiting group in arrival order.
type Entry struct {
	GroupID int
	People  int
}

// Queue keeps unserved groups in arrival order together with a histogram of
// party sizes. The histogram answers "could anything here fit in n seats" in
// O(n) over the small seat domain instead of walking the queue. Both
// structures mutate together under one lock so they never drift apart.
type Queue struct {
	mu    sync.Mutex
	order *list.List
	elems map[int]*list.Element
	sizes map[int]int
}

func NewQueue() *Queue {
	return &Queue{
		order: list.New(),
		elems: make(map[int]*list.Element),
		sizes: make(map[int]int),
	}
}

// Enqueue appends a group to the back of the queue. A group that is already
// queued is left untouched.
func (q *Queue) Enqueue(groupID, people int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.elems[groupID]; ok {
		return
	}
	q.elems[groupID] = q.order.PushBack(Entry{GroupID: groupID, People: people})
	q.sizes[people]++
}

// Dequeue removes a group wherever it sits in the queue. Unknown groups are
// a no-op.
func (q *Queue) Dequeue(groupID int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.elems[groupID]
	if !ok {
		return
	}
	entry := e.Value.(Entry)
	q.order.Remove(e)
	delete(q.elems, groupID)

	if n := q.sizes[entry.People]; n <= 1 {
		delete(q.sizes, entry.People)
	} else {
		q.sizes[entry.People] = n - 1
	}
}

// Snapshot returns a point-in-time copy of the queue in arrival order, safe
// to iterate without holding the queue's lock.
func (q *Queue) Snapshot() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries := make([]Entry, 0, q.order.Len())
	for e := q.order.Front(); e != nil; e = e.Next() {
		entries = append(entries, e.Value.(Entry))
	}
	return entries
}

// CanAnyFit reports whether any waiting group could ride in seats free seats.
func (q *Queue) CanAnyFit(seats int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for people := seats; people > 0; people-- {
		if q.sizes[people] > 0 {
			return true
		}
	}
	return false
}

// Len reports how many groups are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.order.Len()
}

// Clear empties the queue and the histogram.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.order.Init()
	q.elems = make(map[int]*list.Element)
	q.sizes = make(map[int]int)
}
