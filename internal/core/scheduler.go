package core

import "container/heap"

// TimerID identifies a scheduled event. Zero is never issued.
type TimerID uint64

// Timer is a pending event on a simulation clock.
type Timer struct {
	ID       TimerID
	Deadline float64 // Simulation time in seconds
	Kind     int     // Game-defined event kind
	Ref      uint64  // Game-defined payload, e.g. an entity ID
}

// Scheduler is a deadline-ordered event queue driven by the caller's clock.
// Games poll it once per tick with Due, so nothing fires outside the
// simulation loop and Clear drops every pending event at teardown.
type Scheduler struct {
	queue  timerHeap
	nextID TimerID
	live   map[TimerID]bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[TimerID]bool)}
}

// Schedule queues an event at the given deadline and returns its ID.
func (s *Scheduler) Schedule(deadline float64, kind int, ref uint64) TimerID {
	s.nextID++
	t := Timer{ID: s.nextID, Deadline: deadline, Kind: kind, Ref: ref}
	heap.Push(&s.queue, t)
	s.live[t.ID] = true
	return t.ID
}

// Cancel removes a pending event. Cancelling an unknown or fired ID is a no-op.
func (s *Scheduler) Cancel(id TimerID) {
	// Cancelled entries stay in the heap and are skipped when popped.
	delete(s.live, id)
}

// Due pops every live event whose deadline is <= now, earliest first.
// Events with equal deadlines fire in scheduling order.
func (s *Scheduler) Due(now float64) []Timer {
	var fired []Timer
	for s.queue.Len() > 0 && s.queue[0].Deadline <= now {
		t := heap.Pop(&s.queue).(Timer)
		if !s.live[t.ID] {
			continue
		}
		delete(s.live, t.ID)
		fired = append(fired, t)
	}
	return fired
}

// Pending reports whether the event is still waiting to fire.
func (s *Scheduler) Pending(id TimerID) bool {
	return s.live[id]
}

// Len returns the number of live pending events.
func (s *Scheduler) Len() int {
	return len(s.live)
}

// Clear drops all pending events.
func (s *Scheduler) Clear() {
	s.queue = s.queue[:0]
	clear(s.live)
}

type timerHeap []Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].Deadline != h[j].Deadline {
		return h[i].Deadline < h[j].Deadline
	}
	return h[i].ID < h[j].ID
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(Timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}
