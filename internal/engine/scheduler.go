package engine

import "sort"

// TimerID identifies a scheduled callback.
type TimerID uint64

type timer struct {
	id  TimerID
	gen uint64
	due float64
	fn  func()
}

// Scheduler runs one-shot callbacks after a delay in simulated seconds.
// Each callback carries the session generation it was scheduled in and is
// dropped if the generation has moved on by the time it is due.
type Scheduler struct {
	now    float64
	next   TimerID
	timers []timer
}

// After schedules fn to run d seconds from now in generation gen.
func (s *Scheduler) After(gen uint64, d float64, fn func()) TimerID {
	s.next++
	s.timers = append(s.timers, timer{id: s.next, gen: gen, due: s.now + d, fn: fn})
	return s.next
}

// Advance moves simulated time forward by dt seconds and runs every due
// callback whose generation equals gen, in due order. Returns how many ran.
func (s *Scheduler) Advance(dt float64, gen uint64) int {
	s.now += dt

	var due, pending []timer
	for _, t := range s.timers {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.timers = pending

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	ran := 0
	for _, t := range due {
		if t.gen != gen {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}

// Cancel drops a pending callback. Returns false if it was not pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback.
func (s *Scheduler) CancelAll() {
	s.timers = nil
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Now returns the simulated time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}
