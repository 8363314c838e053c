package manager

import "time"

// TickManager schedules simulation ticks at a fixed interval. It is polled from
// the host frame loop and never runs more than one tick per poll.
type TickManager struct {
	interval time.Duration
	next     time.Time
	running  bool
	count    uint64
}

func NewTickManager(interval time.Duration) *TickManager {
	return &TickManager{interval: interval}
}

// Start arms the schedule; the first tick is due one interval after now.
func (tm *TickManager) Start(now time.Time) {
	if tm.running {
		return
	}
	tm.running = true
	tm.next = now.Add(tm.interval)
}

// Stop cancels the schedule.
func (tm *TickManager) Stop() {
	tm.running = false
}

func (tm *TickManager) Running() bool {
	return tm.running
}

func (tm *TickManager) Interval() time.Duration {
	return tm.interval
}

// Count returns the number of ticks fired since creation.
func (tm *TickManager) Count() uint64 {
	return tm.count
}

// SetInterval changes the interval and re-arms a running schedule from now.
func (tm *TickManager) SetInterval(d time.Duration, now time.Time) {
	if d <= 0 || d == tm.interval {
		return
	}
	tm.interval = d
	if tm.running {
		tm.next = now.Add(d)
	}
}

// Due reports whether a tick should run at now and advances the deadline.
func (tm *TickManager) Due(now time.Time) bool {
	if !tm.running || now.Before(tm.next) {
		return false
	}
	tm.next = tm.next.Add(tm.interval)
	// Host stalled for more than one interval: resync instead of bursting.
	if !tm.next.After(now) {
		tm.next = now.Add(tm.interval)
	}
	tm.count++
	return true
}
