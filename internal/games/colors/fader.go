package colors

import "time"

// MessageTask is a delayed message write scheduled by the fader.
type MessageTask struct {
	Token uint64
	Text  string
	Due   time.Duration // Fader clock time at which the task fires
}

// Fader schedules the delayed half of message updates on a manual clock.
// Every Post gets a larger token than the one before it; only the task
// holding the latest token may fire, older ones are dropped when due.
type Fader struct {
	delay   time.Duration
	now     time.Duration
	token   uint64
	pending []MessageTask
}

// NewFader creates a fader with the given delay. Negative delays are treated as zero.
func NewFader(delay time.Duration) *Fader {
	if delay < 0 {
		delay = 0
	}
	return &Fader{delay: delay}
}

// Post schedules text to be written after the delay and returns the task.
func (f *Fader) Post(text string) MessageTask {
	f.token++
	task := MessageTask{Token: f.token, Text: text, Due: f.now + f.delay}
	f.pending = append(f.pending, task)
	return task
}

// Advance moves the clock by dt and returns the live task if it came due.
// Stale tasks that came due are discarded.
func (f *Fader) Advance(dt time.Duration) (MessageTask, bool) {
	if dt > 0 {
		f.now += dt
	}

	var fired MessageTask
	ok := false
	kept := f.pending[:0]
	for _, task := range f.pending {
		switch {
		case task.Due > f.now:
			kept = append(kept, task)
		case task.Token == f.token:
			fired, ok = task, true
		}
	}
	f.pending = kept
	return fired, ok
}

// Now returns the fader clock.
func (f *Fader) Now() time.Duration {
	return f.now
}

// Delay returns the configured delay.
func (f *Fader) Delay() time.Duration {
	return f.delay
}

// Pending returns the number of scheduled tasks, stale ones included.
func (f *Fader) Pending() int {
	return len(f.pending)
}
