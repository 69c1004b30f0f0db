package input

import "time"

// Source supplies at most one intent per simulation tick without blocking
type Source interface {
	Poll() (Intent, bool)
}

// Queue is a bounded intent buffer filled by a renderer's event loop and
// drained by the simulation.
type Queue struct {
	ch chan Intent
}

// NewQueue creates a queue holding up to size pending intents
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan Intent, size)}
}

// Push enqueues an intent. When the queue is full the intent is dropped and
// Push returns false.
func (q *Queue) Push(intent Intent) bool {
	select {
	case q.ch <- intent:
		return true
	default:
		return false
	}
}

// Poll returns the oldest pending intent, if any
func (q *Queue) Poll() (Intent, bool) {
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return Intent{}, false
	}
}

// Drain discards every pending intent
func (q *Queue) Drain() {
	for {
		if _, ok := q.Poll(); !ok {
			return
		}
	}
}

// CodeSource turns raw key codes into intents. Unbound codes are skipped.
// A closed code stream reads as a quit request.
type CodeSource struct {
	codes  <-chan string
	device Device
}

// NewCodeSource creates a source reading codes from the given channel
func NewCodeSource(codes <-chan string, device Device) *CodeSource {
	return &CodeSource{codes: codes, device: device}
}

// Poll returns the next bound intent without blocking
func (s *CodeSource) Poll() (Intent, bool) {
	for {
		select {
		case code, ok := <-s.codes:
			if !ok {
				return Intent{Action: ActionQuit}, true
			}
			raw := RawInput{Device: s.device, Code: code, Timestamp: time.Now()}
			intent := MapToIntent(NewDebouncedInput(raw))
			if intent.Action != ActionNone {
				return intent, true
			}
		default:
			return Intent{}, false
		}
	}
}
