package session

import "sync"

// Feedback is a single-slot message buffer. A new message replaces the
// pending one; reading it empties the slot.
type Feedback struct {
	mu      sync.Mutex
	pending string
}

// Set replaces the pending message.
//
// Postcondition: Peek() == msg.
func (f *Feedback) Set(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = msg
}

// Peek returns the pending message without clearing it.
func (f *Feedback) Peek() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

// Take returns the pending message and clears the slot.
//
// Postcondition: Peek() == "".
func (f *Feedback) Take() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := f.pending
	f.pending = ""
	return msg
}
