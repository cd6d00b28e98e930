// Package toast delivers short fire-and-forget notifications to the user.
package toast

import "sync"

// Sink accepts notifications. Notify never fails and never blocks.
type Sink interface {
	Notify(message string)
}

// Func adapts a function to Sink. A nil Func drops messages.
type Func func(message string)

// Notify calls f.
func (f Func) Notify(message string) {
	if f != nil {
		f(message)
	}
}

// Discard drops every message.
var Discard Sink = Func(nil)

// Recorder keeps every message in order.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Notify records message.
func (r *Recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns the recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Last returns the most recent message, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}
