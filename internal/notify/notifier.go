// Package notify carries user-facing outcome messages out of the data
// layer. Stores report success/failure through a Notifier; what happens
// to the message (toast, log line, nothing) is the consumer's choice.
package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// Notifier receives the outcome of a user-visible operation.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Nop discards every message.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}

// Log writes messages to a zerolog logger. This is what the service
// process wires in; a UI would substitute its toast system.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) Success(message string) {
	l.Logger.Info().Str("outcome", "success").Msg(message)
}

func (l Log) Error(message string) {
	l.Logger.Warn().Str("outcome", "error").Msg(message)
}

// Recorder keeps messages in memory so tests can assert on them.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, message)
}

// Reset clears recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = nil
	r.Errors = nil
}
