// Package proc bridges the game loop and the operating system process table.
// A background enumerator publishes pid snapshots and a kill executor carries
// out termination requests. The game polls and queues without ever blocking.
package proc

import (
	"context"
	"errors"
	"time"
)

// Proc is an OS process id.
type Proc = uint32

// ErrProtectedPID is returned when a terminator refuses to signal a pid.
var ErrProtectedPID = errors.New("proc: refusing to signal protected pid")

// Lister enumerates live process ids.
type Lister interface {
	List(ctx context.Context) ([]Proc, error)
}

// Terminator ends a process.
type Terminator interface {
	Terminate(pid Proc) error
	// Name identifies the method in logs and the kill audit.
	Name() string
}

// KillResult is the outcome of one termination attempt.
type KillResult struct {
	PID    Proc
	Method string
	Err    error
	At     time.Time
}

// KillRecorder persists kill attempts.
// This allows the manager to keep an audit trail without depending on storage.
type KillRecorder interface {
	RecordKill(r KillResult) error
}

// Config holds the manager's pacing.
type Config struct {
	ListInterval time.Duration // pause between enumerations
	KillInterval time.Duration // pause between kill queue checks
	KillQueue    int           // pending kill requests before drops
}

// DefaultConfig returns the stock pacing.
func DefaultConfig() Config {
	return Config{
		ListInterval: 1000 * time.Millisecond,
		KillInterval: 500 * time.Millisecond,
		KillQueue:    64,
	}
}
