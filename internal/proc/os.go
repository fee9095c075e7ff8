package proc

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v4/process"
)

// OSLister lists the processes of this machine, leaving out the current
// process.
type OSLister struct{}

// List implements Lister.
func (OSLister) List(ctx context.Context) ([]Proc, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("proc: list pids: %w", err)
	}
	self := int32(os.Getpid())
	out := make([]Proc, 0, len(pids))
	for _, pid := range pids {
		if pid <= 0 || pid == self {
			continue
		}
		out = append(out, Proc(pid))
	}
	return out, nil
}

// EchoTerminator is a dry run: it runs `echo <pid>` and logs what it would
// have killed.
type EchoTerminator struct {
	Logger *log.Logger
}

// Name implements Terminator.
func (EchoTerminator) Name() string { return "echo" }

// Terminate implements Terminator.
func (e EchoTerminator) Terminate(pid Proc) error {
	var out bytes.Buffer
	cmd := exec.Command("echo", strconv.FormatUint(uint64(pid), 10))
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("proc: echo %d: %w", pid, err)
	}
	if e.Logger != nil {
		e.Logger.Info("dry run kill", "pid", strings.TrimSpace(out.String()), "child", cmd.Process.Pid)
	}
	return nil
}

// SignalTerminator sends SIGTERM. It never signals pid 0, init or itself.
type SignalTerminator struct {
	self int32
}

// NewSignalTerminator creates a terminator guarding the current process.
func NewSignalTerminator() SignalTerminator {
	return SignalTerminator{self: int32(os.Getpid())}
}

// Name implements Terminator.
func (SignalTerminator) Name() string { return "sigterm" }

// Terminate implements Terminator.
func (s SignalTerminator) Terminate(pid Proc) error {
	if pid <= 1 || pid > math.MaxInt32 || int32(pid) == s.self {
		return fmt.Errorf("%w: %d", ErrProtectedPID, pid)
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return fmt.Errorf("proc: find %d: %w", pid, err)
	}
	if err := p.Terminate(); err != nil {
		return fmt.Errorf("proc: terminate %d: %w", pid, err)
	}
	return nil
}
