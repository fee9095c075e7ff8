package proc

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Manager caches the latest process snapshot for the game loop and forwards
// kill requests to the executor. PollPIDs, Procs and KillPID must be called
// from a single goroutine.
type Manager struct {
	cfg      Config
	lister   Lister
	term     Terminator
	logger   *log.Logger
	recorder KillRecorder // Optional, can be nil

	procs     []Proc
	snapshots chan []Proc
	kills     chan Proc

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	mu        sync.Mutex // guards started, closed and sends on kills
	closed    bool
	started   bool
	wg        sync.WaitGroup
}

// NewManager creates a manager and seeds its cache with one synchronous
// enumeration. Call Start to launch the background tasks.
func NewManager(cfg Config, lister Lister, term Terminator, logger *log.Logger) *Manager {
	def := DefaultConfig()
	if cfg.ListInterval <= 0 {
		cfg.ListInterval = def.ListInterval
	}
	if cfg.KillInterval <= 0 {
		cfg.KillInterval = def.KillInterval
	}
	if cfg.KillQueue <= 0 {
		cfg.KillQueue = def.KillQueue
	}
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		cfg:       cfg,
		lister:    lister,
		term:      term,
		logger:    logger.WithPrefix("proc"),
		snapshots: make(chan []Proc, 1),
		kills:     make(chan Proc, cfg.KillQueue),
		ctx:       ctx,
		cancel:    cancel,
	}
	m.procs = m.list()
	return m
}

// SetRecorder sets the optional kill recorder. Call it before Start.
func (m *Manager) SetRecorder(r KillRecorder) {
	m.recorder = r
}

// Start launches the enumerator and the kill executor. It does nothing on a
// closed manager.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started || m.closed {
		return
	}
	m.started = true
	m.wg.Add(2)
	go m.enumerate()
	go m.executeKills()
}

// PollPIDs takes a pending snapshot if there is one. It reports whether the
// cache changed.
func (m *Manager) PollPIDs() bool {
	select {
	case procs, ok := <-m.snapshots:
		if !ok {
			return false
		}
		m.procs = procs
		return true
	default:
		return false
	}
}

// Procs returns the cached snapshot.
func (m *Manager) Procs() []Proc {
	return m.procs
}

// KillPID queues pid for termination. A full queue or a closed manager drops
// the request with a log line.
func (m *Manager) KillPID(pid Proc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		m.logger.Warn("kill request after close", "pid", pid)
		return
	}

	select {
	case m.kills <- pid:
		m.logger.Debug("kill queued", "pid", pid)
	default:
		m.logger.Warn("kill queue full, dropping request", "pid", pid)
	}
}

// Close closes the kill queue and the snapshot channel and waits for both
// background tasks to exit. Requests already queued are still executed at
// the usual pace. It is safe to call more than once.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		close(m.kills)
		started := m.started
		m.mu.Unlock()

		m.cancel()
		if !started {
			for pid := range m.kills {
				m.logger.Warn("executor not running, dropping request", "pid", pid)
			}
		}
		m.wg.Wait()
		close(m.snapshots)
	})
	return nil
}

func (m *Manager) list() []Proc {
	procs, err := m.lister.List(m.ctx)
	if err != nil {
		m.logger.Warn("process enumeration failed", "err", err)
		return []Proc{}
	}
	return procs
}
