package proc

import "time"

// enumerate publishes a fresh snapshot every ListInterval until the manager
// is closed.
func (m *Manager) enumerate() {
	defer m.wg.Done()

	for {
		if !m.publish(m.list()) {
			return
		}
		if !m.sleep(m.cfg.ListInterval) {
			return
		}
	}
}

// publish hands procs to the game loop. The channel holds one snapshot, and
// a stale one still waiting is replaced. It fails only once the manager is
// closed.
func (m *Manager) publish(procs []Proc) bool {
	select {
	case <-m.ctx.Done():
		return false
	default:
	}

	select {
	case m.snapshots <- procs:
		return true
	default:
	}

	// Buffer full: drop the stale snapshot and retry.
	select {
	case <-m.snapshots:
	default:
	}
	select {
	case m.snapshots <- procs:
	default:
	}
	return true
}

// executeKills takes at most one request per KillInterval. It exits only
// once the queue is closed and empty.
func (m *Manager) executeKills() {
	defer m.wg.Done()

	for {
		select {
		case pid, ok := <-m.kills:
			if !ok {
				return
			}
			m.terminate(pid)
		default:
		}
		time.Sleep(m.cfg.KillInterval)
	}
}

func (m *Manager) terminate(pid Proc) {
	res := KillResult{PID: pid, Method: m.term.Name(), At: time.Now()}
	res.Err = m.term.Terminate(pid)
	if res.Err != nil {
		m.logger.Warn("terminate failed", "pid", pid, "method", res.Method, "err", res.Err)
	} else {
		m.logger.Info("terminated", "pid", pid, "method", res.Method)
	}

	if m.recorder != nil {
		if err := m.recorder.RecordKill(res); err != nil {
			m.logger.Error("cannot record kill", "pid", pid, "err", err)
		}
	}
}

// sleep waits for d and reports false if the manager closed meanwhile.
func (m *Manager) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-m.ctx.Done():
		return false
	}
}
