package sim

import (
	"math/rand"
	"reflect"
	"testing"
)

type fakeMonitor struct {
	pending [][]uint32
	pids    []uint32
	kills   []uint32
}

func (f *fakeMonitor) PollPIDs() bool {
	if len(f.pending) == 0 {
		return false
	}
	f.pids = f.pending[0]
	f.pending = f.pending[1:]
	return true
}

func (f *fakeMonitor) Procs() []uint32 { return f.pids }

func (f *fakeMonitor) KillPID(pid uint32) { f.kills = append(f.kills, pid) }

func quietWorld(seed int64) *World {
	tun := DefaultTuning()
	tun.Asteroid.InitialCount = 0
	tun.Asteroid.MinLive = 0
	return NewWorld(testBounds, tun, rand.New(rand.NewSource(seed)))
}

func TestWorldMirrorsProcesses(t *testing.T) {
	w := quietWorld(1)
	mon := &fakeMonitor{pids: []uint32{10, 20, 30}}
	w.AttachMonitor(mon, MonitorOptions{MaxAsteroids: 2, KillOnDestroy: true})

	if w.Asteroids.ByPID(10) == nil || w.Asteroids.ByPID(20) == nil {
		t.Fatal("expected asteroids for pids 10 and 20")
	}
	if w.Asteroids.ByPID(30) != nil {
		t.Fatal("cap of 2 exceeded")
	}

	// Shoot pid 10.
	target := w.Asteroids.ByPID(10)
	w.Projectiles.SpawnProjectile(target.B.P, 0)
	rep := w.Step(1.0 / 60)
	if !reflect.DeepEqual(rep.Killed, []uint32{10}) {
		t.Fatalf("killed = %v, want [10]", rep.Killed)
	}
	if !reflect.DeepEqual(mon.kills, []uint32{10}) {
		t.Errorf("monitor kills = %v, want [10]", mon.kills)
	}
	if w.Score() != DefaultTuning().Scoring.Small {
		t.Errorf("score = %d, want %d", w.Score(), DefaultTuning().Scoring.Small)
	}

	// 30 fills the freed slot. 10 is still listed, so it stays shot.
	mon.pending = append(mon.pending, []uint32{10, 20, 30})
	rep = w.Step(1.0 / 60)
	if !reflect.DeepEqual(rep.Added, []uint32{30}) {
		t.Errorf("added = %v, want [30]", rep.Added)
	}

	// 20 exits on its own: retired quietly.
	score := w.Score()
	mon.pending = append(mon.pending, []uint32{10, 30})
	rep = w.Step(1.0 / 60)
	if !reflect.DeepEqual(rep.Retired, []uint32{20}) {
		t.Errorf("retired = %v, want [20]", rep.Retired)
	}
	if w.Score() != score || len(mon.kills) != 1 {
		t.Error("retiring a pid must not score or kill")
	}
	if w.Asteroids.ByPID(10) != nil {
		t.Error("a pid that was shot must not come back")
	}
}

func TestWorldForgetsShotPIDOnceGone(t *testing.T) {
	w := quietWorld(1)
	mon := &fakeMonitor{pids: []uint32{10}}
	w.AttachMonitor(mon, MonitorOptions{KillOnDestroy: true})

	target := w.Asteroids.ByPID(10)
	w.Projectiles.SpawnProjectile(target.B.P, 0)
	w.Step(1.0 / 60)

	// Still listed: stays shot.
	mon.pending = append(mon.pending, []uint32{10})
	w.Step(1.0 / 60)
	if w.Asteroids.ByPID(10) != nil {
		t.Fatal("shot pid came back while still listed")
	}

	// Gone, then the pid is reused by a new process.
	mon.pending = append(mon.pending, []uint32{}, []uint32{10})
	w.Step(1.0 / 60)
	rep := w.Step(1.0 / 60)
	if !reflect.DeepEqual(rep.Added, []uint32{10}) {
		t.Errorf("added = %v, want [10]", rep.Added)
	}
	if a := w.Asteroids.ByPID(10); a == nil || !a.B.IsLive() {
		t.Error("reused pid has no live asteroid")
	}
}

func TestWorldInheritKilled(t *testing.T) {
	prev := quietWorld(1)
	prev.killed[10] = true

	w := quietWorld(2)
	w.InheritKilled(prev)
	w.InheritKilled(nil)
	w.AttachMonitor(&fakeMonitor{pids: []uint32{10, 20}}, MonitorOptions{})

	if w.Asteroids.ByPID(10) != nil {
		t.Error("inherited pid got an asteroid")
	}
	if w.Asteroids.ByPID(20) == nil {
		t.Error("pid 20 missing")
	}
}

func TestWorldWithoutKillOnDestroy(t *testing.T) {
	w := quietWorld(1)
	mon := &fakeMonitor{pids: []uint32{77}}
	w.AttachMonitor(mon, MonitorOptions{})

	target := w.Asteroids.ByPID(77)
	w.Projectiles.SpawnProjectile(target.B.P, 0)
	rep := w.Step(1.0 / 60)
	if len(rep.Destroyed) != 1 || len(rep.Killed) != 0 || len(mon.kills) != 0 {
		t.Errorf("destroyed %d killed %v monitor %v", len(rep.Destroyed), rep.Killed, mon.kills)
	}
}

func TestWorldPurgesDeadProjectilesNextFrame(t *testing.T) {
	w := quietWorld(1)
	w.Projectiles.SpawnProjectile(w.PlayerPosition(), 0).Destroy()

	w.Step(1.0 / 60)
	if w.Projectiles.Len() != 0 {
		t.Errorf("projectiles = %d, want 0 after purge", w.Projectiles.Len())
	}
	if w.Frames() != 1 {
		t.Errorf("frames = %d, want 1", w.Frames())
	}
}

func TestWorldFireCooldown(t *testing.T) {
	w := quietWorld(1)
	if !w.Fire() {
		t.Fatal("first shot should fire")
	}
	if w.Fire() {
		t.Error("second shot should be blocked by cooldown")
	}
	w.Step(0.2)
	if !w.Fire() {
		t.Error("shot after cooldown should fire")
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func() *World {
		w := NewWorld(testBounds, DefaultTuning(), rand.New(rand.NewSource(99)))
		for i := 0; i < 600; i++ {
			w.Player.SetThrust(i%120 < 30)
			w.Player.SetRotation(RotationState(i / 50 % 3))
			if i%10 == 0 {
				w.Fire()
			}
			w.Step(1.0 / 60)
		}
		return w
	}

	w1, w2 := run(), run()
	if w1.Score() != w2.Score() {
		t.Errorf("score mismatch: %d vs %d", w1.Score(), w2.Score())
	}
	if w1.Player.B != w2.Player.B {
		t.Errorf("player mismatch: %+v vs %+v", w1.Player.B, w2.Player.B)
	}
	a1, a2 := w1.Asteroids.All(), w2.Asteroids.All()
	if len(a1) != len(a2) {
		t.Fatalf("asteroid count mismatch: %d vs %d", len(a1), len(a2))
	}
	for i := range a1 {
		if a1[i].B != a2[i].B || a1[i].ID != a2[i].ID {
			t.Errorf("asteroid %d diverged", i)
		}
	}
}

func TestWorldRenderDebugAddsOverlays(t *testing.T) {
	w := quietWorld(1)
	w.Asteroids.AddPIDAsteroid(5)

	var plain, debug DrawList
	w.Render(&plain, false)
	w.Render(&debug, true)
	if len(debug) <= len(plain) {
		t.Errorf("debug render drew %d shapes, plain %d", len(debug), len(plain))
	}
}
