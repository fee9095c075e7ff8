package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionThrust)
	f.Release(ActionThrust)
	f.Set(ActionFire)

	want := []InputEvent{
		{Action: ActionThrust, Pressed: true},
		{Action: ActionThrust, Pressed: false},
		{Action: ActionFire, Pressed: true},
	}
	if len(f.Events) != len(want) {
		t.Fatalf("events = %v, want %v", f.Events, want)
	}
	for i := range want {
		if f.Events[i] != want[i] {
			t.Errorf("event[%d] = %+v, want %+v", i, f.Events[i], want[i])
		}
	}
}

func TestInputFrameHasIgnoresReleases(t *testing.T) {
	f := NewInputFrame()
	f.Release(ActionRotateLeft)

	if f.Has(ActionRotateLeft) {
		t.Error("Has should only report presses")
	}
	f.Press(ActionRotateLeft)
	if !f.Has(ActionRotateLeft) {
		t.Error("Has should report a press")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionPause)
	c := f.Clone()
	f.Clear()

	if len(f.Events) != 0 {
		t.Errorf("Clear left %v", f.Events)
	}
	if !c.Has(ActionPause) {
		t.Error("clone lost its events after Clear")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateRight.String() != "RotateRight" {
		t.Errorf("String() = %q", ActionRotateRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q, want Unknown", Action(99).String())
	}
}
