package registry

import (
	"testing"

	"github.com/vovakirdan/procroids/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Description() string { return "a stub" }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game does not exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q, want zz_stub", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" || info.Description != "a stub" {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() does not include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
