package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                     { return g.id }
func (g *stubGame) Title() string                  { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) error { return nil }
func (g *stubGame) Render(*core.Screen)            {}
func (g *stubGame) State() core.GameState          { return core.GameState{} }
func (g *stubGame) Step(core.Action) (core.StepResult, error) {
	return core.StepResult{}, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID() = %q, expected stub_b", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}

	var sawA, sawB bool
	games := List()
	for i, info := range games {
		if i > 0 && games[i-1].ID > info.ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, info.ID)
		}
		switch info.ID {
		case "stub_a":
			sawA = info.Title == "Stub stub_a"
		case "stub_b":
			sawB = info.Title == "Stub stub_b"
		}
	}
	if !sawA || !sawB {
		t.Errorf("List() = %v, expected both stubs with titles", games)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
