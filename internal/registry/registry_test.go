package registry

import (
	"testing"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("missing") {
		t.Error("Exists() reports wrong membership")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub-a")
	}

	other, _ := Create("stub-a")
	g.Step(core.NewInputFrame())
	if other.State().Score != 0 {
		t.Error("Create() must return independent instances")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for an unknown ID")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-b" && info.Title != "Stub stub-b" {
			t.Errorf("Title = %q", info.Title)
		}
	}
	idxA, idxB := -1, -1
	for i, id := range ids {
		switch id {
		case "stub-a":
			idxA = i
		case "stub-b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("List() not sorted by ID: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
