package registry

import (
	"testing"

	"github.com/okhmel/bridgefall/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                              { return g.id }
func (g *stubGame) Title() string                           { return g.title }
func (g *stubGame) Reset(cfg core.RuntimeConfig)            {}
func (g *stubGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(dst *core.Screen)                 {}
func (g *stubGame) State() core.GameState                   { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "Stub A"} })

	if !Exists("stub_a") {
		t.Fatal("Exists returned false for registered mode")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("created game ID = %q, want stub_a", g.ID())
	}

	// Each Create returns a fresh instance
	g2, _ := Create("stub_a")
	if g == g2 {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_mode"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if Exists("no_such_mode") {
		t.Error("Exists returned true for unknown mode")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z", title: "Stub Z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b", title: "Stub B"} })

	infos := List()
	if len(infos) < 2 {
		t.Fatalf("List returned %d modes, want at least 2", len(infos))
	}

	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}

	byID := make(map[string]string)
	for _, info := range infos {
		byID[info.ID] = info.Title
	}
	if byID["stub_b"] != "Stub B" {
		t.Errorf("stub_b title = %q, want Stub B", byID["stub_b"])
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()

	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
}
