package nglconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/ngl/modes"
	"github.com/reusee/ngl/tapes"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		budget StepBudget,
		addr ListenAddr,
		maxConns MaxConns,
		maxRunning MaxRunning,
	) {
		if budget != tapes.DefaultBudget {
			t.Fatalf("got %v", budget)
		}
		if addr != defaultListenAddr {
			t.Fatalf("got %v", addr)
		}
		if maxConns != 64 {
			t.Fatalf("got %v", maxConns)
		}
		if maxRunning <= 0 {
			t.Fatalf("got %v", maxRunning)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "ngl.cue"), []byte(`
max_steps: 42
listen_addr: "127.0.0.1:9999"
max_running: 2
`), 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		budget StepBudget,
		addr ListenAddr,
		maxRunning MaxRunning,
	) {
		if budget != 42 {
			t.Fatalf("got %v", budget)
		}
		if addr != "127.0.0.1:9999" {
			t.Fatalf("got %v", addr)
		}
		if maxRunning != 2 {
			t.Fatalf("got %v", maxRunning)
		}
	})
}

func TestSchema(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "ngl.cue"), []byte(`
max_steps: "many"
`), 0644); err != nil {
		t.Fatal(err)
	}
	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		dscope.New(
			modes.ForTest(t),
			new(Module),
		).Call(func(
			budget StepBudget,
		) {
		})
	}()
}
