package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/kroy/powerup"
)

func TestLoadTuningSpecEmbedded(t *testing.T) {
	spec, err := LoadTuningSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.PowerUp.Radius != 25 || spec.PowerUp.Health != 1 {
		t.Fatalf("unexpected power-up tuning %+v", spec.PowerUp)
	}
	if len(spec.Spawns) == 0 {
		t.Fatal("expected spawns in embedded tuning")
	}
	first := spec.Spawns[0]
	if first.Variant == nil || first.Variant.Variant != (powerup.Water{}) {
		t.Fatalf("expected first spawn to be water, got %+v", first.Variant)
	}
	if spec.Spawns[2].Variant != nil {
		t.Fatalf("expected third spawn to be randomized, got %+v", spec.Spawns[2].Variant)
	}
}

func TestLoadTuningSpecFile(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr error
		check   func(t *testing.T, spec TuningSpec)
	}{
		{
			name: "defaults",
			body: "powerup: {radius: 10}\n",
			check: func(t *testing.T, spec TuningSpec) {
				if spec.TickRate != 60 || spec.Truck.MaxWater != 100 || spec.Truck.MaxHealth != 100 {
					t.Fatalf("expected defaults, got %+v", spec)
				}
				cfg := spec.PowerUp.Config()
				if cfg.Radius != 10 || cfg.Health != 0 {
					t.Fatalf("unexpected config %+v", cfg)
				}
			},
		},
		{
			name:    "unknown_variant",
			body:    "spawns:\n  - {x: 1, y: 2, variant: FIRE}\n",
			wantErr: powerup.ErrUnknownVariant,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatal(err)
			}
			spec, err := LoadTuningSpecFile(path)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			c.check(t, spec)
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"pickup.tengo", "scripts/pickup.tengo", "prefabs/scripts/pickup.tengo"} {
		data, err := LoadScript(name)
		if err != nil || len(data) == 0 {
			t.Fatalf("LoadScript(%q): len=%d err=%v", name, len(data), err)
		}
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(spec, []byte("tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != spec {
			t.Fatalf("expected %s, got %s", spec, got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	for range w.Events {
	}
}
