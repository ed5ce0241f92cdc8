package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSourceCollectsHooks(t *testing.T) {
	r := NewRunner()
	hooks, err := r.RunSource(`
console.silent("import numpy")
console.silent("import pandas")
console.banner("Loaded profile: science")
`)
	if err != nil {
		t.Fatalf("RunSource: %v", err)
	}

	wantSilent := []string{"import numpy", "import pandas"}
	if len(hooks.Silent) != len(wantSilent) {
		t.Fatalf("silent hooks = %v, want %v", hooks.Silent, wantSilent)
	}
	for i, w := range wantSilent {
		if hooks.Silent[i] != w {
			t.Errorf("silent[%d] = %q, want %q", i, hooks.Silent[i], w)
		}
	}
	if len(hooks.Banner) != 1 || hooks.Banner[0] != "Loaded profile: science" {
		t.Errorf("banner hooks = %v", hooks.Banner)
	}
}

func TestRunMissingFileYieldsEmptyHooks(t *testing.T) {
	r := NewRunner()
	hooks, err := r.Run(filepath.Join(t.TempDir(), "absent.lua"))
	if err != nil {
		t.Fatalf("Run on missing file: %v", err)
	}
	if len(hooks.Silent) != 0 || len(hooks.Banner) != 0 {
		t.Errorf("hooks = %+v, want empty", hooks)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "startup.lua")
	src := `console.banner("hello from " .. string.upper("script"))`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	hooks, err := NewRunner().Run(path)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(hooks.Banner) != 1 || hooks.Banner[0] != "hello from SCRIPT" {
		t.Errorf("banner hooks = %v", hooks.Banner)
	}
}

func TestSyntaxErrorWraps(t *testing.T) {
	_, err := NewRunner().RunSource(`console.silent(`)
	if !errors.Is(err, ErrScriptFailed) {
		t.Errorf("err = %v, want ErrScriptFailed", err)
	}
}

func TestFailedScriptReturnsNoHooks(t *testing.T) {
	hooks, err := NewRunner().RunSource(`
console.silent("kept?")
error("boom")
`)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(hooks.Silent) != 0 {
		t.Errorf("failed script leaked hooks: %v", hooks.Silent)
	}
}

func TestUnsafeGlobalsUnavailable(t *testing.T) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "os", "io"} {
		src := `if ` + name + ` ~= nil then error("available") end`
		if _, err := NewRunner().RunSource(src); err != nil {
			t.Errorf("%s should be nil in the sandbox: %v", name, err)
		}
	}
}

func TestRuntimeErrorMessageSurfaces(t *testing.T) {
	_, err := NewRunner().RunSource(`error("custom failure")`)
	if err == nil || !strings.Contains(err.Error(), "custom failure") {
		t.Errorf("err = %v, want message containing script error", err)
	}
}
