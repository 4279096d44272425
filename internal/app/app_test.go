package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_InvalidSeedFailsBeforeUIStarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	content := "[[items]]\nlabel = \"x\"\nweight = 0\nstatus = \"todo\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	err := Run(context.Background(), Options{SeedPath: path})
	if err == nil {
		t.Fatal("Run() error = nil, want seed validation error")
	}
	if !strings.Contains(err.Error(), "load seed") {
		t.Fatalf("Run() error = %q, want it wrapped with 'load seed'", err)
	}
}
