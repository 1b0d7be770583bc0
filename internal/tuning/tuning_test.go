package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sumrope.yaml")
	content := "chunk_size: 64\nbalance_ratio: 2.5\nnormalize: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != 64 {
		t.Errorf("ChunkSize = %d, want 64", cfg.ChunkSize)
	}
	if cfg.BalanceRatio != 2.5 {
		t.Errorf("BalanceRatio = %v, want 2.5", cfg.BalanceRatio)
	}
	if !cfg.Normalize {
		t.Errorf("Normalize = false, want true")
	}
}
