package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.TickPeriod() != 100*time.Millisecond || cfg.SpawnPeriod() != 500*time.Millisecond {
		t.Errorf("periods %v / %v", cfg.TickPeriod(), cfg.SpawnPeriod())
	}
	if cfg.TileEdge != 20 || cfg.ScoreStep != 10 || cfg.SpawnChance != 0.3 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown backdrop", func(c *Config) { c.Backdrop = "rain" }},
		{"zero tile", func(c *Config) { c.TileEdge = 0 }},
		{"negative tick", func(c *Config) { c.TickMillis = -1 }},
		{"zero spawn period", func(c *Config) { c.SpawnMillis = 0 }},
		{"chance above one", func(c *Config) { c.SpawnChance = 1.5 }},
		{"negative chance", func(c *Config) { c.SpawnChance = -0.1 }},
		{"zero score step", func(c *Config) { c.ScoreStep = 0 }},
		{"empty window", func(c *Config) { c.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted a bad config")
			}
		})
	}
}

func TestSeedOrNow(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99
	if cfg.SeedOrNow() != 99 {
		t.Errorf("SeedOrNow() = %d", cfg.SeedOrNow())
	}
	cfg.Seed = 0
	if cfg.SeedOrNow() == 0 {
		t.Error("SeedOrNow() returned zero")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.json")
	if err := os.WriteFile(path, []byte(`{"backdrop":"skyline","tileEdge":32}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if cfg.Backdrop != "skyline" || cfg.TileEdge != 32 {
		t.Errorf("loaded %+v", cfg)
	}
	if cfg.TickMillis != 100 {
		t.Errorf("missing key reset tick to %d", cfg.TickMillis)
	}

	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFile() of a missing file succeeded")
	}
	bad := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(bad, []byte(`{"tileEdge":`), 0o644)
	if err := cfg.LoadFile(bad); err == nil {
		t.Error("LoadFile() of broken JSON succeeded")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvBackdrop: "skyline",
		EnvSeed:     "1234",
		EnvTile:     "25",
		EnvTickMS:   "80",
		EnvTitle:    "Moscow",
	}
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatalf("ApplyEnv() = %v", err)
	}
	want := Default()
	want.Backdrop, want.Seed, want.TileEdge, want.TickMillis, want.Title = "skyline", 1234, 25, 80, "Moscow"
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}

	env[EnvSeed] = "lots"
	if err := cfg.ApplyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok }); err == nil {
		t.Error("ApplyEnv() accepted a non-numeric seed")
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.json")
	os.WriteFile(path, []byte(`{"backdrop":"skyline","title":"from file"}`), 0o644)
	t.Setenv(EnvTitle, "from env")

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(set)
	args := []string{"-config", path, "-env", "", "-backdrop", "fireworks", "-seed", "5"}
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Config()
	if err != nil {
		t.Fatalf("Config() = %v", err)
	}
	if cfg.Backdrop != "fireworks" || cfg.Seed != 5 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Title != "from env" {
		t.Errorf("title = %q, want env to beat the file", cfg.Title)
	}
	if cfg.TileEdge != 20 {
		t.Errorf("unset flag changed tile edge to %d", cfg.TileEdge)
	}
}

func TestDotEnvFile(t *testing.T) {
	os.Unsetenv(EnvTile)
	t.Cleanup(func() { os.Unsetenv(EnvTile) })

	envFile := filepath.Join(t.TempDir(), ".env")
	os.WriteFile(envFile, []byte("SNAKE_TILE=40\n"), 0o644)

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(set)
	if err := set.Parse([]string{"-env", envFile}); err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Config()
	if err != nil {
		t.Fatalf("Config() = %v", err)
	}
	if cfg.TileEdge != 40 {
		t.Errorf("tile edge = %d, want 40 from %s", cfg.TileEdge, envFile)
	}
}

func TestMissingDotEnvIsFine(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(set)
	set.Parse([]string{"-env", filepath.Join(t.TempDir(), "nope.env")})
	if _, err := f.Config(); err != nil {
		t.Errorf("Config() = %v", err)
	}
}

func TestInvalidFlagValueFails(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(set)
	set.Parse([]string{"-env", "", "-backdrop", "rain"})
	if _, err := f.Config(); err == nil {
		t.Error("Config() accepted an unknown backdrop")
	}
}
