package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("InitConfig = %+v; want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	again, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *again != *DefaultConfig() {
		t.Errorf("reloaded config = %+v", again)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
[server]
max_limit = 5
max_keys = 12

[dict]
path = "/tmp/words.txt"
fold_case = false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxLimit != 5 || cfg.Server.MaxKeys != 12 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.ReloadEvery != DefaultConfig().Server.ReloadEvery {
		t.Errorf("missing key did not keep default: %+v", cfg.Server)
	}
	if cfg.Dict.Path != "/tmp/words.txt" || cfg.Dict.FoldCase {
		t.Errorf("dict = %+v", cfg.Dict)
	}
	if cfg.CLI.DefaultLimit != 10 {
		t.Errorf("cli = %+v", cfg.CLI)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// max_limit has the wrong type, so the struct decode fails.
	path := writeFile(t, `
[server]
max_limit = "lots"
max_keys = 8

[cli]
default_limit = 3
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("bad value should fall back to default, got %d", cfg.Server.MaxLimit)
	}
	if cfg.Server.MaxKeys != 8 || cfg.CLI.DefaultLimit != 3 {
		t.Errorf("recovered config = %+v", cfg)
	}
}

func TestLoadConfigGarbage(t *testing.T) {
	path := writeFile(t, "this is [not toml")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("garbage config = %+v; want defaults", cfg)
	}
}

func TestNormalize(t *testing.T) {
	path := writeFile(t, `
[server]
max_limit = 0
max_keys = -1
reload_every = -5

[dict]
max_words = -2
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxLimit != 64 || cfg.Server.MaxKeys != 32 || cfg.Server.ReloadEvery != 0 || cfg.Dict.MaxWords != 0 {
		t.Errorf("normalized = %+v", cfg)
	}
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeFile(t, "[cli]\ndefault_limit = 4\n")
	cfg, used, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPriority: %v", err)
	}
	if used != path || cfg.CLI.DefaultLimit != 4 {
		t.Errorf("got %+v from %q", cfg, used)
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	limit := 9
	if err := cfg.Update(path, &limit, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Server.MaxLimit != 9 || loaded.Server.MaxKeys != 32 {
		t.Errorf("updated config = %+v", loaded.Server)
	}
}
