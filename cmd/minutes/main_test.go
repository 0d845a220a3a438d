package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "watch", "convert"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered: %v", name, err)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestConvertRequiresArgument(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"convert"})
	root.SetOut(os.Stderr)
	if err := root.Execute(); err == nil {
		t.Error("convert without a file should fail")
	}
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loadConfig() should fail for an explicit missing file")
	}
}

func TestLoadConfigDefaultFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEYS", "k1")

	cfg, err := loadConfig(defaultConfigPath)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Transcriber.Backend != "gemini" || len(cfg.Gemini.APIKeys) != 1 {
		t.Errorf("unexpected config: %+v", cfg.Transcriber)
	}
}
