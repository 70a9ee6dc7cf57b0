package config

import "testing"

func TestDefaultConfigFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvOutDir, "")
	t.Setenv(EnvDensities, "")
	t.Setenv(EnvMkdir, "")
	t.Setenv(EnvStdioLog, "")

	cfg, err := DefaultConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutDir != DefaultOutDir {
		t.Errorf("expected default out dir, got %q", cfg.OutDir)
	}
	if cfg.Mkdir || cfg.Densities != "" || cfg.StdioLog != "" {
		t.Errorf("unexpected non-default config %+v", cfg)
	}
}

func TestDefaultConfigFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvOutDir, "/tmp/res")
	t.Setenv(EnvDensities, "mdpi,hdpi")
	t.Setenv(EnvMkdir, "true")
	t.Setenv(EnvStdioLog, "/tmp/out.log")

	cfg, err := DefaultConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{OutDir: "/tmp/res", Densities: "mdpi,hdpi", Mkdir: true, StdioLog: "/tmp/out.log"}
	if cfg != want {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestDefaultConfigFromEnvBadBool(t *testing.T) {
	t.Setenv(EnvMkdir, "sometimes")
	if _, err := DefaultConfigFromEnv(); err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}
