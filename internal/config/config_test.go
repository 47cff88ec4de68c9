package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Fatalf("expected zero viewport defaults, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.Mouse {
		t.Fatalf("expected mouse enabled by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{"GLAZE_WIDTH=80", "GLAZE_TRACE=true"}
	cfg, err := LoadArgs([]string{"-width", "120", "-log-file", "/tmp/glaze.log"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 120 {
		t.Fatalf("expected flag to win over env, got %d", cfg.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected env trace fallback to apply")
	}
	if cfg.Logging.FilePath != "/tmp/glaze.log" {
		t.Fatalf("expected log file path set, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{"GLAZE_WIDTH=100", "GLAZE_HEIGHT=30", "GLAZE_MOUSE=false"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 30 {
		t.Fatalf("expected env viewport, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Mouse {
		t.Fatalf("expected mouse disabled via env")
	}
}

func TestLoadArgsMalformedEnvironmentIgnored(t *testing.T) {
	env := []string{"GLAZE_WIDTH=not-a-number", "GLAZE_MOUSE=", "JUNK"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 0 {
		t.Fatalf("expected malformed int ignored, got %d", cfg.Width)
	}
	if !cfg.Mouse {
		t.Fatalf("expected empty bool ignored")
	}
}

func TestValidateRejectsNegativeViewport(t *testing.T) {
	_, err := LoadArgs([]string{"-width", "-5"}, nil)
	if err == nil || !strings.Contains(err.Error(), "width") {
		t.Fatalf("expected width validation error, got %v", err)
	}
}
