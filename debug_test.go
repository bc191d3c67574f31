package aurora

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugLogInterval(t *testing.T) {
	buf := captureLogs(t)
	p := newTestPage(t)
	p.SetDebugMode(true)

	runFrames(p, debugLogInterval-1)
	p.debugLog()
	if buf.Len() != 0 {
		t.Fatalf("logged before the interval: %s", buf.String())
	}

	runFrames(p, 1)
	p.debugLog()
	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "renderer=active") || !strings.Contains(out, "component=aurora") {
		t.Errorf("unexpected debug line: %s", out)
	}
}

func TestDebugLogDisabled(t *testing.T) {
	buf := captureLogs(t)
	p := newTestPage(t)
	runFrames(p, debugLogInterval)
	p.debugLog()
	if buf.Len() != 0 {
		t.Errorf("debug log written with debug mode off: %s", buf.String())
	}
}

func TestFallbackIsLogged(t *testing.T) {
	buf := captureLogs(t)
	cfg := DefaultConfig()
	cfg.Background.ForceFallback = true
	p := NewPage(cfg, DefaultLayout())
	defer p.Close()
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "disabled by configuration") {
		t.Errorf("fallback not logged: %s", buf.String())
	}
}

func TestFPSOverlayLabel(t *testing.T) {
	p := newTestPage(t)
	p.ShowFPS = true
	runFrames(p, 1)
	if !strings.Contains(p.fps.label, "BG: active") {
		t.Errorf("label = %q", p.fps.label)
	}
	p.Background().Fail(nil)
	runFrames(p, 10)
	if strings.Contains(p.fps.label, "fallback") {
		t.Error("label refreshed before the interval")
	}
	runFrames(p, 30)
	if !strings.Contains(p.fps.label, "BG: fallback") {
		t.Errorf("label = %q, want fallback mode", p.fps.label)
	}
}
