package aurora

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-scroll", "after-scroll"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	p := newTestPage(t)
	p.Screenshot("a")
	p.Screenshot("b")
	p.Screenshot("c")
	if len(p.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(p.screenshotQueue))
	}
	if p.screenshotQueue[0] != "a" || p.screenshotQueue[1] != "b" || p.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", p.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	p := newTestPage(t)
	if p.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", p.ScreenshotDir, "screenshots")
	}
}
