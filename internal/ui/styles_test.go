package ui

import "testing"

func TestPlainOutputWithoutTTY(t *testing.T) {
	saved := IsTTY
	IsTTY = false
	t.Cleanup(func() { IsTTY = saved })

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"success", SuccessLine("done"), "  OK: done"},
		{"error", ErrorLine("bad"), "  ERROR: bad"},
		{"warning", WarningLine("hmm"), "  WARN: hmm"},
		{"info", InfoLine("fyi"), "  fyi"},
		{"header", SectionHeader("Setup"), "=== Setup ==="},
		{"badge", FileBadge("SRC"), "[SRC]"},
		{"new", StatusNew(), "[NEW]"},
		{"ok", StatusOK(), "[OK]"},
		{"err", StatusError(), "[ERR]"},
		{"code", RenderCode("cppkit setup"), "cppkit setup"},
		{"muted", RenderMuted("plain"), "plain"},
		{"footer", PageFooter(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
