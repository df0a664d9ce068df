package tui

import "testing"

func TestKeyState_Sequences(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		vim  bool
		keys []string
		want string
	}{
		{"gg goes to top", true, []string{"g", "g"}, "top"},
		{"dd deletes", true, []string{"d", "d"}, "delete"},
		{"broken sequence falls through", true, []string{"d", "j"}, "down"},
		{"G goes to bottom", true, []string{"G"}, "bottom"},
		{"k without vim is ignored", false, []string{"k"}, ""},
		{"arrows work without vim", false, []string{"up"}, "up"},
		{"space toggles", false, []string{"space"}, "complete"},
		{"enter edits", false, []string{"enter"}, "edit"},
		{"tab focuses form", false, []string{"tab"}, "focus_form"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ks KeyState
			var got string
			for _, k := range tt.keys {
				got, _ = ks.HandleKey(keyMsg(k), km, tt.vim)
			}
			if got != tt.want {
				t.Errorf("HandleKey(%v) = %q, want %q", tt.keys, got, tt.want)
			}
		})
	}
}

func TestKeyState_Reset(t *testing.T) {
	var ks KeyState
	ks.HandleKey(keyMsg("d"), DefaultKeymap(), true)
	ks.Reset()

	if action, _ := ks.HandleKey(keyMsg("d"), DefaultKeymap(), true); action != "" {
		t.Errorf("reset should drop the pending d, got %q", action)
	}
}
