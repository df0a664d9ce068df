package todo

import (
	"errors"
	"testing"
)

func TestPriorityMetadata(t *testing.T) {
	tests := []struct {
		p     Priority
		label string
		class string
		badge string
		value string
	}{
		{PriorityHigh, "High", "priority-high", "bg-danger", "1"},
		{PriorityMedium, "Medium", "priority-medium", "bg-warning", "2"},
		{PriorityLow, "Low", "priority-low", "bg-secondary", "3"},
	}

	for _, tt := range tests {
		if got := tt.p.Label(); got != tt.label {
			t.Errorf("%d Label() = %q, want %q", tt.p, got, tt.label)
		}
		if got := tt.p.Class(); got != tt.class {
			t.Errorf("%d Class() = %q, want %q", tt.p, got, tt.class)
		}
		if got := tt.p.BadgeClass(); got != tt.badge {
			t.Errorf("%d BadgeClass() = %q, want %q", tt.p, got, tt.badge)
		}
		if got := tt.p.Value(); got != tt.value {
			t.Errorf("%d Value() = %q, want %q", tt.p, got, tt.value)
		}
	}

	if Priority(0).Valid() || Priority(4).Valid() {
		t.Error("out of range priorities should be invalid")
	}
	if Priority(9).String() != "Priority(9)" {
		t.Errorf("unexpected String() for unknown priority: %q", Priority(9).String())
	}
}

func TestPriorityStepping(t *testing.T) {
	if PriorityHigh.Prev() != PriorityHigh {
		t.Error("Prev should clamp at High")
	}
	if PriorityLow.Next() != PriorityLow {
		t.Error("Next should clamp at Low")
	}
	if PriorityHigh.Next() != PriorityMedium || PriorityLow.Prev() != PriorityMedium {
		t.Error("unexpected step result")
	}
}

func TestParsePriority(t *testing.T) {
	tests := map[string]Priority{
		"1":      PriorityHigh,
		" 2 ":    PriorityMedium,
		"3":      PriorityLow,
		"HIGH":   PriorityHigh,
		"Medium": PriorityMedium,
		"low":    PriorityLow,
	}
	for in, want := range tests {
		got, err := ParsePriority(in)
		if err != nil || got != want {
			t.Errorf("ParsePriority(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	for _, in := range []string{"", "0", "4", "urgent"} {
		if _, err := ParsePriority(in); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("ParsePriority(%q) error = %v, want ErrInvalidPriority", in, err)
		}
	}
}
