package todo

import (
	"strconv"
	"strings"
)

// Priority is the ordinal importance of a task. Lower values are more urgent.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Priorities lists every level in selector order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// Label returns the display label ("High", "Medium", "Low").
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return ""
	}
}

// Class returns the row class used by the list view.
func (p Priority) Class() string {
	switch p {
	case PriorityHigh:
		return "priority-high"
	case PriorityMedium:
		return "priority-medium"
	case PriorityLow:
		return "priority-low"
	default:
		return ""
	}
}

// BadgeClass returns the badge colour class: danger, warning or secondary.
func (p Priority) BadgeClass() string {
	switch p {
	case PriorityHigh:
		return "bg-danger"
	case PriorityMedium:
		return "bg-warning"
	case PriorityLow:
		return "bg-secondary"
	default:
		return ""
	}
}

// Value returns the selector option value ("1", "2", "3").
func (p Priority) Value() string {
	return strconv.Itoa(int(p))
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	if l := p.Label(); l != "" {
		return l
	}
	return "Priority(" + strconv.Itoa(int(p)) + ")"
}

// Next returns the next lower level, clamped at Low.
func (p Priority) Next() Priority {
	if p >= PriorityLow {
		return PriorityLow
	}
	return p + 1
}

// Prev returns the next higher level, clamped at High.
func (p Priority) Prev() Priority {
	if p <= PriorityHigh {
		return PriorityHigh
	}
	return p - 1
}

// ParsePriority coerces a selector value or label into a Priority.
// It accepts "1"/"2"/"3" and "high"/"medium"/"low" in any case.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "1", "high":
		return PriorityHigh, nil
	case "2", "medium":
		return PriorityMedium, nil
	case "3", "low":
		return PriorityLow, nil
	}
	return 0, ErrInvalidPriority
}
