// Package todo holds the in-memory task collection and its edit session.
package todo

import "time"

// Task is a single to-do item.
type Task struct {
	ID        string
	Text      string
	Priority  Priority
	Completed bool
	CreatedAt time.Time
}

// EditSession is the shadow copy of a task while it is being edited.
// The stored task is untouched until the session is saved.
type EditSession struct {
	TaskID   string
	Text     string
	Priority Priority
}
