package model

import "fmt"

// Collection is the ordered task list. Insertion order is display order and
// persisted order.
type Collection struct {
	tasks []*Task
}

// NewCollection returns a collection holding tasks in the given order.
func NewCollection(tasks ...*Task) *Collection {
	c := &Collection{tasks: make([]*Task, 0, len(tasks))}
	c.tasks = append(c.tasks, tasks...)
	return c
}

// Add appends t and returns the new size.
func (c *Collection) Add(t *Task) int {
	c.tasks = append(c.tasks, t)
	return len(c.tasks)
}

// Remove deletes the first entry that is t itself.
func (c *Collection) Remove(t *Task) error {
	for i, existing := range c.tasks {
		if existing == t {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// Get returns the task at the 0-based index.
func (c *Collection) Get(index int) (*Task, error) {
	if index < 0 || index >= len(c.tasks) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(c.tasks))
	}
	return c.tasks[index], nil
}

func (c *Collection) Size() int {
	return len(c.tasks)
}

// Find returns a new collection with the tasks matching pred, in order.
// The tasks themselves are shared, not copied.
func (c *Collection) Find(pred func(*Task) bool) *Collection {
	found := NewCollection()
	for _, t := range c.tasks {
		if pred(t) {
			found.Add(t)
		}
	}
	return found
}

// All returns a copy of the underlying slice.
func (c *Collection) All() []*Task {
	out := make([]*Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}
