package steps

import "sync"

// Binding is a current-step value owned outside the Manager, such as a URL
// query parameter. Value returns false when the value is undefined.
type Binding interface {
	Value() (string, bool)
}

// MutableBinding is a Binding the Manager may write back to. After each
// committed transition the new step is stored, unless the value is empty.
type MutableBinding interface {
	Binding
	Set(name string)
}

// BoundStep is a MutableBinding held in memory.
type BoundStep struct {
	mu      sync.Mutex
	name    string
	defined bool
}

// NewBoundStep creates a BoundStep holding name.
func NewBoundStep(name string) *BoundStep {
	return &BoundStep{name: name, defined: true}
}

func (b *BoundStep) Value() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.name, b.defined
}

func (b *BoundStep) Set(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
	b.defined = true
}

// Unset makes the value undefined.
func (b *BoundStep) Unset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = ""
	b.defined = false
}
