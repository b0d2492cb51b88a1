package compiler

import "github.com/juliandroske/rdg/pkg"

// frame is one collection scope: local-item name to recorded value.
type frame map[string]string

// context holds the mutable compilation state: the global item values
// and the stack of local scopes, one frame per open collection.
// A context is owned by exactly one compilation run.
type context struct {
	globals map[string]string
	stack   []frame
}

func newContext() *context {
	return &context{globals: make(map[string]string)}
}

// setGlobal records a global item value; it persists until overwritten.
func (c *context) setGlobal(name, value string) {
	c.globals[name] = value
}

// clearGlobal removes a global item value.
func (c *context) clearGlobal(name string) {
	delete(c.globals, name)
}

// global returns the last-set value for a global item.
func (c *context) global(name string) (string, bool) {
	v, ok := c.globals[name]
	return v, ok
}

// pushScope opens a new collection scope.
func (c *context) pushScope() {
	c.stack = append(c.stack, make(frame))
}

// popScope closes the innermost collection scope.
func (c *context) popScope() error {
	if len(c.stack) == 0 {
		return pkg.ErrUnbalancedCollection
	}
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// recordLocal stores a value in the innermost scope.
func (c *context) recordLocal(name, value string) {
	if len(c.stack) == 0 {
		return
	}
	c.stack[len(c.stack)-1][name] = value
}

// local reads a value from the innermost scope.
func (c *context) local(name string) (string, bool) {
	if len(c.stack) == 0 {
		return "", false
	}
	v, ok := c.stack[len(c.stack)-1][name]
	return v, ok
}

// depth returns the current collection nesting depth.
func (c *context) depth() int {
	return len(c.stack)
}
