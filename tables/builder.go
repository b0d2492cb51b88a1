package tables

import (
	"fmt"

	"github.com/juliandroske/rdg/pkg"
)

type directiveKind uint8

const (
	directiveAssign directiveKind = iota
	directiveAlias
	directiveSkip
	directiveStartAt
)

// A Directive is one step in the construction of an enumeration table.
type Directive struct {
	kind directiveKind
	name string
	code uint16
}

// Assign binds name to the current code and advances to the next one.
func Assign(name string) Directive {
	return Directive{kind: directiveAssign, name: name}
}

// Alias binds name to the most recently assigned code without
// advancing. It must follow at least one Assign.
func Alias(name string) Directive {
	return Directive{kind: directiveAlias, name: name}
}

// Skip advances past n reserved codes.
func Skip(n uint16) Directive {
	return Directive{kind: directiveSkip, code: n}
}

// StartAt moves the cursor to code. Subsequent Assigns continue from there.
func StartAt(code uint16) Directive {
	return Directive{kind: directiveStartAt, code: code}
}

// Build interprets a directive sequence into an immutable Table.
// Duplicate names and an Alias with no preceding Assign are errors.
func Build(name string, directives ...Directive) (*Table, error) {
	entries := make(map[string]uint16, len(directives))
	var (
		cursor   uint16
		last     uint16
		assigned bool
	)

	bind := func(sym string, code uint16) error {
		if _, dup := entries[sym]; dup {
			return fmt.Errorf("%w: duplicate name %q in table %q", pkg.ErrBadDirective, sym, name)
		}
		entries[sym] = code
		return nil
	}

	for _, d := range directives {
		switch d.kind {
		case directiveAssign:
			if err := bind(d.name, cursor); err != nil {
				return nil, err
			}
			last = cursor
			cursor++
			assigned = true

		case directiveAlias:
			if !assigned {
				return nil, fmt.Errorf("%w: alias %q before any assign in table %q", pkg.ErrBadDirective, d.name, name)
			}
			if err := bind(d.name, last); err != nil {
				return nil, err
			}

		case directiveSkip:
			cursor += d.code

		case directiveStartAt:
			cursor = d.code
		}
	}

	return &Table{name: name, entries: entries}, nil
}

// MustBuild is like Build but panics on error. It is intended for the
// static tables constructed at package init.
func MustBuild(name string, directives ...Directive) *Table {
	t, err := Build(name, directives...)
	if err != nil {
		panic(err)
	}
	return t
}
