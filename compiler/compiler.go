package compiler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/juliandroske/rdg/pkg"
	"github.com/juliandroske/rdg/tables"
)

// Error is a compilation failure tied to a source position. Text is
// the raw offending line; it is empty for end-of-input failures.
type Error struct {
	Line int
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Compiler turns report layout source into descriptor bytes. The zero
// value is not usable; construct with New. A Compiler holds no
// per-run state and may compile any number of inputs.
type Compiler struct {
	reg *tables.Registry
}

// New creates a compiler resolving symbols through reg. A nil reg
// selects the built-in tables.
func New(reg *tables.Registry) *Compiler {
	if reg == nil {
		reg = tables.Default()
	}
	return &Compiler{reg: reg}
}

// Compile reads layout source line by line and returns the
// concatenated item bytes in source order. The first error aborts the
// run; on failure the returned bytes are nil, never a partial stream.
func (c *Compiler) Compile(r io.Reader) ([]byte, error) {
	var (
		out []byte
		n   int
	)
	ctx := newContext()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n++
		raw := scanner.Text()

		kind, cl, err := parseLine(raw)
		if err != nil {
			return nil, &Error{Line: n, Text: raw, Err: err}
		}
		if kind != lineCall {
			continue
		}
		pkg.LogDebug(pkg.ComponentParser, "call parsed",
			"line", n,
			"function", cl.name,
			"args", len(cl.args))

		ent, ok := dispatch[cl.name]
		if !ok {
			return nil, &Error{Line: n, Text: raw, Err: fmt.Errorf(
				"%w %q%s", pkg.ErrUnknownFunction, cl.name, suggestion(closestFunction(cl.name)))}
		}

		payload, up, err := ent.run(c.reg, ctx, cl.args)
		if err != nil {
			return nil, &Error{Line: n, Text: raw, Err: err}
		}

		out, err = ent.item.AppendTo(out, payload)
		if err != nil {
			return nil, &Error{Line: n, Text: raw, Err: err}
		}

		if err := applyUpdate(ctx, up); err != nil {
			return nil, &Error{Line: n, Text: raw, Err: err}
		}

		pkg.LogDebug(pkg.ComponentEncoder, "item emitted",
			"line", n,
			"function", cl.name,
			"payload", len(payload),
			"depth", ctx.depth())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	if d := ctx.depth(); d > 0 {
		err := fmt.Errorf("%w: %d collection(s) still open", pkg.ErrUnterminatedCollection, d)
		if typ, ok := ctx.local("collection"); ok {
			err = fmt.Errorf("%w: innermost is collection(%s)", err, typ)
		}
		return nil, &Error{Line: n, Err: err}
	}

	pkg.LogDebug(pkg.ComponentCompiler, "compilation finished",
		"lines", n,
		"bytes", len(out))
	return out, nil
}

// CompileString is Compile over an in-memory source.
func (c *Compiler) CompileString(src string) ([]byte, error) {
	return c.Compile(strings.NewReader(src))
}

func applyUpdate(ctx *context, up update) error {
	switch up.action {
	case ctxNone:
	case ctxSetGlobal:
		ctx.setGlobal(up.key, up.value)
	case ctxClearGlobal:
		ctx.clearGlobal(up.key)
	case ctxPushScope:
		ctx.pushScope()
		ctx.recordLocal(up.key, up.value)
	case ctxPopScope:
		return ctx.popScope()
	}
	return nil
}
