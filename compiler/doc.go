// Package compiler translates a line-oriented, human-readable HID
// report layout description into the binary report descriptor bytes a
// HID stack serves from its report descriptor slot.
//
// Each non-blank, non-comment source line is a single call of the form
//
//	Usage_Page(Generic_Desktop)
//	Usage(Mouse)
//	Collection(Application)
//	End_Collection()
//
// Function names and arguments are case-insensitive. Comments start
// with '#' or ';'. Every call emits one short item: a header byte
// carrying the item's 4-bit tag, 2-bit type class, and 2-bit payload
// size code, followed by the payload bytes.
//
// Compilation is strictly single pass and fail-fast: the first error
// aborts the run with the 1-based line number, the offending line
// text, and the cause, and no partial output is returned.
//
//	c := compiler.New(nil) // built-in lookup tables
//	desc, err := c.Compile(src)
//	var cerr *compiler.Error
//	if errors.As(err, &cerr) {
//	    fmt.Fprintln(os.Stderr, cerr) // line 3: "Usage(Mose)": ...
//	}
//
// Symbolic arguments are resolved through a [tables.Registry], so new
// usage pages and usages can be added without touching the compiler.
package compiler
