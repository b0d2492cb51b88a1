package compiler

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/juliandroske/rdg/pkg"
	"github.com/juliandroske/rdg/tables"
)

// ctxAction tells the driver how to apply a successful dispatch to the
// compilation context.
type ctxAction uint8

const (
	ctxNone ctxAction = iota
	ctxSetGlobal
	ctxClearGlobal
	ctxPushScope // pushes a scope and records key=value in it
	ctxPopScope
)

// update is the context mutation a handler requests.
type update struct {
	action ctxAction
	key    string
	value  string
}

// handler validates arguments, resolves values, and produces the
// item's payload bytes plus the context update to apply.
type handler func(reg *tables.Registry, ctx *context, args []string) ([]byte, update, error)

// entry binds a function name to its item descriptor and handler.
type entry struct {
	item Item
	run  handler
}

// dispatch is the closed set of supported function names. Tags and
// classes follow HID 1.11, section 6.2.2.
var dispatch = map[string]entry{
	"usage_page":      {Item{Tag: 0, Class: ClassGlobal}, handleUsagePage},
	"logical_minimum": {Item{Tag: 1, Class: ClassGlobal}, handleNumeric("logical_minimum")},
	"logical_maximum": {Item{Tag: 2, Class: ClassGlobal}, handleNumeric("logical_maximum")},
	"report_size":     {Item{Tag: 7, Class: ClassGlobal}, handleNumeric("report_size")},
	"report_id":       {Item{Tag: 8, Class: ClassGlobal}, handleNumeric("report_id")},
	"report_count":    {Item{Tag: 9, Class: ClassGlobal}, handleNumeric("report_count")},

	"usage":         {Item{Tag: 0, Class: ClassLocal}, handleUsage("usage")},
	"usage_minimum": {Item{Tag: 1, Class: ClassLocal}, handleUsage("usage_minimum")},
	"usage_maximum": {Item{Tag: 2, Class: ClassLocal}, handleUsage("usage_maximum")},

	"input":          {Item{Tag: 8, Class: ClassMain}, handleFlags("input")},
	"output":         {Item{Tag: 9, Class: ClassMain}, handleFlags("output")},
	"feature":        {Item{Tag: 11, Class: ClassMain}, handleFlags("feature")},
	"collection":     {Item{Tag: 10, Class: ClassMain}, handleCollection},
	"end_collection": {Item{Tag: 12, Class: ClassMain}, handleEndCollection},
}

// functionNames lists the registered names, sorted, for suggestions.
func functionNames() []string {
	names := make([]string, 0, len(dispatch))
	for name := range dispatch {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// closestFunction returns the best fuzzy match for an unknown
// function name, or "" when nothing ranks.
func closestFunction(name string) string {
	ranks := fuzzy.RankFindFold(name, functionNames())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func wantArgs(item string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", pkg.ErrBadArgument, item, n, len(args))
	}
	return nil
}

// payloadByte narrows a resolved code to the one-byte payload the
// feature matrix supports.
func payloadByte(item string, code uint32) ([]byte, error) {
	if code > 0xFF {
		return nil, fmt.Errorf("%w: %s value 0x%X", pkg.ErrPayloadRange, item, code)
	}
	return []byte{byte(code)}, nil
}

// handleUsagePage resolves the page name and records the name itself
// (not the code) as the active usage_page, so usage handlers can pick
// the page's table symbolically.
func handleUsagePage(reg *tables.Registry, _ *context, args []string) ([]byte, update, error) {
	if err := wantArgs("usage_page", args, 1); err != nil {
		return nil, update{}, err
	}
	code, err := resolveSymbol(reg.Pages(), "usage_page", args[0])
	if err != nil {
		return nil, update{}, err
	}
	payload, err := payloadByte("usage_page", uint32(code))
	if err != nil {
		return nil, update{}, err
	}
	return payload, update{action: ctxSetGlobal, key: "usage_page", value: args[0]}, nil
}

// handleUsage builds the handler shared by usage, usage_minimum, and
// usage_maximum. The argument may be a raw number or a name from the
// active page's usage table; the keypad page aliases the keyboard
// table.
func handleUsage(item string) handler {
	return func(reg *tables.Registry, ctx *context, args []string) ([]byte, update, error) {
		if err := wantArgs(item, args, 1); err != nil {
			return nil, update{}, err
		}

		page, ok := ctx.global("usage_page")
		if !ok {
			return nil, update{}, fmt.Errorf("%w: %s requires a prior usage_page", pkg.ErrMissingUsagePage, item)
		}
		if page == "keypad" {
			page = "keyboard"
		}

		tok := args[0]
		if isNumeric(tok) {
			code, err := parseNumber(tok, 8)
			if err != nil {
				return nil, update{}, err
			}
			return []byte{byte(code)}, update{}, nil
		}

		tbl, ok := reg.Usages(page)
		if !ok {
			return nil, update{}, fmt.Errorf("%w: %q", pkg.ErrNoUsageTable, page)
		}
		code, err := resolveSymbol(tbl, item, tok)
		if err != nil {
			return nil, update{}, err
		}
		payload, err := payloadByte(item, uint32(code))
		if err != nil {
			return nil, update{}, err
		}
		return payload, update{}, nil
	}
}

// handleNumeric builds the handler for items taking one plain signed
// integer (logical bounds, report size/count/id). Negative values use
// the 8-bit sign-magnitude encoding.
func handleNumeric(item string) handler {
	return func(_ *tables.Registry, _ *context, args []string) ([]byte, update, error) {
		if err := wantArgs(item, args, 1); err != nil {
			return nil, update{}, err
		}
		code, err := parseNumber(args[0], 8)
		if err != nil {
			return nil, update{}, err
		}
		return []byte{byte(code)}, update{}, nil
	}
}

// handleFlags builds the handler for input/output/feature: each token
// is resolved against the shared flag table and OR-composed into one
// payload byte.
func handleFlags(item string) handler {
	return func(reg *tables.Registry, _ *context, args []string) ([]byte, update, error) {
		if len(args) == 0 {
			return nil, update{}, fmt.Errorf("%w: %s expects at least one flag", pkg.ErrBadArgument, item)
		}
		mask, err := composeFlags(reg.Flags(), item, args)
		if err != nil {
			return nil, update{}, err
		}
		payload, err := payloadByte(item, uint32(mask))
		if err != nil {
			return nil, update{}, err
		}
		return payload, update{}, nil
	}
}

// handleCollection resolves the collection type, opens a scope, and
// records the type name in it for later reference.
func handleCollection(reg *tables.Registry, _ *context, args []string) ([]byte, update, error) {
	if err := wantArgs("collection", args, 1); err != nil {
		return nil, update{}, err
	}
	code, err := resolveSymbol(reg.Collections(), "collection", args[0])
	if err != nil {
		return nil, update{}, err
	}
	payload, err := payloadByte("collection", uint32(code))
	if err != nil {
		return nil, update{}, err
	}
	return payload, update{action: ctxPushScope, key: "collection", value: args[0]}, nil
}

// handleEndCollection takes no arguments and emits a bare header byte;
// the scope pop is applied by the driver.
func handleEndCollection(_ *tables.Registry, _ *context, args []string) ([]byte, update, error) {
	if err := wantArgs("end_collection", args, 0); err != nil {
		return nil, update{}, err
	}
	return nil, update{action: ctxPopScope}, nil
}
