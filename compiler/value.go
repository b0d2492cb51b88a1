package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juliandroske/rdg/pkg"
	"github.com/juliandroske/rdg/tables"
)

// isNumeric reports whether tok has the shape of a numeric literal:
// an optional leading '-', then decimal digits or a 0x-prefixed hex
// string. Shape only; range errors surface from parseNumber.
func isNumeric(tok string) bool {
	body := strings.TrimPrefix(tok, "-")
	if body == "" {
		return false
	}
	if strings.HasPrefix(body, "0x") {
		return len(body) > 2
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseNumber resolves a numeric literal token into its encoded value
// over the given bit width. Negative values use the sign-magnitude
// convention: the magnitude occupies the low bits and the sign bit is
// set at position bits-1. A magnitude that does not fit the width is
// an argument error.
func parseNumber(tok string, bits uint) (uint32, error) {
	neg := strings.HasPrefix(tok, "-")
	body := strings.TrimPrefix(tok, "-")

	var (
		v   uint64
		err error
	)
	if strings.HasPrefix(body, "0x") {
		v, err = strconv.ParseUint(body[2:], 16, 32)
	} else {
		v, err = strconv.ParseUint(body, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", pkg.ErrBadArgument, tok)
	}

	if neg {
		sign := uint32(1) << (bits - 1)
		if v >= uint64(sign) {
			return 0, fmt.Errorf("%w: %q does not fit %d bits", pkg.ErrBadArgument, tok, bits)
		}
		return uint32(v) | sign, nil
	}

	if bits < 32 && v >= uint64(1)<<bits {
		return 0, fmt.Errorf("%w: %q does not fit %d bits", pkg.ErrBadArgument, tok, bits)
	}
	return uint32(v), nil
}

// signedValue re-derives the integer a sign-magnitude encoded value
// represents over the given bit width.
func signedValue(raw uint32, bits uint) int32 {
	sign := uint32(1) << (bits - 1)
	if raw&sign != 0 {
		return -int32(raw &^ sign)
	}
	return int32(raw)
}

// resolveSymbol looks tok up in tbl, naming item in the failure and
// attaching a fuzzy suggestion when one ranks.
func resolveSymbol(tbl *tables.Table, item, tok string) (uint16, error) {
	code, ok := tbl.Lookup(tok)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q%s", pkg.ErrUndefinedSymbol, item, tok, suggestion(tbl.Closest(tok)))
	}
	return code, nil
}

// composeFlags ORs the resolved value of each flag token into one
// bitmask. Any unrecognized flag fails the whole composition.
func composeFlags(tbl *tables.Table, item string, toks []string) (uint16, error) {
	var mask uint16
	for _, tok := range toks {
		bit, err := resolveSymbol(tbl, item+" flag", tok)
		if err != nil {
			return 0, err
		}
		mask |= bit
	}
	return mask, nil
}

func suggestion(closest string) string {
	if closest == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", closest)
}
