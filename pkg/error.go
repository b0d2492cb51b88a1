package pkg

import "errors"

// Compiler errors.
var (
	// ErrSyntax indicates a line that is not blank, not a comment, and
	// does not match the <name>(<args>) call grammar.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownFunction indicates a call whose name has no registered handler.
	ErrUnknownFunction = errors.New("unexpected function name")

	// ErrBadArgument indicates a wrong argument count or a malformed
	// numeric argument.
	ErrBadArgument = errors.New("bad argument")

	// ErrUndefinedSymbol indicates a symbolic argument absent from the
	// relevant lookup table.
	ErrUndefinedSymbol = errors.New("undefined symbol")

	// ErrMissingUsagePage indicates a usage item used before any usage_page.
	ErrMissingUsagePage = errors.New("missing usage_page")

	// ErrNoUsageTable indicates an active usage page that has no usage table.
	ErrNoUsageTable = errors.New("no usage table for page")

	// ErrUnterminatedCollection indicates an open collection at end of input.
	ErrUnterminatedCollection = errors.New("unterminated collection")

	// ErrUnbalancedCollection indicates an end_collection with no open collection.
	ErrUnbalancedCollection = errors.New("end_collection without open collection")

	// ErrPayloadLength indicates a payload length the short-item header
	// cannot represent (3 bytes, or more than 4). Long items are not
	// supported.
	ErrPayloadLength = errors.New("payload length not encodable as short item")

	// ErrPayloadRange indicates a resolved payload value outside 0-255.
	ErrPayloadRange = errors.New("payload value out of byte range")

	// ErrBadDirective indicates an invalid table-builder directive sequence.
	ErrBadDirective = errors.New("bad table directive")
)
