package compiler

import (
	"fmt"

	"github.com/juliandroske/rdg/pkg"
)

// Class is the type class of a descriptor item (HID 1.11, section 6.2.2.1).
type Class uint8

// Item type classes.
const (
	ClassMain   Class = 0x0 // Input/Output/Feature/Collection/End_Collection
	ClassGlobal Class = 0x1 // Persists until overwritten
	ClassLocal  Class = 0x2 // Applies until the next main item
)

// Item describes one short-item kind: its 4-bit tag and type class.
// The payload size code is derived from the payload at encode time.
type Item struct {
	Tag   uint8
	Class Class
}

// AppendTo appends the encoded item to dst: one header byte with the
// tag in the high nibble, the class in bits 3:2, and the size code in
// bits 1:0, followed by the payload verbatim.
//
// Only payload lengths 0, 1, 2, and 4 are representable by a short
// item; anything else (including the long-item form) is rejected with
// [pkg.ErrPayloadLength].
func (it Item) AppendTo(dst, payload []byte) ([]byte, error) {
	var size uint8
	switch len(payload) {
	case 0:
		size = 0
	case 1:
		size = 1
	case 2:
		size = 2
	case 4:
		size = 3
	default:
		return dst, fmt.Errorf("%w: %d bytes", pkg.ErrPayloadLength, len(payload))
	}

	header := it.Tag<<4 | uint8(it.Class)<<2 | size
	dst = append(dst, header)
	return append(dst, payload...), nil
}
