package tables

// Usage pages (HID Usage Tables, section 3).
// keypad shares the keyboard page code 0x07.
var builtinPages = MustBuild("usage_page",
	StartAt(0x01),
	Assign("generic_desktop"),
	Assign("simulation"),
	Assign("vr"),
	Assign("sport"),
	Assign("game"),
	Assign("generic_device"),
	Assign("keyboard"),
	Alias("keypad"),
	Assign("led"),
	Assign("button"),
	Assign("ordinal"),
	Assign("telephony"),
	Assign("consumer"),
)

// Collection types (HID 1.11, section 6.2.2.6).
var builtinCollections = MustBuild("collection",
	Assign("physical"),
	Assign("application"),
	Assign("logical"),
	Assign("report"),
	Assign("named_array"),
	Assign("usage_switch"),
	Assign("usage_modifier"),
)

// Input/Output/Feature flag bits (HID 1.11, section 6.2.2.5).
// The zero-valued names are the defaults; OR-ing them in is a no-op,
// they exist so sources can spell the full triple, e.g.
// Input(Data, Variable, Absolute).
var builtinFlags = NewTable("flags", map[string]uint16{
	"data":         0x00,
	"constant":     0x01,
	"array":        0x00,
	"variable":     0x02,
	"absolute":     0x00,
	"relative":     0x04,
	"no_wrap":      0x00,
	"wrap":         0x08,
	"linear":       0x00,
	"non_linear":   0x10,
	"preferred":    0x00,
	"no_preferred": 0x20,
	"no_null":      0x00,
	"null_state":   0x40,
	"non_volatile": 0x00,
	"volatile":     0x80,
})

// builtinUsages maps a usage page name to its usage table. Pages
// without an entry here have no symbolic usages; referencing them by
// name is reported by the compiler as a missing usage table.
// The keypad page is resolved through the keyboard table by the
// compiler itself.
var builtinUsages = map[string]*Table{
	"generic_desktop": desktopUsages,
	"keyboard":        keyboardUsages,
	"led":             ledUsages,
	"button":          buttonUsages,
}
