package tables

// Generic Desktop page usages (HID Usage Tables, section 4).
// Deliberately partial: only the usages the feature matrix exercises.
var desktopUsages = MustBuild("generic_desktop",
	StartAt(0x01),
	Assign("pointer"),
	Assign("mouse"),
	Skip(1),
	Assign("joystick"),
	Assign("gamepad"),
	Assign("keyboard"),
	Assign("keypad"),
	Assign("multi_axis"),
	StartAt(0x30),
	Assign("x"),
	Assign("y"),
	Assign("z"),
	Assign("rx"),
	Assign("ry"),
	Assign("rz"),
	Assign("slider"),
	Assign("dial"),
	Assign("wheel"),
	Assign("hat_switch"),
)

// Keyboard/Keypad page usages (HID Usage Tables, section 10).
// Digit keys are named key_1..key_0 because bare digits parse as
// numeric literals before any table lookup.
var keyboardUsages = MustBuild("keyboard",
	StartAt(0x04),
	Assign("a"),
	Assign("b"),
	Assign("c"),
	Assign("d"),
	Assign("e"),
	Assign("f"),
	Assign("g"),
	Assign("h"),
	Assign("i"),
	Assign("j"),
	Assign("k"),
	Assign("l"),
	Assign("m"),
	Assign("n"),
	Assign("o"),
	Assign("p"),
	Assign("q"),
	Assign("r"),
	Assign("s"),
	Assign("t"),
	Assign("u"),
	Assign("v"),
	Assign("w"),
	Assign("x"),
	Assign("y"),
	Assign("z"),
	Assign("key_1"),
	Assign("key_2"),
	Assign("key_3"),
	Assign("key_4"),
	Assign("key_5"),
	Assign("key_6"),
	Assign("key_7"),
	Assign("key_8"),
	Assign("key_9"),
	Assign("key_0"),
	Assign("enter"),
	Alias("return"),
	Assign("escape"),
	Assign("backspace"),
	Assign("tab"),
	Assign("space"),
	Assign("minus"),
	Assign("equal"),
	Assign("left_brace"),
	Assign("right_brace"),
	Assign("backslash"),
	Assign("non_us_hash"),
	Assign("semicolon"),
	Assign("quote"),
	Assign("grave"),
	Assign("comma"),
	Assign("dot"),
	Assign("slash"),
	Assign("caps_lock"),
	Assign("f1"),
	Assign("f2"),
	Assign("f3"),
	Assign("f4"),
	Assign("f5"),
	Assign("f6"),
	Assign("f7"),
	Assign("f8"),
	Assign("f9"),
	Assign("f10"),
	Assign("f11"),
	Assign("f12"),
	Assign("print_screen"),
	Assign("scroll_lock"),
	Assign("pause"),
	Assign("insert"),
	Assign("home"),
	Assign("page_up"),
	Assign("delete"),
	Assign("end"),
	Assign("page_down"),
	Assign("right"),
	Assign("left"),
	Assign("down"),
	Assign("up"),
	Assign("num_lock"),
	StartAt(0xE0),
	Assign("left_control"),
	Assign("left_shift"),
	Assign("left_alt"),
	Assign("left_gui"),
	Assign("right_control"),
	Assign("right_shift"),
	Assign("right_alt"),
	Assign("right_gui"),
)

// LED page usages (HID Usage Tables, section 11). Partial.
var ledUsages = MustBuild("led",
	StartAt(0x01),
	Assign("num_lock"),
	Assign("caps_lock"),
	Assign("scroll_lock"),
	Assign("compose"),
	Assign("kana"),
	Assign("power"),
	Assign("shift"),
	Assign("do_not_disturb"),
	Assign("mute"),
)

// Button page usages. Buttons are addressed numerically in sources
// (usage_minimum(1), usage_maximum(3)); the table carries no names.
var buttonUsages = NewTable("button", nil)
