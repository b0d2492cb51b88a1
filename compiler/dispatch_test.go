package compiler

import (
	"bytes"
	"errors"
	"testing"

	"github.com/juliandroske/rdg/pkg"
	"github.com/juliandroske/rdg/tables"
)

func TestHandleUsagePage(t *testing.T) {
	reg := tables.Default()
	ctx := newContext()

	payload, up, err := handleUsagePage(reg, ctx, []string{"generic_desktop"})
	if err != nil {
		t.Fatalf("handleUsagePage() error = %v", err)
	}
	if !bytes.Equal(payload, []byte{0x01}) {
		t.Errorf("payload = % 02X, want 01", payload)
	}
	// The symbolic name is recorded, not the numeric code.
	if up.action != ctxSetGlobal || up.key != "usage_page" || up.value != "generic_desktop" {
		t.Errorf("update = %+v, want set usage_page=generic_desktop", up)
	}
}

func TestHandleUsagePageErrors(t *testing.T) {
	reg := tables.Default()
	ctx := newContext()

	if _, _, err := handleUsagePage(reg, ctx, []string{"no_such_page"}); !errors.Is(err, pkg.ErrUndefinedSymbol) {
		t.Errorf("unknown page error = %v, want %v", err, pkg.ErrUndefinedSymbol)
	}
	if _, _, err := handleUsagePage(reg, ctx, nil); !errors.Is(err, pkg.ErrBadArgument) {
		t.Errorf("no args error = %v, want %v", err, pkg.ErrBadArgument)
	}
}

func TestHandleUsage(t *testing.T) {
	reg := tables.Default()
	run := handleUsage("usage")

	tests := []struct {
		name    string
		page    string
		arg     string
		want    []byte
		wantErr error
	}{
		{name: "symbolic on generic_desktop", page: "generic_desktop", arg: "mouse", want: []byte{0x02}},
		{name: "symbolic on keyboard", page: "keyboard", arg: "left_control", want: []byte{0xE0}},
		{name: "keypad aliases keyboard table", page: "keypad", arg: "left_control", want: []byte{0xE0}},
		{name: "raw decimal", page: "generic_desktop", arg: "48", want: []byte{0x30}},
		{name: "raw hex", page: "button", arg: "0x03", want: []byte{0x03}},
		{name: "no usage_page", page: "", arg: "mouse", wantErr: pkg.ErrMissingUsagePage},
		{name: "page without table", page: "simulation", arg: "throttle", wantErr: pkg.ErrNoUsageTable},
		{name: "undefined usage", page: "generic_desktop", arg: "trackball", wantErr: pkg.ErrUndefinedSymbol},
		{name: "empty button table misses", page: "button", arg: "left", wantErr: pkg.ErrUndefinedSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext()
			if tt.page != "" {
				ctx.setGlobal("usage_page", tt.page)
			}
			payload, up, err := run(reg, ctx, []string{tt.arg})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if !bytes.Equal(payload, tt.want) {
				t.Errorf("payload = % 02X, want % 02X", payload, tt.want)
			}
			if up.action != ctxNone {
				t.Errorf("update action = %v, want none", up.action)
			}
		})
	}
}

func TestHandleNumeric(t *testing.T) {
	reg := tables.Default()
	ctx := newContext()
	run := handleNumeric("logical_minimum")

	payload, _, err := run(reg, ctx, []string{"-1"})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !bytes.Equal(payload, []byte{0x81}) {
		t.Errorf("payload = % 02X, want 81", payload)
	}

	if _, _, err := run(reg, ctx, []string{"mouse"}); !errors.Is(err, pkg.ErrBadArgument) {
		t.Errorf("non-numeric error = %v, want %v", err, pkg.ErrBadArgument)
	}
	if _, _, err := run(reg, ctx, []string{"1", "2"}); !errors.Is(err, pkg.ErrBadArgument) {
		t.Errorf("arity error = %v, want %v", err, pkg.ErrBadArgument)
	}
}

func TestHandleFlags(t *testing.T) {
	reg := tables.Default()
	ctx := newContext()
	run := handleFlags("input")

	payload, _, err := run(reg, ctx, []string{"constant", "variable", "relative"})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !bytes.Equal(payload, []byte{0x07}) {
		t.Errorf("payload = % 02X, want 07", payload)
	}

	if _, _, err := run(reg, ctx, nil); !errors.Is(err, pkg.ErrBadArgument) {
		t.Errorf("no flags error = %v, want %v", err, pkg.ErrBadArgument)
	}
	if _, _, err := run(reg, ctx, []string{"data", "sticky"}); !errors.Is(err, pkg.ErrUndefinedSymbol) {
		t.Errorf("unknown flag error = %v, want %v", err, pkg.ErrUndefinedSymbol)
	}
}

func TestHandleFlagsMaskAboveByteRange(t *testing.T) {
	reg := tables.Default()
	const ext = "flags:\n  buffered_bytes: 0x100\n"
	if err := reg.LoadExtensions(bytes.NewReader([]byte(ext))); err != nil {
		t.Fatalf("LoadExtensions() error = %v", err)
	}
	run := handleFlags("input")

	payload, _, err := run(reg, newContext(), []string{"buffered_bytes"})
	if !errors.Is(err, pkg.ErrPayloadRange) {
		t.Fatalf("error = %v, want %v", err, pkg.ErrPayloadRange)
	}
	if payload != nil {
		t.Errorf("payload = % 02X, want nil", payload)
	}
}

func TestPayloadByte(t *testing.T) {
	got, err := payloadByte("usage_page", 0xFF)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !bytes.Equal(got, []byte{0xFF}) {
		t.Errorf("payload = % 02X, want FF", got)
	}

	if _, err := payloadByte("usage_page", 0x100); !errors.Is(err, pkg.ErrPayloadRange) {
		t.Errorf("error = %v, want %v", err, pkg.ErrPayloadRange)
	}
}

func TestHandleCollection(t *testing.T) {
	reg := tables.Default()
	ctx := newContext()

	payload, up, err := handleCollection(reg, ctx, []string{"application"})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !bytes.Equal(payload, []byte{0x01}) {
		t.Errorf("payload = % 02X, want 01", payload)
	}
	if up.action != ctxPushScope || up.key != "collection" || up.value != "application" {
		t.Errorf("update = %+v, want push with collection=application", up)
	}

	if _, _, err := handleCollection(reg, ctx, []string{"blob"}); !errors.Is(err, pkg.ErrUndefinedSymbol) {
		t.Errorf("unknown type error = %v, want %v", err, pkg.ErrUndefinedSymbol)
	}
}

func TestHandleEndCollection(t *testing.T) {
	reg := tables.Default()
	ctx := newContext()

	payload, up, err := handleEndCollection(reg, ctx, nil)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if len(payload) != 0 {
		t.Errorf("payload = % 02X, want none", payload)
	}
	if up.action != ctxPopScope {
		t.Errorf("update action = %v, want pop", up.action)
	}

	if _, _, err := handleEndCollection(reg, ctx, []string{"application"}); !errors.Is(err, pkg.ErrBadArgument) {
		t.Errorf("arity error = %v, want %v", err, pkg.ErrBadArgument)
	}
}

func TestClosestFunction(t *testing.T) {
	if got := closestFunction("usge_page"); got != "usage_page" {
		t.Errorf("closestFunction(usge_page) = %q, want usage_page", got)
	}
}

func TestApplyUpdate(t *testing.T) {
	ctx := newContext()

	if err := applyUpdate(ctx, update{action: ctxSetGlobal, key: "usage_page", value: "led"}); err != nil {
		t.Fatalf("set global error = %v", err)
	}
	if v, _ := ctx.global("usage_page"); v != "led" {
		t.Errorf("global = %q, want led", v)
	}

	if err := applyUpdate(ctx, update{action: ctxClearGlobal, key: "usage_page"}); err != nil {
		t.Fatalf("clear global error = %v", err)
	}
	if _, ok := ctx.global("usage_page"); ok {
		t.Error("global survived clear")
	}

	if err := applyUpdate(ctx, update{action: ctxPushScope, key: "collection", value: "report"}); err != nil {
		t.Fatalf("push error = %v", err)
	}
	if v, _ := ctx.local("collection"); v != "report" {
		t.Errorf("local = %q, want report", v)
	}

	if err := applyUpdate(ctx, update{action: ctxPopScope}); err != nil {
		t.Fatalf("pop error = %v", err)
	}
	if err := applyUpdate(ctx, update{action: ctxPopScope}); !errors.Is(err, pkg.ErrUnbalancedCollection) {
		t.Errorf("underflow error = %v, want %v", err, pkg.ErrUnbalancedCollection)
	}
}
