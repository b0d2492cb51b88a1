package tables

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/juliandroske/rdg/pkg"
)

// extensionDoc is the YAML shape accepted by LoadExtensions.
//
//	pages:
//	  vendor: 0xFF
//	usages:
//	  generic_desktop:
//	    system_control: 0x80
//	  vendor:
//	    knob: 0x01
//	collections:
//	  vendor_defined: 0x80
//	flags:
//	  bitfield: 0x00
type extensionDoc struct {
	Pages       map[string]uint16            `yaml:"pages"`
	Usages      map[string]map[string]uint16 `yaml:"usages"`
	Collections map[string]uint16            `yaml:"collections"`
	Flags       map[string]uint16            `yaml:"flags"`
}

// LoadExtensions merges YAML-defined table entries into the registry.
// New entries may extend existing tables or introduce usage tables for
// pages that had none. Names are case-folded; values overwrite
// existing bindings. The built-in tables are never modified; the
// registry swaps in extended copies.
func (r *Registry) LoadExtensions(rd io.Reader) error {
	data, err := io.ReadAll(rd)
	if err != nil {
		return fmt.Errorf("reading table extensions: %w", err)
	}

	var doc extensionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing table extensions: %w", err)
	}

	if len(doc.Pages) > 0 {
		r.pages = r.pages.extend(foldKeys(doc.Pages))
	}
	if len(doc.Collections) > 0 {
		r.collections = r.collections.extend(foldKeys(doc.Collections))
	}
	if len(doc.Flags) > 0 {
		r.flags = r.flags.extend(foldKeys(doc.Flags))
	}

	for page, entries := range doc.Usages {
		page = strings.ToLower(page)
		if _, known := r.pages.Lookup(page); !known {
			return fmt.Errorf("%w: usage table extension for unknown page %q", pkg.ErrBadDirective, page)
		}
		if base, ok := r.usages[page]; ok {
			r.usages[page] = base.extend(foldKeys(entries))
		} else {
			r.usages[page] = NewTable(page, foldKeys(entries))
		}
	}

	pkg.LogDebug(pkg.ComponentTables, "table extensions loaded",
		"pages", len(doc.Pages),
		"usage_tables", len(doc.Usages),
		"collections", len(doc.Collections),
		"flags", len(doc.Flags))

	return nil
}

func foldKeys(m map[string]uint16) map[string]uint16 {
	folded := make(map[string]uint16, len(m))
	for k, v := range m {
		folded[strings.ToLower(k)] = v
	}
	return folded
}
