package tables

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Table is an immutable mapping from lowercase symbolic names to
// numeric codes.
type Table struct {
	name    string
	entries map[string]uint16
}

// NewTable creates a table from an explicit name-to-code mapping.
// It is used for tables that are not simple enumerations, such as the
// input/output/feature flag bits. The entries map is copied.
func NewTable(name string, entries map[string]uint16) *Table {
	copied := make(map[string]uint16, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Table{name: name, entries: copied}
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the code bound to symbol. The symbol must already be
// case-folded; lookup is verbatim.
func (t *Table) Lookup(symbol string) (uint16, bool) {
	code, ok := t.entries[symbol]
	return code, ok
}

// Names returns all bound names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for k := range t.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Closest returns the best fuzzy match for symbol among the bound
// names, or "" when nothing ranks.
func (t *Table) Closest(symbol string) string {
	ranks := fuzzy.RankFindFold(symbol, t.Names())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// extend returns a new table with the given entries merged in.
// Incoming entries overwrite existing ones. The receiver is unchanged.
func (t *Table) extend(entries map[string]uint16) *Table {
	merged := make(map[string]uint16, len(t.entries)+len(entries))
	for k, v := range t.entries {
		merged[k] = v
	}
	for k, v := range entries {
		merged[k] = v
	}
	return &Table{name: t.name, entries: merged}
}

// Registry groups the lookup tables the compiler queries, organized
// per domain.
type Registry struct {
	pages       *Table
	usages      map[string]*Table // keyed by usage page name
	collections *Table
	flags       *Table
}

// Default returns a registry holding the built-in tables.
//
// The built-in tables are shared and immutable; LoadExtensions
// replaces table pointers with extended copies, so independent
// registries never observe each other's extensions.
func Default() *Registry {
	usages := make(map[string]*Table, len(builtinUsages))
	for page, tbl := range builtinUsages {
		usages[page] = tbl
	}
	return &Registry{
		pages:       builtinPages,
		usages:      usages,
		collections: builtinCollections,
		flags:       builtinFlags,
	}
}

// Pages returns the usage page table.
func (r *Registry) Pages() *Table { return r.pages }

// Usages returns the usage table for the named page, if one exists.
func (r *Registry) Usages(page string) (*Table, bool) {
	t, ok := r.usages[page]
	return t, ok
}

// Collections returns the collection type table.
func (r *Registry) Collections() *Table { return r.collections }

// Flags returns the input/output/feature flag table.
func (r *Registry) Flags() *Table { return r.flags }
