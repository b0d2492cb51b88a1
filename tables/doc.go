// Package tables provides the symbolic lookup tables consumed by the
// rdg compiler.
//
// A [Table] is an immutable mapping from lowercase symbolic names to
// small numeric codes. The enumeration-shaped tables (usage pages,
// per-page usages, collection types) are constructed from a short
// directive sequence interpreted once at package init:
//
//	tbl := MustBuild("led",
//	    StartAt(1),
//	    Assign("num_lock"),
//	    Assign("caps_lock"),
//	)
//
// [Assign] binds the next code, [Skip] advances past reserved codes,
// [StartAt] repositions the cursor, and [Alias] binds a second name to
// the most recently assigned code.
//
// A [Registry] groups the tables by domain (pages, per-page usages,
// collection types, input/output/feature flags). [Default] returns the
// built-in registry; [Registry.LoadExtensions] merges user-supplied
// YAML definitions without touching compiler logic.
//
// The built-in tables are intentionally partial: they cover the pages
// and usages the compiler's feature matrix supports, and the button
// page is registered with an empty usage table.
package tables
