// Package pkg provides shared utilities for the rdg compiler.
//
// This package contains common functionality used across the compiler
// and its lookup tables, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for compilation failures
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with compiler-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogDebug(pkg.ComponentEncoder, "item encoded", "tag", 7)
//
// # Errors
//
// Compilation failures are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrUnterminatedCollection) {
//	    // A Collection(...) was never closed.
//	}
package pkg
