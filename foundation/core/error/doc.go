// Package error provides structured error handling for the boolex foundation.
//
// Package: error
// Title: Foundation Error Handling
// Description: Structured errors with codes, severity, details and a cause
//              chain. Parser failures, configuration problems and storage
//              errors are all reported through this type so that the CLI can
//              log them consistently and map them to exit behaviour.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Trimmed to the expression tooling codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/boolex/foundation/core/error"
//
//	err := mdwerror.New("unexpected token").
//		WithCode(mdwerror.CodeSyntax).
//		WithDetail("line", 3)
//
//	wrapped := mdwerror.Wrap(err, "failed to process expressions").
//		WithOperation("engine.Process")
//
//	if mdwerror.HasCode(wrapped, mdwerror.CodeSyntax) {
//		// report the position to the user
//	}
package error
