// Package log provides structured logging for the boolex foundation.
//
// Package: log
// Title: Foundation Structured Logging
// Description: Leveled, structured logging with contextual fields, several
//              output formats and integration with the foundation error type.
//              The parser and the engine facade log through this package; the
//              command line tool configures it from its config file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Removed async buffering and request/user context, fields are
//                      written in sorted order
//
// Usage:
//
//	import mdwlog "github.com/msto63/boolex/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("component", "logic-engine")
//
//	logger.Debug("Parsed input", mdwlog.Fields{"expressions": 3})
//
//	timer := logger.StartTimer("truth table generation")
//	// ... enumerate rows
//	timer.Stop()
package log
