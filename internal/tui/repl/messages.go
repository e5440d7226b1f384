// ============================================================================
// boolex - Boolean logic toolkit
// ============================================================================
//
// Package:     repl
// Description: Message types for async operations in the REPL
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/msto63/boolex/foundation/logic"
	"github.com/msto63/boolex/internal/report"
)

// Message types for tea.Cmd async operations

// evaluatedMsg is sent when an input line has been processed
type evaluatedMsg struct {
	input   string
	results []logic.Result
	docs    []report.Document
	err     error
}

// recordedMsg is sent after processed expressions were written to history
type recordedMsg struct {
	count int
	err   error
}
