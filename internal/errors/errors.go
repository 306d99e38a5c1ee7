// Package errors formats the diagnostics the lexer and parser record:
// source position, a caret pointing at the offending byte, and the
// UNEXPECTED/STACK/INTERNAL/TODO code taxonomy from the data model. It is
// adapted from the teacher's CompilerError, trimmed of call-stack
// formatting — a single-pass token/scope-event stream has no call stack of
// its own to report.
package errors

import (
	"fmt"
	"strings"

	"github.com/ecmaflow/jsflow/pkg/token"
)

// Code classifies a diagnostic the way the design's error taxonomy does.
type Code int

const (
	// Unexpected marks input the grammar cannot accept at the current
	// point (an illegal byte, an unexpected token).
	Unexpected Code = -1
	// Stack marks a structural-stack overflow or underflow: source nested
	// deeper than the 256-entry budget, or a CLOSE with nothing open to
	// match.
	Stack Code = -2
	// Internal marks a violated invariant in the lexer/parser itself
	// (nested Save, lookahead window exceeded) rather than in the source.
	Internal Code = -3
	// Todo marks a construct the grammar recognizes but does not yet
	// implement.
	Todo Code = -4
)

func (c Code) String() string {
	switch c {
	case Unexpected:
		return "UNEXPECTED"
	case Stack:
		return "STACK"
	case Internal:
		return "INTERNAL"
	case Todo:
		return "TODO"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Diagnostic is a single lexing or parsing error with enough context to
// print a source-line-and-caret report.
type Diagnostic struct {
	Code    Code
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a Diagnostic at pos.
func New(code Code, pos token.Position, message, source, file string) *Diagnostic {
	return &Diagnostic{Code: code, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with a source line and caret. If color is
// true, ANSI escapes highlight the caret and message.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s: %s:%d:%d\n", d.Code, d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s: line %d:%d\n", d.Code, d.Pos.Line, d.Pos.Column)
	}

	if line := d.sourceLine(d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max(d.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of diagnostics, numbering them when there is
// more than one.
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d/%d]\n", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
