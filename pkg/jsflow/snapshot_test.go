package jsflow

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/ecmaflow/jsflow/pkg/token"
	"github.com/gkampitakis/go-snaps/snaps"
)

// traceSink renders every callback as one line of text, in call order,
// so a whole run can be snapshotted as a single multi-line string
// rather than asserted field-by-field.
type traceSink struct {
	src   string
	lines []string
}

func (t *traceSink) OnToken(tok token.Token) {
	text := tok.Text(t.src)
	if text == "" {
		text = tok.Kind.String()
	}
	t.lines = append(t.lines, fmt.Sprintf("TOKEN %-10s %q", tok.Kind, text))
}

func (t *traceSink) OnScopeOpen(kind token.ScopeKind) int {
	t.lines = append(t.lines, "OPEN  "+kind.String())
	return 0
}

func (t *traceSink) OnScopeClose(kind token.ScopeKind) {
	t.lines = append(t.lines, "CLOSE "+kind.String())
}

// traceProgram runs src to completion and returns its rendered event
// trace, failing the test on any lex/parse error.
func traceProgram(t *testing.T, src string) string {
	t.Helper()
	sink := &traceSink{src: src}
	session, err := Init([]byte(src), sink)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for {
		n, err := session.Run()
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if n == 0 {
			break
		}
	}
	return strings.Join(sink.lines, "\n")
}

// TestEventTraceSnapshots pins the emitted token/scope event sequence
// for a representative sample of programs, one per language feature
// area, the way the teacher pins interpreter output per fixture.
func TestEventTraceSnapshots(t *testing.T) {
	samples := []struct {
		name string
		src  string
	}{
		{"var_decl", "let x = 1 + 2;"},
		{"if_else", "if (x) { y(); } else { z(); }"},
		{"for_loop", "for (let i = 0; i < 10; i++) { sum += i; }"},
		{"function_decl", "function add(a, b) { return a + b; }"},
		{"arrow_fn", "const add = (a, b) => a + b;"},
		{"class_decl", "class Point { constructor(x) { this.x = x; } }"},
		{"try_catch", "try { risky(); } catch (e) { log(e); } finally { done(); }"},
		{"template_literal", "const s = `hello ${name}!`;"},
		{"regexp_literal", "const re = /a+b/g;"},
		{"destructuring", "const { a, b: [c, d] } = obj;"},
		{"switch_stmt", "switch (x) { case 1: y(); break; default: z(); }"},
		{"labeled_loop", "outer: for (;;) { break outer; }"},
	}

	for _, sample := range samples {
		t.Run(sample.name, func(t *testing.T) {
			trace := traceProgram(t, sample.src)
			snaps.MatchSnapshot(t, sample.name, trace)
		})
	}
}

// TestMain prunes obsolete snapshot files after the package's tests run,
// matching go-snaps's documented cleanup hook.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
