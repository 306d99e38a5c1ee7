package lexer

import (
	"testing"

	"github.com/ecmaflow/jsflow/pkg/token"
)

func TestSaveRestoreRewindsPosition(t *testing.T) {
	src := "a b c"
	lx := New(src)
	if err := lx.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	lx.Next() // b
	lx.Next() // c
	lx.Restore()

	tok := lx.Current()
	if tok.Text(src) != "a" {
		t.Fatalf("after Restore, text = %q, want %q", tok.Text(src), "a")
	}
	if lx.InSave() {
		t.Error("InSave must be false after Restore")
	}
}

func TestSaveCommitKeepsAdvancedPosition(t *testing.T) {
	src := "a b c"
	lx := New(src)
	if err := lx.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	lx.Next() // b
	lx.Commit()

	tok := lx.Current()
	if tok.Text(src) != "b" {
		t.Fatalf("after Commit, text = %q, want %q", tok.Text(src), "b")
	}
	if lx.InSave() {
		t.Error("InSave must be false after Commit")
	}
}

func TestNestedSaveIsRejected(t *testing.T) {
	lx := New("a b")
	if err := lx.Save(); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := lx.Save(); err != ErrNestedSave {
		t.Fatalf("nested Save err = %v, want ErrNestedSave", err)
	}
	lx.Restore()
}

func TestLookaheadWindowIsBounded(t *testing.T) {
	src := ""
	for i := 0; i < maxLookahead+4; i++ {
		src += "x "
	}
	lx := New(src)
	if err := lx.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var last token.Token
	for i := 0; i < maxLookahead+2; i++ {
		last = lx.Next()
	}
	if last.Kind != token.EOF {
		t.Fatalf("after exceeding lookahead window, kind = %s, want EOF", last.Kind)
	}
	if len(lx.Errors()) == 0 {
		t.Fatal("expected ErrLookaheadOverflow to be recorded")
	}
	lx.Restore()
}

func TestSaveRestorePreservesStructuralStackDepth(t *testing.T) {
	src := "( ( a"
	lx := New(src)
	lx.Next() // first '('
	if err := lx.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	depthBefore := lx.Depth()
	lx.Next() // second '('
	lx.Next() // a
	lx.Restore()
	if lx.Depth() != depthBefore {
		t.Errorf("depth after Restore = %d, want %d", lx.Depth(), depthBefore)
	}
}
