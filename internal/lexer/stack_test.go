package lexer

import (
	"testing"

	"github.com/ecmaflow/jsflow/pkg/token"
)

func TestEncodeDecodeCloseRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		kind OpenKind
		flag bool
	}{
		{BraceKind, false},
		{BraceKind, true},
		{BlockKind, false},
		{BlockKind, true},
		{ArrayKind, false},
		{ParenKind, false},
		{ParenKind, true},
		{TernaryKind, false},
	} {
		sp := encodeClose(stackEntry{kind: tt.kind, flag: tt.flag})
		gotKind, gotFlag := DecodeClose(sp)
		if gotKind != tt.kind || gotFlag != tt.flag {
			t.Errorf("encode/decode(%s,%v) round-trip = %s,%v", tt.kind, tt.flag, gotKind, gotFlag)
		}
	}
}

func TestStackOverflowIsHardError(t *testing.T) {
	lx := New("")
	var err error
	for i := 0; i < maxDepth; i++ {
		if err = lx.push(ParenKind, false); err != nil {
			break
		}
	}
	if err != ErrStackOverflow {
		t.Fatalf("err = %v, want ErrStackOverflow", err)
	}
}

func TestStackUnderflowNeverPopsBottomBlock(t *testing.T) {
	lx := New("")
	if _, err := lx.pop(); err != ErrStackUnderflow {
		t.Fatalf("err = %v, want ErrStackUnderflow", err)
	}
}

func TestReclassifyAsBlockChangesTopKind(t *testing.T) {
	lx := New("{")
	if lx.TopKind() != BraceKind {
		t.Fatalf("top kind = %s, want BRACE before reclassification", lx.TopKind())
	}
	lx.ReclassifyAsBlock(false)
	if lx.TopKind() != BlockKind {
		t.Fatalf("top kind = %s, want BLOCK after reclassification", lx.TopKind())
	}
	if lx.TopFlag() {
		t.Error("reclassified block must carry hasValue=false as passed")
	}
}

func TestMarkTopAsControlHeaderSetsFlagOnParenOnly(t *testing.T) {
	lx := New("(")
	lx.MarkTopAsControlHeader()
	if !lx.TopFlag() {
		t.Error("control-header paren must have flag set")
	}

	lx2 := New("[")
	lx2.MarkTopAsControlHeader() // top is ARRAY, not PAREN: must be a no-op
	if lx2.TopFlag() {
		t.Error("MarkTopAsControlHeader must not affect a non-PAREN top")
	}
}

func TestCloseTokenCarriesEncodedContext(t *testing.T) {
	src := "if (x) {}"
	lx := New(src)
	lx.Next() // 'if' -> '(' (pushes ParenKind)
	lx.MarkTopAsControlHeader()
	lx.Next() // '(' -> 'x'
	lx.Next() // 'x' -> ')'
	closeTok := lx.Current()
	if closeTok.Kind != token.CLOSE {
		t.Fatalf("kind = %s, want CLOSE", closeTok.Kind)
	}
	kind, flag := DecodeClose(closeTok.Special)
	if kind != ParenKind || !flag {
		t.Errorf("decoded kind=%s flag=%v, want ParenKind,true", kind, flag)
	}
}
