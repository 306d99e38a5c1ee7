// Package keyword implements the keyword hash table described in the
// design: a lookup from an identifier's byte sequence to a tagged value
// combining the keyword's identity and a bit-flag role mask. The role mask
// values are an ABI shared with internal/parser and pkg/token — they must
// not be renumbered without updating both sides.
package keyword

// ID identifies one reserved or contextual ECMAScript word. Zero means
// "not a keyword".
type ID uint16

const (
	None ID = iota
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Export
	Extends
	Finally
	For
	Function
	If
	Import
	In
	Instanceof
	New
	Return
	Super
	Switch
	This
	Throw
	Try
	Typeof
	Var
	Void
	While
	With
	Null
	True
	False

	// Contextual / strict-mode-only words. These are never unconditionally
	// reserved; Role carries the conditions under which they act as
	// keywords rather than identifiers.
	Let
	Static
	Yield
	Await
	Async
	Of
	As
	From
	Get
	Set
	Implements
	Interface
	Package
	Private
	Protected
	Public
)

// Role is a bit-flag mask describing how a keyword participates in
// grammar. Several bits may be set on the same keyword (e.g. `in` is both
// REL_OP and, in a for-header, part of CONTROL's grammar).
type Role uint32

const (
	// Keyword is always reserved (if, else, for, while, return, function,
	// class, ...).
	Keyword Role = 1 << iota
	// Strict marks a word reserved only in strict mode (let, implements, ...).
	Strict
	// RelOp marks a word that participates as a relational operator
	// (in, instanceof, of).
	RelOp
	// UnaryOp marks a prefix operator keyword (new, delete, void, typeof,
	// await, yield).
	UnaryOp
	// Masquerade marks a word that may appear as a plain identifier
	// depending on context (async, await, yield, let, of, as, from, get,
	// set, static).
	Masquerade
	// Decl marks a word that starts a variable declaration (var, let, const).
	Decl
	// Control marks a word that begins a statement with a header (if, for,
	// while, switch, try, catch, finally, do, with).
	Control
	// ControlParen is the subset of Control that requires `(...)` after
	// the keyword.
	ControlParen
	// ValueLiteral marks a reserved word that is itself a complete
	// primary expression (true, false, null, this, super) rather than a
	// statement or operator keyword. The slash handler in internal/lexer
	// uses this to tell "x = true" (division context after `true`) apart
	// from "if (x)" (regexp context after a header keyword).
	ValueLiteral
)

// Entry is the tagged value the trie resolves an identifier to.
type Entry struct {
	ID   ID
	Role Role
}

var table = map[string]Entry{
	"break":      {Break, Keyword},
	"case":       {Case, Keyword},
	"catch":      {Catch, Keyword | Control},
	"class":      {Class, Keyword},
	"const":      {Const, Keyword | Decl},
	"continue":   {Continue, Keyword},
	"debugger":   {Debugger, Keyword},
	"default":    {Default, Keyword},
	"delete":     {Delete, Keyword | UnaryOp},
	"do":         {Do, Keyword | Control},
	"else":       {Else, Keyword},
	"export":     {Export, Keyword},
	"extends":    {Extends, Keyword},
	"finally":    {Finally, Keyword | Control},
	"for":        {For, Keyword | Control | ControlParen},
	"function":   {Function, Keyword},
	"if":         {If, Keyword | Control | ControlParen},
	"import":     {Import, Keyword},
	"in":         {In, Keyword | RelOp},
	"instanceof": {Instanceof, Keyword | RelOp},
	"new":        {New, Keyword | UnaryOp},
	"return":     {Return, Keyword},
	"super":      {Super, Keyword | ValueLiteral},
	"switch":     {Switch, Keyword | Control | ControlParen},
	"this":       {This, Keyword | ValueLiteral},
	"throw":      {Throw, Keyword},
	"try":        {Try, Keyword | Control},
	"typeof":     {Typeof, Keyword | UnaryOp},
	"var":        {Var, Keyword | Decl},
	"void":       {Void, Keyword | UnaryOp},
	"while":      {While, Keyword | Control | ControlParen},
	"with":       {With, Keyword | Control | ControlParen},
	"null":       {Null, Keyword | ValueLiteral},
	"true":       {True, Keyword | ValueLiteral},
	"false":      {False, Keyword | ValueLiteral},

	"let":        {Let, Strict | Decl | Masquerade},
	"static":     {Static, Strict | Masquerade},
	"yield":      {Yield, Strict | UnaryOp | Masquerade},
	"await":      {Await, UnaryOp | Masquerade},
	"async":      {Async, Masquerade},
	"of":         {Of, RelOp | Masquerade},
	"as":         {As, Masquerade},
	"from":       {From, Masquerade},
	"get":        {Get, Masquerade},
	"set":        {Set, Masquerade},
	"implements": {Implements, Strict},
	"interface":  {Interface, Strict},
	"package":    {Package, Strict},
	"private":    {Private, Strict},
	"protected":  {Protected, Strict},
	"public":     {Public, Strict},
}

// Lookup resolves an identifier-shaped byte sequence to its keyword entry.
// The byte-by-byte walk described in the design (a trie over ~48 words) is
// expressed here as a single map lookup; the table above is the trie's
// flattened leaf set and the ABI (Entry) is what callers depend on, not
// the walk strategy.
func Lookup(word string) (Entry, bool) {
	e, ok := table[word]
	return e, ok
}

// IsMasquerade reports whether a word with role mask r can appear as a
// plain identifier depending on context.
func IsMasquerade(r Role) bool { return r&Masquerade != 0 }
