package reader

import "github.com/ninjudd/clojure/lisp"

// MacroFunc consumes the syntax introduced by its trigger character and
// returns the value produced.  A MacroFunc that fully consumes input without
// producing a value (comments) returns a nil value and a nil error.
type MacroFunc func(r *Reader, ch rune) (*lisp.LVal, error)

const macroTableSize = 128

// MacroTable maps trigger characters to reader routines.  Characters outside
// the table's range never dispatch.  A table must be fully populated before
// any read uses it and must not be modified afterwards; a populated table may
// be shared by concurrent readers on independent streams.
type MacroTable struct {
	fns [macroTableSize]MacroFunc
}

// NewMacroTable returns an empty MacroTable.
func NewMacroTable() *MacroTable {
	return &MacroTable{}
}

// Set binds fn as the reader routine triggered by ch.  Set panics if ch is
// outside the table's range.
func (t *MacroTable) Set(ch rune, fn MacroFunc) {
	if ch < 0 || ch >= macroTableSize {
		panic("reader: macro character out of range")
	}
	t.fns[ch] = fn
}

// Get returns the reader routine bound to ch, or nil if ch is not a macro
// character.
func (t *MacroTable) Get(ch rune) MacroFunc {
	if ch < 0 || ch >= macroTableSize {
		return nil
	}
	return t.fns[ch]
}

// IsMacro returns true if ch has a reader routine bound to it.
func (t *MacroTable) IsMacro(ch rune) bool {
	return t.Get(ch) != nil
}

// DefaultMacroTable holds the standard syntax: strings, comments, character
// literals, lists, and unmatched delimiter detection.
var DefaultMacroTable = defaultMacroTable()

func defaultMacroTable() *MacroTable {
	t := NewMacroTable()
	t.Set('"', readString)
	t.Set(';', readComment)
	t.Set('\\', readCharacter)
	t.Set('(', readList)
	t.Set(')', readUnmatchedDelimiter)
	return t
}
