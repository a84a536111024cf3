package reader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjudd/clojure/host"
	"github.com/ninjudd/clojure/lisp"
	"github.com/ninjudd/clojure/reader"
	"github.com/ninjudd/clojure/symbol"
)

func read(t *testing.T, src string, cfg ...reader.Config) (*lisp.LVal, error) {
	t.Helper()
	r := reader.New(reader.NewScanner("test", strings.NewReader(src)), cfg...)
	return r.Read(true, nil, false)
}

func mustRead(t *testing.T, src string, cfg ...reader.Config) *lisp.LVal {
	t.Helper()
	v, err := read(t, src, cfg...)
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		src    string
		typ    lisp.LType
		expect string
	}{
		{"null", lisp.LNil, "null"},
		{"foo", lisp.LSymbol, "foo"},
		{":keyword", lisp.LSymbol, ":keyword"},
		{"a/b", lisp.LSymbol, "a/b"},
		{"+", lisp.LSymbol, "+"},
		// The symbol matcher wins before the numeric matchers ever run, so a
		// sign-prefixed number is a symbol.
		{"-42", lisp.LSymbol, "-42"},
		{"+7", lisp.LSymbol, "+7"},
		{"ns:name", lisp.LVar, "ns:name"},
		{"42", lisp.LInt, "42"},
		{"12.", lisp.LInt, "12"},
		{"123456789012345678901234567890", lisp.LInt, "123456789012345678901234567890"},
		{"1.5", lisp.LFloat, "1.5"},
		{"1.5e3", lisp.LFloat, "1500"},
		{"1E2", lisp.LFloat, "100"},
		{"1/2", lisp.LRatio, "1/2"},
		{"10/5", lisp.LInt, "2"},
		{`"hello"`, lisp.LString, `"hello"`},
		{`""`, lisp.LString, `""`},
		{`\a`, lisp.LChar, `\a`},
		{`\newline`, lisp.LChar, `\newline`},
		{`\space`, lisp.LChar, `\space`},
		{`\tab`, lisp.LChar, `\tab`},
	}
	for _, test := range tests {
		v := mustRead(t, test.src)
		assert.Equal(t, test.typ, v.Type, "source: %s", test.src)
		assert.Equal(t, test.expect, v.String(), "source: %s", test.src)
	}
}

func TestReadVar(t *testing.T) {
	v := mustRead(t, "user:x")
	assert.Equal(t, lisp.LVar, v.Type)
	assert.Equal(t, "user", v.NS)
	assert.Equal(t, "x", v.Str)
	id, ok := symbol.DefaultGlobalTable.Peek("user:x")
	require.True(t, ok)
	assert.Equal(t, id, v.Sym)
}

func TestReadSymbolInterning(t *testing.T) {
	a := mustRead(t, "interned-once")
	b := mustRead(t, "interned-once")
	assert.Equal(t, a.Sym, b.Sym)
	assert.Equal(t, symbol.Intern("interned-once"), a.Sym)
}

func TestReadList(t *testing.T) {
	v := mustRead(t, "(1 2 3)")
	require.Equal(t, lisp.LSExpr, v.Type)
	require.Len(t, v.Cells, 3)
	for i, expect := range []string{"1", "2", "3"} {
		assert.Equal(t, lisp.LInt, v.Cells[i].Type)
		assert.Equal(t, expect, v.Cells[i].String())
	}
}

func TestReadListNested(t *testing.T) {
	v := mustRead(t, "(a (b \"c\") () 1/2)")
	assert.Equal(t, `(a (b "c") () 1/2)`, v.String())

	// An empty list is a list, not nil.
	v = mustRead(t, "()")
	assert.Equal(t, lisp.LSExpr, v.Type)
	assert.Len(t, v.Cells, 0)
}

func TestReadDelimited(t *testing.T) {
	r := reader.New(reader.NewScanner("test", strings.NewReader("a b c)")))
	forms, err := r.ReadDelimited(')')
	require.NoError(t, err)
	require.Len(t, forms, 3)
	for i, expect := range []string{"a", "b", "c"} {
		assert.Equal(t, lisp.LSymbol, forms[i].Type)
		assert.Equal(t, expect, forms[i].Str)
	}
}

func TestReadStringEscapes(t *testing.T) {
	v := mustRead(t, `"a\tb"`)
	require.Equal(t, lisp.LString, v.Type)
	assert.Equal(t, "a\tb", v.Str)

	v = mustRead(t, `"\r\n\\\""`)
	assert.Equal(t, "\r\n\\\"", v.Str)

	_, err := read(t, `"a\qb"`)
	assert.True(t, reader.IsCondition(err, reader.UnsupportedEscape), "got %v", err)
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "a\tb", "line\nbreak\r", `quote " and \ slash`} {
		v := mustRead(t, `"`+lisp.EscapeString(s)+`"`)
		require.Equal(t, lisp.LString, v.Type)
		assert.Equal(t, s, v.Str)
	}
}

func TestReadComment(t *testing.T) {
	v := mustRead(t, ";comment\n42")
	assert.Equal(t, lisp.LInt, v.Type)
	assert.Equal(t, "42", v.String())

	v = mustRead(t, "(1 ;ignore me\n 2)")
	assert.Equal(t, "(1 2)", v.String())

	_, err := read(t, ";only a comment")
	assert.True(t, reader.IsCondition(err, reader.UnexpectedEOF), "got %v", err)
}

func TestReadCharacterErrors(t *testing.T) {
	_, err := read(t, `\`)
	assert.True(t, reader.IsCondition(err, reader.UnexpectedEOF), "got %v", err)

	_, err = read(t, `\foo`)
	assert.True(t, reader.IsCondition(err, reader.UnsupportedCharName), "got %v", err)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		src       string
		condition string
	}{
		{`"abc`, reader.UnexpectedEOF},
		{")", reader.UnmatchedDelimiter},
		{"(1 2", reader.UnexpectedEOF},
		{"1abc", reader.InvalidSyntax},
		{"1/0", reader.DivisionByZero},
		{"", reader.UnexpectedEOF},
		{"   \t\n", reader.UnexpectedEOF},
	}
	for _, test := range tests {
		_, err := read(t, test.src)
		assert.True(t, reader.IsCondition(err, test.condition),
			"source %q: got %v", test.src, err)
	}
}

func TestReadEOFValue(t *testing.T) {
	eof := lisp.Symbol("eof")
	r := reader.New(reader.NewScanner("test", strings.NewReader("  ")))
	v, err := r.Read(false, eof, false)
	require.NoError(t, err)
	assert.Equal(t, eof, v)
}

func TestWhitespacePrefix(t *testing.T) {
	for _, src := range []string{"42", "(a b)", `"s"`, `\c`} {
		expect := mustRead(t, src).String()
		got := mustRead(t, " \t\r\n  "+src).String()
		assert.Equal(t, expect, got, "source: %s", src)
	}
}

func TestReadHostForms(t *testing.T) {
	reg := host.NewRegistry()
	reg.Register("java.lang.Math")
	cfg := reader.WithResolver(reg)

	v := mustRead(t, ".toString", cfg)
	assert.Equal(t, lisp.LAccessor, v.Type)
	assert.Equal(t, "toString", v.Str)

	v = mustRead(t, "java.lang.Integer.", cfg)
	assert.Equal(t, lisp.LClassName, v.Type)
	assert.Equal(t, "java.lang.Integer", v.Class.Name())

	v = mustRead(t, ".Math.floor", cfg)
	assert.Equal(t, lisp.LInstanceMember, v.Type)
	assert.Equal(t, "java.lang.Math", v.Class.Name())
	assert.Equal(t, "floor", v.Str)

	v = mustRead(t, "Math.floor", cfg)
	assert.Equal(t, lisp.LStaticMember, v.Type)
	assert.Equal(t, "java.lang.Math", v.Class.Name())
	assert.Equal(t, "floor", v.Str)

	v = mustRead(t, "java.lang.Integer.MAX_VALUE", cfg)
	assert.Equal(t, lisp.LStaticMember, v.Type)
	assert.Equal(t, "java.lang.Integer", v.Class.Name())
	assert.Equal(t, "MAX_VALUE", v.Str)

	// Unregistered bare names fail through the resolver.
	_, err := read(t, "Unknown.member", cfg)
	assert.Error(t, err)
}

func TestSingleCharacterTokens(t *testing.T) {
	// Reading a one-character stream classifies the character the same way
	// as it is classified inside a larger stream.
	for _, c := range []string{"a", "Z", "_", "*", "+", "-", "<", "!"} {
		v := mustRead(t, c)
		assert.Equal(t, lisp.LSymbol, v.Type, "char: %s", c)
		assert.Equal(t, c, v.Str, "char: %s", c)
	}
	for _, c := range []string{"0", "7"} {
		v := mustRead(t, c)
		assert.Equal(t, lisp.LInt, v.Type, "char: %s", c)
		assert.Equal(t, c, v.String(), "char: %s", c)
	}
}

func TestSuppress(t *testing.T) {
	suppress := true
	s := reader.NewScanner("test", strings.NewReader("(1 2 3) 42"))
	r := reader.New(s, reader.WithSuppressor(func() bool { return suppress }))

	// The suppressed form is fully consumed but yields no value.
	v, err := r.Read(true, nil, false)
	require.NoError(t, err)
	assert.Nil(t, v)

	suppress = false
	v, err = r.Read(true, nil, false)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "42", v.String())
}

func TestSuppressToken(t *testing.T) {
	s := reader.NewScanner("test", strings.NewReader("foo bar"))
	r := reader.New(s, reader.WithSuppressor(func() bool { return true }))
	v, err := r.Read(true, nil, false)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestReadAll(t *testing.T) {
	forms, err := reader.ReadAll("test", strings.NewReader("1 two \"three\" (4)\n; trailing\n"))
	require.NoError(t, err)
	require.Len(t, forms, 4)
	assert.Equal(t, "1", forms[0].String())
	assert.Equal(t, "two", forms[1].String())
	assert.Equal(t, `"three"`, forms[2].String())
	assert.Equal(t, "(4)", forms[3].String())
}

func TestReadAllEmpty(t *testing.T) {
	forms, err := reader.ReadAll("test", strings.NewReader(" ;nothing here\n"))
	require.NoError(t, err)
	assert.Len(t, forms, 0)
}

func TestErrorLocation(t *testing.T) {
	_, err := read(t, "(a b\n  1abc)")
	require.Error(t, err)
	rerr := err.(*reader.Error)
	assert.Equal(t, reader.InvalidSyntax, rerr.Condition)
	assert.Equal(t, "test", rerr.Loc.File)
	assert.Equal(t, 2, rerr.Loc.Line)
	assert.Contains(t, rerr.Msg, "1abc")
}

func BenchmarkRead(b *testing.B) {
	const src = `
; fixture
(define (fib n)
  (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))
(fib 10)
("strings" \x 1/2 12. -1.5e3 null)
`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := reader.ReadAll("bench", strings.NewReader(src))
		if err != nil {
			b.Fatal(err)
		}
	}
}
