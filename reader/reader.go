// Package reader converts a character stream into lisp values.  There is no
// separate lexer; tokenization, literal classification, and structural
// recursion happen in a single pass driven by a table of macro characters.
package reader

import (
	"io"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/ninjudd/clojure/host"
	"github.com/ninjudd/clojure/lisp"
	"github.com/ninjudd/clojure/symbol"
)

// Reader reads lisp values from a Scanner.  A Reader borrows its Scanner for
// the duration of each Read call; concurrent Reads on the same Reader are not
// supported.
type Reader struct {
	s        *Scanner
	macros   *MacroTable
	symbols  Interner
	types    host.Resolver
	suppress func() bool
}

// Config is a function that configures a Reader.
type Config func(*Reader)

// WithMacroTable returns a Config that makes a Reader dispatch syntax using
// t instead of DefaultMacroTable.
func WithMacroTable(t *MacroTable) Config {
	return func(r *Reader) {
		r.macros = t
	}
}

// WithInterner returns a Config that makes a Reader intern symbols and vars
// using i.
func WithInterner(i Interner) Config {
	return func(r *Reader) {
		r.symbols = i
	}
}

// WithResolver returns a Config that makes a Reader resolve host type names
// using res.
func WithResolver(res host.Resolver) Config {
	return func(r *Reader) {
		r.types = res
	}
}

// WithSuppressor returns a Config that installs fn as the reader's suppress
// flag.  The flag is consulted once after each form is produced; while it
// returns true the reader consumes syntax normally but Read yields a nil
// value in place of the constructed one.
func WithSuppressor(fn func() bool) Config {
	return func(r *Reader) {
		r.suppress = fn
	}
}

// New initializes and returns a Reader that reads from s.  Without
// configuration the Reader uses DefaultMacroTable, interns symbols into
// symbol.DefaultGlobalTable, and resolves type names with a fresh
// host.Registry.
func New(s *Scanner, cfg ...Config) *Reader {
	r := &Reader{
		s:       s,
		macros:  DefaultMacroTable,
		symbols: NewInterner(symbol.DefaultGlobalTable),
		types:   host.NewRegistry(),
	}
	for _, fn := range cfg {
		fn(r)
	}
	return r
}

// Read returns the next value from the stream.  At end of stream Read
// returns eofValue, or an unexpected-eof error when eofIsError is true.
// isRecursive should be true on calls made from within a reader routine.
//
// A nil value with a nil error means the form was consumed but suppressed.
func (r *Reader) Read(eofIsError bool, eofValue *lisp.LVal, isRecursive bool) (*lisp.LVal, error) {
	for {
		c, err := r.s.ReadRune()
		for err == nil && unicode.IsSpace(c) {
			c, err = r.s.ReadRune()
		}
		if err == io.EOF {
			if eofIsError {
				return nil, r.errorf(UnexpectedEOF, "EOF while reading")
			}
			return eofValue, nil
		}
		if err != nil {
			return nil, err
		}

		if fn := r.macros.Get(c); fn != nil {
			ret, err := fn(r, c)
			if err != nil {
				return nil, err
			}
			if r.suppressed() {
				return nil, nil
			}
			if ret == nil {
				// no-op macro, keep reading
				continue
			}
			return ret, nil
		}

		tok, err := r.readToken(c)
		if err != nil {
			return nil, err
		}
		if r.suppressed() {
			return nil, nil
		}
		return r.interpretToken(tok)
	}
}

// ReadAll reads every form from rd and returns them in order.  The name is
// used to report source locations.
func ReadAll(name string, rd io.Reader, cfg ...Config) ([]*lisp.LVal, error) {
	r := New(NewScanner(name, rd), cfg...)
	eof := &lisp.LVal{}
	var forms []*lisp.LVal
	for {
		v, err := r.Read(false, eof, false)
		if err != nil {
			return nil, err
		}
		if v == eof {
			return forms, nil
		}
		if v != nil {
			forms = append(forms, v)
		}
	}
}

// ReadDelimited reads values until delim, consuming the delimiter, and
// returns them in order.  The stream ending before delim is an
// unexpected-eof error.
func (r *Reader) ReadDelimited(delim rune) ([]*lisp.LVal, error) {
	var forms []*lisp.LVal
	for {
		c, err := r.s.ReadRune()
		for err == nil && unicode.IsSpace(c) {
			c, err = r.s.ReadRune()
		}
		if err == io.EOF {
			return nil, r.errorf(UnexpectedEOF, "EOF while reading")
		}
		if err != nil {
			return nil, err
		}
		if c == delim {
			return forms, nil
		}
		if fn := r.macros.Get(c); fn != nil {
			ret, err := fn(r, c)
			if err != nil {
				return nil, err
			}
			if ret != nil {
				forms = append(forms, ret)
			}
			continue
		}
		r.s.Unread()
		form, err := r.Read(true, nil, true)
		if err != nil {
			return nil, err
		}
		if form != nil {
			forms = append(forms, form)
		}
	}
}

// readToken accumulates first and every following rune up to end of stream,
// whitespace, or a macro character.  The terminating rune is pushed back.
func (r *Reader) readToken(first rune) (string, error) {
	var buf strings.Builder
	buf.WriteRune(first)
	for {
		c, err := r.s.ReadRune()
		if err == io.EOF {
			return buf.String(), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(c) || r.macros.IsMacro(c) {
			r.s.Unread()
			return buf.String(), nil
		}
		buf.WriteRune(c)
	}
}

func (r *Reader) suppressed() bool {
	return r.suppress != nil && r.suppress()
}

func readString(r *Reader, _ rune) (*lisp.LVal, error) {
	var buf strings.Builder
	for {
		c, err := r.s.ReadRune()
		if err == io.EOF {
			return nil, r.errorf(UnexpectedEOF, "EOF while reading string")
		}
		if err != nil {
			return nil, err
		}
		if c == '"' {
			return lisp.String(buf.String()), nil
		}
		if c == '\\' {
			c, err = r.s.ReadRune()
			if err == io.EOF {
				return nil, r.errorf(UnexpectedEOF, "EOF while reading string")
			}
			if err != nil {
				return nil, err
			}
			switch c {
			case 't':
				c = '\t'
			case 'r':
				c = '\r'
			case 'n':
				c = '\n'
			case '\\':
			case '"':
			default:
				return nil, r.errorf(UnsupportedEscape, `unsupported escape character: \%c`, c)
			}
		}
		buf.WriteRune(c)
	}
}

func readComment(r *Reader, _ rune) (*lisp.LVal, error) {
	for {
		c, err := r.s.ReadRune()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if c == '\n' || c == '\r' {
			return nil, nil
		}
	}
}

func readCharacter(r *Reader, _ rune) (*lisp.LVal, error) {
	c, err := r.s.ReadRune()
	if err == io.EOF {
		return nil, r.errorf(UnexpectedEOF, "EOF while reading character")
	}
	if err != nil {
		return nil, err
	}
	tok, err := r.readToken(c)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(tok) == 1 {
		c, _ := utf8.DecodeRuneInString(tok)
		return lisp.Char(c), nil
	}
	switch tok {
	case "newline":
		return lisp.Char('\n'), nil
	case "space":
		return lisp.Char(' '), nil
	case "tab":
		return lisp.Char('\t'), nil
	}
	return nil, r.errorf(UnsupportedCharName, `unsupported character: \%s`, tok)
}

func readList(r *Reader, _ rune) (*lisp.LVal, error) {
	cells, err := r.ReadDelimited(')')
	if err != nil {
		return nil, err
	}
	return lisp.SExpr(cells), nil
}

func readUnmatchedDelimiter(r *Reader, ch rune) (*lisp.LVal, error) {
	return nil, r.errorf(UnmatchedDelimiter, "unmatched delimiter: %c", ch)
}

// Interner interns names appearing in source text and returns canonical
// symbol and var values.
type Interner interface {
	InternSymbol(name string) *lisp.LVal
	InternVar(ns, name string) *lisp.LVal
}

// NewInterner returns an Interner backed by the symbol table t.
func NewInterner(t symbol.Table) Interner {
	return &tableInterner{
		t:  t,
		ns: make(map[string]*symbol.Namespace),
	}
}

type tableInterner struct {
	t    symbol.Table
	sync sync.Mutex
	ns   map[string]*symbol.Namespace
}

func (ti *tableInterner) InternSymbol(name string) *lisp.LVal {
	v := lisp.Symbol(name)
	v.Sym = ti.t.Intern(name)
	return v
}

func (ti *tableInterner) InternVar(ns, name string) *lisp.LVal {
	v := lisp.Var(ns, name)
	v.Sym = ti.namespace(ns).Intern(name)
	return v
}

func (ti *tableInterner) namespace(ns string) *symbol.Namespace {
	ti.sync.Lock()
	defer ti.sync.Unlock()
	n, ok := ti.ns[ns]
	if !ok {
		n = symbol.NewNamespace(ti.t, ns)
		ti.ns[ns] = n
	}
	return n
}
