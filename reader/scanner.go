package reader

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner reads runes from a byte stream one at a time and supports pushing
// back the most recently read rune.  At most one rune of pushback may be
// outstanding at any time; a second consecutive Unread panics.
type Scanner struct {
	file string
	br   *bufio.Reader

	pos  int // byte offset of the next rune
	line int // line number of the next rune (starting at 1)
	col  int // column number of the next rune (starting at 1)

	last     rune
	lastSize int
	lastLine int
	lastCol  int
	havePrev bool
	unread   bool
}

// NewScanner initializes and returns a new Scanner.  The file name is only
// used to report source locations.
func NewScanner(file string, r io.Reader) *Scanner {
	return &Scanner{
		file: file,
		br:   bufio.NewReader(r),
		line: 1,
		col:  1,
	}
}

// ReadRune returns the next rune in the stream.  At the end of the stream
// ReadRune returns io.EOF.
func (s *Scanner) ReadRune() (rune, error) {
	if s.unread {
		s.unread = false
		s.advance(s.last, s.lastSize)
		return s.last, nil
	}
	c, n, err := s.br.ReadRune()
	if err != nil {
		return 0, err
	}
	if c == utf8.RuneError && n == 1 {
		return 0, fmt.Errorf("%s: invalid utf-8 sequence in source text", s.Loc())
	}
	s.last, s.lastSize = c, n
	s.lastLine, s.lastCol = s.line, s.col
	s.havePrev = true
	s.advance(c, n)
	return c, nil
}

// Unread pushes the rune returned by the last call to ReadRune back onto the
// stream.  Unread panics if no rune has been read or if the last rune has
// already been pushed back.
func (s *Scanner) Unread() {
	if !s.havePrev || s.unread {
		panic("reader: unread without a preceding read")
	}
	s.unread = true
	s.pos -= s.lastSize
	s.line, s.col = s.lastLine, s.lastCol
}

func (s *Scanner) advance(c rune, n int) {
	s.pos += n
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}

// Loc returns a Location referencing the position of the next rune to be
// read.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

// Location points at a position in a source stream.
type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
