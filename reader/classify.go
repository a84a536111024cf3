package reader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ninjudd/clojure/host"
	"github.com/ninjudd/clojure/lisp"
)

// Token patterns.  Every pattern is anchored; a token must match fully.
var (
	symbolPat = regexp.MustCompile(`^:?[^0-9:.][^:.]*$`)
	varPat    = regexp.MustCompile(`^([^0-9:.][^:.]*):([^0-9:.][^:.]*)$`)

	intPat   = regexp.MustCompile(`^[-+]?[0-9]+\.?$`)
	floatPat = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)
	ratioPat = regexp.MustCompile(`^([-+]?[0-9]+)/([0-9]+)$`)

	accessorPat       = regexp.MustCompile(`^\.[a-zA-Z_]\w*$`)
	classNamePat      = regexp.MustCompile(`^([a-zA-Z_][\w.]*)\.$`)
	instanceMemberPat = regexp.MustCompile(`^\.([a-zA-Z_][\w.]*)\.([a-zA-Z_]\w*)$`)
	staticMemberPat   = regexp.MustCompile(`^([a-zA-Z_][\w.]*)\.([a-zA-Z_]\w*)$`)
)

// tokenMatcher attempts to classify a token.  The second result reports
// whether the matcher accepted the token.
type tokenMatcher func(r *Reader, tok string) (*lisp.LVal, bool, error)

// tokenMatchers are applied in order and the first match wins.  The order is
// the precedence among ambiguous literal forms and must not be changed: a
// leading-digit token can never be a symbol, which is what lets 1/2 fall
// through to the ratio matcher, and the integer matcher claiming a trailing
// dot is what distinguishes 12. from the class name form.
var tokenMatchers = []tokenMatcher{
	matchSymbol,
	matchVar,
	matchInt,
	matchFloat,
	matchRatio,
	matchAccessor,
	matchClassName,
	matchInstanceMember,
	matchStaticMember,
}

// interpretToken classifies a raw token and constructs its value.
func (r *Reader) interpretToken(tok string) (*lisp.LVal, error) {
	if tok == "null" {
		return lisp.Nil(), nil
	}
	for _, match := range tokenMatchers {
		v, ok, err := match(r, tok)
		if err != nil {
			return nil, err
		}
		if ok {
			return v, nil
		}
	}
	return nil, r.errorf(InvalidSyntax, "invalid syntax: %s", tok)
}

func matchSymbol(r *Reader, tok string) (*lisp.LVal, bool, error) {
	if !symbolPat.MatchString(tok) {
		return nil, false, nil
	}
	return r.symbols.InternSymbol(tok), true, nil
}

func matchVar(r *Reader, tok string) (*lisp.LVal, bool, error) {
	m := varPat.FindStringSubmatch(tok)
	if m == nil {
		return nil, false, nil
	}
	return r.symbols.InternVar(m[1], m[2]), true, nil
}

func matchInt(r *Reader, tok string) (*lisp.LVal, bool, error) {
	if !intPat.MatchString(tok) {
		return nil, false, nil
	}
	// A trailing dot is tolerated and discarded.
	v := lisp.IntText(strings.TrimSuffix(tok, "."))
	if v == nil {
		return nil, false, r.errorf(InvalidSyntax, "invalid integer literal: %s", tok)
	}
	return v, true, nil
}

func matchFloat(r *Reader, tok string) (*lisp.LVal, bool, error) {
	if !floatPat.MatchString(tok) {
		return nil, false, nil
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, false, r.errorf(InvalidSyntax, "invalid floating point literal: %s", tok)
	}
	return lisp.Float(x), true, nil
}

func matchRatio(r *Reader, tok string) (*lisp.LVal, bool, error) {
	m := ratioPat.FindStringSubmatch(tok)
	if m == nil {
		return nil, false, nil
	}
	num := lisp.IntText(m[1])
	den := lisp.IntText(m[2])
	if num == nil || den == nil {
		return nil, false, r.errorf(InvalidSyntax, "invalid ratio literal: %s", tok)
	}
	if den.Int.Sign() == 0 {
		return nil, false, r.errorf(DivisionByZero, "divide by zero: %s", tok)
	}
	return lisp.Ratio(num.Int, den.Int), true, nil
}

func matchAccessor(r *Reader, tok string) (*lisp.LVal, bool, error) {
	if !accessorPat.MatchString(tok) {
		return nil, false, nil
	}
	return lisp.Accessor(tok[1:]), true, nil
}

func matchClassName(r *Reader, tok string) (*lisp.LVal, bool, error) {
	m := classNamePat.FindStringSubmatch(tok)
	if m == nil {
		return nil, false, nil
	}
	c, err := r.resolveType(m[1])
	if err != nil {
		return nil, false, err
	}
	return lisp.ClassName(c), true, nil
}

func matchInstanceMember(r *Reader, tok string) (*lisp.LVal, bool, error) {
	m := instanceMemberPat.FindStringSubmatch(tok)
	if m == nil {
		return nil, false, nil
	}
	c, err := r.resolveType(m[1])
	if err != nil {
		return nil, false, err
	}
	return lisp.InstanceMember(c, m[2]), true, nil
}

func matchStaticMember(r *Reader, tok string) (*lisp.LVal, bool, error) {
	m := staticMemberPat.FindStringSubmatch(tok)
	if m == nil {
		return nil, false, nil
	}
	c, err := r.resolveType(m[1])
	if err != nil {
		return nil, false, err
	}
	return lisp.StaticMember(c, m[2]), true, nil
}

func (r *Reader) resolveType(path string) (*host.Class, error) {
	c, err := r.types.ResolveType(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.s.Loc(), err)
	}
	return c, nil
}
