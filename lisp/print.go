package lisp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return "null"
	case LSymbol:
		return v.Str
	case LVar:
		return v.NS + ":" + v.Str
	case LInt:
		return v.Int.String()
	case LRatio:
		return v.Rat.Num().String() + "/" + v.Rat.Denom().String()
	case LFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case LString:
		return `"` + EscapeString(v.Str) + `"`
	case LChar:
		return charString(v.Char)
	case LSExpr:
		return exprString(v, "(", ")")
	case LAccessor:
		return "." + v.Str
	case LClassName:
		return v.Class.Name() + "."
	case LInstanceMember:
		return "." + v.Class.Name() + "." + v.Str
	case LStaticMember:
		return v.Class.Name() + "." + v.Str
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// EscapeString escapes s using the escape sequences recognized inside string
// literals.  Reading the result surrounded by double quotes produces s again.
func EscapeString(s string) string {
	var buf strings.Builder
	for _, c := range s {
		switch c {
		case '\t':
			buf.WriteString(`\t`)
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String()
}

func charString(c rune) string {
	switch c {
	case '\n':
		return `\newline`
	case ' ':
		return `\space`
	case '\t':
		return `\tab`
	default:
		return `\` + string(c)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
