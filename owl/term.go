package owl

import (
	"fmt"
	"strings"
)

// TermKind identifies raw RDF term types produced by the Turtle parser.
type TermKind uint8

const (
	// TermIRI is an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode is a blank node term.
	TermBlankNode
	// TermLiteral is a literal term.
	TermLiteral
)

// Term is a value that can appear in a raw RDF statement.
type Term interface {
	Kind() TermKind
	String() string
}

// IRITerm is an IRI appearing in a raw statement. The value may be a full IRI
// or a prefixed name that the parser has already expanded.
type IRITerm struct {
	Value string
}

// Kind returns TermIRI.
func (i IRITerm) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRITerm) String() string { return i.Value }

// BlankNodeTerm is a blank node, scoped to the document it appears in.
type BlankNodeTerm struct {
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNodeTerm) Kind() TermKind { return TermBlankNode }

// String returns the label prefixed with "_:".
func (b BlankNodeTerm) String() string { return "_:" + b.ID }

// LiteralTerm wraps a Literal as a raw statement term.
type LiteralTerm struct {
	Literal Literal
}

// Kind returns TermLiteral.
func (l LiteralTerm) Kind() TermKind { return TermLiteral }

// String returns the storage encoding of the literal.
func (l LiteralTerm) String() string { return FormatTerm(l) }

// Triple is a raw (subject, predicate, object) statement.
type Triple struct {
	S Term
	P IRITerm
	O Term
}

// FormatTerm renders a term using the storage layer's string convention:
// an IRI as-is, a blank node as "_:id", a literal as `"lexical"`,
// `"lexical"^^datatype` or `"lexical"@lang`.
func FormatTerm(t Term) string {
	switch v := t.(type) {
	case IRITerm:
		return v.Value
	case BlankNodeTerm:
		return "_:" + v.ID
	case LiteralTerm:
		lit := v.Literal
		if lit.Lang != "" {
			return fmt.Sprintf("%q@%s", lit.Lexical, lit.Lang)
		}
		if lit.Datatype != "" && lit.Datatype != XSDString {
			return fmt.Sprintf("%q^^%s", lit.Lexical, lit.Datatype)
		}
		return fmt.Sprintf("%q", lit.Lexical)
	default:
		return ""
	}
}

// ParseTerm is the inverse of FormatTerm. Unquoted strings decode as IRIs,
// "_:"-prefixed strings as blank nodes, quoted strings as literals with an
// optional ^^datatype or @lang suffix.
func ParseTerm(s string) (Term, error) {
	if s == "" {
		return nil, fmt.Errorf("owl: empty term encoding")
	}
	if strings.HasPrefix(s, "_:") {
		return BlankNodeTerm{ID: s[2:]}, nil
	}
	if s[0] != '"' {
		return IRITerm{Value: s}, nil
	}
	end := closingQuote(s)
	if end < 0 {
		return nil, fmt.Errorf("owl: unterminated literal encoding %q", s)
	}
	lexical, err := unquoteLiteral(s[:end+1])
	if err != nil {
		return nil, err
	}
	rest := s[end+1:]
	switch {
	case rest == "":
		return LiteralTerm{Literal: StringLiteral(lexical)}, nil
	case strings.HasPrefix(rest, "^^"):
		return LiteralTerm{Literal: TypedLiteral(lexical, rest[2:])}, nil
	case strings.HasPrefix(rest, "@"):
		return LiteralTerm{Literal: LangLiteral(lexical, rest[1:])}, nil
	default:
		return nil, fmt.Errorf("owl: invalid literal suffix %q", rest)
	}
}

// closingQuote finds the index of the unescaped closing quote of a literal
// encoding that starts with '"', or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func unquoteLiteral(quoted string) (string, error) {
	var b strings.Builder
	body := quoted[1 : len(quoted)-1]
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("owl: dangling escape in %q", quoted)
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(body[i])
		}
	}
	return b.String(), nil
}
