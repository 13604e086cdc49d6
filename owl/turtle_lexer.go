package owl

import "strings"

// turtleTokenKind identifies Turtle token types.
type turtleTokenKind uint8

const (
	tokEOF turtleTokenKind = iota
	tokPrefixDirective
	tokBaseDirective
	tokSparqlPrefix
	tokSparqlBase
	tokIRIRef
	tokPrefixedName
	tokBlankNode
	tokString
	tokInteger
	tokDecimal
	tokDouble
	tokBoolean
	tokA
	tokDot
	tokSemicolon
	tokComma
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
	tokDatatypeMarker
	tokLangTag
)

func (k turtleTokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokPrefixDirective:
		return "@prefix"
	case tokBaseDirective:
		return "@base"
	case tokSparqlPrefix:
		return "PREFIX"
	case tokSparqlBase:
		return "BASE"
	case tokIRIRef:
		return "IRI"
	case tokPrefixedName:
		return "prefixed name"
	case tokBlankNode:
		return "blank node label"
	case tokString:
		return "string"
	case tokInteger:
		return "integer"
	case tokDecimal:
		return "decimal"
	case tokDouble:
		return "double"
	case tokBoolean:
		return "boolean"
	case tokA:
		return "a"
	case tokDot:
		return "'.'"
	case tokSemicolon:
		return "';'"
	case tokComma:
		return "','"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokDatatypeMarker:
		return "'^^'"
	case tokLangTag:
		return "language tag"
	default:
		return "unknown token"
	}
}

// turtleToken is one lexed token. String tokens carry the decoded lexical
// form; IRI tokens carry the IRI without brackets; blank node tokens carry
// the label without the "_:" prefix.
type turtleToken struct {
	Kind   turtleTokenKind
	Lexeme string
	Line   int
}

// turtleLexer scans a Turtle document character by character, tracking
// 1-based line numbers for diagnostics.
type turtleLexer struct {
	input string
	pos   int
	line  int
}

func newTurtleLexer(input string) *turtleLexer {
	return &turtleLexer{input: input, line: 1}
}

// tokenize scans the whole input into a flat token stream terminated by an
// EOF token. It aborts on the first lexical error.
func (l *turtleLexer) tokenize() ([]turtleToken, error) {
	var tokens []turtleToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == tokEOF {
			return tokens, nil
		}
	}
}

func (l *turtleLexer) next() (turtleToken, error) {
	l.skipWhitespaceAndComments()
	if l.pos >= len(l.input) {
		return turtleToken{Kind: tokEOF, Line: l.line}, nil
	}
	line := l.line
	ch := l.input[l.pos]
	switch ch {
	case ';':
		l.pos++
		return turtleToken{Kind: tokSemicolon, Lexeme: ";", Line: line}, nil
	case ',':
		l.pos++
		return turtleToken{Kind: tokComma, Lexeme: ",", Line: line}, nil
	case '[':
		l.pos++
		return turtleToken{Kind: tokLBracket, Lexeme: "[", Line: line}, nil
	case ']':
		l.pos++
		return turtleToken{Kind: tokRBracket, Lexeme: "]", Line: line}, nil
	case '(':
		l.pos++
		return turtleToken{Kind: tokLParen, Lexeme: "(", Line: line}, nil
	case ')':
		l.pos++
		return turtleToken{Kind: tokRParen, Lexeme: ")", Line: line}, nil
	case '<':
		return l.scanIRIRef()
	case '"', '\'':
		return l.scanString()
	case '.':
		// A '.' followed immediately by a digit starts a decimal literal,
		// not a statement terminator.
		if l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
			return l.scanNumber()
		}
		l.pos++
		return turtleToken{Kind: tokDot, Lexeme: ".", Line: line}, nil
	case '^':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '^' {
			l.pos += 2
			return turtleToken{Kind: tokDatatypeMarker, Lexeme: "^^", Line: line}, nil
		}
		return turtleToken{}, parseErrorf(ErrUnexpectedToken, line, "", "^")
	case '@':
		return l.scanAtKeyword()
	case '+', '-':
		return l.scanNumber()
	}
	if isDigit(ch) {
		return l.scanNumber()
	}
	if strings.HasPrefix(l.input[l.pos:], "_:") {
		return l.scanBlankNode()
	}
	if isNameStart(ch) || ch == ':' {
		return l.scanWord()
	}
	return turtleToken{}, parseErrorf(ErrUnexpectedToken, line, "", string(ch))
}

func (l *turtleLexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\n':
			l.line++
			l.pos++
		case ' ', '\t', '\r':
			l.pos++
		case '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *turtleLexer) scanIRIRef() (turtleToken, error) {
	line := l.line
	l.pos++ // '<'
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '>' {
			iri := l.input[start:l.pos]
			l.pos++
			return turtleToken{Kind: tokIRIRef, Lexeme: iri, Line: line}, nil
		}
		if ch == '\n' {
			return turtleToken{}, parseErrorf(ErrInvalidIRI, line, "", l.input[start:l.pos])
		}
		l.pos++
	}
	return turtleToken{}, parseErrorf(ErrInvalidIRI, line, "", l.input[start:l.pos])
}

func (l *turtleLexer) scanString() (turtleToken, error) {
	quote := l.input[l.pos]
	if strings.HasPrefix(l.input[l.pos:], strings.Repeat(string(quote), 3)) {
		return l.scanLongString(quote)
	}
	line := l.line
	l.pos++
	var b strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch ch {
		case quote:
			l.pos++
			return turtleToken{Kind: tokString, Lexeme: b.String(), Line: line}, nil
		case '\n':
			return turtleToken{}, parseErrorf(ErrUnterminatedString, line, "", "")
		case '\\':
			l.pos++
			if l.pos >= len(l.input) {
				return turtleToken{}, parseErrorf(ErrUnterminatedString, line, "", "")
			}
			writeEscaped(&b, l.input[l.pos])
			l.pos++
		default:
			b.WriteByte(ch)
			l.pos++
		}
	}
	return turtleToken{}, parseErrorf(ErrUnterminatedString, line, "", "")
}

// scanLongString scans a triple-quoted string, which may embed raw newlines
// and is terminated only by three consecutive matching quote characters.
func (l *turtleLexer) scanLongString(quote byte) (turtleToken, error) {
	line := l.line
	l.pos += 3
	var b strings.Builder
	for l.pos < len(l.input) {
		if l.input[l.pos] == quote && strings.HasPrefix(l.input[l.pos:], strings.Repeat(string(quote), 3)) {
			l.pos += 3
			return turtleToken{Kind: tokString, Lexeme: b.String(), Line: line}, nil
		}
		ch := l.input[l.pos]
		if ch == '\\' && l.pos+1 < len(l.input) {
			l.pos++
			writeEscaped(&b, l.input[l.pos])
			l.pos++
			continue
		}
		if ch == '\n' {
			l.line++
		}
		b.WriteByte(ch)
		l.pos++
	}
	return turtleToken{}, parseErrorf(ErrUnterminatedString, line, "", "")
}

// writeEscaped decodes one escape character. Unknown escapes pass through
// with the backslash kept.
func writeEscaped(b *strings.Builder, ch byte) {
	switch ch {
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
		b.WriteByte(ch)
	}
}

func (l *turtleLexer) scanBlankNode() (turtleToken, error) {
	line := l.line
	l.pos += 2 // "_:"
	start := l.pos
	for l.pos < len(l.input) && isNameChar(l.input[l.pos]) {
		l.pos++
	}
	return turtleToken{Kind: tokBlankNode, Lexeme: l.input[start:l.pos], Line: line}, nil
}

func (l *turtleLexer) scanAtKeyword() (turtleToken, error) {
	line := l.line
	rest := l.input[l.pos:]
	switch {
	case strings.HasPrefix(rest, "@prefix"):
		l.pos += len("@prefix")
		return turtleToken{Kind: tokPrefixDirective, Lexeme: "@prefix", Line: line}, nil
	case strings.HasPrefix(rest, "@base"):
		l.pos += len("@base")
		return turtleToken{Kind: tokBaseDirective, Lexeme: "@base", Line: line}, nil
	}
	// Language tag.
	l.pos++
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if !isLetter(ch) && !isDigit(ch) && ch != '-' {
			break
		}
		l.pos++
	}
	if l.pos == start {
		return turtleToken{}, parseErrorf(ErrUnexpectedToken, line, "", "@")
	}
	return turtleToken{Kind: tokLangTag, Lexeme: l.input[start:l.pos], Line: line}, nil
}

func (l *turtleLexer) scanNumber() (turtleToken, error) {
	line := l.line
	start := l.pos
	if l.input[l.pos] == '+' || l.input[l.pos] == '-' {
		l.pos++
	}
	hasDot := false
	hasExp := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case isDigit(ch):
			l.pos++
		case ch == '.' && !hasDot && !hasExp && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]):
			hasDot = true
			l.pos++
		case (ch == 'e' || ch == 'E') && !hasExp:
			hasExp = true
			l.pos++
			if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
				l.pos++
			}
		default:
			goto done
		}
	}
done:
	lexeme := l.input[start:l.pos]
	kind := tokInteger
	if hasExp {
		kind = tokDouble
	} else if hasDot {
		kind = tokDecimal
	}
	return turtleToken{Kind: kind, Lexeme: lexeme, Line: line}, nil
}

// scanWord scans a bare word: the 'a' keyword, a boolean, a SPARQL-style
// PREFIX/BASE directive, or a prefixed name.
func (l *turtleLexer) scanWord() (turtleToken, error) {
	line := l.line
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if isNameChar(ch) || ch == ':' {
			l.pos++
			continue
		}
		break
	}
	// A trailing '.' is the statement terminator, not part of the name.
	for l.pos > start && l.input[l.pos-1] == '.' {
		l.pos--
	}
	lexeme := l.input[start:l.pos]
	switch {
	case lexeme == "a":
		return turtleToken{Kind: tokA, Lexeme: lexeme, Line: line}, nil
	case lexeme == "true", lexeme == "false":
		return turtleToken{Kind: tokBoolean, Lexeme: lexeme, Line: line}, nil
	case strings.EqualFold(lexeme, "PREFIX"):
		return turtleToken{Kind: tokSparqlPrefix, Lexeme: lexeme, Line: line}, nil
	case strings.EqualFold(lexeme, "BASE"):
		return turtleToken{Kind: tokSparqlBase, Lexeme: lexeme, Line: line}, nil
	case strings.Contains(lexeme, ":"):
		return turtleToken{Kind: tokPrefixedName, Lexeme: lexeme, Line: line}, nil
	}
	return turtleToken{}, parseErrorf(ErrUnexpectedToken, line, "", lexeme)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameStart(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch >= 0x80
}

func isNameChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '-' || ch == '.' || ch >= 0x80
}
