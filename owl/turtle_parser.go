package owl

import (
	"fmt"
	"strings"
)

// parseResult carries the raw output of a Turtle parse: the triple stream
// plus the prefix and base declarations seen in the document.
type parseResult struct {
	Prefixes map[string]string
	Base     string
	Triples  []Triple
}

// turtleParser is a recursive-descent parser over a lexed token stream.
// Directives take effect immediately and apply to everything after them.
type turtleParser struct {
	tokens   []turtleToken
	pos      int
	prefixes map[string]string
	base     string
	triples  []Triple
	blankSeq int
}

// parseTurtle tokenizes and parses a Turtle document into triples.
func parseTurtle(input string) (*parseResult, error) {
	tokens, err := newTurtleLexer(input).tokenize()
	if err != nil {
		return nil, err
	}
	p := &turtleParser{tokens: tokens, prefixes: DefaultPrefixes()}
	for p.peek().Kind != tokEOF {
		if err := p.parseStatement(); err != nil {
			return nil, err
		}
	}
	return &parseResult{Prefixes: p.prefixes, Base: p.base, Triples: p.triples}, nil
}

func (p *turtleParser) peek() turtleToken {
	return p.tokens[p.pos]
}

func (p *turtleParser) advance() turtleToken {
	tok := p.tokens[p.pos]
	if tok.Kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *turtleParser) expect(kind turtleTokenKind) (turtleToken, error) {
	tok := p.peek()
	if tok.Kind == tokEOF {
		return turtleToken{}, parseErrorf(ErrUnexpectedEOF, tok.Line, kind.String(), tok.Kind.String())
	}
	if tok.Kind != kind {
		return turtleToken{}, parseErrorf(ErrUnexpectedToken, tok.Line, kind.String(), tok.Lexeme)
	}
	return p.advance(), nil
}

func (p *turtleParser) freshBlankNode() BlankNodeTerm {
	id := fmt.Sprintf("genid%d", p.blankSeq)
	p.blankSeq++
	return BlankNodeTerm{ID: id}
}

func (p *turtleParser) emit(s Term, pred IRITerm, o Term) {
	p.triples = append(p.triples, Triple{S: s, P: pred, O: o})
}

func (p *turtleParser) parseStatement() error {
	switch p.peek().Kind {
	case tokPrefixDirective:
		return p.parsePrefixDirective(true)
	case tokBaseDirective:
		return p.parseBaseDirective(true)
	case tokSparqlPrefix:
		return p.parsePrefixDirective(false)
	case tokSparqlBase:
		return p.parseBaseDirective(false)
	default:
		return p.parseTriples()
	}
}

// parsePrefixDirective handles both @prefix (dot-terminated) and the SPARQL
// PREFIX form (no dot).
func (p *turtleParser) parsePrefixDirective(withDot bool) error {
	p.advance()
	nameTok, err := p.expect(tokPrefixedName)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(nameTok.Lexeme, ":") {
		return parseErrorf(ErrUnexpectedToken, nameTok.Line, "prefix declaration", nameTok.Lexeme)
	}
	iriTok, err := p.expect(tokIRIRef)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(nameTok.Lexeme, ":")
	p.prefixes[name] = p.resolveIRI(iriTok.Lexeme)
	if withDot {
		if _, err := p.expect(tokDot); err != nil {
			return err
		}
	}
	return nil
}

func (p *turtleParser) parseBaseDirective(withDot bool) error {
	p.advance()
	iriTok, err := p.expect(tokIRIRef)
	if err != nil {
		return err
	}
	p.base = p.resolveIRI(iriTok.Lexeme)
	if withDot {
		if _, err := p.expect(tokDot); err != nil {
			return err
		}
	}
	return nil
}

// resolveIRI resolves an IRI reference against the current base. References
// that already carry a scheme pass through unchanged.
func (p *turtleParser) resolveIRI(iri string) string {
	if p.base == "" || strings.Contains(iri, "://") || strings.HasPrefix(iri, "urn:") {
		return iri
	}
	if strings.HasPrefix(iri, "#") && strings.Contains(p.base, "#") {
		return strings.SplitN(p.base, "#", 2)[0] + iri
	}
	return p.base + iri
}

func (p *turtleParser) parseTriples() error {
	subject, err := p.parseSubject()
	if err != nil {
		return err
	}
	// A bare blank node property list may stand alone as a statement.
	if p.peek().Kind != tokDot {
		if err := p.parsePredicateObjectList(subject); err != nil {
			return err
		}
	}
	_, err = p.expect(tokDot)
	return err
}

func (p *turtleParser) parseSubject() (Term, error) {
	tok := p.peek()
	switch tok.Kind {
	case tokIRIRef:
		p.advance()
		return IRITerm{Value: p.resolveIRI(tok.Lexeme)}, nil
	case tokPrefixedName:
		p.advance()
		iri, err := p.expandPrefixed(tok)
		if err != nil {
			return nil, err
		}
		return IRITerm{Value: iri}, nil
	case tokBlankNode:
		p.advance()
		return BlankNodeTerm{ID: tok.Lexeme}, nil
	case tokLBracket:
		return p.parseBlankNodePropertyList()
	case tokLParen:
		return p.parseCollection()
	default:
		return nil, parseErrorf(ErrUnexpectedToken, tok.Line, "subject", tok.Lexeme)
	}
}

func (p *turtleParser) parsePredicateObjectList(subject Term) error {
	for {
		pred, err := p.parseVerb()
		if err != nil {
			return err
		}
		if err := p.parseObjectList(subject, pred); err != nil {
			return err
		}
		if p.peek().Kind != tokSemicolon {
			return nil
		}
		p.advance()
		// Trailing semicolons before '.' or ']' are permitted.
		for p.peek().Kind == tokSemicolon {
			p.advance()
		}
		if k := p.peek().Kind; k == tokDot || k == tokRBracket {
			return nil
		}
	}
}

func (p *turtleParser) parseVerb() (IRITerm, error) {
	tok := p.peek()
	switch tok.Kind {
	case tokA:
		p.advance()
		return IRITerm{Value: RDFType}, nil
	case tokIRIRef:
		p.advance()
		return IRITerm{Value: p.resolveIRI(tok.Lexeme)}, nil
	case tokPrefixedName:
		p.advance()
		iri, err := p.expandPrefixed(tok)
		if err != nil {
			return IRITerm{}, err
		}
		return IRITerm{Value: iri}, nil
	default:
		return IRITerm{}, parseErrorf(ErrUnexpectedToken, tok.Line, "predicate", tok.Lexeme)
	}
}

func (p *turtleParser) parseObjectList(subject Term, pred IRITerm) error {
	for {
		obj, err := p.parseObject()
		if err != nil {
			return err
		}
		p.emit(subject, pred, obj)
		if p.peek().Kind != tokComma {
			return nil
		}
		p.advance()
	}
}

func (p *turtleParser) parseObject() (Term, error) {
	tok := p.peek()
	switch tok.Kind {
	case tokIRIRef:
		p.advance()
		return IRITerm{Value: p.resolveIRI(tok.Lexeme)}, nil
	case tokPrefixedName:
		p.advance()
		iri, err := p.expandPrefixed(tok)
		if err != nil {
			return nil, err
		}
		return IRITerm{Value: iri}, nil
	case tokBlankNode:
		p.advance()
		return BlankNodeTerm{ID: tok.Lexeme}, nil
	case tokLBracket:
		return p.parseBlankNodePropertyList()
	case tokLParen:
		return p.parseCollection()
	case tokString:
		return p.parseLiteral()
	case tokInteger:
		p.advance()
		return LiteralTerm{Literal: TypedLiteral(tok.Lexeme, XSDInteger)}, nil
	case tokDecimal:
		p.advance()
		return LiteralTerm{Literal: TypedLiteral(tok.Lexeme, XSDDecimal)}, nil
	case tokDouble:
		p.advance()
		return LiteralTerm{Literal: TypedLiteral(tok.Lexeme, XSDDouble)}, nil
	case tokBoolean:
		p.advance()
		return LiteralTerm{Literal: TypedLiteral(tok.Lexeme, XSDBoolean)}, nil
	default:
		return nil, parseErrorf(ErrUnexpectedToken, tok.Line, "object", tok.Lexeme)
	}
}

// parseLiteral parses a string token plus an optional language tag or
// datatype annotation.
func (p *turtleParser) parseLiteral() (Term, error) {
	tok := p.advance()
	switch p.peek().Kind {
	case tokLangTag:
		lang := p.advance()
		return LiteralTerm{Literal: LangLiteral(tok.Lexeme, lang.Lexeme)}, nil
	case tokDatatypeMarker:
		p.advance()
		dtTok := p.peek()
		switch dtTok.Kind {
		case tokIRIRef:
			p.advance()
			return LiteralTerm{Literal: TypedLiteral(tok.Lexeme, p.resolveIRI(dtTok.Lexeme))}, nil
		case tokPrefixedName:
			p.advance()
			iri, err := p.expandPrefixed(dtTok)
			if err != nil {
				return nil, err
			}
			return LiteralTerm{Literal: TypedLiteral(tok.Lexeme, iri)}, nil
		default:
			return nil, parseErrorf(ErrUnexpectedToken, dtTok.Line, "datatype IRI", dtTok.Lexeme)
		}
	}
	return LiteralTerm{Literal: StringLiteral(tok.Lexeme)}, nil
}

// parseBlankNodePropertyList parses "[ ... ]", allocating a fresh blank
// node and emitting its property triples. "[]" yields a bare blank node.
func (p *turtleParser) parseBlankNodePropertyList() (Term, error) {
	p.advance() // '['
	node := p.freshBlankNode()
	if p.peek().Kind == tokRBracket {
		p.advance()
		return node, nil
	}
	if err := p.parsePredicateObjectList(node); err != nil {
		return nil, err
	}
	_, err := p.expect(tokRBracket)
	return node, err
}

// parseCollection parses "( ... )" and desugars it into an rdf:first/rdf:rest
// chain, returning the head node. An empty collection is rdf:nil.
func (p *turtleParser) parseCollection() (Term, error) {
	p.advance() // '('
	if p.peek().Kind == tokRParen {
		p.advance()
		return IRITerm{Value: RDFNil}, nil
	}
	head := p.freshBlankNode()
	current := head
	for {
		item, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		p.emit(current, IRITerm{Value: RDFFirst}, item)
		if p.peek().Kind == tokRParen {
			p.advance()
			p.emit(current, IRITerm{Value: RDFRest}, IRITerm{Value: RDFNil})
			return head, nil
		}
		next := p.freshBlankNode()
		p.emit(current, IRITerm{Value: RDFRest}, next)
		current = next
	}
}

func (p *turtleParser) expandPrefixed(tok turtleToken) (string, error) {
	idx := strings.Index(tok.Lexeme, ":")
	prefix, local := tok.Lexeme[:idx], tok.Lexeme[idx+1:]
	ns, ok := p.prefixes[prefix]
	if !ok {
		return "", parseErrorf(ErrUndefinedPrefix, tok.Line, "declared prefix", prefix+":")
	}
	return ns + local, nil
}
