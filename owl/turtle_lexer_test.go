package owl

import (
	"errors"
	"testing"
)

func lex(t *testing.T, input string) []turtleToken {
	t.Helper()
	tokens, err := newTurtleLexer(input).tokenize()
	if err != nil {
		t.Fatalf("tokenize(%q): %v", input, err)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != tokEOF {
		t.Fatalf("tokenize(%q) = %v, missing EOF sentinel", input, tokens)
	}
	return tokens[:len(tokens)-1]
}

func TestLexerTokenKinds(t *testing.T) {
	tests := []struct {
		input  string
		kind   turtleTokenKind
		lexeme string
	}{
		{"<http://example.org/Person>", tokIRIRef, "http://example.org/Person"},
		{"ex:Person", tokPrefixedName, "ex:Person"},
		{":Person", tokPrefixedName, ":Person"},
		{"_:b0", tokBlankNode, "b0"},
		{`"hello"`, tokString, "hello"},
		{"'hello'", tokString, "hello"},
		{"42", tokInteger, "42"},
		{"-7", tokInteger, "-7"},
		{"3.14", tokDecimal, "3.14"},
		{".5", tokDecimal, ".5"},
		{"6.02e23", tokDouble, "6.02e23"},
		{"1E-9", tokDouble, "1E-9"},
		{"true", tokBoolean, "true"},
		{"false", tokBoolean, "false"},
		{"a", tokA, "a"},
		{"@prefix", tokPrefixDirective, "@prefix"},
		{"@base", tokBaseDirective, "@base"},
		{"PREFIX", tokSparqlPrefix, "PREFIX"},
		{"BASE", tokSparqlBase, "BASE"},
		{"@en", tokLangTag, "en"},
		{"@en-GB", tokLangTag, "en-GB"},
		{"^^", tokDatatypeMarker, "^^"},
	}
	for _, tt := range tests {
		tokens := lex(t, tt.input)
		if len(tokens) != 1 {
			t.Errorf("tokenize(%q) = %v, want one token", tt.input, tokens)
			continue
		}
		if tokens[0].Kind != tt.kind || tokens[0].Lexeme != tt.lexeme {
			t.Errorf("tokenize(%q) = %v %q, want %v %q",
				tt.input, tokens[0].Kind, tokens[0].Lexeme, tt.kind, tt.lexeme)
		}
	}
}

func TestLexerStatement(t *testing.T) {
	tokens := lex(t, `ex:Alice a ex:Person ; ex:age 30 .`)
	kinds := []turtleTokenKind{
		tokPrefixedName, tokA, tokPrefixedName, tokSemicolon,
		tokPrefixedName, tokInteger, tokDot,
	}
	if len(tokens) != len(kinds) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(kinds))
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d = %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestLexerPrefixedNameBeforeDot(t *testing.T) {
	// '.' is a legal name character, so the trailing statement terminator must
	// not be folded into the name.
	tokens := lex(t, "ex:Person.")
	if len(tokens) != 2 {
		t.Fatalf("got %v, want name and dot", tokens)
	}
	if tokens[0].Lexeme != "ex:Person" || tokens[1].Kind != tokDot {
		t.Fatalf("got %v %v", tokens[0], tokens[1])
	}
}

func TestLexerDecimalThenTerminator(t *testing.T) {
	tokens := lex(t, "ex:height 1.75 .")
	if len(tokens) != 3 {
		t.Fatalf("got %v", tokens)
	}
	if tokens[1].Kind != tokDecimal || tokens[1].Lexeme != "1.75" {
		t.Errorf("token 1 = %v %q", tokens[1].Kind, tokens[1].Lexeme)
	}
	if tokens[2].Kind != tokDot {
		t.Errorf("token 2 = %v", tokens[2].Kind)
	}
}

func TestLexerStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"line\nbreak"`, "line\nbreak"},
		{`"tab\there"`, "tab\there"},
		{`"quote\"inside"`, `quote"inside`},
		{`"back\\slash"`, `back\slash`},
		// Unknown escapes keep the backslash.
		{`"solidus\/kept"`, `solidus\/kept`},
	}
	for _, tt := range tests {
		tokens := lex(t, tt.input)
		if tokens[0].Lexeme != tt.want {
			t.Errorf("tokenize(%q) = %q, want %q", tt.input, tokens[0].Lexeme, tt.want)
		}
	}
}

func TestLexerLongString(t *testing.T) {
	tokens := lex(t, "\"\"\"multi\nline \"quoted\" text\"\"\" .")
	if len(tokens) != 2 || tokens[0].Kind != tokString {
		t.Fatalf("got %v", tokens)
	}
	if tokens[0].Lexeme != "multi\nline \"quoted\" text" {
		t.Fatalf("lexeme = %q", tokens[0].Lexeme)
	}
	// The embedded newline advances the line counter past the string.
	if tokens[1].Line != 2 {
		t.Errorf("dot on line %d, want 2", tokens[1].Line)
	}
}

func TestLexerLineNumbers(t *testing.T) {
	tokens := lex(t, "ex:A\n# comment\nex:B\n\nex:C")
	lines := []int{1, 3, 5}
	for i, want := range lines {
		if tokens[i].Line != want {
			t.Errorf("token %d on line %d, want %d", i, tokens[i].Line, want)
		}
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := newTurtleLexer("ex:name \"no closing quote").tokenize()
	if !errors.Is(err, ErrUnterminatedString) {
		t.Fatalf("err = %v, want ErrUnterminatedString", err)
	}
	_, err = newTurtleLexer("ex:name \"broken\nstring\"").tokenize()
	if !errors.Is(err, ErrUnterminatedString) {
		t.Fatalf("err = %v, want ErrUnterminatedString", err)
	}
}

func TestLexerInvalidIRI(t *testing.T) {
	_, err := newTurtleLexer("<http://example.org/unclosed").tokenize()
	if !errors.Is(err, ErrInvalidIRI) {
		t.Fatalf("err = %v, want ErrInvalidIRI", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err %T does not wrap ParseError", err)
	}
	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}
}

func TestLexerComments(t *testing.T) {
	tokens := lex(t, "# full line\nex:A # trailing\nex:B")
	if len(tokens) != 2 {
		t.Fatalf("got %v", tokens)
	}
	if tokens[0].Lexeme != "ex:A" || tokens[1].Lexeme != "ex:B" {
		t.Fatalf("got %v", tokens)
	}
}
