package owl

import "testing"

func TestFormatTerm(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{IRITerm{Value: "http://example.org/Alice"}, "http://example.org/Alice"},
		{BlankNodeTerm{ID: "b0"}, "_:b0"},
		{LiteralTerm{Literal: StringLiteral("hello")}, `"hello"`},
		{LiteralTerm{Literal: TypedLiteral("30", XSDInteger)}, `"30"^^` + XSDInteger},
		{LiteralTerm{Literal: LangLiteral("Ali", "en")}, `"Ali"@en`},
		{LiteralTerm{Literal: StringLiteral("say \"hi\"")}, `"say \"hi\""`},
	}
	for _, tt := range tests {
		if got := FormatTerm(tt.term); got != tt.want {
			t.Errorf("FormatTerm(%v) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestParseTermInvertsFormatTerm(t *testing.T) {
	terms := []Term{
		IRITerm{Value: "http://example.org/Alice"},
		BlankNodeTerm{ID: "b7"},
		LiteralTerm{Literal: StringLiteral("hello")},
		LiteralTerm{Literal: StringLiteral(`quotes "inside" here`)},
		LiteralTerm{Literal: TypedLiteral("30", XSDInteger)},
		LiteralTerm{Literal: TypedLiteral("1990-05-17", XSDDate)},
		LiteralTerm{Literal: LangLiteral("Ali", "en")},
	}
	for _, term := range terms {
		got, err := ParseTerm(FormatTerm(term))
		if err != nil {
			t.Errorf("ParseTerm(FormatTerm(%v)): %v", term, err)
			continue
		}
		if got != term {
			t.Errorf("round trip changed %v to %v", term, got)
		}
	}
}

func TestParseTermErrors(t *testing.T) {
	for _, s := range []string{"", `"unterminated`, `"lex"?junk`} {
		if _, err := ParseTerm(s); err == nil {
			t.Errorf("ParseTerm(%q) accepted invalid input", s)
		}
	}
}
