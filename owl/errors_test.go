package owl

import (
	"errors"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{
			&ParseError{Line: 3, Expected: "object", Found: ";", Err: ErrUnexpectedToken},
			`owl: unexpected token: expected object, found ";" (line 3)`,
		},
		{
			&ParseError{Line: 7, Found: "nope:", Err: ErrUndefinedPrefix},
			`owl: undefined prefix: "nope:" (line 7)`,
		},
		{
			&ParseError{Line: 2, Err: ErrUnterminatedString},
			"owl: unterminated string literal (line 2)",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := parseErrorf(ErrUndefinedPrefix, 4, "declared prefix", "foo:")
	if !errors.Is(err, ErrUndefinedPrefix) {
		t.Fatalf("errors.Is failed for %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("errors.As failed for %T", err)
	}
	if perr.Line != 4 || perr.Expected != "declared prefix" || perr.Found != "foo:" {
		t.Fatalf("fields = %+v", perr)
	}
}

func TestDuplicateEntityErrorMessage(t *testing.T) {
	e := &DuplicateEntityError{Kind: "class", IRI: "ex:Person"}
	if got := e.Error(); got != "owl: duplicate class ex:Person" {
		t.Fatalf("Error() = %q", got)
	}
}
