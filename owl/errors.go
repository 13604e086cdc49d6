package owl

import (
	"errors"
	"fmt"
)

// Sentinel decode errors. Decode aborts on the first occurrence; there is no
// recovery or retry.
var (
	// ErrUnexpectedToken indicates the parser found a token it could not use.
	ErrUnexpectedToken = errors.New("owl: unexpected token")
	// ErrUnterminatedString indicates a string literal without a closing quote.
	ErrUnterminatedString = errors.New("owl: unterminated string literal")
	// ErrUndefinedPrefix indicates a prefixed name whose prefix has no binding.
	ErrUndefinedPrefix = errors.New("owl: undefined prefix")
	// ErrInvalidIRI indicates an invalid or unterminated IRI reference.
	ErrInvalidIRI = errors.New("owl: invalid IRI reference")
	// ErrUnexpectedEOF indicates the input ended inside a statement.
	ErrUnexpectedEOF = errors.New("owl: unexpected end of input")
	// ErrUnrecognizedShape indicates a blank-node class expression whose
	// shape the builder does not recognize; only reported under
	// DecodeOptions.StrictShapes, otherwise the shape decodes as owl:Thing.
	ErrUnrecognizedShape = errors.New("owl: unrecognized class expression shape")
)

// ErrTransportType indicates a transport record whose type identifier is not
// "OWLOntology".
var ErrTransportType = errors.New("owl: record does not carry an ontology")

// ParseError carries position and context for a decode failure.
type ParseError struct {
	// Line is the 1-based line number, 0 if unknown.
	Line int
	// Expected describes what the parser wanted, empty if not applicable.
	Expected string
	// Found is the offending token text, empty if not applicable.
	Found string
	// Err is the underlying sentinel error.
	Err error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Expected != "" {
		msg = fmt.Sprintf("%s: expected %s", msg, e.Expected)
		if e.Found != "" {
			msg += fmt.Sprintf(", found %q", e.Found)
		}
	} else if e.Found != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Found)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(err error, line int, expected, found string) error {
	return &ParseError{Line: line, Expected: expected, Found: found, Err: err}
}

// DuplicateEntityError reports a structurally duplicate entity IRI found by
// Ontology.Validate. It is collected, never fatal.
type DuplicateEntityError struct {
	// Kind is one of "class", "objectProperty", "dataProperty", "individual".
	Kind string
	// IRI is the duplicated identifier.
	IRI string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("owl: duplicate %s %s", e.Kind, e.IRI)
}
