package owl

// DecodeOptions configures the Turtle decode path.
type DecodeOptions struct {
	// StrictShapes makes the decoder fail with ErrUnrecognizedShape when a
	// blank node does not match any known class-expression or data-range
	// shape, instead of silently decoding it as owl:Thing.
	StrictShapes bool
}

// Decode parses Turtle text into an Ontology with default options.
func Decode(input string) (*Ontology, error) {
	return DecodeWithOptions(input, DecodeOptions{})
}

// DecodeWithOptions parses Turtle text into an Ontology. Decoding aborts on
// the first syntax error; errors carry the 1-based input line and unwrap to
// one of the package sentinel errors.
func DecodeWithOptions(input string, opts DecodeOptions) (*Ontology, error) {
	res, err := parseTurtle(input)
	if err != nil {
		return nil, err
	}
	return buildOntology(res, opts)
}
