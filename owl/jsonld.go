package owl

import (
	"fmt"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// EncodeJSONLD converts an ontology to an expanded JSON-LD document. The
// ontology is rendered to triples first and handed to the JSON-LD processor
// over the N-Quads interchange format.
func EncodeJSONLD(o *Ontology) (interface{}, error) {
	res, err := parseTurtle(Encode(o))
	if err != nil {
		return nil, err
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	return proc.FromRDF(formatNQuads(res.Triples), opts)
}

// DecodeJSONLD converts a JSON-LD document (the unmarshaled interface{}
// form) into an Ontology, going through the processor's RDF dataset and the
// same triple-to-ontology builder the Turtle decoder uses.
func DecodeJSONLD(doc interface{}) (*Ontology, error) {
	proc := ld.NewJsonLdProcessor()
	result, err := proc.ToRDF(doc, ld.NewJsonLdOptions(""))
	if err != nil {
		return nil, err
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("owl: unexpected ToRDF result %T", result)
	}
	serializer := &ld.NQuadRDFSerializer{}
	serialized, err := serializer.Serialize(dataset)
	if err != nil {
		return nil, err
	}
	nquads, ok := serialized.(string)
	if !ok {
		return nil, fmt.Errorf("owl: unexpected N-Quads result %T", serialized)
	}
	// N-Quads without graph labels is valid Turtle.
	res, err := parseTurtle(nquads)
	if err != nil {
		return nil, err
	}
	return buildOntology(res, DecodeOptions{})
}

func formatNQuads(triples []Triple) string {
	var b strings.Builder
	for _, t := range triples {
		b.WriteString(formatNQuadTerm(t.S))
		b.WriteString(" ")
		b.WriteString(formatNQuadTerm(t.P))
		b.WriteString(" ")
		b.WriteString(formatNQuadTerm(t.O))
		b.WriteString(" .\n")
	}
	return b.String()
}

func formatNQuadTerm(t Term) string {
	switch t := t.(type) {
	case IRITerm:
		return "<" + t.Value + ">"
	case BlankNodeTerm:
		return "_:" + t.ID
	case LiteralTerm:
		lit := t.Literal
		escaped := strings.NewReplacer(
			"\\", "\\\\",
			"\"", "\\\"",
			"\n", "\\n",
			"\r", "\\r",
		).Replace(lit.Lexical)
		switch {
		case lit.Lang != "":
			return "\"" + escaped + "\"@" + lit.Lang
		case lit.Datatype != "" && lit.Datatype != XSDString:
			return "\"" + escaped + "\"^^<" + expandedDatatype(lit.Datatype) + ">"
		default:
			return "\"" + escaped + "\""
		}
	default:
		return t.String()
	}
}
