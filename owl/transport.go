package owl

import "encoding/json"

// OntologyTypeIdentifier tags a Record as carrying a wrapped ontology.
const OntologyTypeIdentifier = "OWLOntology"

// Record is the type-erased transport wrapper the storage layer consumes.
// Data holds the canonical (sorted-key) JSON encoding of the full ontology
// value, so wrapping the same ontology twice yields byte-identical records.
type Record struct {
	IRI            string `json:"iri"`
	TypeIdentifier string `json:"type"`
	Data           []byte `json:"data"`
}

// Wrap encodes an ontology into a transport record.
func Wrap(o *Ontology) (Record, error) {
	raw, err := json.Marshal(o)
	if err != nil {
		return Record{}, err
	}
	canonical, err := jcsCanonicalize(raw)
	if err != nil {
		return Record{}, err
	}
	return Record{IRI: o.IRI, TypeIdentifier: OntologyTypeIdentifier, Data: canonical}, nil
}

// Unwrap decodes an ontology from a transport record. Records carrying any
// other type identifier are rejected with ErrTransportType.
func Unwrap(rec Record) (*Ontology, error) {
	if rec.TypeIdentifier != OntologyTypeIdentifier {
		return nil, ErrTransportType
	}
	var o Ontology
	if err := json.Unmarshal(rec.Data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
