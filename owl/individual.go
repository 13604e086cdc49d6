package owl

// IndividualKind distinguishes named from anonymous individuals.
type IndividualKind uint8

const (
	// IndividualNamed is an individual identified by an IRI.
	IndividualNamed IndividualKind = iota
	// IndividualAnonymous is an individual identified only by a blank node
	// label scoped to one document.
	IndividualAnonymous
)

// Individual is a reference to an individual inside an expression or axiom.
type Individual struct {
	Kind   IndividualKind `json:"kind"`
	IRI    string         `json:"iri,omitempty"`
	NodeID string         `json:"nodeId,omitempty"`
}

// NamedIndividual returns a reference to the individual with the given IRI.
func NamedIndividual(iri string) Individual {
	return Individual{Kind: IndividualNamed, IRI: iri}
}

// AnonymousIndividual returns a reference to a blank-node individual.
func AnonymousIndividual(nodeID string) Individual {
	return Individual{Kind: IndividualAnonymous, NodeID: nodeID}
}

// Key returns the identifying string of the individual: its IRI when named,
// its "_:"-prefixed label when anonymous.
func (i Individual) Key() string {
	if i.Kind == IndividualAnonymous {
		return "_:" + i.NodeID
	}
	return i.IRI
}

// OWLNamedIndividual is a named individual entity owned by an ontology.
type OWLNamedIndividual struct {
	IRI     string   `json:"iri"`
	Label   string   `json:"label,omitempty"`
	Comment string   `json:"comment,omitempty"`
	Types   []string `json:"types,omitempty"`
}
