package owl

// OWLClass is a named class entity.
type OWLClass struct {
	IRI     string `json:"iri"`
	Label   string `json:"label,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// OWLObjectProperty is an object property entity with its declared
// characteristics, domain/range and inverse.
type OWLObjectProperty struct {
	IRI     string `json:"iri"`
	Label   string `json:"label,omitempty"`
	Comment string `json:"comment,omitempty"`
	Domain  string `json:"domain,omitempty"`
	Range   string `json:"range,omitempty"`
	// InverseOf names the inverse property when one is declared on the
	// entity itself (owl:inverseOf triple on the property subject).
	InverseOf string `json:"inverseOf,omitempty"`

	IsFunctional        bool `json:"isFunctional,omitempty"`
	IsInverseFunctional bool `json:"isInverseFunctional,omitempty"`
	IsTransitive        bool `json:"isTransitive,omitempty"`
	IsSymmetric         bool `json:"isSymmetric,omitempty"`
	IsAsymmetric        bool `json:"isAsymmetric,omitempty"`
	IsReflexive         bool `json:"isReflexive,omitempty"`
	IsIrreflexive       bool `json:"isIrreflexive,omitempty"`
}

// OWLDataProperty is a data property entity.
type OWLDataProperty struct {
	IRI     string `json:"iri"`
	Label   string `json:"label,omitempty"`
	Comment string `json:"comment,omitempty"`
	Domain  string `json:"domain,omitempty"`
	// Range is a datatype IRI.
	Range        string `json:"range,omitempty"`
	IsFunctional bool   `json:"isFunctional,omitempty"`
}

// OWLAnnotationProperty is an annotation property entity.
type OWLAnnotationProperty struct {
	IRI     string `json:"iri"`
	Label   string `json:"label,omitempty"`
	Comment string `json:"comment,omitempty"`
}
