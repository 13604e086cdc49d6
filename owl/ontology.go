package owl

// Ontology is the mutable aggregate of an OWL ontology: its header, prefix
// table, entities and axioms. Component order is preserved but carries no
// meaning beyond round-trip stability.
//
// An Ontology is intended for single-writer use; concurrent reads of a
// completed value are safe.
type Ontology struct {
	IRI        string   `json:"iri,omitempty"`
	VersionIRI string   `json:"versionIri,omitempty"`
	Imports    []string `json:"imports,omitempty"`

	Prefixes map[string]string `json:"prefixes,omitempty"`

	Classes              []OWLClass              `json:"classes,omitempty"`
	ObjectProperties     []OWLObjectProperty     `json:"objectProperties,omitempty"`
	DataProperties       []OWLDataProperty       `json:"dataProperties,omitempty"`
	AnnotationProperties []OWLAnnotationProperty `json:"annotationProperties,omitempty"`
	Individuals          []OWLNamedIndividual    `json:"individuals,omitempty"`
	Axioms               []Axiom                 `json:"axioms,omitempty"`
}

// NewOntology creates an empty ontology with the default prefix table.
// Caller-supplied prefixes override the defaults.
func NewOntology(iri string, prefixes map[string]string) *Ontology {
	table := DefaultPrefixes()
	for prefix, ns := range prefixes {
		table[prefix] = ns
	}
	return &Ontology{IRI: iri, Prefixes: table}
}

// AddClass appends a class entity.
func (o *Ontology) AddClass(c OWLClass) { o.Classes = append(o.Classes, c) }

// AddObjectProperty appends an object property entity.
func (o *Ontology) AddObjectProperty(p OWLObjectProperty) {
	o.ObjectProperties = append(o.ObjectProperties, p)
}

// AddDataProperty appends a data property entity.
func (o *Ontology) AddDataProperty(p OWLDataProperty) {
	o.DataProperties = append(o.DataProperties, p)
}

// AddAnnotationProperty appends an annotation property entity.
func (o *Ontology) AddAnnotationProperty(p OWLAnnotationProperty) {
	o.AnnotationProperties = append(o.AnnotationProperties, p)
}

// AddIndividual appends a named individual entity.
func (o *Ontology) AddIndividual(i OWLNamedIndividual) {
	o.Individuals = append(o.Individuals, i)
}

// AddAxiom appends an axiom.
func (o *Ontology) AddAxiom(a Axiom) { o.Axioms = append(o.Axioms, a) }

// AddImport appends an imported ontology IRI.
func (o *Ontology) AddImport(iri string) { o.Imports = append(o.Imports, iri) }

// ClassByIRI returns the first class with the given IRI.
func (o *Ontology) ClassByIRI(iri string) (OWLClass, bool) {
	for _, c := range o.Classes {
		if c.IRI == iri {
			return c, true
		}
	}
	return OWLClass{}, false
}

// ObjectPropertyByIRI returns the first object property with the given IRI.
func (o *Ontology) ObjectPropertyByIRI(iri string) (OWLObjectProperty, bool) {
	for _, p := range o.ObjectProperties {
		if p.IRI == iri {
			return p, true
		}
	}
	return OWLObjectProperty{}, false
}

// DataPropertyByIRI returns the first data property with the given IRI.
func (o *Ontology) DataPropertyByIRI(iri string) (OWLDataProperty, bool) {
	for _, p := range o.DataProperties {
		if p.IRI == iri {
			return p, true
		}
	}
	return OWLDataProperty{}, false
}

// AnnotationPropertyByIRI returns the first annotation property with the
// given IRI.
func (o *Ontology) AnnotationPropertyByIRI(iri string) (OWLAnnotationProperty, bool) {
	for _, p := range o.AnnotationProperties {
		if p.IRI == iri {
			return p, true
		}
	}
	return OWLAnnotationProperty{}, false
}

// IndividualByIRI returns the first named individual with the given IRI.
func (o *Ontology) IndividualByIRI(iri string) (OWLNamedIndividual, bool) {
	for _, i := range o.Individuals {
		if i.IRI == iri {
			return i, true
		}
	}
	return OWLNamedIndividual{}, false
}

// TBoxAxioms returns the terminological axioms in declaration order.
func (o *Ontology) TBoxAxioms() []Axiom { return o.filterAxioms(Axiom.IsTBox) }

// RBoxAxioms returns the role axioms in declaration order.
func (o *Ontology) RBoxAxioms() []Axiom { return o.filterAxioms(Axiom.IsRBox) }

// ABoxAxioms returns the assertional axioms in declaration order.
func (o *Ontology) ABoxAxioms() []Axiom { return o.filterAxioms(Axiom.IsABox) }

// DeclarationAxioms returns the declaration axioms in declaration order.
func (o *Ontology) DeclarationAxioms() []Axiom {
	return o.filterAxioms(Axiom.IsDeclaration)
}

func (o *Ontology) filterAxioms(match func(Axiom) bool) []Axiom {
	var out []Axiom
	for _, a := range o.Axioms {
		if match(a) {
			out = append(out, a)
		}
	}
	return out
}

// ClassSignature returns the sorted set of class IRIs: the ontology's own
// class entities plus every class any axiom references.
func (o *Ontology) ClassSignature() []string {
	set := map[string]struct{}{}
	for _, c := range o.Classes {
		set[c.IRI] = struct{}{}
	}
	for _, a := range o.Axioms {
		for _, iri := range a.ReferencedClasses() {
			set[iri] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// ObjectPropertySignature returns the sorted set of object property IRIs.
func (o *Ontology) ObjectPropertySignature() []string {
	set := map[string]struct{}{}
	for _, p := range o.ObjectProperties {
		set[p.IRI] = struct{}{}
	}
	for _, a := range o.Axioms {
		for _, iri := range a.ReferencedObjectProperties() {
			set[iri] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// DataPropertySignature returns the sorted set of data property IRIs.
func (o *Ontology) DataPropertySignature() []string {
	set := map[string]struct{}{}
	for _, p := range o.DataProperties {
		set[p.IRI] = struct{}{}
	}
	for _, a := range o.Axioms {
		for _, iri := range a.ReferencedDataProperties() {
			set[iri] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// IndividualSignature returns the sorted set of named individual IRIs.
func (o *Ontology) IndividualSignature() []string {
	set := map[string]struct{}{}
	for _, i := range o.Individuals {
		set[i.IRI] = struct{}{}
	}
	for _, a := range o.Axioms {
		for _, iri := range a.ReferencedIndividuals() {
			set[iri] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Validate checks for structural duplicates and returns the collected
// errors. Duplicates do not block construction; the caller decides what to
// do with them.
func (o *Ontology) Validate() []error {
	var errs []error
	seen := map[string]struct{}{}
	for _, c := range o.Classes {
		if _, dup := seen[c.IRI]; dup {
			errs = append(errs, &DuplicateEntityError{Kind: "class", IRI: c.IRI})
		}
		seen[c.IRI] = struct{}{}
	}
	seen = map[string]struct{}{}
	for _, p := range o.ObjectProperties {
		if _, dup := seen[p.IRI]; dup {
			errs = append(errs, &DuplicateEntityError{Kind: "objectProperty", IRI: p.IRI})
		}
		seen[p.IRI] = struct{}{}
	}
	seen = map[string]struct{}{}
	for _, p := range o.DataProperties {
		if _, dup := seen[p.IRI]; dup {
			errs = append(errs, &DuplicateEntityError{Kind: "dataProperty", IRI: p.IRI})
		}
		seen[p.IRI] = struct{}{}
	}
	seen = map[string]struct{}{}
	for _, i := range o.Individuals {
		if _, dup := seen[i.IRI]; dup {
			errs = append(errs, &DuplicateEntityError{Kind: "individual", IRI: i.IRI})
		}
		seen[i.IRI] = struct{}{}
	}
	return errs
}

// Builder assembles an ontology from an ordered sequence of typed
// components. Each component is appended to its list in the order given, so
// conditional and iterated composition compose naturally:
//
//	b := owl.NewBuilder("http://example.org/onto", nil)
//	for _, name := range names {
//	    b.Class(owl.OWLClass{IRI: name})
//	}
//	if includeHierarchy {
//	    b.Axiom(owl.SubClassOf(owl.NamedClass(sub), owl.NamedClass(super)))
//	}
//	ont := b.Build()
type Builder struct {
	ont *Ontology
}

// NewBuilder starts a builder for an ontology with the given IRI and
// optional extra prefixes.
func NewBuilder(iri string, prefixes map[string]string) *Builder {
	return &Builder{ont: NewOntology(iri, prefixes)}
}

// VersionIRI sets the ontology version IRI.
func (b *Builder) VersionIRI(iri string) *Builder {
	b.ont.VersionIRI = iri
	return b
}

// Import appends an imported ontology IRI.
func (b *Builder) Import(iri string) *Builder {
	b.ont.AddImport(iri)
	return b
}

// Prefix binds a prefix to a namespace.
func (b *Builder) Prefix(prefix, namespace string) *Builder {
	b.ont.Prefixes[prefix] = namespace
	return b
}

// Class appends a class entity.
func (b *Builder) Class(c OWLClass) *Builder {
	b.ont.AddClass(c)
	return b
}

// ObjectProperty appends an object property entity.
func (b *Builder) ObjectProperty(p OWLObjectProperty) *Builder {
	b.ont.AddObjectProperty(p)
	return b
}

// DataProperty appends a data property entity.
func (b *Builder) DataProperty(p OWLDataProperty) *Builder {
	b.ont.AddDataProperty(p)
	return b
}

// AnnotationProperty appends an annotation property entity.
func (b *Builder) AnnotationProperty(p OWLAnnotationProperty) *Builder {
	b.ont.AddAnnotationProperty(p)
	return b
}

// Individual appends a named individual entity.
func (b *Builder) Individual(i OWLNamedIndividual) *Builder {
	b.ont.AddIndividual(i)
	return b
}

// Axiom appends an axiom.
func (b *Builder) Axiom(a Axiom) *Builder {
	b.ont.AddAxiom(a)
	return b
}

// Axioms appends several axioms in order.
func (b *Builder) Axioms(axioms ...Axiom) *Builder {
	for _, a := range axioms {
		b.ont.AddAxiom(a)
	}
	return b
}

// Build returns the assembled ontology. The builder must not be reused.
func (b *Builder) Build() *Ontology {
	return b.ont
}
