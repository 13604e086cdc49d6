package owl

// Index is a read-only lookup structure over one ontology snapshot, built in
// a single pass over the axiom list. It is a cache, not a live view: any
// mutation of the source ontology invalidates it and the caller must call
// BuildIndex again.
type Index struct {
	// subClassOf maps a named subclass IRI to its subClassOf axioms.
	subClassOf map[string][]Axiom
	// superClassOf maps a named superclass IRI to the subClassOf axioms it
	// appears on the right side of.
	superClassOf map[string][]Axiom
	// equivalentOf maps a named class IRI to its equivalence axioms.
	equivalentOf map[string][]Axiom
	// disjointOf maps a named class IRI to its disjointness axioms.
	disjointOf map[string][]Axiom
	// domainsOf and rangesOf map property IRIs to domain/range axioms.
	domainsOf map[string][]Axiom
	rangesOf  map[string][]Axiom
	// assertionsAbout maps an individual key to the ABox axioms mentioning it
	// as subject or object.
	assertionsAbout map[string][]Axiom
	// assertionsWith maps a property IRI to its assertion axioms.
	assertionsWith map[string][]Axiom

	tbox         []Axiom
	rbox         []Axiom
	abox         []Axiom
	declarations []Axiom

	classes          map[string]struct{}
	objectProperties map[string]struct{}
	dataProperties   map[string]struct{}
	individuals      map[string]struct{}

	// inverses holds merged inverse pairs from property records and inverse
	// axioms, both directions.
	inverses map[string]string
}

// BuildIndex derives an Index from an ontology in one O(|axioms|) pass.
func BuildIndex(o *Ontology) *Index {
	idx := &Index{
		subClassOf:       map[string][]Axiom{},
		superClassOf:     map[string][]Axiom{},
		equivalentOf:     map[string][]Axiom{},
		disjointOf:       map[string][]Axiom{},
		domainsOf:        map[string][]Axiom{},
		rangesOf:         map[string][]Axiom{},
		assertionsAbout:  map[string][]Axiom{},
		assertionsWith:   map[string][]Axiom{},
		classes:          map[string]struct{}{},
		objectProperties: map[string]struct{}{},
		dataProperties:   map[string]struct{}{},
		individuals:      map[string]struct{}{},
		inverses:         map[string]string{},
	}

	// Seed signatures and inverse pairs from declared entities.
	for _, c := range o.Classes {
		idx.classes[c.IRI] = struct{}{}
	}
	for _, p := range o.ObjectProperties {
		idx.objectProperties[p.IRI] = struct{}{}
		if p.InverseOf != "" {
			idx.inverses[p.IRI] = p.InverseOf
			idx.inverses[p.InverseOf] = p.IRI
		}
	}
	for _, p := range o.DataProperties {
		idx.dataProperties[p.IRI] = struct{}{}
	}
	for _, i := range o.Individuals {
		idx.individuals[i.IRI] = struct{}{}
	}

	for _, a := range o.Axioms {
		switch {
		case a.IsTBox():
			idx.tbox = append(idx.tbox, a)
		case a.IsRBox():
			idx.rbox = append(idx.rbox, a)
		case a.IsABox():
			idx.abox = append(idx.abox, a)
		case a.IsDeclaration():
			idx.declarations = append(idx.declarations, a)
		}

		switch a.Kind {
		case AxiomSubClassOf:
			if a.Class.Kind == ClassNamed {
				idx.subClassOf[a.Class.IRI] = append(idx.subClassOf[a.Class.IRI], a)
			}
			if a.SuperClass.Kind == ClassNamed {
				idx.superClassOf[a.SuperClass.IRI] = append(idx.superClassOf[a.SuperClass.IRI], a)
			}
		case AxiomEquivalentClasses:
			for _, c := range a.Classes {
				if c.Kind == ClassNamed {
					idx.equivalentOf[c.IRI] = append(idx.equivalentOf[c.IRI], a)
				}
			}
		case AxiomDisjointClasses, AxiomDisjointUnion:
			for _, c := range a.Classes {
				if c.Kind == ClassNamed {
					idx.disjointOf[c.IRI] = append(idx.disjointOf[c.IRI], a)
				}
			}
			if a.Kind == AxiomDisjointUnion && a.Class.Kind == ClassNamed {
				idx.disjointOf[a.Class.IRI] = append(idx.disjointOf[a.Class.IRI], a)
			}
		case AxiomObjectPropertyDomain, AxiomDataPropertyDomain:
			idx.domainsOf[a.Property] = append(idx.domainsOf[a.Property], a)
		case AxiomObjectPropertyRange, AxiomDataPropertyRange:
			idx.rangesOf[a.Property] = append(idx.rangesOf[a.Property], a)
		case AxiomInverseObjectProperties:
			idx.inverses[a.Property] = a.SuperProperty
			idx.inverses[a.SuperProperty] = a.Property
		case AxiomClassAssertion:
			idx.assertionsAbout[a.Subject.Key()] = append(idx.assertionsAbout[a.Subject.Key()], a)
		case AxiomObjectPropertyAssertion, AxiomNegativeObjectPropertyAssertion:
			idx.assertionsAbout[a.Subject.Key()] = append(idx.assertionsAbout[a.Subject.Key()], a)
			idx.assertionsAbout[a.Object.Key()] = append(idx.assertionsAbout[a.Object.Key()], a)
			idx.assertionsWith[a.Property] = append(idx.assertionsWith[a.Property], a)
		case AxiomDataPropertyAssertion, AxiomNegativeDataPropertyAssertion:
			idx.assertionsAbout[a.Subject.Key()] = append(idx.assertionsAbout[a.Subject.Key()], a)
			idx.assertionsWith[a.Property] = append(idx.assertionsWith[a.Property], a)
		case AxiomSameIndividual, AxiomDifferentIndividuals:
			for _, ind := range a.Individuals {
				idx.assertionsAbout[ind.Key()] = append(idx.assertionsAbout[ind.Key()], a)
			}
		}

		// Union the axiom's referenced entities into the signature sets.
		for _, iri := range a.ReferencedClasses() {
			idx.classes[iri] = struct{}{}
		}
		for _, iri := range a.ReferencedObjectProperties() {
			idx.objectProperties[iri] = struct{}{}
		}
		for _, iri := range a.ReferencedDataProperties() {
			idx.dataProperties[iri] = struct{}{}
		}
		for _, iri := range a.ReferencedIndividuals() {
			idx.individuals[iri] = struct{}{}
		}
	}
	return idx
}

// SubClassAxiomsOf returns the subClassOf axioms whose subclass is the given
// named class.
func (idx *Index) SubClassAxiomsOf(iri string) []Axiom { return idx.subClassOf[iri] }

// SuperClassAxiomsOf returns the subClassOf axioms whose superclass is the
// given named class.
func (idx *Index) SuperClassAxiomsOf(iri string) []Axiom { return idx.superClassOf[iri] }

// EquivalentAxiomsOf returns the equivalence axioms mentioning the class.
func (idx *Index) EquivalentAxiomsOf(iri string) []Axiom { return idx.equivalentOf[iri] }

// DisjointAxiomsOf returns the disjointness axioms mentioning the class.
func (idx *Index) DisjointAxiomsOf(iri string) []Axiom { return idx.disjointOf[iri] }

// DomainAxiomsOf returns domain axioms for the property.
func (idx *Index) DomainAxiomsOf(property string) []Axiom { return idx.domainsOf[property] }

// RangeAxiomsOf returns range axioms for the property.
func (idx *Index) RangeAxiomsOf(property string) []Axiom { return idx.rangesOf[property] }

// AssertionsAbout returns the ABox axioms mentioning an individual (by IRI
// for named individuals, "_:"-prefixed label for anonymous ones).
func (idx *Index) AssertionsAbout(individual string) []Axiom {
	return idx.assertionsAbout[individual]
}

// AssertionsWith returns the assertion axioms using a property.
func (idx *Index) AssertionsWith(property string) []Axiom {
	return idx.assertionsWith[property]
}

// InverseOf returns the merged inverse of a property, from property records
// and inverse axioms.
func (idx *Index) InverseOf(property string) (string, bool) {
	inv, ok := idx.inverses[property]
	return inv, ok
}

// TBox returns the terminological partition.
func (idx *Index) TBox() []Axiom { return idx.tbox }

// RBox returns the role partition.
func (idx *Index) RBox() []Axiom { return idx.rbox }

// ABox returns the assertional partition.
func (idx *Index) ABox() []Axiom { return idx.abox }

// Declarations returns the declaration partition.
func (idx *Index) Declarations() []Axiom { return idx.declarations }

// ClassSignature returns the sorted class signature of the snapshot.
func (idx *Index) ClassSignature() []string { return sortedKeys(idx.classes) }

// ObjectPropertySignature returns the sorted object property signature.
func (idx *Index) ObjectPropertySignature() []string { return sortedKeys(idx.objectProperties) }

// DataPropertySignature returns the sorted data property signature.
func (idx *Index) DataPropertySignature() []string { return sortedKeys(idx.dataProperties) }

// IndividualSignature returns the sorted individual signature.
func (idx *Index) IndividualSignature() []string { return sortedKeys(idx.individuals) }
