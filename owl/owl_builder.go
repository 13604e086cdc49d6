package owl

import (
	"fmt"
	"strconv"
	"strings"
)

// orderedSet tracks membership while preserving first-seen order, so decoded
// entities come out in document order.
type orderedSet struct {
	order []string
	set   map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{set: map[string]struct{}{}}
}

func (s *orderedSet) add(key string) {
	if _, ok := s.set[key]; ok {
		return
	}
	s.set[key] = struct{}{}
	s.order = append(s.order, key)
}

func (s *orderedSet) has(key string) bool {
	_, ok := s.set[key]
	return ok
}

// owlBuilder reconstructs a structured Ontology from the parser's raw triple
// stream. It indexes triples by subject once, buckets subjects by their
// rdf:type in a single classification sweep, then rebuilds entities and
// axioms per bucket.
type owlBuilder struct {
	opts     DecodeOptions
	prefixes map[string]string

	bySubject map[string][]Triple

	ontologySubject string
	classes         *orderedSet
	objectProps     *orderedSet
	dataProps       *orderedSet
	annotationProps *orderedSet
	individuals     *orderedSet
	datatypes       map[string]struct{}

	restrictions      map[string]struct{}
	disjointClassSets []string
	differentSets     []string
	disjointPropSets  []string
	negAssertions     []string

	// characteristic class IRIs seen per property subject, in document order.
	characteristics map[string][]string

	err error
}

func termKey(t Term) string {
	switch t := t.(type) {
	case IRITerm:
		return t.Value
	case BlankNodeTerm:
		return "_:" + t.ID
	default:
		return t.String()
	}
}

// buildOntology assembles an Ontology from a parse result.
func buildOntology(res *parseResult, opts DecodeOptions) (*Ontology, error) {
	b := &owlBuilder{
		opts:            opts,
		prefixes:        DefaultPrefixes(),
		bySubject:       map[string][]Triple{},
		classes:         newOrderedSet(),
		objectProps:     newOrderedSet(),
		dataProps:       newOrderedSet(),
		annotationProps: newOrderedSet(),
		individuals:     newOrderedSet(),
		datatypes:       map[string]struct{}{},
		restrictions:    map[string]struct{}{},
		characteristics: map[string][]string{},
	}
	for prefix, ns := range res.Prefixes {
		b.prefixes[prefix] = ns
	}
	for _, t := range res.Triples {
		key := termKey(t.S)
		b.bySubject[key] = append(b.bySubject[key], t)
	}
	b.classify(res.Triples)

	onto := NewOntology(b.ontologySubject, res.Prefixes)
	b.buildHeader(onto)
	b.buildClasses(onto)
	b.buildObjectProperties(onto)
	b.buildDataProperties(onto)
	b.buildAnnotationProperties(onto)
	b.buildIndividuals(onto)
	b.buildDisjointSets(onto)
	b.buildNegativeAssertions(onto)
	if b.err != nil {
		return nil, b.err
	}
	return onto, nil
}

func (b *owlBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *owlBuilder) compact(iri string) string {
	compacted, _ := CompactIRI(iri, b.prefixes)
	return compacted
}

func (b *owlBuilder) objectsOf(subjectKey, predicate string) []Term {
	var objects []Term
	for _, t := range b.bySubject[subjectKey] {
		if t.P.Value == predicate {
			objects = append(objects, t.O)
		}
	}
	return objects
}

func (b *owlBuilder) firstObject(subjectKey, predicate string) (Term, bool) {
	for _, t := range b.bySubject[subjectKey] {
		if t.P.Value == predicate {
			return t.O, true
		}
	}
	return nil, false
}

// classify sweeps all rdf:type triples once, bucketing subjects by entity
// kind and collecting per-property characteristic flags. IRI subjects left
// unbucketed afterwards are treated as individuals, so plain assertion
// documents decode without explicit NamedIndividual typing.
func (b *owlBuilder) classify(triples []Triple) {
	for _, t := range triples {
		if t.P.Value != RDFType {
			continue
		}
		obj, ok := t.O.(IRITerm)
		if !ok {
			continue
		}
		key := termKey(t.S)
		switch obj.Value {
		case OWLOntologyIRI:
			if _, named := t.S.(IRITerm); named && b.ontologySubject == "" {
				b.ontologySubject = key
			}
		case OWLClassIRI, RDFSClass:
			if _, named := t.S.(IRITerm); named {
				b.classes.add(key)
			}
		case OWLObjectPropertyIRI:
			b.objectProps.add(key)
		case OWLDatatypePropertyIRI:
			b.dataProps.add(key)
		case OWLAnnotationPropertyIRI:
			b.annotationProps.add(key)
		case OWLNamedIndividualIRI:
			b.individuals.add(key)
		case OWLRestrictionIRI:
			b.restrictions[key] = struct{}{}
		case RDFSDatatype:
			b.datatypes[key] = struct{}{}
		case OWLAllDisjointClasses:
			b.disjointClassSets = append(b.disjointClassSets, key)
		case OWLAllDifferent:
			b.differentSets = append(b.differentSets, key)
		case OWLAllDisjointProperties:
			b.disjointPropSets = append(b.disjointPropSets, key)
		case OWLNegativePropertyAssertion:
			b.negAssertions = append(b.negAssertions, key)
		default:
			if characteristicClasses[obj.Value] {
				b.characteristics[key] = append(b.characteristics[key], obj.Value)
			}
		}
	}
	for _, t := range triples {
		if _, named := t.S.(IRITerm); !named {
			continue
		}
		key := termKey(t.S)
		if key == b.ontologySubject || b.classes.has(key) ||
			b.objectProps.has(key) || b.dataProps.has(key) ||
			b.annotationProps.has(key) || b.individuals.has(key) {
			continue
		}
		if _, ok := b.datatypes[key]; ok {
			continue
		}
		b.individuals.add(key)
	}
}

func (b *owlBuilder) buildHeader(onto *Ontology) {
	if b.ontologySubject == "" {
		return
	}
	if o, ok := b.firstObject(b.ontologySubject, OWLVersionIRI); ok {
		if iri, ok := o.(IRITerm); ok {
			onto.VersionIRI = iri.Value
		}
	}
	for _, o := range b.objectsOf(b.ontologySubject, OWLImports) {
		if iri, ok := o.(IRITerm); ok {
			onto.AddImport(iri.Value)
		}
	}
}

func (b *owlBuilder) buildClasses(onto *Ontology) {
	for _, iri := range b.classes.order {
		name := b.compact(iri)
		c := OWLClass{IRI: name}
		for _, t := range b.bySubject[iri] {
			lit, isLit := t.O.(LiteralTerm)
			switch t.P.Value {
			case RDFSLabel:
				if isLit {
					c.Label = lit.Literal.Lexical
				}
			case RDFSComment:
				if isLit {
					c.Comment = lit.Literal.Lexical
				}
			}
		}
		onto.AddClass(c)
		for _, t := range b.bySubject[iri] {
			switch t.P.Value {
			case RDFSSubClassOf:
				onto.AddAxiom(SubClassOf(NamedClass(name), b.classExpr(t.O)))
			case OWLEquivalentClass:
				onto.AddAxiom(EquivalentClasses(NamedClass(name), b.classExpr(t.O)))
			case OWLDisjointWith:
				onto.AddAxiom(DisjointClasses(NamedClass(name), b.classExpr(t.O)))
			case OWLDisjointUnionOf:
				onto.AddAxiom(DisjointUnion(name, b.classExprList(t.O)...))
			}
		}
	}
}

func (b *owlBuilder) buildObjectProperties(onto *Ontology) {
	for _, iri := range b.objectProps.order {
		name := b.compact(iri)
		p := OWLObjectProperty{IRI: name}
		for _, t := range b.bySubject[iri] {
			switch t.P.Value {
			case RDFSLabel:
				if lit, ok := t.O.(LiteralTerm); ok {
					p.Label = lit.Literal.Lexical
				}
			case RDFSComment:
				if lit, ok := t.O.(LiteralTerm); ok {
					p.Comment = lit.Literal.Lexical
				}
			case RDFSDomain:
				if obj, ok := t.O.(IRITerm); ok {
					p.Domain = b.compact(obj.Value)
				}
				onto.AddAxiom(ObjectPropertyDomain(name, b.classExpr(t.O)))
			case RDFSRange:
				if obj, ok := t.O.(IRITerm); ok {
					p.Range = b.compact(obj.Value)
				}
				onto.AddAxiom(ObjectPropertyRange(name, b.classExpr(t.O)))
			case OWLInverseOf:
				if obj, ok := t.O.(IRITerm); ok {
					p.InverseOf = b.compact(obj.Value)
					onto.AddAxiom(InverseObjectProperties(name, p.InverseOf))
				}
			case RDFSSubPropertyOf:
				if obj, ok := t.O.(IRITerm); ok {
					onto.AddAxiom(SubObjectPropertyOf(name, b.compact(obj.Value)))
				}
			case OWLPropertyChainAxiom:
				var chain []string
				for _, item := range b.list(t.O) {
					if link, ok := item.(IRITerm); ok {
						chain = append(chain, b.compact(link.Value))
					}
				}
				onto.AddAxiom(SubPropertyChainOf(chain, name))
			case OWLEquivalentProperty:
				if obj, ok := t.O.(IRITerm); ok {
					onto.AddAxiom(EquivalentObjectProperties(name, b.compact(obj.Value)))
				}
			case OWLPropertyDisjointWith:
				if obj, ok := t.O.(IRITerm); ok {
					onto.AddAxiom(DisjointObjectProperties(name, b.compact(obj.Value)))
				}
			}
		}
		for _, char := range b.characteristics[iri] {
			switch char {
			case OWLFunctionalProperty:
				p.IsFunctional = true
				onto.AddAxiom(FunctionalObjectProperty(name))
			case OWLInverseFunctionalProperty:
				p.IsInverseFunctional = true
				onto.AddAxiom(InverseFunctionalObjectProperty(name))
			case OWLTransitiveProperty:
				p.IsTransitive = true
				onto.AddAxiom(TransitiveObjectProperty(name))
			case OWLSymmetricProperty:
				p.IsSymmetric = true
				onto.AddAxiom(SymmetricObjectProperty(name))
			case OWLAsymmetricProperty:
				p.IsAsymmetric = true
				onto.AddAxiom(AsymmetricObjectProperty(name))
			case OWLReflexiveProperty:
				p.IsReflexive = true
				onto.AddAxiom(ReflexiveObjectProperty(name))
			case OWLIrreflexiveProperty:
				p.IsIrreflexive = true
				onto.AddAxiom(IrreflexiveObjectProperty(name))
			}
		}
		onto.AddObjectProperty(p)
	}
}

func (b *owlBuilder) buildDataProperties(onto *Ontology) {
	for _, iri := range b.dataProps.order {
		name := b.compact(iri)
		p := OWLDataProperty{IRI: name}
		for _, t := range b.bySubject[iri] {
			switch t.P.Value {
			case RDFSLabel:
				if lit, ok := t.O.(LiteralTerm); ok {
					p.Label = lit.Literal.Lexical
				}
			case RDFSComment:
				if lit, ok := t.O.(LiteralTerm); ok {
					p.Comment = lit.Literal.Lexical
				}
			case RDFSDomain:
				if obj, ok := t.O.(IRITerm); ok {
					p.Domain = b.compact(obj.Value)
				}
				onto.AddAxiom(DataPropertyDomain(name, b.classExpr(t.O)))
			case RDFSRange:
				if obj, ok := t.O.(IRITerm); ok {
					p.Range = b.compact(obj.Value)
				}
				onto.AddAxiom(DataPropertyRange(name, b.dataRange(t.O)))
			case RDFSSubPropertyOf:
				if obj, ok := t.O.(IRITerm); ok {
					onto.AddAxiom(SubDataPropertyOf(name, b.compact(obj.Value)))
				}
			case OWLEquivalentProperty:
				if obj, ok := t.O.(IRITerm); ok {
					onto.AddAxiom(EquivalentDataProperties(name, b.compact(obj.Value)))
				}
			case OWLPropertyDisjointWith:
				if obj, ok := t.O.(IRITerm); ok {
					onto.AddAxiom(DisjointDataProperties(name, b.compact(obj.Value)))
				}
			}
		}
		for _, char := range b.characteristics[iri] {
			if char == OWLFunctionalProperty {
				p.IsFunctional = true
				onto.AddAxiom(FunctionalDataProperty(name))
			}
		}
		onto.AddDataProperty(p)
	}
}

func (b *owlBuilder) buildAnnotationProperties(onto *Ontology) {
	for _, iri := range b.annotationProps.order {
		p := OWLAnnotationProperty{IRI: b.compact(iri)}
		for _, t := range b.bySubject[iri] {
			lit, isLit := t.O.(LiteralTerm)
			switch t.P.Value {
			case RDFSLabel:
				if isLit {
					p.Label = lit.Literal.Lexical
				}
			case RDFSComment:
				if isLit {
					p.Comment = lit.Literal.Lexical
				}
			}
		}
		onto.AddAnnotationProperty(p)
	}
}

func (b *owlBuilder) buildIndividuals(onto *Ontology) {
	for _, iri := range b.individuals.order {
		name := b.compact(iri)
		ind := OWLNamedIndividual{IRI: name}
		subject := NamedIndividual(name)
		for _, t := range b.bySubject[iri] {
			switch t.P.Value {
			case RDFType:
				if obj, ok := t.O.(IRITerm); ok {
					if strings.HasPrefix(obj.Value, OWLNamespace) {
						continue
					}
					ind.Types = append(ind.Types, b.compact(obj.Value))
				}
				onto.AddAxiom(ClassAssertion(b.classExpr(t.O), subject))
			case RDFSLabel:
				if lit, ok := t.O.(LiteralTerm); ok {
					ind.Label = lit.Literal.Lexical
				}
			case RDFSComment:
				if lit, ok := t.O.(LiteralTerm); ok {
					ind.Comment = lit.Literal.Lexical
				}
			case OWLSameAs:
				onto.AddAxiom(SameIndividual(subject, b.individual(t.O)))
			case OWLDifferentFrom:
				onto.AddAxiom(DifferentIndividuals(subject, b.individual(t.O)))
			default:
				if strings.HasPrefix(t.P.Value, RDFNamespace) ||
					strings.HasPrefix(t.P.Value, RDFSNamespace) ||
					strings.HasPrefix(t.P.Value, OWLNamespace) {
					continue
				}
				pred := b.compact(t.P.Value)
				if lit, ok := t.O.(LiteralTerm); ok {
					onto.AddAxiom(DataPropertyAssertion(pred, subject, lit.Literal))
				} else {
					onto.AddAxiom(ObjectPropertyAssertion(pred, subject, b.individual(t.O)))
				}
			}
		}
		onto.AddIndividual(ind)
	}
}

func (b *owlBuilder) buildDisjointSets(onto *Ontology) {
	for _, key := range b.disjointClassSets {
		if members, ok := b.firstObject(key, OWLMembers); ok {
			onto.AddAxiom(DisjointClasses(b.classExprList(members)...))
		}
	}
	for _, key := range b.differentSets {
		members, ok := b.firstObject(key, OWLMembers)
		if !ok {
			members, ok = b.firstObject(key, OWLDistinctMembers)
		}
		if !ok {
			continue
		}
		var individuals []Individual
		for _, item := range b.list(members) {
			individuals = append(individuals, b.individual(item))
		}
		onto.AddAxiom(DifferentIndividuals(individuals...))
	}
	for _, key := range b.disjointPropSets {
		members, ok := b.firstObject(key, OWLMembers)
		if !ok {
			continue
		}
		items := b.list(members)
		var props []string
		isData := false
		for i, item := range items {
			iri, ok := item.(IRITerm)
			if !ok {
				continue
			}
			// Property-vs-data disambiguation hangs off the first member.
			if i == 0 {
				isData = !b.objectProps.has(iri.Value) && b.dataProps.has(iri.Value)
			}
			props = append(props, b.compact(iri.Value))
		}
		if isData {
			onto.AddAxiom(DisjointDataProperties(props...))
		} else {
			onto.AddAxiom(DisjointObjectProperties(props...))
		}
	}
}

func (b *owlBuilder) buildNegativeAssertions(onto *Ontology) {
	for _, key := range b.negAssertions {
		source, ok := b.firstObject(key, OWLSourceIndividual)
		if !ok {
			continue
		}
		propTerm, ok := b.firstObject(key, OWLAssertionProperty)
		if !ok {
			continue
		}
		propIRI, ok := propTerm.(IRITerm)
		if !ok {
			continue
		}
		prop := b.compact(propIRI.Value)
		subject := b.individual(source)
		if target, ok := b.firstObject(key, OWLTargetIndividual); ok {
			onto.AddAxiom(NegativeObjectPropertyAssertion(prop, subject, b.individual(target)))
			continue
		}
		if value, ok := b.firstObject(key, OWLTargetValue); ok {
			if lit, ok := value.(LiteralTerm); ok {
				onto.AddAxiom(NegativeDataPropertyAssertion(prop, subject, lit.Literal))
			}
		}
	}
}

func (b *owlBuilder) individual(t Term) Individual {
	switch t := t.(type) {
	case IRITerm:
		return NamedIndividual(b.compact(t.Value))
	case BlankNodeTerm:
		return AnonymousIndividual(t.ID)
	default:
		return Individual{}
	}
}

// list walks an rdf:first/rdf:rest chain until rdf:nil. A bare IRI is
// tolerated as a one-element list; rdf:nil is the empty list.
func (b *owlBuilder) list(t Term) []Term {
	if iri, ok := t.(IRITerm); ok {
		if iri.Value == RDFNil {
			return nil
		}
		return []Term{iri}
	}
	var items []Term
	key := termKey(t)
	for {
		first, ok := b.firstObject(key, RDFFirst)
		if !ok {
			return items
		}
		items = append(items, first)
		rest, ok := b.firstObject(key, RDFRest)
		if !ok {
			return items
		}
		if iri, ok := rest.(IRITerm); ok && iri.Value == RDFNil {
			return items
		}
		key = termKey(rest)
	}
}

func (b *owlBuilder) classExprList(t Term) []ClassExpression {
	items := b.list(t)
	exprs := make([]ClassExpression, 0, len(items))
	for _, item := range items {
		exprs = append(exprs, b.classExpr(item))
	}
	return exprs
}

// classExpr reconstructs a class expression from a term. Named classes map
// directly; blank nodes dispatch on owl:Restriction typing or a boolean
// combinator predicate. An unrecognized blank-node shape decodes to owl:Thing
// unless strict shape checking is on.
func (b *owlBuilder) classExpr(t Term) ClassExpression {
	switch t := t.(type) {
	case IRITerm:
		switch t.Value {
		case OWLThing:
			return Thing()
		case OWLNothing:
			return Nothing()
		default:
			return NamedClass(b.compact(t.Value))
		}
	case BlankNodeTerm:
		key := termKey(t)
		if _, ok := b.restrictions[key]; ok {
			return b.restrictionExpr(key)
		}
		if o, ok := b.firstObject(key, OWLIntersectionOf); ok {
			return Intersection(b.classExprList(o)...)
		}
		if o, ok := b.firstObject(key, OWLUnionOf); ok {
			return Union(b.classExprList(o)...)
		}
		if o, ok := b.firstObject(key, OWLComplementOf); ok {
			return Complement(b.classExpr(o))
		}
		if o, ok := b.firstObject(key, OWLOneOf); ok {
			var individuals []Individual
			for _, item := range b.list(o) {
				individuals = append(individuals, b.individual(item))
			}
			return OneOf(individuals...)
		}
	}
	return b.unrecognizedShape(t)
}

func (b *owlBuilder) unrecognizedShape(t Term) ClassExpression {
	if b.opts.StrictShapes {
		b.fail(fmt.Errorf("%w: %s", ErrUnrecognizedShape, termKey(t)))
	}
	return Thing()
}

func (b *owlBuilder) restrictionExpr(key string) ClassExpression {
	propTerm, ok := b.firstObject(key, OWLOnProperty)
	if !ok {
		return b.unrecognizedShape(BlankNodeTerm{ID: strings.TrimPrefix(key, "_:")})
	}
	propIRI, ok := propTerm.(IRITerm)
	if !ok {
		return b.unrecognizedShape(BlankNodeTerm{ID: strings.TrimPrefix(key, "_:")})
	}
	prop := b.compact(propIRI.Value)
	onData := b.dataProps.has(propIRI.Value)

	if o, ok := b.firstObject(key, OWLSomeValuesFrom); ok {
		if onData || b.isDataRangeTerm(o) {
			return DataSomeValuesFrom(prop, b.dataRange(o))
		}
		return SomeValuesFrom(prop, b.classExpr(o))
	}
	if o, ok := b.firstObject(key, OWLAllValuesFrom); ok {
		if onData || b.isDataRangeTerm(o) {
			return DataAllValuesFrom(prop, b.dataRange(o))
		}
		return AllValuesFrom(prop, b.classExpr(o))
	}
	if o, ok := b.firstObject(key, OWLHasValue); ok {
		if lit, isLit := o.(LiteralTerm); isLit {
			return DataHasValue(prop, lit.Literal)
		}
		return HasValue(prop, b.individual(o))
	}
	if _, ok := b.firstObject(key, OWLHasSelf); ok {
		return HasSelf(prop)
	}

	if n, ok := b.cardinality(key, OWLMinQualifiedCardinality); ok {
		return b.qualifiedCardinality(key, prop, n, ClassMinCardinality, ClassDataMinCardinality)
	}
	if n, ok := b.cardinality(key, OWLMaxQualifiedCardinality); ok {
		return b.qualifiedCardinality(key, prop, n, ClassMaxCardinality, ClassDataMaxCardinality)
	}
	if n, ok := b.cardinality(key, OWLQualifiedCardinality); ok {
		return b.qualifiedCardinality(key, prop, n, ClassExactCardinality, ClassDataExactCardinality)
	}
	if n, ok := b.cardinality(key, OWLMinCardinality); ok {
		if onData {
			return DataMinCardinality(prop, n, nil)
		}
		return MinCardinality(prop, n, nil)
	}
	if n, ok := b.cardinality(key, OWLMaxCardinality); ok {
		if onData {
			return DataMaxCardinality(prop, n, nil)
		}
		return MaxCardinality(prop, n, nil)
	}
	if n, ok := b.cardinality(key, OWLCardinality); ok {
		if onData {
			return DataExactCardinality(prop, n, nil)
		}
		return ExactCardinality(prop, n, nil)
	}
	return b.unrecognizedShape(BlankNodeTerm{ID: strings.TrimPrefix(key, "_:")})
}

func (b *owlBuilder) qualifiedCardinality(key, prop string, n int, objectKind, dataKind ClassExprKind) ClassExpression {
	if o, ok := b.firstObject(key, OWLOnClass); ok {
		filler := b.classExpr(o)
		return ClassExpression{Kind: objectKind, Property: prop, Cardinality: n, Filler: &filler}
	}
	if o, ok := b.firstObject(key, OWLOnDataRange); ok {
		rng := b.dataRange(o)
		return ClassExpression{Kind: dataKind, Property: prop, Cardinality: n, Range: &rng}
	}
	return ClassExpression{Kind: objectKind, Property: prop, Cardinality: n}
}

func (b *owlBuilder) cardinality(key, predicate string) (int, bool) {
	o, ok := b.firstObject(key, predicate)
	if !ok {
		return 0, false
	}
	lit, ok := o.(LiteralTerm)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(lit.Literal.Lexical)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isDataRangeTerm reports whether a restriction filler denotes a data range
// rather than a class: an XSD datatype IRI, or a node typed rdfs:Datatype.
func (b *owlBuilder) isDataRangeTerm(t Term) bool {
	switch t := t.(type) {
	case IRITerm:
		if strings.HasPrefix(t.Value, XSDNamespace) {
			return true
		}
		_, ok := b.datatypes[t.Value]
		return ok
	case BlankNodeTerm:
		_, ok := b.datatypes[termKey(t)]
		return ok
	}
	return false
}

// dataRange reconstructs a data range from a term: a datatype IRI, or a
// blank node carrying a data combinator, literal enumeration, or facet
// restriction.
func (b *owlBuilder) dataRange(t Term) DataRange {
	switch t := t.(type) {
	case IRITerm:
		return Datatype(b.compact(t.Value))
	case BlankNodeTerm:
		key := termKey(t)
		if o, ok := b.firstObject(key, OWLDatatypeComplementOf); ok {
			return DataComplement(b.dataRange(o))
		}
		if o, ok := b.firstObject(key, OWLIntersectionOf); ok {
			return DataIntersectionOf(b.dataRangeList(o)...)
		}
		if o, ok := b.firstObject(key, OWLUnionOf); ok {
			return DataUnionOf(b.dataRangeList(o)...)
		}
		if o, ok := b.firstObject(key, OWLOneOf); ok {
			var literals []Literal
			for _, item := range b.list(o) {
				if lit, isLit := item.(LiteralTerm); isLit {
					literals = append(literals, lit.Literal)
				}
			}
			return DataOneOf(literals...)
		}
		if o, ok := b.firstObject(key, OWLOnDatatype); ok {
			if dt, isIRI := o.(IRITerm); isIRI {
				return b.facetRestriction(key, b.compact(dt.Value))
			}
		}
	}
	if b.opts.StrictShapes {
		b.fail(fmt.Errorf("%w: %s", ErrUnrecognizedShape, termKey(t)))
	}
	return Datatype(b.compact(XSDString))
}

func (b *owlBuilder) dataRangeList(t Term) []DataRange {
	items := b.list(t)
	ranges := make([]DataRange, 0, len(items))
	for _, item := range items {
		ranges = append(ranges, b.dataRange(item))
	}
	return ranges
}

// facetRestriction reads the owl:withRestrictions list: each element is a
// blank node carrying exactly one (facet, literal) pair.
func (b *owlBuilder) facetRestriction(key, datatype string) DataRange {
	var facets []FacetRestriction
	if list, ok := b.firstObject(key, OWLWithRestrictions); ok {
		for _, item := range b.list(list) {
			for _, t := range b.bySubject[termKey(item)] {
				if lit, isLit := t.O.(LiteralTerm); isLit {
					facets = append(facets, FacetRestriction{
						Facet: b.compact(t.P.Value),
						Value: lit.Literal,
					})
				}
			}
		}
	}
	return DatatypeRestriction(datatype, facets...)
}
