package owl

import (
	"sort"
	"strconv"
	"strings"
)

// Rendering sections. Blocks sort by (section, subject IRI) so repeated
// encodings of the same ontology produce identical text.
const (
	sectionHeader = iota
	sectionClass
	sectionObjectProperty
	sectionDataProperty
	sectionAnnotationProperty
	sectionIndividual
)

// encodeBlock accumulates one subject's statements. Multiple rdf:type values
// merge onto a single "a" clause; repeated predicates merge into one
// comma-separated object list; duplicate statements collapse.
type encodeBlock struct {
	section int
	subject string

	types   []string
	typeSet map[string]struct{}

	preds   []string
	objects map[string][]string
	seen    map[string]struct{}
}

func (blk *encodeBlock) addType(t string) {
	if _, ok := blk.typeSet[t]; ok {
		return
	}
	blk.typeSet[t] = struct{}{}
	blk.types = append(blk.types, t)
}

func (blk *encodeBlock) add(pred, obj string) {
	key := pred + " " + obj
	if _, ok := blk.seen[key]; ok {
		return
	}
	blk.seen[key] = struct{}{}
	if _, ok := blk.objects[pred]; !ok {
		blk.preds = append(blk.preds, pred)
	}
	blk.objects[pred] = append(blk.objects[pred], obj)
}

func (blk *encodeBlock) render(w *strings.Builder) {
	w.WriteString(blk.subject)
	wrote := false
	if len(blk.types) > 0 {
		w.WriteString(" a ")
		w.WriteString(strings.Join(blk.types, ", "))
		wrote = true
	}
	for _, pred := range blk.preds {
		if wrote {
			w.WriteString(" ;\n    ")
		} else {
			w.WriteString(" ")
			wrote = true
		}
		w.WriteString(pred)
		w.WriteString(" ")
		w.WriteString(strings.Join(blk.objects[pred], ", "))
	}
	w.WriteString(" .\n")
}

// turtleEncoder renders an Ontology as Turtle text. Encoding is total: any
// well-formed ontology value renders without error.
type turtleEncoder struct {
	onto     *Ontology
	prefixes map[string]string

	blocks    map[string]*encodeBlock
	anonymous []*encodeBlock
}

// Encode renders the ontology as deterministic Turtle text.
func Encode(o *Ontology) string {
	enc := &turtleEncoder{
		onto:     o,
		prefixes: o.Prefixes,
		blocks:   map[string]*encodeBlock{},
	}
	enc.collectHeader()
	enc.collectEntities()
	for _, a := range o.Axioms {
		enc.collectAxiom(a)
	}
	return enc.render()
}

func (enc *turtleEncoder) block(section int, subject string) *encodeBlock {
	key := strconv.Itoa(section) + "|" + subject
	if blk, ok := enc.blocks[key]; ok {
		return blk
	}
	blk := &encodeBlock{
		section: section,
		subject: subject,
		typeSet: map[string]struct{}{},
		objects: map[string][]string{},
		seen:    map[string]struct{}{},
	}
	enc.blocks[key] = blk
	return blk
}

func (enc *turtleEncoder) anonymousBlock() *encodeBlock {
	blk := &encodeBlock{
		subject: "[]",
		typeSet: map[string]struct{}{},
		objects: map[string][]string{},
		seen:    map[string]struct{}{},
	}
	enc.anonymous = append(enc.anonymous, blk)
	return blk
}

func (enc *turtleEncoder) collectHeader() {
	if enc.onto.IRI == "" {
		return
	}
	blk := enc.block(sectionHeader, enc.renderIRI(enc.onto.IRI))
	blk.addType("owl:Ontology")
	if enc.onto.VersionIRI != "" {
		blk.add("owl:versionIRI", enc.renderIRI(enc.onto.VersionIRI))
	}
	for _, imp := range enc.onto.Imports {
		blk.add("owl:imports", enc.renderIRI(imp))
	}
}

func (enc *turtleEncoder) collectEntities() {
	for _, c := range enc.onto.Classes {
		blk := enc.block(sectionClass, enc.renderIRI(c.IRI))
		blk.addType("owl:Class")
		if c.Label != "" {
			blk.add("rdfs:label", enc.renderString(c.Label))
		}
		if c.Comment != "" {
			blk.add("rdfs:comment", enc.renderString(c.Comment))
		}
	}
	for _, p := range enc.onto.ObjectProperties {
		blk := enc.block(sectionObjectProperty, enc.renderIRI(p.IRI))
		blk.addType("owl:ObjectProperty")
		for _, char := range objectCharacteristics(p) {
			blk.addType(char)
		}
		if p.Label != "" {
			blk.add("rdfs:label", enc.renderString(p.Label))
		}
		if p.Comment != "" {
			blk.add("rdfs:comment", enc.renderString(p.Comment))
		}
		if p.Domain != "" {
			blk.add("rdfs:domain", enc.renderIRI(p.Domain))
		}
		if p.Range != "" {
			blk.add("rdfs:range", enc.renderIRI(p.Range))
		}
		if p.InverseOf != "" {
			blk.add("owl:inverseOf", enc.renderIRI(p.InverseOf))
		}
	}
	for _, p := range enc.onto.DataProperties {
		blk := enc.block(sectionDataProperty, enc.renderIRI(p.IRI))
		blk.addType("owl:DatatypeProperty")
		if p.IsFunctional {
			blk.addType("owl:FunctionalProperty")
		}
		if p.Label != "" {
			blk.add("rdfs:label", enc.renderString(p.Label))
		}
		if p.Comment != "" {
			blk.add("rdfs:comment", enc.renderString(p.Comment))
		}
		if p.Domain != "" {
			blk.add("rdfs:domain", enc.renderIRI(p.Domain))
		}
		if p.Range != "" {
			blk.add("rdfs:range", enc.renderIRI(p.Range))
		}
	}
	for _, p := range enc.onto.AnnotationProperties {
		blk := enc.block(sectionAnnotationProperty, enc.renderIRI(p.IRI))
		blk.addType("owl:AnnotationProperty")
		if p.Label != "" {
			blk.add("rdfs:label", enc.renderString(p.Label))
		}
		if p.Comment != "" {
			blk.add("rdfs:comment", enc.renderString(p.Comment))
		}
	}
	for _, ind := range enc.onto.Individuals {
		blk := enc.block(sectionIndividual, enc.renderIRI(ind.IRI))
		blk.addType("owl:NamedIndividual")
		for _, t := range ind.Types {
			blk.addType(enc.renderIRI(t))
		}
		if ind.Label != "" {
			blk.add("rdfs:label", enc.renderString(ind.Label))
		}
		if ind.Comment != "" {
			blk.add("rdfs:comment", enc.renderString(ind.Comment))
		}
	}
}

func objectCharacteristics(p OWLObjectProperty) []string {
	var chars []string
	if p.IsFunctional {
		chars = append(chars, "owl:FunctionalProperty")
	}
	if p.IsInverseFunctional {
		chars = append(chars, "owl:InverseFunctionalProperty")
	}
	if p.IsTransitive {
		chars = append(chars, "owl:TransitiveProperty")
	}
	if p.IsSymmetric {
		chars = append(chars, "owl:SymmetricProperty")
	}
	if p.IsAsymmetric {
		chars = append(chars, "owl:AsymmetricProperty")
	}
	if p.IsReflexive {
		chars = append(chars, "owl:ReflexiveProperty")
	}
	if p.IsIrreflexive {
		chars = append(chars, "owl:IrreflexiveProperty")
	}
	return chars
}

func (enc *turtleEncoder) collectAxiom(a Axiom) {
	switch a.Kind {
	case AxiomSubClassOf:
		blk := enc.block(sectionClass, enc.renderClassExpr(a.Class))
		blk.add("rdfs:subClassOf", enc.renderClassExpr(a.SuperClass))
	case AxiomEquivalentClasses:
		enc.pairwiseClasses(a.Classes, "owl:equivalentClass")
	case AxiomDisjointClasses:
		if len(a.Classes) == 2 {
			enc.pairwiseClasses(a.Classes, "owl:disjointWith")
			return
		}
		blk := enc.anonymousBlock()
		blk.addType("owl:AllDisjointClasses")
		blk.add("owl:members", enc.renderClassExprList(a.Classes))
	case AxiomDisjointUnion:
		blk := enc.block(sectionClass, enc.renderClassExpr(a.Class))
		blk.add("owl:disjointUnionOf", enc.renderClassExprList(a.Classes))
	case AxiomSubObjectPropertyOf:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).
			add("rdfs:subPropertyOf", enc.renderIRI(a.SuperProperty))
	case AxiomSubPropertyChainOf:
		links := make([]string, len(a.Chain))
		for i, link := range a.Chain {
			links[i] = enc.renderIRI(link)
		}
		enc.block(sectionObjectProperty, enc.renderIRI(a.SuperProperty)).
			add("owl:propertyChainAxiom", "( "+strings.Join(links, " ")+" )")
	case AxiomEquivalentObjectProperties:
		enc.pairwiseProperties(sectionObjectProperty, a.Properties, "owl:equivalentProperty")
	case AxiomDisjointObjectProperties:
		enc.disjointProperties(sectionObjectProperty, a.Properties)
	case AxiomInverseObjectProperties:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).
			add("owl:inverseOf", enc.renderIRI(a.SuperProperty))
	case AxiomObjectPropertyDomain:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).
			add("rdfs:domain", enc.renderClassExpr(a.Class))
	case AxiomObjectPropertyRange:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).
			add("rdfs:range", enc.renderClassExpr(a.Range))
	case AxiomFunctionalObjectProperty:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).addType("owl:FunctionalProperty")
	case AxiomInverseFunctionalObjectProperty:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).addType("owl:InverseFunctionalProperty")
	case AxiomTransitiveObjectProperty:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).addType("owl:TransitiveProperty")
	case AxiomSymmetricObjectProperty:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).addType("owl:SymmetricProperty")
	case AxiomAsymmetricObjectProperty:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).addType("owl:AsymmetricProperty")
	case AxiomReflexiveObjectProperty:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).addType("owl:ReflexiveProperty")
	case AxiomIrreflexiveObjectProperty:
		enc.block(sectionObjectProperty, enc.renderIRI(a.Property)).addType("owl:IrreflexiveProperty")
	case AxiomSubDataPropertyOf:
		enc.block(sectionDataProperty, enc.renderIRI(a.Property)).
			add("rdfs:subPropertyOf", enc.renderIRI(a.SuperProperty))
	case AxiomEquivalentDataProperties:
		enc.pairwiseProperties(sectionDataProperty, a.Properties, "owl:equivalentProperty")
	case AxiomDisjointDataProperties:
		enc.disjointProperties(sectionDataProperty, a.Properties)
	case AxiomDataPropertyDomain:
		enc.block(sectionDataProperty, enc.renderIRI(a.Property)).
			add("rdfs:domain", enc.renderClassExpr(a.Class))
	case AxiomDataPropertyRange:
		enc.block(sectionDataProperty, enc.renderIRI(a.Property)).
			add("rdfs:range", enc.renderDataRange(a.DataRange))
	case AxiomFunctionalDataProperty:
		enc.block(sectionDataProperty, enc.renderIRI(a.Property)).addType("owl:FunctionalProperty")
	case AxiomClassAssertion:
		enc.block(sectionIndividual, enc.renderIndividual(a.Subject)).
			addType(enc.renderClassExpr(a.Class))
	case AxiomObjectPropertyAssertion:
		enc.block(sectionIndividual, enc.renderIndividual(a.Subject)).
			add(enc.renderIRI(a.Property), enc.renderIndividual(a.Object))
	case AxiomDataPropertyAssertion:
		enc.block(sectionIndividual, enc.renderIndividual(a.Subject)).
			add(enc.renderIRI(a.Property), enc.renderLiteral(a.Value))
	case AxiomNegativeObjectPropertyAssertion:
		blk := enc.anonymousBlock()
		blk.addType("owl:NegativePropertyAssertion")
		blk.add("owl:sourceIndividual", enc.renderIndividual(a.Subject))
		blk.add("owl:assertionProperty", enc.renderIRI(a.Property))
		blk.add("owl:targetIndividual", enc.renderIndividual(a.Object))
	case AxiomNegativeDataPropertyAssertion:
		blk := enc.anonymousBlock()
		blk.addType("owl:NegativePropertyAssertion")
		blk.add("owl:sourceIndividual", enc.renderIndividual(a.Subject))
		blk.add("owl:assertionProperty", enc.renderIRI(a.Property))
		blk.add("owl:targetValue", enc.renderLiteral(a.Value))
	case AxiomSameIndividual:
		for i := 1; i < len(a.Individuals); i++ {
			enc.block(sectionIndividual, enc.renderIndividual(a.Individuals[0])).
				add("owl:sameAs", enc.renderIndividual(a.Individuals[i]))
		}
	case AxiomDifferentIndividuals:
		if len(a.Individuals) == 2 {
			enc.block(sectionIndividual, enc.renderIndividual(a.Individuals[0])).
				add("owl:differentFrom", enc.renderIndividual(a.Individuals[1]))
			return
		}
		members := make([]string, len(a.Individuals))
		for i, ind := range a.Individuals {
			members[i] = enc.renderIndividual(ind)
		}
		blk := enc.anonymousBlock()
		blk.addType("owl:AllDifferent")
		blk.add("owl:distinctMembers", "( "+strings.Join(members, " ")+" )")
	case AxiomDeclaration:
		enc.collectDeclaration(a)
	}
}

func (enc *turtleEncoder) collectDeclaration(a Axiom) {
	subject := enc.renderIRI(a.Entity)
	switch a.EntityKind {
	case EntityClass:
		enc.block(sectionClass, subject).addType("owl:Class")
	case EntityObjectProperty:
		enc.block(sectionObjectProperty, subject).addType("owl:ObjectProperty")
	case EntityDataProperty:
		enc.block(sectionDataProperty, subject).addType("owl:DatatypeProperty")
	case EntityAnnotationProperty:
		enc.block(sectionAnnotationProperty, subject).addType("owl:AnnotationProperty")
	case EntityNamedIndividual:
		enc.block(sectionIndividual, subject).addType("owl:NamedIndividual")
	case EntityDatatype:
		enc.block(sectionClass, subject).addType("rdfs:Datatype")
	}
}

func (enc *turtleEncoder) pairwiseClasses(classes []ClassExpression, pred string) {
	if len(classes) < 2 {
		return
	}
	blk := enc.block(sectionClass, enc.renderClassExpr(classes[0]))
	for _, c := range classes[1:] {
		blk.add(pred, enc.renderClassExpr(c))
	}
}

func (enc *turtleEncoder) pairwiseProperties(section int, props []string, pred string) {
	if len(props) < 2 {
		return
	}
	blk := enc.block(section, enc.renderIRI(props[0]))
	for _, p := range props[1:] {
		blk.add(pred, enc.renderIRI(p))
	}
}

func (enc *turtleEncoder) disjointProperties(section int, props []string) {
	if len(props) == 2 {
		enc.block(section, enc.renderIRI(props[0])).
			add("owl:propertyDisjointWith", enc.renderIRI(props[1]))
		return
	}
	members := make([]string, len(props))
	for i, p := range props {
		members[i] = enc.renderIRI(p)
	}
	blk := enc.anonymousBlock()
	blk.addType("owl:AllDisjointProperties")
	blk.add("owl:members", "( "+strings.Join(members, " ")+" )")
}

func (enc *turtleEncoder) render() string {
	var w strings.Builder
	prefixNames := make([]string, 0, len(enc.prefixes))
	for name := range enc.prefixes {
		prefixNames = append(prefixNames, name)
	}
	sort.Strings(prefixNames)
	for _, name := range prefixNames {
		w.WriteString("@prefix ")
		w.WriteString(name)
		w.WriteString(": <")
		w.WriteString(enc.prefixes[name])
		w.WriteString("> .\n")
	}

	blocks := make([]*encodeBlock, 0, len(enc.blocks))
	for _, blk := range enc.blocks {
		blocks = append(blocks, blk)
	}
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].section != blocks[j].section {
			return blocks[i].section < blocks[j].section
		}
		return blocks[i].subject < blocks[j].subject
	})
	section := -1
	for _, blk := range blocks {
		if blk.section != section {
			w.WriteString("\n")
			section = blk.section
		}
		blk.render(&w)
	}
	for _, blk := range enc.anonymous {
		w.WriteString("\n")
		blk.render(&w)
	}
	return w.String()
}

// renderIRI renders an IRI reference: pre-compacted prefixed names pass
// through; full IRIs compact against the prefix table when a namespace
// matches, otherwise they render bracketed.
func (enc *turtleEncoder) renderIRI(iri string) string {
	if strings.Contains(iri, "://") || strings.HasPrefix(iri, "urn:") {
		if compacted, ok := CompactIRI(iri, enc.prefixes); ok {
			return compacted
		}
		return "<" + iri + ">"
	}
	if strings.Contains(iri, ":") {
		return iri
	}
	return "<" + iri + ">"
}

func (enc *turtleEncoder) renderIndividual(ind Individual) string {
	if ind.Kind == IndividualAnonymous {
		return "_:" + ind.NodeID
	}
	return enc.renderIRI(ind.IRI)
}

func (enc *turtleEncoder) renderString(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		"\"", "\\\"",
		"\n", "\\n",
		"\r", "\\r",
		"\t", "\\t",
	)
	return "\"" + r.Replace(s) + "\""
}

// renderLiteral renders a literal, using the bare Turtle form for numeric
// and boolean literals whose lexical form re-lexes to the same datatype.
func (enc *turtleEncoder) renderLiteral(l Literal) string {
	switch {
	case l.Lang != "":
		return enc.renderString(l.Lexical) + "@" + l.Lang
	case expandedDatatype(l.Datatype) == XSDInteger, expandedDatatype(l.Datatype) == XSDBoolean:
		return l.Lexical
	case expandedDatatype(l.Datatype) == XSDDecimal && strings.Contains(l.Lexical, "."):
		return l.Lexical
	case expandedDatatype(l.Datatype) == XSDDouble && strings.ContainsAny(l.Lexical, "eE"):
		return l.Lexical
	case l.Datatype == "" || expandedDatatype(l.Datatype) == XSDString:
		return enc.renderString(l.Lexical)
	default:
		return enc.renderString(l.Lexical) + "^^" + enc.renderIRI(l.Datatype)
	}
}

func expandedDatatype(datatype string) string {
	expanded, _ := ExpandIRI(datatype, DefaultPrefixes())
	return expanded
}

func (enc *turtleEncoder) renderClassExprList(classes []ClassExpression) string {
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = enc.renderClassExpr(c)
	}
	return "( " + strings.Join(parts, " ") + " )"
}

// renderClassExpr renders a class expression with exactly the predicate
// vocabulary the decoder recognizes, so encoder output is re-parseable.
func (enc *turtleEncoder) renderClassExpr(e ClassExpression) string {
	switch e.Kind {
	case ClassNamed:
		return enc.renderIRI(e.IRI)
	case ClassThing:
		return "owl:Thing"
	case ClassNothing:
		return "owl:Nothing"
	case ClassIntersection:
		return "[ owl:intersectionOf " + enc.renderClassExprList(e.Operands) + " ]"
	case ClassUnion:
		return "[ owl:unionOf " + enc.renderClassExprList(e.Operands) + " ]"
	case ClassComplement:
		return "[ owl:complementOf " + enc.renderClassExpr(*e.Operand) + " ]"
	case ClassOneOf:
		members := make([]string, len(e.Individuals))
		for i, ind := range e.Individuals {
			members[i] = enc.renderIndividual(ind)
		}
		return "[ owl:oneOf ( " + strings.Join(members, " ") + " ) ]"
	case ClassSomeValuesFrom:
		return enc.renderRestriction(e.Property, "owl:someValuesFrom", enc.renderClassExpr(*e.Filler))
	case ClassAllValuesFrom:
		return enc.renderRestriction(e.Property, "owl:allValuesFrom", enc.renderClassExpr(*e.Filler))
	case ClassHasValue:
		return enc.renderRestriction(e.Property, "owl:hasValue", enc.renderIndividual(e.Individual))
	case ClassHasSelf:
		return enc.renderRestriction(e.Property, "owl:hasSelf", "true")
	case ClassMinCardinality:
		return enc.renderCardinalityRestriction(e, "owl:minCardinality", "owl:minQualifiedCardinality", "owl:onClass")
	case ClassMaxCardinality:
		return enc.renderCardinalityRestriction(e, "owl:maxCardinality", "owl:maxQualifiedCardinality", "owl:onClass")
	case ClassExactCardinality:
		return enc.renderCardinalityRestriction(e, "owl:cardinality", "owl:qualifiedCardinality", "owl:onClass")
	case ClassDataSomeValuesFrom:
		return enc.renderRestriction(e.Property, "owl:someValuesFrom", enc.renderDataRange(*e.Range))
	case ClassDataAllValuesFrom:
		return enc.renderRestriction(e.Property, "owl:allValuesFrom", enc.renderDataRange(*e.Range))
	case ClassDataHasValue:
		return enc.renderRestriction(e.Property, "owl:hasValue", enc.renderLiteral(e.Value))
	case ClassDataMinCardinality:
		return enc.renderCardinalityRestriction(e, "owl:minCardinality", "owl:minQualifiedCardinality", "owl:onDataRange")
	case ClassDataMaxCardinality:
		return enc.renderCardinalityRestriction(e, "owl:maxCardinality", "owl:maxQualifiedCardinality", "owl:onDataRange")
	case ClassDataExactCardinality:
		return enc.renderCardinalityRestriction(e, "owl:cardinality", "owl:qualifiedCardinality", "owl:onDataRange")
	default:
		panic("owl: unknown class expression kind")
	}
}

func (enc *turtleEncoder) renderRestriction(property, pred, obj string) string {
	return "[ a owl:Restriction ; owl:onProperty " + enc.renderIRI(property) +
		" ; " + pred + " " + obj + " ]"
}

func (enc *turtleEncoder) renderCardinalityRestriction(e ClassExpression, bare, qualified, onPred string) string {
	n := "\"" + strconv.Itoa(e.Cardinality) + "\"^^xsd:nonNegativeInteger"
	prefix := "[ a owl:Restriction ; owl:onProperty " + enc.renderIRI(e.Property) + " ; "
	if e.Filler != nil {
		return prefix + qualified + " " + n + " ; " + onPred + " " + enc.renderClassExpr(*e.Filler) + " ]"
	}
	if e.Range != nil {
		return prefix + qualified + " " + n + " ; " + onPred + " " + enc.renderDataRange(*e.Range) + " ]"
	}
	return prefix + bare + " " + n + " ]"
}

func (enc *turtleEncoder) renderDataRange(d DataRange) string {
	switch d.Kind {
	case DataDatatype:
		return enc.renderIRI(d.Datatype)
	case DataIntersection:
		return "[ a rdfs:Datatype ; owl:intersectionOf " + enc.renderDataRangeList(d.Operands) + " ]"
	case DataUnion:
		return "[ a rdfs:Datatype ; owl:unionOf " + enc.renderDataRangeList(d.Operands) + " ]"
	case DataComplementKind:
		return "[ a rdfs:Datatype ; owl:datatypeComplementOf " + enc.renderDataRange(*d.Operand) + " ]"
	case DataOneOfKind:
		members := make([]string, len(d.Literals))
		for i, lit := range d.Literals {
			members[i] = enc.renderLiteral(lit)
		}
		return "[ a rdfs:Datatype ; owl:oneOf ( " + strings.Join(members, " ") + " ) ]"
	case DataRestrictionKind:
		facets := make([]string, len(d.Facets))
		for i, f := range d.Facets {
			facets[i] = "[ " + enc.renderIRI(f.Facet) + " " + enc.renderLiteral(f.Value) + " ]"
		}
		return "[ a rdfs:Datatype ; owl:onDatatype " + enc.renderIRI(d.Datatype) +
			" ; owl:withRestrictions ( " + strings.Join(facets, " ") + " ) ]"
	default:
		panic("owl: unknown data range kind")
	}
}

func (enc *turtleEncoder) renderDataRangeList(ranges []DataRange) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = enc.renderDataRange(r)
	}
	return "( " + strings.Join(parts, " ") + " )"
}
