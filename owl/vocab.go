package owl

import "strings"

// Namespace IRIs for the vocabularies the codec understands.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// rdf: vocabulary.
const (
	RDFType       = RDFNamespace + "type"
	RDFFirst      = RDFNamespace + "first"
	RDFRest       = RDFNamespace + "rest"
	RDFNil        = RDFNamespace + "nil"
	RDFLangString = RDFNamespace + "langString"
)

// rdfs: vocabulary.
const (
	RDFSLabel         = RDFSNamespace + "label"
	RDFSComment       = RDFSNamespace + "comment"
	RDFSDomain        = RDFSNamespace + "domain"
	RDFSRange         = RDFSNamespace + "range"
	RDFSSubClassOf    = RDFSNamespace + "subClassOf"
	RDFSSubPropertyOf = RDFSNamespace + "subPropertyOf"
	RDFSDatatype      = RDFSNamespace + "Datatype"
	RDFSClass         = RDFSNamespace + "Class"
)

// owl: vocabulary.
const (
	OWLOntologyIRI           = OWLNamespace + "Ontology"
	OWLVersionIRI            = OWLNamespace + "versionIRI"
	OWLImports               = OWLNamespace + "imports"
	OWLClassIRI              = OWLNamespace + "Class"
	OWLThing                 = OWLNamespace + "Thing"
	OWLNothing               = OWLNamespace + "Nothing"
	OWLObjectPropertyIRI     = OWLNamespace + "ObjectProperty"
	OWLDatatypePropertyIRI   = OWLNamespace + "DatatypeProperty"
	OWLAnnotationPropertyIRI = OWLNamespace + "AnnotationProperty"
	OWLNamedIndividualIRI    = OWLNamespace + "NamedIndividual"
	OWLRestrictionIRI        = OWLNamespace + "Restriction"

	OWLOnProperty              = OWLNamespace + "onProperty"
	OWLOnClass                 = OWLNamespace + "onClass"
	OWLOnDataRange             = OWLNamespace + "onDataRange"
	OWLOnDatatype              = OWLNamespace + "onDatatype"
	OWLWithRestrictions        = OWLNamespace + "withRestrictions"
	OWLSomeValuesFrom          = OWLNamespace + "someValuesFrom"
	OWLAllValuesFrom           = OWLNamespace + "allValuesFrom"
	OWLHasValue                = OWLNamespace + "hasValue"
	OWLHasSelf                 = OWLNamespace + "hasSelf"
	OWLMinCardinality          = OWLNamespace + "minCardinality"
	OWLMaxCardinality          = OWLNamespace + "maxCardinality"
	OWLCardinality             = OWLNamespace + "cardinality"
	OWLMinQualifiedCardinality = OWLNamespace + "minQualifiedCardinality"
	OWLMaxQualifiedCardinality = OWLNamespace + "maxQualifiedCardinality"
	OWLQualifiedCardinality    = OWLNamespace + "qualifiedCardinality"

	OWLIntersectionOf       = OWLNamespace + "intersectionOf"
	OWLUnionOf              = OWLNamespace + "unionOf"
	OWLComplementOf         = OWLNamespace + "complementOf"
	OWLOneOf                = OWLNamespace + "oneOf"
	OWLDatatypeComplementOf = OWLNamespace + "datatypeComplementOf"

	OWLEquivalentClass      = OWLNamespace + "equivalentClass"
	OWLDisjointWith         = OWLNamespace + "disjointWith"
	OWLDisjointUnionOf      = OWLNamespace + "disjointUnionOf"
	OWLEquivalentProperty   = OWLNamespace + "equivalentProperty"
	OWLPropertyDisjointWith = OWLNamespace + "propertyDisjointWith"
	OWLInverseOf            = OWLNamespace + "inverseOf"
	OWLPropertyChainAxiom   = OWLNamespace + "propertyChainAxiom"

	OWLAllDisjointClasses    = OWLNamespace + "AllDisjointClasses"
	OWLAllDifferent          = OWLNamespace + "AllDifferent"
	OWLAllDisjointProperties = OWLNamespace + "AllDisjointProperties"
	OWLMembers               = OWLNamespace + "members"
	OWLDistinctMembers       = OWLNamespace + "distinctMembers"

	OWLNegativePropertyAssertion = OWLNamespace + "NegativePropertyAssertion"
	OWLSourceIndividual          = OWLNamespace + "sourceIndividual"
	OWLAssertionProperty         = OWLNamespace + "assertionProperty"
	OWLTargetIndividual          = OWLNamespace + "targetIndividual"
	OWLTargetValue               = OWLNamespace + "targetValue"

	OWLSameAs        = OWLNamespace + "sameAs"
	OWLDifferentFrom = OWLNamespace + "differentFrom"

	OWLFunctionalProperty        = OWLNamespace + "FunctionalProperty"
	OWLInverseFunctionalProperty = OWLNamespace + "InverseFunctionalProperty"
	OWLTransitiveProperty        = OWLNamespace + "TransitiveProperty"
	OWLSymmetricProperty         = OWLNamespace + "SymmetricProperty"
	OWLAsymmetricProperty        = OWLNamespace + "AsymmetricProperty"
	OWLReflexiveProperty         = OWLNamespace + "ReflexiveProperty"
	OWLIrreflexiveProperty       = OWLNamespace + "IrreflexiveProperty"
)

// DefaultPrefixes returns the prefix table every new Ontology is seeded with.
// Caller-supplied bindings override these.
func DefaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  RDFNamespace,
		"rdfs": RDFSNamespace,
		"owl":  OWLNamespace,
		"xsd":  XSDNamespace,
	}
}

// ExpandIRI expands a prefixed name against a prefix table and reports whether
// the prefix was defined. Inputs that are not prefixed names (no colon, or a
// "://" scheme colon, or bracketed) pass through unchanged with ok=true.
func ExpandIRI(name string, prefixes map[string]string) (string, bool) {
	if name == "" {
		return "", true
	}
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		return name[1 : len(name)-1], true
	}
	idx := strings.Index(name, ":")
	if idx < 0 || strings.Contains(name, "://") {
		return name, true
	}
	ns, ok := prefixes[name[:idx]]
	if !ok {
		return name, false
	}
	return ns + name[idx+1:], true
}

// CompactIRI compacts a full IRI to prefixed form against a prefix table.
// The longest matching namespace wins; when several prefixes bind that
// namespace, the lexicographically smallest prefix is chosen. A full IRI is
// compactable iff some namespace is its string prefix; otherwise the IRI is
// returned unchanged with ok=false.
func CompactIRI(iri string, prefixes map[string]string) (string, bool) {
	bestPrefix := ""
	bestNS := ""
	found := false
	for prefix, ns := range prefixes {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS = ns
			bestPrefix = prefix
			found = true
		}
	}
	if !found || len(iri) == len(bestNS) {
		return iri, false
	}
	return bestPrefix + ":" + iri[len(bestNS):], true
}

// characteristicClasses maps the owl: characteristic class IRIs to the flag
// they set on an object property.
var characteristicClasses = map[string]bool{
	OWLFunctionalProperty:        true,
	OWLInverseFunctionalProperty: true,
	OWLTransitiveProperty:        true,
	OWLSymmetricProperty:         true,
	OWLAsymmetricProperty:        true,
	OWLReflexiveProperty:         true,
	OWLIrreflexiveProperty:       true,
}
