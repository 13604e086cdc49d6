package owl

import "testing"

// JSON-LD does not carry the document's prefix table, so entity names come
// back as full IRIs. The tests therefore build the fixture with full IRIs
// and no custom prefixes.
func jsonldOntology() *Ontology {
	return NewBuilder("http://example.org/onto", map[string]string{}).
		Class(OWLClass{IRI: "http://example.org/onto#Person", Label: "Person"}).
		Class(OWLClass{IRI: "http://example.org/onto#Parent"}).
		ObjectProperty(OWLObjectProperty{IRI: "http://example.org/onto#hasChild"}).
		Individual(OWLNamedIndividual{IRI: "http://example.org/onto#Alice"}).
		Axioms(
			SubClassOf(
				NamedClass("http://example.org/onto#Parent"),
				NamedClass("http://example.org/onto#Person"),
			),
			DataPropertyAssertion("http://example.org/onto#age",
				NamedIndividual("http://example.org/onto#Alice"), IntegerLiteral(30)),
		).
		Build()
}

func TestJSONLDRoundTrip(t *testing.T) {
	o := jsonldOntology()
	doc, err := EncodeJSONLD(o)
	if err != nil {
		t.Fatalf("EncodeJSONLD: %v", err)
	}
	got, err := DecodeJSONLD(doc)
	if err != nil {
		t.Fatalf("DecodeJSONLD: %v", err)
	}
	if got.IRI != o.IRI {
		t.Errorf("IRI = %q, want %q", got.IRI, o.IRI)
	}
	if len(got.Classes) != len(o.Classes) {
		t.Errorf("classes: got %d, want %d", len(got.Classes), len(o.Classes))
	}
	if len(got.ObjectProperties) != len(o.ObjectProperties) {
		t.Errorf("object properties: got %d, want %d",
			len(got.ObjectProperties), len(o.ObjectProperties))
	}
	if len(got.Individuals) != len(o.Individuals) {
		t.Errorf("individuals: got %d, want %d", len(got.Individuals), len(o.Individuals))
	}
	if _, ok := got.ClassByIRI("http://example.org/onto#Person"); !ok {
		t.Errorf("http://example.org/onto#Person missing: %v", got.Classes)
	}
	found := false
	for _, a := range got.Axioms {
		if a.Kind == AxiomSubClassOf &&
			a.Class.IRI == "http://example.org/onto#Parent" &&
			a.SuperClass.IRI == "http://example.org/onto#Person" {
			found = true
		}
	}
	if !found {
		t.Errorf("subclass axiom lost: %v", got.Axioms)
	}
}

func TestJSONLDPreservesLiterals(t *testing.T) {
	doc, err := EncodeJSONLD(jsonldOntology())
	if err != nil {
		t.Fatalf("EncodeJSONLD: %v", err)
	}
	got, err := DecodeJSONLD(doc)
	if err != nil {
		t.Fatalf("DecodeJSONLD: %v", err)
	}
	for _, a := range got.Axioms {
		if a.Kind != AxiomDataPropertyAssertion {
			continue
		}
		if v, ok := a.Value.Int(); !ok || v != 30 {
			t.Fatalf("value = %+v", a.Value)
		}
		return
	}
	t.Fatal("data assertion lost")
}
