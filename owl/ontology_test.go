package owl

import (
	"errors"
	"testing"
)

func familyOntology() *Ontology {
	return NewBuilder("http://example.org/family", map[string]string{
		"ex": "http://example.org/family#",
	}).
		VersionIRI("http://example.org/family/1.0").
		Import("http://example.org/base").
		Class(OWLClass{IRI: "ex:Person", Label: "Person"}).
		Class(OWLClass{IRI: "ex:Parent"}).
		ObjectProperty(OWLObjectProperty{IRI: "ex:hasChild", InverseOf: "ex:hasParent"}).
		ObjectProperty(OWLObjectProperty{IRI: "ex:hasParent"}).
		DataProperty(OWLDataProperty{IRI: "ex:age", Range: "xsd:integer", IsFunctional: true}).
		Individual(OWLNamedIndividual{IRI: "ex:Alice", Types: []string{"ex:Person"}}).
		Individual(OWLNamedIndividual{IRI: "ex:Bob"}).
		Axioms(
			SubClassOf(NamedClass("ex:Parent"), NamedClass("ex:Person")),
			ObjectPropertyDomain("ex:hasChild", NamedClass("ex:Parent")),
			ObjectPropertyRange("ex:hasChild", NamedClass("ex:Person")),
			ClassAssertion(NamedClass("ex:Person"), NamedIndividual("ex:Alice")),
			ObjectPropertyAssertion("ex:hasChild", NamedIndividual("ex:Alice"), NamedIndividual("ex:Bob")),
			DataPropertyAssertion("ex:age", NamedIndividual("ex:Alice"), IntegerLiteral(30)),
			Declaration(EntityClass, "ex:Person"),
		).
		Build()
}

func TestBuilderAssemblesOntology(t *testing.T) {
	o := familyOntology()
	if o.IRI != "http://example.org/family" {
		t.Fatalf("IRI = %q", o.IRI)
	}
	if o.VersionIRI != "http://example.org/family/1.0" {
		t.Errorf("VersionIRI = %q", o.VersionIRI)
	}
	if len(o.Imports) != 1 || o.Imports[0] != "http://example.org/base" {
		t.Errorf("Imports = %v", o.Imports)
	}
	if len(o.Classes) != 2 || len(o.ObjectProperties) != 2 || len(o.DataProperties) != 1 {
		t.Errorf("entity counts: %d classes, %d object props, %d data props",
			len(o.Classes), len(o.ObjectProperties), len(o.DataProperties))
	}
	if len(o.Axioms) != 7 {
		t.Errorf("len(Axioms) = %d, want 7", len(o.Axioms))
	}
}

func TestEntityLookup(t *testing.T) {
	o := familyOntology()
	c, ok := o.ClassByIRI("ex:Person")
	if !ok || c.Label != "Person" {
		t.Fatalf("ClassByIRI(ex:Person) = %+v, %v", c, ok)
	}
	if _, ok := o.ClassByIRI("ex:Missing"); ok {
		t.Error("ClassByIRI(ex:Missing) found a class")
	}
	p, ok := o.ObjectPropertyByIRI("ex:hasChild")
	if !ok || p.InverseOf != "ex:hasParent" {
		t.Fatalf("ObjectPropertyByIRI(ex:hasChild) = %+v, %v", p, ok)
	}
	d, ok := o.DataPropertyByIRI("ex:age")
	if !ok || !d.IsFunctional {
		t.Fatalf("DataPropertyByIRI(ex:age) = %+v, %v", d, ok)
	}
	i, ok := o.IndividualByIRI("ex:Bob")
	if !ok || i.IRI != "ex:Bob" {
		t.Fatalf("IndividualByIRI(ex:Bob) = %+v, %v", i, ok)
	}
}

func TestAxiomPartitions(t *testing.T) {
	o := familyOntology()
	if got := len(o.TBoxAxioms()); got != 1 {
		t.Errorf("len(TBoxAxioms) = %d, want 1", got)
	}
	if got := len(o.RBoxAxioms()); got != 2 {
		t.Errorf("len(RBoxAxioms) = %d, want 2", got)
	}
	if got := len(o.ABoxAxioms()); got != 3 {
		t.Errorf("len(ABoxAxioms) = %d, want 3", got)
	}
	if got := len(o.DeclarationAxioms()); got != 1 {
		t.Errorf("len(DeclarationAxioms) = %d, want 1", got)
	}
}

func TestOntologySignatures(t *testing.T) {
	o := familyOntology()
	if got := o.ClassSignature(); len(got) != 2 || got[0] != "ex:Parent" || got[1] != "ex:Person" {
		t.Errorf("ClassSignature = %v", got)
	}
	if got := o.ObjectPropertySignature(); len(got) != 2 || got[0] != "ex:hasChild" {
		t.Errorf("ObjectPropertySignature = %v", got)
	}
	if got := o.DataPropertySignature(); len(got) != 1 || got[0] != "ex:age" {
		t.Errorf("DataPropertySignature = %v", got)
	}
	if got := o.IndividualSignature(); len(got) != 2 || got[0] != "ex:Alice" || got[1] != "ex:Bob" {
		t.Errorf("IndividualSignature = %v", got)
	}
}

func TestValidateReportsDuplicates(t *testing.T) {
	o := familyOntology()
	if errs := o.Validate(); len(errs) != 0 {
		t.Fatalf("Validate() on clean ontology = %v", errs)
	}
	o.AddClass(OWLClass{IRI: "ex:Person"})
	o.AddIndividual(OWLNamedIndividual{IRI: "ex:Alice"})
	errs := o.Validate()
	if len(errs) != 2 {
		t.Fatalf("Validate() = %v, want 2 errors", errs)
	}
	var dup *DuplicateEntityError
	if !errors.As(errs[0], &dup) {
		t.Fatalf("error %T is not a DuplicateEntityError", errs[0])
	}
	if dup.Kind != "class" || dup.IRI != "ex:Person" {
		t.Errorf("duplicate = %+v", dup)
	}
}

func TestNewOntologyCopiesPrefixes(t *testing.T) {
	in := map[string]string{"ex": "http://example.org/"}
	o := NewOntology("http://example.org/onto", in)
	in["ex"] = "http://elsewhere.org/"
	if o.Prefixes["ex"] != "http://example.org/" {
		t.Errorf("prefix map aliased: %q", o.Prefixes["ex"])
	}
	if _, ok := o.Prefixes["owl"]; !ok {
		t.Error("default owl prefix missing")
	}
}
