package owl

import "testing"

func sampleAxioms() []Axiom {
	person := NamedClass("ex:Person")
	agent := NamedClass("ex:Agent")
	alice := NamedIndividual("ex:Alice")
	bob := NamedIndividual("ex:Bob")
	return []Axiom{
		SubClassOf(person, agent),
		EquivalentClasses(person, agent),
		DisjointClasses(person, agent),
		DisjointUnion("ex:Agent", person, NamedClass("ex:Robot")),
		SubObjectPropertyOf("ex:hasParent", "ex:hasAncestor"),
		SubPropertyChainOf([]string{"ex:hasParent", "ex:hasParent"}, "ex:hasGrandparent"),
		EquivalentObjectProperties("ex:knows", "ex:isAcquaintedWith"),
		DisjointObjectProperties("ex:likes", "ex:dislikes"),
		InverseObjectProperties("ex:hasParent", "ex:hasChild"),
		ObjectPropertyDomain("ex:knows", person),
		ObjectPropertyRange("ex:knows", person),
		FunctionalObjectProperty("ex:hasMother"),
		InverseFunctionalObjectProperty("ex:hasSSN"),
		TransitiveObjectProperty("ex:hasAncestor"),
		SymmetricObjectProperty("ex:knows"),
		AsymmetricObjectProperty("ex:hasParent"),
		ReflexiveObjectProperty("ex:sameSpeciesAs"),
		IrreflexiveObjectProperty("ex:hasParent"),
		SubDataPropertyOf("ex:firstName", "ex:name"),
		EquivalentDataProperties("ex:age", "ex:yearsOld"),
		DisjointDataProperties("ex:age", "ex:name"),
		DataPropertyDomain("ex:age", person),
		DataPropertyRange("ex:age", Datatype("xsd:integer")),
		FunctionalDataProperty("ex:age"),
		ClassAssertion(person, alice),
		ObjectPropertyAssertion("ex:knows", alice, bob),
		NegativeObjectPropertyAssertion("ex:knows", alice, bob),
		DataPropertyAssertion("ex:age", alice, IntegerLiteral(30)),
		NegativeDataPropertyAssertion("ex:age", alice, IntegerLiteral(12)),
		SameIndividual(alice, NamedIndividual("ex:Alicia")),
		DifferentIndividuals(alice, bob),
		Declaration(EntityClass, "ex:Person"),
	}
}

func TestAxiomClassificationIsPartition(t *testing.T) {
	for _, a := range sampleAxioms() {
		n := 0
		if a.IsTBox() {
			n++
		}
		if a.IsRBox() {
			n++
		}
		if a.IsABox() {
			n++
		}
		if a.IsDeclaration() {
			n++
		}
		if n != 1 {
			t.Errorf("axiom kind %d matches %d sections, want exactly 1", a.Kind, n)
		}
	}
}

func TestAxiomClassification(t *testing.T) {
	person := NamedClass("ex:Person")
	alice := NamedIndividual("ex:Alice")
	tests := []struct {
		axiom Axiom
		tbox  bool
		rbox  bool
		abox  bool
		decl  bool
	}{
		{SubClassOf(person, Thing()), true, false, false, false},
		{DisjointUnion("ex:Agent", person), true, false, false, false},
		{InverseObjectProperties("ex:p", "ex:q"), false, true, false, false},
		{FunctionalDataProperty("ex:age"), false, true, false, false},
		{DataPropertyRange("ex:age", Datatype("xsd:integer")), false, true, false, false},
		{ClassAssertion(person, alice), false, false, true, false},
		{SameIndividual(alice, NamedIndividual("ex:Alicia")), false, false, true, false},
		{Declaration(EntityDatatype, "ex:SSN"), false, false, false, true},
	}
	for _, tt := range tests {
		if got := tt.axiom.IsTBox(); got != tt.tbox {
			t.Errorf("kind %d: IsTBox() = %v, want %v", tt.axiom.Kind, got, tt.tbox)
		}
		if got := tt.axiom.IsRBox(); got != tt.rbox {
			t.Errorf("kind %d: IsRBox() = %v, want %v", tt.axiom.Kind, got, tt.rbox)
		}
		if got := tt.axiom.IsABox(); got != tt.abox {
			t.Errorf("kind %d: IsABox() = %v, want %v", tt.axiom.Kind, got, tt.abox)
		}
		if got := tt.axiom.IsDeclaration(); got != tt.decl {
			t.Errorf("kind %d: IsDeclaration() = %v, want %v", tt.axiom.Kind, got, tt.decl)
		}
	}
}

func TestReferencedClasses(t *testing.T) {
	a := SubClassOf(
		NamedClass("ex:Person"),
		SomeValuesFrom("ex:hasParent", NamedClass("ex:Agent")),
	)
	got := a.ReferencedClasses()
	if len(got) != 2 || got[0] != "ex:Agent" || got[1] != "ex:Person" {
		t.Fatalf("ReferencedClasses = %v", got)
	}
	if got := DisjointUnion("ex:Agent", NamedClass("ex:Person"), NamedClass("ex:Robot")).ReferencedClasses(); len(got) != 3 {
		t.Fatalf("ReferencedClasses = %v", got)
	}
}

func TestReferencedObjectProperties(t *testing.T) {
	a := SubPropertyChainOf([]string{"ex:hasParent", "ex:hasParent"}, "ex:hasGrandparent")
	got := a.ReferencedObjectProperties()
	if len(got) != 2 || got[0] != "ex:hasGrandparent" || got[1] != "ex:hasParent" {
		t.Fatalf("ReferencedObjectProperties = %v", got)
	}
	a = ObjectPropertyDomain("ex:knows", SomeValuesFrom("ex:employs", Thing()))
	got = a.ReferencedObjectProperties()
	if len(got) != 2 || got[0] != "ex:employs" || got[1] != "ex:knows" {
		t.Fatalf("ReferencedObjectProperties = %v", got)
	}
}

func TestReferencedDataProperties(t *testing.T) {
	a := DataPropertyAssertion("ex:age", NamedIndividual("ex:Alice"), IntegerLiteral(30))
	if got := a.ReferencedDataProperties(); len(got) != 1 || got[0] != "ex:age" {
		t.Fatalf("ReferencedDataProperties = %v", got)
	}
	a = SubClassOf(NamedClass("ex:Person"), DataSomeValuesFrom("ex:name", Datatype("xsd:string")))
	if got := a.ReferencedDataProperties(); len(got) != 1 || got[0] != "ex:name" {
		t.Fatalf("ReferencedDataProperties = %v", got)
	}
}

func TestReferencedIndividuals(t *testing.T) {
	alice := NamedIndividual("ex:Alice")
	bob := NamedIndividual("ex:Bob")
	a := ObjectPropertyAssertion("ex:knows", alice, bob)
	got := a.ReferencedIndividuals()
	if len(got) != 2 || got[0] != "ex:Alice" || got[1] != "ex:Bob" {
		t.Fatalf("ReferencedIndividuals = %v", got)
	}
	a = ClassAssertion(OneOf(alice, bob), NamedIndividual("ex:Carol"))
	got = a.ReferencedIndividuals()
	if len(got) != 3 {
		t.Fatalf("ReferencedIndividuals = %v", got)
	}
	// Anonymous individuals carry no IRI and are not part of the signature.
	a = SameIndividual(alice, AnonymousIndividual("b0"))
	got = a.ReferencedIndividuals()
	if len(got) != 1 || got[0] != "ex:Alice" {
		t.Fatalf("ReferencedIndividuals = %v", got)
	}
}
