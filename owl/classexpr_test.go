package owl

import "testing"

func sampleExpressions() []ClassExpression {
	person := NamedClass("ex:Person")
	agent := NamedClass("ex:Agent")
	knows := "ex:knows"
	return []ClassExpression{
		person,
		Thing(),
		Nothing(),
		Complement(person),
		Complement(Complement(person)),
		Intersection(person, agent),
		Union(person, agent),
		Complement(Intersection(person, agent)),
		Complement(Union(person, Complement(agent))),
		SomeValuesFrom(knows, person),
		Complement(SomeValuesFrom(knows, person)),
		AllValuesFrom(knows, Complement(person)),
		Complement(AllValuesFrom(knows, Union(person, agent))),
		MinCardinality(knows, 2, nil),
		Complement(MinCardinality(knows, 2, nil)),
		Complement(MaxCardinality(knows, 3, &person)),
		ExactCardinality(knows, 1, &agent),
		Complement(ExactCardinality(knows, 2, nil)),
		DataSomeValuesFrom("ex:age", Datatype("xsd:integer")),
		Complement(DataSomeValuesFrom("ex:age", Datatype("xsd:integer"))),
		Complement(DataAllValuesFrom("ex:age", Datatype("xsd:integer"))),
		DataHasValue("ex:age", IntegerLiteral(30)),
		Complement(DataHasValue("ex:age", IntegerLiteral(30))),
		Complement(DataExactCardinality("ex:age", 2, nil)),
	}
}

func TestNNFIdempotent(t *testing.T) {
	for _, e := range sampleExpressions() {
		once := e.NNF()
		twice := once.NNF()
		if !once.Equal(twice) {
			t.Errorf("NNF not idempotent for %s: %s != %s", e, once, twice)
		}
	}
}

func TestNNFComplementOnlyBeforeNamed(t *testing.T) {
	// Negated nominals and self restrictions keep an irreducible complement,
	// so the scan covers expressions without them.
	for _, e := range sampleExpressions() {
		e.NNF().collect(func(sub ClassExpression) {
			if sub.Kind == ClassComplement && sub.Operand.Kind != ClassNamed {
				t.Errorf("NNF(%s) has complement of %s", e, sub.Operand)
			}
		})
	}
}

func TestNNFDeMorgan(t *testing.T) {
	a, b := NamedClass("ex:A"), NamedClass("ex:B")
	got := Complement(Intersection(a, b)).NNF()
	want := Union(Complement(a), Complement(b))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
	got = Complement(Union(a, b)).NNF()
	want = Intersection(Complement(a), Complement(b))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestNNFCardinalityClamp(t *testing.T) {
	// Negating a minimum of zero clamps at zero instead of going negative.
	got := Complement(MinCardinality("ex:knows", 0, nil)).NNF()
	want := MaxCardinality("ex:knows", 0, nil)
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestNNFNegatedCardinalityRules(t *testing.T) {
	knows := "ex:knows"
	got := Complement(MinCardinality(knows, 3, nil)).NNF()
	if want := MaxCardinality(knows, 2, nil); !got.Equal(want) {
		t.Fatalf("negated min: got %s, want %s", got, want)
	}
	got = Complement(MaxCardinality(knows, 3, nil)).NNF()
	if want := MinCardinality(knows, 4, nil); !got.Equal(want) {
		t.Fatalf("negated max: got %s, want %s", got, want)
	}
}

func TestNNFExactCardinalityExpansion(t *testing.T) {
	knows := "ex:knows"
	got := ExactCardinality(knows, 2, nil).NNF()
	want := Intersection(MinCardinality(knows, 2, nil), MaxCardinality(knows, 2, nil))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
	got = Complement(ExactCardinality(knows, 2, nil)).NNF()
	want = Union(MaxCardinality(knows, 1, nil), MinCardinality(knows, 3, nil))
	if !got.Equal(want) {
		t.Fatalf("negated: got %s, want %s", got, want)
	}
}

func TestNNFQuantifierDuality(t *testing.T) {
	person := NamedClass("ex:Person")
	got := Complement(SomeValuesFrom("ex:knows", person)).NNF()
	want := AllValuesFrom("ex:knows", Complement(person))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
	got = Complement(DataSomeValuesFrom("ex:age", Datatype("xsd:integer"))).NNF()
	want = DataAllValuesFrom("ex:age", DataComplement(Datatype("xsd:integer")))
	if !got.Equal(want) {
		t.Fatalf("data: got %s, want %s", got, want)
	}
}

func TestCanonicalizedOperandOrder(t *testing.T) {
	a, b := NamedClass("ex:A"), NamedClass("ex:B")
	left := Intersection(b, a).Canonicalized()
	right := Intersection(a, b).Canonicalized()
	if !left.Equal(right) {
		t.Fatalf("canonical forms differ: %s vs %s", left, right)
	}
	left = Union(SomeValuesFrom("ex:p", a), b).Canonicalized()
	right = Union(b, SomeValuesFrom("ex:p", a)).Canonicalized()
	if !left.Equal(right) {
		t.Fatalf("canonical forms differ: %s vs %s", left, right)
	}
}

func TestCanonicalizedRecursesIntoOperands(t *testing.T) {
	a, b := NamedClass("ex:A"), NamedClass("ex:B")
	left := Complement(Intersection(b, a)).Canonicalized()
	right := Complement(Intersection(a, b)).Canonicalized()
	if !left.Equal(right) {
		t.Fatalf("nested canonical forms differ: %s vs %s", left, right)
	}
}

func TestUsedEntities(t *testing.T) {
	e := Intersection(
		NamedClass("ex:Person"),
		SomeValuesFrom("ex:knows", NamedClass("ex:Agent")),
		DataSomeValuesFrom("ex:age", Datatype("xsd:integer")),
		HasValue("ex:admires", NamedIndividual("ex:Alice")),
	)
	if got := e.UsedClasses(); len(got) != 2 || got[0] != "ex:Agent" || got[1] != "ex:Person" {
		t.Fatalf("UsedClasses = %v", got)
	}
	if got := e.UsedObjectProperties(); len(got) != 2 || got[0] != "ex:admires" || got[1] != "ex:knows" {
		t.Fatalf("UsedObjectProperties = %v", got)
	}
	if got := e.UsedDataProperties(); len(got) != 1 || got[0] != "ex:age" {
		t.Fatalf("UsedDataProperties = %v", got)
	}
	if got := e.UsedIndividuals(); len(got) != 1 || got[0] != "ex:Alice" {
		t.Fatalf("UsedIndividuals = %v", got)
	}
}
