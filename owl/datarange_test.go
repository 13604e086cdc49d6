package owl

import "testing"

func TestDataRangeCanonicalized(t *testing.T) {
	i := Datatype("xsd:integer")
	s := Datatype("xsd:string")
	left := DataUnionOf(s, i).Canonicalized()
	right := DataUnionOf(i, s).Canonicalized()
	if !left.Equal(right) {
		t.Fatalf("canonical forms differ: %s vs %s", left, right)
	}
	// Simple datatypes sort before composite ranges.
	mixed := DataIntersectionOf(DataOneOf(IntegerLiteral(1)), i).Canonicalized()
	if mixed.Operands[0].Kind != DataDatatype {
		t.Fatalf("operand order: %s", mixed)
	}
}

func TestDataRangeUsedDatatypes(t *testing.T) {
	d := DataUnionOf(
		Datatype("xsd:integer"),
		DataComplement(Datatype("xsd:string")),
		DatatypeRestriction("xsd:decimal",
			FacetRestriction{Facet: "xsd:minInclusive", Value: IntegerLiteral(0)}),
	)
	got := d.UsedDatatypes()
	want := []string{"xsd:decimal", "xsd:integer", "xsd:string"}
	if len(got) != len(want) {
		t.Fatalf("UsedDatatypes = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UsedDatatypes = %v, want %v", got, want)
		}
	}
}

func TestDecodeDataRanges(t *testing.T) {
	o := decode(t, `
@prefix ex: <http://example.org/> .
ex:age a owl:DatatypeProperty ;
    rdfs:range [ a rdfs:Datatype ; owl:onDatatype xsd:integer ;
        owl:withRestrictions ( [ xsd:minInclusive 0 ] [ xsd:maxExclusive 150 ] ) ] .
ex:grade a owl:DatatypeProperty ;
    rdfs:range [ a rdfs:Datatype ; owl:oneOf ("A" "B" "C") ] .
`)
	var ranges []DataRange
	for _, a := range o.Axioms {
		if a.Kind == AxiomDataPropertyRange {
			ranges = append(ranges, a.DataRange)
		}
	}
	if len(ranges) != 2 {
		t.Fatalf("got %d range axioms", len(ranges))
	}
	var restriction, oneOf *DataRange
	for i := range ranges {
		switch ranges[i].Kind {
		case DataRestrictionKind:
			restriction = &ranges[i]
		case DataOneOfKind:
			oneOf = &ranges[i]
		}
	}
	if restriction == nil || oneOf == nil {
		t.Fatalf("ranges = %v", ranges)
	}
	if restriction.Datatype != "xsd:integer" || len(restriction.Facets) != 2 {
		t.Fatalf("restriction = %s", restriction)
	}
	if restriction.Facets[0].Facet != "xsd:minInclusive" {
		t.Errorf("facet = %+v", restriction.Facets[0])
	}
	if len(oneOf.Literals) != 3 || oneOf.Literals[0] != StringLiteral("A") {
		t.Fatalf("oneOf = %s", oneOf)
	}
}
