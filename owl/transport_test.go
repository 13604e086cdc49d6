package owl

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestWrapUnwrapRoundTrip(t *testing.T) {
	o := familyOntology()
	rec, err := Wrap(o)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if rec.IRI != o.IRI {
		t.Errorf("IRI = %q, want %q", rec.IRI, o.IRI)
	}
	if rec.TypeIdentifier != OntologyTypeIdentifier {
		t.Errorf("TypeIdentifier = %q", rec.TypeIdentifier)
	}
	got, err := Unwrap(rec)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if !reflect.DeepEqual(got, o) {
		t.Fatalf("round trip changed the ontology:\ngot  %+v\nwant %+v", got, o)
	}
}

func TestWrapDeterministic(t *testing.T) {
	o := familyOntology()
	first, err := Wrap(o)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	second, err := Wrap(o)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Fatalf("Data differs between wraps:\n%s\nvs\n%s", first.Data, second.Data)
	}
}

func TestUnwrapRejectsOtherTypes(t *testing.T) {
	rec := Record{IRI: "http://example.org/x", TypeIdentifier: "SomethingElse", Data: []byte("{}")}
	if _, err := Unwrap(rec); !errors.Is(err, ErrTransportType) {
		t.Fatalf("err = %v, want ErrTransportType", err)
	}
}

func TestUnwrapBadPayload(t *testing.T) {
	rec := Record{TypeIdentifier: OntologyTypeIdentifier, Data: []byte("{not json")}
	if _, err := Unwrap(rec); err == nil {
		t.Fatal("Unwrap accepted malformed JSON")
	}
}
