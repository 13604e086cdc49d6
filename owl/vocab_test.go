package owl

import "testing"

func TestExpandIRI(t *testing.T) {
	prefixes := DefaultPrefixes()
	prefixes["ex"] = "http://example.org/"
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ex:Person", "http://example.org/Person", true},
		{"owl:Class", OWLClassIRI, true},
		{"xsd:integer", XSDInteger, true},
		{"http://example.org/Person", "http://example.org/Person", true},
		{"<http://example.org/Person>", "http://example.org/Person", true},
		{"Person", "Person", true},
		{"", "", true},
		{"nope:Person", "nope:Person", false},
	}
	for _, tt := range tests {
		got, ok := ExpandIRI(tt.in, prefixes)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExpandIRI(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCompactIRI(t *testing.T) {
	prefixes := map[string]string{
		"ex":   "http://example.org/",
		"ex2":  "http://example.org/",
		"exv":  "http://example.org/vocab#",
		"rdfs": RDFSNamespace,
	}
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		// ex and ex2 bind the same namespace; the smaller prefix wins.
		{"http://example.org/Person", "ex:Person", true},
		// Longest matching namespace wins.
		{"http://example.org/vocab#Term", "exv:Term", true},
		{RDFSNamespace + "label", "rdfs:label", true},
		{"http://elsewhere.org/X", "http://elsewhere.org/X", false},
		// A bare namespace IRI has no local name to compact to.
		{"http://example.org/", "http://example.org/", false},
	}
	for _, tt := range tests {
		got, ok := CompactIRI(tt.in, prefixes)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CompactIRI(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExpandCompactRoundTrip(t *testing.T) {
	prefixes := DefaultPrefixes()
	prefixes["ex"] = "http://example.org/"
	for _, name := range []string{"ex:Person", "owl:Thing", "rdfs:label", "xsd:integer"} {
		full, ok := ExpandIRI(name, prefixes)
		if !ok {
			t.Fatalf("ExpandIRI(%q) failed", name)
		}
		back, ok := CompactIRI(full, prefixes)
		if !ok || back != name {
			t.Errorf("CompactIRI(ExpandIRI(%q)) = %q", name, back)
		}
	}
}

func TestDefaultPrefixesCopies(t *testing.T) {
	a := DefaultPrefixes()
	a["rdf"] = "http://mutated/"
	if b := DefaultPrefixes(); b["rdf"] != RDFNamespace {
		t.Fatalf("DefaultPrefixes shares state: %q", b["rdf"])
	}
}
