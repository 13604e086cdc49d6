package owl

import "testing"

func TestJCSSortsObjectKeys(t *testing.T) {
	got, err := jcsCanonicalize([]byte(`{"b":2,"a":1,"c":{"z":true,"y":false}}`))
	if err != nil {
		t.Fatalf("jcsCanonicalize: %v", err)
	}
	want := `{"a":1,"b":2,"c":{"y":false,"z":true}}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestJCSStripsWhitespace(t *testing.T) {
	got, err := jcsCanonicalize([]byte("{\n  \"a\": [ 1, 2 ,3 ],\n  \"b\": null\n}"))
	if err != nil {
		t.Fatalf("jcsCanonicalize: %v", err)
	}
	if string(got) != `{"a":[1,2,3],"b":null}` {
		t.Fatalf("got %s", got)
	}
}

func TestJCSNumberForms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[1.0]`, `[1]`},
		{`[1e2]`, `[100]`},
		{`[0.5]`, `[0.5]`},
		{`[-0.0]`, `[0]`},
		{`[1e21]`, `[1e+21]`},
		{`[1e-7]`, `[1e-7]`},
	}
	for _, tt := range tests {
		got, err := jcsCanonicalize([]byte(tt.in))
		if err != nil {
			t.Errorf("jcsCanonicalize(%s): %v", tt.in, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("jcsCanonicalize(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestJCSStringEscapes(t *testing.T) {
	got, err := jcsCanonicalize([]byte(`["A","\n","é"]`))
	if err != nil {
		t.Fatalf("jcsCanonicalize: %v", err)
	}
	want := `["A","\n","é"]`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestJCSKeySortUsesUTF16Order(t *testing.T) {
	// RFC 8785 sorts keys by UTF-16 code units, so a supplementary-plane key
	// sorts before U+FB33 even though its first code point is larger.
	got, err := jcsCanonicalize([]byte(`{"דּ":1,"😀":2}`))
	if err != nil {
		t.Fatalf("jcsCanonicalize: %v", err)
	}
	want := `{"😀":2,"דּ":1}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestJCSRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{`{`, `{"a":}`, `[1,]`, ``} {
		if _, err := jcsCanonicalize([]byte(in)); err == nil {
			t.Errorf("jcsCanonicalize(%q) accepted malformed input", in)
		}
	}
}
