// Package owl models OWL DL ontologies (classes, properties, individuals,
// axioms) as an in-memory value model and converts between that model and the
// W3C Turtle serialization.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The package is organized around four layers:
//   - The class-expression/axiom algebra: ClassExpression, DataRange and
//     Axiom are closed kind-tagged sum types with Negation-Normal-Form
//     conversion (NNF), canonicalization and signature extraction.
//   - The decode path: a character-stream Turtle tokenizer, a
//     recursive-descent parser producing raw triples, and a builder that
//     reconstructs a structured Ontology from those triples.
//   - The encode path: a deterministic Turtle renderer that emits exactly the
//     predicate vocabulary the decoder recognizes, so its output is always
//     re-parseable.
//   - The Index: a read-only lookup structure built in one pass over an
//     ontology snapshot for O(1) axiom access.
//
// Everything is a synchronous, pure in-memory transformation: there is no
// I/O, no goroutines and no shared mutable state. A completed Ontology or
// Index may be read concurrently; mutating an Ontology must be serialized by
// the caller, and any Index built from it must be rebuilt afterwards.
//
// Example (decoding):
//
//	ont, err := owl.Decode(input)
//	if err != nil {
//	    // handle error
//	}
//	for _, c := range ont.Classes {
//	    // process c.IRI, c.Label
//	}
//
// Example (encoding):
//
//	text := owl.Encode(ont)
//
// Decode reports the first error it hits (unexpected token, unterminated
// string, undefined prefix, unexpected end of input), each tagged with a
// 1-based line number. Encode is total for well-formed Ontology values.
package owl
