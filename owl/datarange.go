package owl

import (
	"fmt"
	"sort"
	"strings"
)

// DataRangeKind identifies data-range variants. As with class expressions the
// constant values are the canonical ordering tags.
type DataRangeKind uint8

const (
	// DataDatatype names a datatype by IRI.
	DataDatatype DataRangeKind = iota
	// DataIntersection is DataIntersectionOf.
	DataIntersection
	// DataUnion is DataUnionOf.
	DataUnion
	// DataComplementKind is DataComplementOf.
	DataComplementKind
	// DataOneOfKind is a literal enumeration.
	DataOneOfKind
	// DataRestrictionKind is a facet-restricted datatype.
	DataRestrictionKind
)

// DataRange is a recursive data-range tree mirroring the class-expression
// algebra over literals.
type DataRange struct {
	Kind     DataRangeKind      `json:"kind"`
	Datatype string             `json:"datatype,omitempty"`
	Operands []DataRange        `json:"operands,omitempty"`
	Operand  *DataRange         `json:"operand,omitempty"`
	Literals []Literal          `json:"literals,omitempty"`
	Facets   []FacetRestriction `json:"facets,omitempty"`
}

// Datatype returns a data range naming a datatype by IRI.
func Datatype(iri string) DataRange {
	return DataRange{Kind: DataDatatype, Datatype: iri}
}

// DataIntersectionOf returns the conjunction of data ranges.
func DataIntersectionOf(operands ...DataRange) DataRange {
	return DataRange{Kind: DataIntersection, Operands: operands}
}

// DataUnionOf returns the disjunction of data ranges.
func DataUnionOf(operands ...DataRange) DataRange {
	return DataRange{Kind: DataUnion, Operands: operands}
}

// DataComplement returns the complement of a data range.
func DataComplement(operand DataRange) DataRange {
	return DataRange{Kind: DataComplementKind, Operand: &operand}
}

// DataOneOf returns a literal enumeration.
func DataOneOf(literals ...Literal) DataRange {
	return DataRange{Kind: DataOneOfKind, Literals: literals}
}

// DatatypeRestriction returns a datatype constrained by XSD facets.
func DatatypeRestriction(datatype string, facets ...FacetRestriction) DataRange {
	return DataRange{Kind: DataRestrictionKind, Datatype: datatype, Facets: facets}
}

// Canonicalized recursively sorts the operand lists of intersections and
// unions by (variant tag, structural rendering).
func (d DataRange) Canonicalized() DataRange {
	out := d
	if d.Operand != nil {
		op := d.Operand.Canonicalized()
		out.Operand = &op
	}
	if len(d.Operands) > 0 {
		operands := make([]DataRange, len(d.Operands))
		for i, op := range d.Operands {
			operands[i] = op.Canonicalized()
		}
		if d.Kind == DataIntersection || d.Kind == DataUnion {
			sort.SliceStable(operands, func(i, j int) bool {
				if operands[i].Kind != operands[j].Kind {
					return operands[i].Kind < operands[j].Kind
				}
				return operands[i].String() < operands[j].String()
			})
		}
		out.Operands = operands
	}
	return out
}

// String renders the data range in functional-syntax style; the rendering is
// structural.
func (d DataRange) String() string {
	switch d.Kind {
	case DataDatatype:
		return d.Datatype
	case DataIntersection:
		return "DataIntersectionOf(" + joinRanges(d.Operands) + ")"
	case DataUnion:
		return "DataUnionOf(" + joinRanges(d.Operands) + ")"
	case DataComplementKind:
		return "DataComplementOf(" + d.Operand.String() + ")"
	case DataOneOfKind:
		parts := make([]string, len(d.Literals))
		for i, lit := range d.Literals {
			parts[i] = FormatTerm(LiteralTerm{Literal: lit})
		}
		return "DataOneOf(" + strings.Join(parts, " ") + ")"
	case DataRestrictionKind:
		parts := make([]string, 0, len(d.Facets)+1)
		parts = append(parts, d.Datatype)
		for _, f := range d.Facets {
			parts = append(parts, f.Facet+" "+FormatTerm(LiteralTerm{Literal: f.Value}))
		}
		return "DatatypeRestriction(" + strings.Join(parts, " ") + ")"
	default:
		panic(fmt.Sprintf("owl: unknown data range kind %d", d.Kind))
	}
}

// Equal reports structural equality of two data ranges.
func (d DataRange) Equal(other DataRange) bool {
	return d.String() == other.String()
}

// UsedDatatypes returns the sorted set of datatype IRIs the range references.
func (d DataRange) UsedDatatypes() []string {
	set := map[string]struct{}{}
	d.collect(func(sub DataRange) {
		if sub.Datatype != "" {
			set[sub.Datatype] = struct{}{}
		}
	})
	return sortedKeys(set)
}

func (d DataRange) collect(visit func(DataRange)) {
	visit(d)
	if d.Operand != nil {
		d.Operand.collect(visit)
	}
	for _, op := range d.Operands {
		op.collect(visit)
	}
}

func joinRanges(operands []DataRange) string {
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}
