package owl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ClassExprKind identifies class-expression variants. The constant values
// double as the canonical ordering tag used when sorting the operand lists of
// intersections and unions.
type ClassExprKind uint8

const (
	// ClassNamed is a class identified by IRI.
	ClassNamed ClassExprKind = iota
	// ClassThing is owl:Thing.
	ClassThing
	// ClassNothing is owl:Nothing.
	ClassNothing
	// ClassIntersection is ObjectIntersectionOf.
	ClassIntersection
	// ClassUnion is ObjectUnionOf.
	ClassUnion
	// ClassComplement is ObjectComplementOf.
	ClassComplement
	// ClassOneOf is a nominal enumeration ObjectOneOf.
	ClassOneOf
	// ClassSomeValuesFrom is an existential object restriction.
	ClassSomeValuesFrom
	// ClassAllValuesFrom is a universal object restriction.
	ClassAllValuesFrom
	// ClassHasValue is an ObjectHasValue restriction.
	ClassHasValue
	// ClassHasSelf is an ObjectHasSelf restriction.
	ClassHasSelf
	// ClassMinCardinality is a (possibly qualified) minimum cardinality.
	ClassMinCardinality
	// ClassMaxCardinality is a (possibly qualified) maximum cardinality.
	ClassMaxCardinality
	// ClassExactCardinality is a (possibly qualified) exact cardinality.
	ClassExactCardinality
	// ClassDataSomeValuesFrom is an existential data restriction.
	ClassDataSomeValuesFrom
	// ClassDataAllValuesFrom is a universal data restriction.
	ClassDataAllValuesFrom
	// ClassDataHasValue is a DataHasValue restriction.
	ClassDataHasValue
	// ClassDataMinCardinality is a data minimum cardinality.
	ClassDataMinCardinality
	// ClassDataMaxCardinality is a data maximum cardinality.
	ClassDataMaxCardinality
	// ClassDataExactCardinality is a data exact cardinality.
	ClassDataExactCardinality
)

// ClassExpression is a recursive class-expression tree. Each compound variant
// owns its sub-expressions; trees are never shared and never cyclic.
//
// Which fields are meaningful depends on Kind: IRI for named classes,
// Operands for intersections and unions, Operand for complements, Property
// plus Filler/Individual/Value/Range/Cardinality for restrictions, and
// Individuals for nominal enumerations. A nil Filler (or Range) on a
// cardinality restriction means the restriction is unqualified.
type ClassExpression struct {
	Kind        ClassExprKind     `json:"kind"`
	IRI         string            `json:"iri,omitempty"`
	Operands    []ClassExpression `json:"operands,omitempty"`
	Operand     *ClassExpression  `json:"operand,omitempty"`
	Property    string            `json:"property,omitempty"`
	Filler      *ClassExpression  `json:"filler,omitempty"`
	Individuals []Individual      `json:"individuals,omitempty"`
	Individual  Individual        `json:"individual,omitzero"`
	Value       Literal           `json:"value,omitzero"`
	Cardinality int               `json:"cardinality,omitempty"`
	Range       *DataRange        `json:"range,omitempty"`
}

// NamedClass returns a class expression naming a class by IRI.
func NamedClass(iri string) ClassExpression {
	return ClassExpression{Kind: ClassNamed, IRI: iri}
}

// Thing returns owl:Thing.
func Thing() ClassExpression { return ClassExpression{Kind: ClassThing} }

// Nothing returns owl:Nothing.
func Nothing() ClassExpression { return ClassExpression{Kind: ClassNothing} }

// Intersection returns the conjunction of the given expressions.
func Intersection(operands ...ClassExpression) ClassExpression {
	return ClassExpression{Kind: ClassIntersection, Operands: operands}
}

// Union returns the disjunction of the given expressions.
func Union(operands ...ClassExpression) ClassExpression {
	return ClassExpression{Kind: ClassUnion, Operands: operands}
}

// Complement returns the complement of an expression.
func Complement(operand ClassExpression) ClassExpression {
	return ClassExpression{Kind: ClassComplement, Operand: &operand}
}

// OneOf returns a nominal enumeration of individuals.
func OneOf(individuals ...Individual) ClassExpression {
	return ClassExpression{Kind: ClassOneOf, Individuals: individuals}
}

// SomeValuesFrom returns the existential restriction on an object property.
func SomeValuesFrom(property string, filler ClassExpression) ClassExpression {
	return ClassExpression{Kind: ClassSomeValuesFrom, Property: property, Filler: &filler}
}

// AllValuesFrom returns the universal restriction on an object property.
func AllValuesFrom(property string, filler ClassExpression) ClassExpression {
	return ClassExpression{Kind: ClassAllValuesFrom, Property: property, Filler: &filler}
}

// HasValue returns the restriction to a specific individual value.
func HasValue(property string, individual Individual) ClassExpression {
	return ClassExpression{Kind: ClassHasValue, Property: property, Individual: individual}
}

// HasSelf returns the local reflexivity restriction.
func HasSelf(property string) ClassExpression {
	return ClassExpression{Kind: ClassHasSelf, Property: property}
}

// MinCardinality returns a minimum cardinality restriction. A nil filler
// leaves the restriction unqualified.
func MinCardinality(property string, n int, filler *ClassExpression) ClassExpression {
	return ClassExpression{Kind: ClassMinCardinality, Property: property, Cardinality: n, Filler: filler}
}

// MaxCardinality returns a maximum cardinality restriction.
func MaxCardinality(property string, n int, filler *ClassExpression) ClassExpression {
	return ClassExpression{Kind: ClassMaxCardinality, Property: property, Cardinality: n, Filler: filler}
}

// ExactCardinality returns an exact cardinality restriction.
func ExactCardinality(property string, n int, filler *ClassExpression) ClassExpression {
	return ClassExpression{Kind: ClassExactCardinality, Property: property, Cardinality: n, Filler: filler}
}

// DataSomeValuesFrom returns the existential restriction on a data property.
func DataSomeValuesFrom(property string, rng DataRange) ClassExpression {
	return ClassExpression{Kind: ClassDataSomeValuesFrom, Property: property, Range: &rng}
}

// DataAllValuesFrom returns the universal restriction on a data property.
func DataAllValuesFrom(property string, rng DataRange) ClassExpression {
	return ClassExpression{Kind: ClassDataAllValuesFrom, Property: property, Range: &rng}
}

// DataHasValue returns the restriction to a specific literal value.
func DataHasValue(property string, value Literal) ClassExpression {
	return ClassExpression{Kind: ClassDataHasValue, Property: property, Value: value}
}

// DataMinCardinality returns a data minimum cardinality restriction.
func DataMinCardinality(property string, n int, rng *DataRange) ClassExpression {
	return ClassExpression{Kind: ClassDataMinCardinality, Property: property, Cardinality: n, Range: rng}
}

// DataMaxCardinality returns a data maximum cardinality restriction.
func DataMaxCardinality(property string, n int, rng *DataRange) ClassExpression {
	return ClassExpression{Kind: ClassDataMaxCardinality, Property: property, Cardinality: n, Range: rng}
}

// DataExactCardinality returns a data exact cardinality restriction.
func DataExactCardinality(property string, n int, rng *DataRange) ClassExpression {
	return ClassExpression{Kind: ClassDataExactCardinality, Property: property, Cardinality: n, Range: rng}
}

// NNF rewrites the expression to Negation Normal Form: complement appears
// only directly before a named class (nominals and self restrictions stay
// under an irreducible complement). Exact cardinalities are expanded to a
// min/max conjunction. The rewrite is a pure structural recursion over a
// finite tree; the exact-cardinality expansion duplicates the filler into
// both branches.
func (e ClassExpression) NNF() ClassExpression {
	return nnf(e, false)
}

func nnf(e ClassExpression, negated bool) ClassExpression {
	switch e.Kind {
	case ClassNamed:
		if negated {
			return Complement(e)
		}
		return e
	case ClassThing:
		if negated {
			return Nothing()
		}
		return e
	case ClassNothing:
		if negated {
			return Thing()
		}
		return e
	case ClassIntersection, ClassUnion:
		operands := make([]ClassExpression, len(e.Operands))
		for i, op := range e.Operands {
			operands[i] = nnf(op, negated)
		}
		kind := e.Kind
		if negated {
			// De Morgan.
			if kind == ClassIntersection {
				kind = ClassUnion
			} else {
				kind = ClassIntersection
			}
		}
		return ClassExpression{Kind: kind, Operands: operands}
	case ClassComplement:
		return nnf(*e.Operand, !negated)
	case ClassOneOf, ClassHasSelf:
		if negated {
			return Complement(e)
		}
		return e
	case ClassSomeValuesFrom:
		filler := nnf(*e.Filler, negated)
		if negated {
			return AllValuesFrom(e.Property, filler)
		}
		return SomeValuesFrom(e.Property, filler)
	case ClassAllValuesFrom:
		filler := nnf(*e.Filler, negated)
		if negated {
			return SomeValuesFrom(e.Property, filler)
		}
		return AllValuesFrom(e.Property, filler)
	case ClassHasValue:
		if negated {
			return AllValuesFrom(e.Property, Complement(OneOf(e.Individual)))
		}
		return e
	case ClassMinCardinality:
		filler := nnfQualifier(e.Filler)
		if negated {
			n := e.Cardinality - 1
			if n < 0 {
				n = 0
			}
			return MaxCardinality(e.Property, n, filler)
		}
		return MinCardinality(e.Property, e.Cardinality, filler)
	case ClassMaxCardinality:
		filler := nnfQualifier(e.Filler)
		if negated {
			return MinCardinality(e.Property, e.Cardinality+1, filler)
		}
		return MaxCardinality(e.Property, e.Cardinality, filler)
	case ClassExactCardinality:
		filler := nnfQualifier(e.Filler)
		if negated {
			if e.Cardinality == 0 {
				return MinCardinality(e.Property, 1, copyQualifier(filler))
			}
			return Union(
				MaxCardinality(e.Property, e.Cardinality-1, copyQualifier(filler)),
				MinCardinality(e.Property, e.Cardinality+1, copyQualifier(filler)),
			)
		}
		return Intersection(
			MinCardinality(e.Property, e.Cardinality, copyQualifier(filler)),
			MaxCardinality(e.Property, e.Cardinality, copyQualifier(filler)),
		)
	case ClassDataSomeValuesFrom:
		if negated {
			return DataAllValuesFrom(e.Property, DataComplement(*e.Range))
		}
		return e
	case ClassDataAllValuesFrom:
		if negated {
			return DataSomeValuesFrom(e.Property, DataComplement(*e.Range))
		}
		return e
	case ClassDataHasValue:
		if negated {
			return DataAllValuesFrom(e.Property, DataComplement(DataOneOf(e.Value)))
		}
		return e
	case ClassDataMinCardinality:
		if negated {
			n := e.Cardinality - 1
			if n < 0 {
				n = 0
			}
			return DataMaxCardinality(e.Property, n, copyRange(e.Range))
		}
		return DataMinCardinality(e.Property, e.Cardinality, copyRange(e.Range))
	case ClassDataMaxCardinality:
		if negated {
			return DataMinCardinality(e.Property, e.Cardinality+1, copyRange(e.Range))
		}
		return DataMaxCardinality(e.Property, e.Cardinality, copyRange(e.Range))
	case ClassDataExactCardinality:
		if negated {
			if e.Cardinality == 0 {
				return DataMinCardinality(e.Property, 1, copyRange(e.Range))
			}
			return Union(
				DataMaxCardinality(e.Property, e.Cardinality-1, copyRange(e.Range)),
				DataMinCardinality(e.Property, e.Cardinality+1, copyRange(e.Range)),
			)
		}
		return Intersection(
			DataMinCardinality(e.Property, e.Cardinality, copyRange(e.Range)),
			DataMaxCardinality(e.Property, e.Cardinality, copyRange(e.Range)),
		)
	default:
		panic(fmt.Sprintf("owl: unknown class expression kind %d", e.Kind))
	}
}

// nnfQualifier normalizes a cardinality qualifier. The qualifier is not
// negated by the cardinality rewrite rules.
func nnfQualifier(filler *ClassExpression) *ClassExpression {
	if filler == nil {
		return nil
	}
	n := nnf(*filler, false)
	return &n
}

func copyQualifier(filler *ClassExpression) *ClassExpression {
	if filler == nil {
		return nil
	}
	c := *filler
	return &c
}

func copyRange(rng *DataRange) *DataRange {
	if rng == nil {
		return nil
	}
	c := *rng
	return &c
}

// Canonicalized recursively sorts the operand lists of intersections and
// unions by (variant tag, structural rendering), so that expressions that
// differ only in operand order compare equal. The variant tag is the
// ClassExprKind constant value.
func (e ClassExpression) Canonicalized() ClassExpression {
	out := e
	if e.Operand != nil {
		op := e.Operand.Canonicalized()
		out.Operand = &op
	}
	if e.Filler != nil {
		f := e.Filler.Canonicalized()
		out.Filler = &f
	}
	if e.Range != nil {
		r := e.Range.Canonicalized()
		out.Range = &r
	}
	if len(e.Operands) > 0 {
		operands := make([]ClassExpression, len(e.Operands))
		for i, op := range e.Operands {
			operands[i] = op.Canonicalized()
		}
		if e.Kind == ClassIntersection || e.Kind == ClassUnion {
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

// String renders the expression in OWL functional-syntax style. The rendering
// is structural: two expressions render equal iff they are structurally equal,
// which is what the canonical ordering relies on.
func (e ClassExpression) String() string {
	switch e.Kind {
	case ClassNamed:
		return e.IRI
	case ClassThing:
		return "owl:Thing"
	case ClassNothing:
		return "owl:Nothing"
	case ClassIntersection:
		return "ObjectIntersectionOf(" + joinExpressions(e.Operands) + ")"
	case ClassUnion:
		return "ObjectUnionOf(" + joinExpressions(e.Operands) + ")"
	case ClassComplement:
		return "ObjectComplementOf(" + e.Operand.String() + ")"
	case ClassOneOf:
		keys := make([]string, len(e.Individuals))
		for i, ind := range e.Individuals {
			keys[i] = ind.Key()
		}
		return "ObjectOneOf(" + strings.Join(keys, " ") + ")"
	case ClassSomeValuesFrom:
		return "ObjectSomeValuesFrom(" + e.Property + " " + e.Filler.String() + ")"
	case ClassAllValuesFrom:
		return "ObjectAllValuesFrom(" + e.Property + " " + e.Filler.String() + ")"
	case ClassHasValue:
		return "ObjectHasValue(" + e.Property + " " + e.Individual.Key() + ")"
	case ClassHasSelf:
		return "ObjectHasSelf(" + e.Property + ")"
	case ClassMinCardinality:
		return renderCardinality("ObjectMinCardinality", e)
	case ClassMaxCardinality:
		return renderCardinality("ObjectMaxCardinality", e)
	case ClassExactCardinality:
		return renderCardinality("ObjectExactCardinality", e)
	case ClassDataSomeValuesFrom:
		return "DataSomeValuesFrom(" + e.Property + " " + e.Range.String() + ")"
	case ClassDataAllValuesFrom:
		return "DataAllValuesFrom(" + e.Property + " " + e.Range.String() + ")"
	case ClassDataHasValue:
		return "DataHasValue(" + e.Property + " " + FormatTerm(LiteralTerm{Literal: e.Value}) + ")"
	case ClassDataMinCardinality:
		return renderDataCardinality("DataMinCardinality", e)
	case ClassDataMaxCardinality:
		return renderDataCardinality("DataMaxCardinality", e)
	case ClassDataExactCardinality:
		return renderDataCardinality("DataExactCardinality", e)
	default:
		panic(fmt.Sprintf("owl: unknown class expression kind %d", e.Kind))
	}
}

func joinExpressions(operands []ClassExpression) string {
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}

func renderCardinality(name string, e ClassExpression) string {
	s := name + "(" + strconv.Itoa(e.Cardinality) + " " + e.Property
	if e.Filler != nil {
		s += " " + e.Filler.String()
	}
	return s + ")"
}

func renderDataCardinality(name string, e ClassExpression) string {
	s := name + "(" + strconv.Itoa(e.Cardinality) + " " + e.Property
	if e.Range != nil {
		s += " " + e.Range.String()
	}
	return s + ")"
}

// Equal reports structural equality of two expressions.
func (e ClassExpression) Equal(other ClassExpression) bool {
	return e.String() == other.String()
}

// UsedClasses returns the sorted set of named-class IRIs the expression
// references.
func (e ClassExpression) UsedClasses() []string {
	set := map[string]struct{}{}
	e.collect(func(sub ClassExpression) {
		if sub.Kind == ClassNamed {
			set[sub.IRI] = struct{}{}
		}
	})
	return sortedKeys(set)
}

// UsedObjectProperties returns the sorted set of object-property IRIs the
// expression references.
func (e ClassExpression) UsedObjectProperties() []string {
	set := map[string]struct{}{}
	e.collect(func(sub ClassExpression) {
		switch sub.Kind {
		case ClassSomeValuesFrom, ClassAllValuesFrom, ClassHasValue, ClassHasSelf,
			ClassMinCardinality, ClassMaxCardinality, ClassExactCardinality:
			set[sub.Property] = struct{}{}
		}
	})
	return sortedKeys(set)
}

// UsedDataProperties returns the sorted set of data-property IRIs the
// expression references.
func (e ClassExpression) UsedDataProperties() []string {
	set := map[string]struct{}{}
	e.collect(func(sub ClassExpression) {
		switch sub.Kind {
		case ClassDataSomeValuesFrom, ClassDataAllValuesFrom, ClassDataHasValue,
			ClassDataMinCardinality, ClassDataMaxCardinality, ClassDataExactCardinality:
			set[sub.Property] = struct{}{}
		}
	})
	return sortedKeys(set)
}

// UsedIndividuals returns the sorted set of named-individual IRIs the
// expression references.
func (e ClassExpression) UsedIndividuals() []string {
	set := map[string]struct{}{}
	e.collect(func(sub ClassExpression) {
		switch sub.Kind {
		case ClassOneOf:
			for _, ind := range sub.Individuals {
				if ind.Kind == IndividualNamed {
					set[ind.IRI] = struct{}{}
				}
			}
		case ClassHasValue:
			if sub.Individual.Kind == IndividualNamed {
				set[sub.Individual.IRI] = struct{}{}
			}
		}
	})
	return sortedKeys(set)
}

// collect invokes visit on the expression and every sub-expression.
func (e ClassExpression) collect(visit func(ClassExpression)) {
	visit(e)
	if e.Operand != nil {
		e.Operand.collect(visit)
	}
	if e.Filler != nil {
		e.Filler.collect(visit)
	}
	for _, op := range e.Operands {
		op.collect(visit)
	}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
