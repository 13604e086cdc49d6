package owl

import "fmt"

// AxiomKind identifies the closed set of axiom shapes.
type AxiomKind uint8

const (
	// TBox.

	// AxiomSubClassOf is SubClassOf(sub super).
	AxiomSubClassOf AxiomKind = iota
	// AxiomEquivalentClasses is EquivalentClasses(c1 ... cn).
	AxiomEquivalentClasses
	// AxiomDisjointClasses is DisjointClasses(c1 ... cn).
	AxiomDisjointClasses
	// AxiomDisjointUnion is DisjointUnion(class c1 ... cn).
	AxiomDisjointUnion

	// RBox, object properties.

	// AxiomSubObjectPropertyOf is SubObjectPropertyOf(sub super).
	AxiomSubObjectPropertyOf
	// AxiomSubPropertyChainOf is SubObjectPropertyOf(PropertyChain(p1 ... pn) super).
	AxiomSubPropertyChainOf
	// AxiomEquivalentObjectProperties relates mutually equivalent properties.
	AxiomEquivalentObjectProperties
	// AxiomDisjointObjectProperties relates mutually disjoint properties.
	AxiomDisjointObjectProperties
	// AxiomInverseObjectProperties is InverseObjectProperties(p q).
	AxiomInverseObjectProperties
	// AxiomObjectPropertyDomain is ObjectPropertyDomain(p class).
	AxiomObjectPropertyDomain
	// AxiomObjectPropertyRange is ObjectPropertyRange(p class).
	AxiomObjectPropertyRange
	// AxiomFunctionalObjectProperty marks a property functional.
	AxiomFunctionalObjectProperty
	// AxiomInverseFunctionalObjectProperty marks a property inverse functional.
	AxiomInverseFunctionalObjectProperty
	// AxiomTransitiveObjectProperty marks a property transitive.
	AxiomTransitiveObjectProperty
	// AxiomSymmetricObjectProperty marks a property symmetric.
	AxiomSymmetricObjectProperty
	// AxiomAsymmetricObjectProperty marks a property asymmetric.
	AxiomAsymmetricObjectProperty
	// AxiomReflexiveObjectProperty marks a property reflexive.
	AxiomReflexiveObjectProperty
	// AxiomIrreflexiveObjectProperty marks a property irreflexive.
	AxiomIrreflexiveObjectProperty

	// RBox, data properties.

	// AxiomSubDataPropertyOf is SubDataPropertyOf(sub super).
	AxiomSubDataPropertyOf
	// AxiomEquivalentDataProperties relates mutually equivalent data properties.
	AxiomEquivalentDataProperties
	// AxiomDisjointDataProperties relates mutually disjoint data properties.
	AxiomDisjointDataProperties
	// AxiomDataPropertyDomain is DataPropertyDomain(p class).
	AxiomDataPropertyDomain
	// AxiomDataPropertyRange is DataPropertyRange(p range).
	AxiomDataPropertyRange
	// AxiomFunctionalDataProperty marks a data property functional.
	AxiomFunctionalDataProperty

	// ABox.

	// AxiomClassAssertion is ClassAssertion(class individual).
	AxiomClassAssertion
	// AxiomObjectPropertyAssertion is ObjectPropertyAssertion(p subject object).
	AxiomObjectPropertyAssertion
	// AxiomNegativeObjectPropertyAssertion negates an object assertion.
	AxiomNegativeObjectPropertyAssertion
	// AxiomDataPropertyAssertion is DataPropertyAssertion(p subject value).
	AxiomDataPropertyAssertion
	// AxiomNegativeDataPropertyAssertion negates a data assertion.
	AxiomNegativeDataPropertyAssertion
	// AxiomSameIndividual is SameIndividual(a1 ... an).
	AxiomSameIndividual
	// AxiomDifferentIndividuals is DifferentIndividuals(a1 ... an).
	AxiomDifferentIndividuals

	// Declarations.

	// AxiomDeclaration declares an entity of a given kind.
	AxiomDeclaration
)

// EntityKind classifies the entity named by a declaration axiom.
type EntityKind uint8

const (
	// EntityClass declares a class.
	EntityClass EntityKind = iota
	// EntityObjectProperty declares an object property.
	EntityObjectProperty
	// EntityDataProperty declares a data property.
	EntityDataProperty
	// EntityAnnotationProperty declares an annotation property.
	EntityAnnotationProperty
	// EntityNamedIndividual declares a named individual.
	EntityNamedIndividual
	// EntityDatatype declares a datatype.
	EntityDatatype
)

// Axiom is one immutable axiom instance. Which fields carry data depends on
// Kind; classification and signature extraction are pure functions of the
// case.
type Axiom struct {
	Kind AxiomKind `json:"kind"`

	Class      ClassExpression   `json:"class,omitzero"`
	SuperClass ClassExpression   `json:"superClass,omitzero"`
	Classes    []ClassExpression `json:"classes,omitempty"`

	Property      string   `json:"property,omitempty"`
	SuperProperty string   `json:"superProperty,omitempty"`
	Properties    []string `json:"properties,omitempty"`
	Chain         []string `json:"chain,omitempty"`

	Range     ClassExpression `json:"range,omitzero"`
	DataRange DataRange       `json:"dataRange,omitzero"`

	Subject     Individual   `json:"subject,omitzero"`
	Object      Individual   `json:"object,omitzero"`
	Individuals []Individual `json:"individuals,omitempty"`
	Value       Literal      `json:"value,omitzero"`

	Entity     string     `json:"entity,omitempty"`
	EntityKind EntityKind `json:"entityKind,omitempty"`
}

// SubClassOf builds a subclass axiom.
func SubClassOf(sub, super ClassExpression) Axiom {
	return Axiom{Kind: AxiomSubClassOf, Class: sub, SuperClass: super}
}

// EquivalentClasses builds an equivalence axiom.
func EquivalentClasses(classes ...ClassExpression) Axiom {
	return Axiom{Kind: AxiomEquivalentClasses, Classes: classes}
}

// DisjointClasses builds a pairwise-disjointness axiom.
func DisjointClasses(classes ...ClassExpression) Axiom {
	return Axiom{Kind: AxiomDisjointClasses, Classes: classes}
}

// DisjointUnion builds a disjoint-union axiom over a named class.
func DisjointUnion(class string, parts ...ClassExpression) Axiom {
	return Axiom{Kind: AxiomDisjointUnion, Class: NamedClass(class), Classes: parts}
}

// SubObjectPropertyOf builds an object property hierarchy axiom.
func SubObjectPropertyOf(sub, super string) Axiom {
	return Axiom{Kind: AxiomSubObjectPropertyOf, Property: sub, SuperProperty: super}
}

// SubPropertyChainOf builds a property chain axiom.
func SubPropertyChainOf(chain []string, super string) Axiom {
	return Axiom{Kind: AxiomSubPropertyChainOf, Chain: chain, SuperProperty: super}
}

// EquivalentObjectProperties builds an object property equivalence axiom.
func EquivalentObjectProperties(properties ...string) Axiom {
	return Axiom{Kind: AxiomEquivalentObjectProperties, Properties: properties}
}

// DisjointObjectProperties builds an object property disjointness axiom.
func DisjointObjectProperties(properties ...string) Axiom {
	return Axiom{Kind: AxiomDisjointObjectProperties, Properties: properties}
}

// InverseObjectProperties declares two properties inverse to each other.
func InverseObjectProperties(first, second string) Axiom {
	return Axiom{Kind: AxiomInverseObjectProperties, Property: first, SuperProperty: second}
}

// ObjectPropertyDomain builds a domain axiom.
func ObjectPropertyDomain(property string, domain ClassExpression) Axiom {
	return Axiom{Kind: AxiomObjectPropertyDomain, Property: property, Class: domain}
}

// ObjectPropertyRange builds a range axiom.
func ObjectPropertyRange(property string, rng ClassExpression) Axiom {
	return Axiom{Kind: AxiomObjectPropertyRange, Property: property, Range: rng}
}

// FunctionalObjectProperty builds a functionality axiom.
func FunctionalObjectProperty(property string) Axiom {
	return Axiom{Kind: AxiomFunctionalObjectProperty, Property: property}
}

// InverseFunctionalObjectProperty builds an inverse-functionality axiom.
func InverseFunctionalObjectProperty(property string) Axiom {
	return Axiom{Kind: AxiomInverseFunctionalObjectProperty, Property: property}
}

// TransitiveObjectProperty builds a transitivity axiom.
func TransitiveObjectProperty(property string) Axiom {
	return Axiom{Kind: AxiomTransitiveObjectProperty, Property: property}
}

// SymmetricObjectProperty builds a symmetry axiom.
func SymmetricObjectProperty(property string) Axiom {
	return Axiom{Kind: AxiomSymmetricObjectProperty, Property: property}
}

// AsymmetricObjectProperty builds an asymmetry axiom.
func AsymmetricObjectProperty(property string) Axiom {
	return Axiom{Kind: AxiomAsymmetricObjectProperty, Property: property}
}

// ReflexiveObjectProperty builds a reflexivity axiom.
func ReflexiveObjectProperty(property string) Axiom {
	return Axiom{Kind: AxiomReflexiveObjectProperty, Property: property}
}

// IrreflexiveObjectProperty builds an irreflexivity axiom.
func IrreflexiveObjectProperty(property string) Axiom {
	return Axiom{Kind: AxiomIrreflexiveObjectProperty, Property: property}
}

// SubDataPropertyOf builds a data property hierarchy axiom.
func SubDataPropertyOf(sub, super string) Axiom {
	return Axiom{Kind: AxiomSubDataPropertyOf, Property: sub, SuperProperty: super}
}

// EquivalentDataProperties builds a data property equivalence axiom.
func EquivalentDataProperties(properties ...string) Axiom {
	return Axiom{Kind: AxiomEquivalentDataProperties, Properties: properties}
}

// DisjointDataProperties builds a data property disjointness axiom.
func DisjointDataProperties(properties ...string) Axiom {
	return Axiom{Kind: AxiomDisjointDataProperties, Properties: properties}
}

// DataPropertyDomain builds a data property domain axiom.
func DataPropertyDomain(property string, domain ClassExpression) Axiom {
	return Axiom{Kind: AxiomDataPropertyDomain, Property: property, Class: domain}
}

// DataPropertyRange builds a data property range axiom.
func DataPropertyRange(property string, rng DataRange) Axiom {
	return Axiom{Kind: AxiomDataPropertyRange, Property: property, DataRange: rng}
}

// FunctionalDataProperty builds a data property functionality axiom.
func FunctionalDataProperty(property string) Axiom {
	return Axiom{Kind: AxiomFunctionalDataProperty, Property: property}
}

// ClassAssertion asserts class membership of an individual.
func ClassAssertion(class ClassExpression, individual Individual) Axiom {
	return Axiom{Kind: AxiomClassAssertion, Class: class, Subject: individual}
}

// ObjectPropertyAssertion asserts a property value between two individuals.
func ObjectPropertyAssertion(property string, subject, object Individual) Axiom {
	return Axiom{Kind: AxiomObjectPropertyAssertion, Property: property, Subject: subject, Object: object}
}

// NegativeObjectPropertyAssertion negates a property value between two
// individuals.
func NegativeObjectPropertyAssertion(property string, subject, object Individual) Axiom {
	return Axiom{Kind: AxiomNegativeObjectPropertyAssertion, Property: property, Subject: subject, Object: object}
}

// DataPropertyAssertion asserts a literal value on an individual.
func DataPropertyAssertion(property string, subject Individual, value Literal) Axiom {
	return Axiom{Kind: AxiomDataPropertyAssertion, Property: property, Subject: subject, Value: value}
}

// NegativeDataPropertyAssertion negates a literal value on an individual.
func NegativeDataPropertyAssertion(property string, subject Individual, value Literal) Axiom {
	return Axiom{Kind: AxiomNegativeDataPropertyAssertion, Property: property, Subject: subject, Value: value}
}

// SameIndividual asserts that all listed individuals are identical.
func SameIndividual(individuals ...Individual) Axiom {
	return Axiom{Kind: AxiomSameIndividual, Individuals: individuals}
}

// DifferentIndividuals asserts that all listed individuals are pairwise
// distinct.
func DifferentIndividuals(individuals ...Individual) Axiom {
	return Axiom{Kind: AxiomDifferentIndividuals, Individuals: individuals}
}

// Declaration declares an entity of the given kind.
func Declaration(kind EntityKind, iri string) Axiom {
	return Axiom{Kind: AxiomDeclaration, EntityKind: kind, Entity: iri}
}

// IsTBox reports whether the axiom is terminological.
func (a Axiom) IsTBox() bool {
	switch a.Kind {
	case AxiomSubClassOf, AxiomEquivalentClasses, AxiomDisjointClasses, AxiomDisjointUnion:
		return true
	}
	return false
}

// IsRBox reports whether the axiom concerns properties (roles).
func (a Axiom) IsRBox() bool {
	switch a.Kind {
	case AxiomSubObjectPropertyOf, AxiomSubPropertyChainOf,
		AxiomEquivalentObjectProperties, AxiomDisjointObjectProperties,
		AxiomInverseObjectProperties, AxiomObjectPropertyDomain,
		AxiomObjectPropertyRange, AxiomFunctionalObjectProperty,
		AxiomInverseFunctionalObjectProperty, AxiomTransitiveObjectProperty,
		AxiomSymmetricObjectProperty, AxiomAsymmetricObjectProperty,
		AxiomReflexiveObjectProperty, AxiomIrreflexiveObjectProperty,
		AxiomSubDataPropertyOf, AxiomEquivalentDataProperties,
		AxiomDisjointDataProperties, AxiomDataPropertyDomain,
		AxiomDataPropertyRange, AxiomFunctionalDataProperty:
		return true
	}
	return false
}

// IsABox reports whether the axiom is assertional.
func (a Axiom) IsABox() bool {
	switch a.Kind {
	case AxiomClassAssertion, AxiomObjectPropertyAssertion,
		AxiomNegativeObjectPropertyAssertion, AxiomDataPropertyAssertion,
		AxiomNegativeDataPropertyAssertion, AxiomSameIndividual,
		AxiomDifferentIndividuals:
		return true
	}
	return false
}

// IsDeclaration reports whether the axiom is an entity declaration.
func (a Axiom) IsDeclaration() bool {
	return a.Kind == AxiomDeclaration
}

// ReferencedClasses returns the sorted set of named-class IRIs the axiom
// mentions, including IRIs nested inside carried class expressions.
func (a Axiom) ReferencedClasses() []string {
	set := map[string]struct{}{}
	add := func(iris []string) {
		for _, iri := range iris {
			set[iri] = struct{}{}
		}
	}
	switch a.Kind {
	case AxiomSubClassOf:
		add(a.Class.UsedClasses())
		add(a.SuperClass.UsedClasses())
	case AxiomEquivalentClasses, AxiomDisjointClasses:
		for _, c := range a.Classes {
			add(c.UsedClasses())
		}
	case AxiomDisjointUnion:
		add(a.Class.UsedClasses())
		for _, c := range a.Classes {
			add(c.UsedClasses())
		}
	case AxiomObjectPropertyDomain, AxiomDataPropertyDomain:
		add(a.Class.UsedClasses())
	case AxiomObjectPropertyRange:
		add(a.Range.UsedClasses())
	case AxiomClassAssertion:
		add(a.Class.UsedClasses())
	case AxiomDeclaration:
		if a.EntityKind == EntityClass {
			set[a.Entity] = struct{}{}
		}
	case AxiomSubObjectPropertyOf, AxiomSubPropertyChainOf,
		AxiomEquivalentObjectProperties, AxiomDisjointObjectProperties,
		AxiomInverseObjectProperties, AxiomFunctionalObjectProperty,
		AxiomInverseFunctionalObjectProperty, AxiomTransitiveObjectProperty,
		AxiomSymmetricObjectProperty, AxiomAsymmetricObjectProperty,
		AxiomReflexiveObjectProperty, AxiomIrreflexiveObjectProperty,
		AxiomSubDataPropertyOf, AxiomEquivalentDataProperties,
		AxiomDisjointDataProperties, AxiomDataPropertyRange,
		AxiomFunctionalDataProperty, AxiomObjectPropertyAssertion,
		AxiomNegativeObjectPropertyAssertion, AxiomDataPropertyAssertion,
		AxiomNegativeDataPropertyAssertion, AxiomSameIndividual,
		AxiomDifferentIndividuals:
		// No class references.
	default:
		panic(fmt.Sprintf("owl: unknown axiom kind %d", a.Kind))
	}
	return sortedKeys(set)
}

// ReferencedObjectProperties returns the sorted set of object-property IRIs
// the axiom mentions.
func (a Axiom) ReferencedObjectProperties() []string {
	set := map[string]struct{}{}
	add := func(iris []string) {
		for _, iri := range iris {
			set[iri] = struct{}{}
		}
	}
	switch a.Kind {
	case AxiomSubClassOf:
		add(a.Class.UsedObjectProperties())
		add(a.SuperClass.UsedObjectProperties())
	case AxiomEquivalentClasses, AxiomDisjointClasses:
		for _, c := range a.Classes {
			add(c.UsedObjectProperties())
		}
	case AxiomDisjointUnion:
		for _, c := range a.Classes {
			add(c.UsedObjectProperties())
		}
	case AxiomSubObjectPropertyOf:
		set[a.Property] = struct{}{}
		set[a.SuperProperty] = struct{}{}
	case AxiomSubPropertyChainOf:
		for _, p := range a.Chain {
			set[p] = struct{}{}
		}
		set[a.SuperProperty] = struct{}{}
	case AxiomEquivalentObjectProperties, AxiomDisjointObjectProperties:
		for _, p := range a.Properties {
			set[p] = struct{}{}
		}
	case AxiomInverseObjectProperties:
		set[a.Property] = struct{}{}
		set[a.SuperProperty] = struct{}{}
	case AxiomObjectPropertyDomain, AxiomObjectPropertyRange,
		AxiomFunctionalObjectProperty, AxiomInverseFunctionalObjectProperty,
		AxiomTransitiveObjectProperty, AxiomSymmetricObjectProperty,
		AxiomAsymmetricObjectProperty, AxiomReflexiveObjectProperty,
		AxiomIrreflexiveObjectProperty:
		set[a.Property] = struct{}{}
	case AxiomObjectPropertyAssertion, AxiomNegativeObjectPropertyAssertion:
		set[a.Property] = struct{}{}
	case AxiomClassAssertion:
		add(a.Class.UsedObjectProperties())
	case AxiomDeclaration:
		if a.EntityKind == EntityObjectProperty {
			set[a.Entity] = struct{}{}
		}
	case AxiomSubDataPropertyOf, AxiomEquivalentDataProperties,
		AxiomDisjointDataProperties, AxiomDataPropertyDomain,
		AxiomDataPropertyRange, AxiomFunctionalDataProperty,
		AxiomDataPropertyAssertion, AxiomNegativeDataPropertyAssertion,
		AxiomSameIndividual, AxiomDifferentIndividuals:
		// No object property references.
	default:
		panic(fmt.Sprintf("owl: unknown axiom kind %d", a.Kind))
	}
	return sortedKeys(set)
}

// ReferencedDataProperties returns the sorted set of data-property IRIs the
// axiom mentions.
func (a Axiom) ReferencedDataProperties() []string {
	set := map[string]struct{}{}
	add := func(iris []string) {
		for _, iri := range iris {
			set[iri] = struct{}{}
		}
	}
	switch a.Kind {
	case AxiomSubClassOf:
		add(a.Class.UsedDataProperties())
		add(a.SuperClass.UsedDataProperties())
	case AxiomEquivalentClasses, AxiomDisjointClasses:
		for _, c := range a.Classes {
			add(c.UsedDataProperties())
		}
	case AxiomDisjointUnion:
		for _, c := range a.Classes {
			add(c.UsedDataProperties())
		}
	case AxiomSubDataPropertyOf:
		set[a.Property] = struct{}{}
		set[a.SuperProperty] = struct{}{}
	case AxiomEquivalentDataProperties, AxiomDisjointDataProperties:
		for _, p := range a.Properties {
			set[p] = struct{}{}
		}
	case AxiomDataPropertyDomain, AxiomDataPropertyRange, AxiomFunctionalDataProperty:
		set[a.Property] = struct{}{}
	case AxiomDataPropertyAssertion, AxiomNegativeDataPropertyAssertion:
		set[a.Property] = struct{}{}
	case AxiomClassAssertion:
		add(a.Class.UsedDataProperties())
	case AxiomDeclaration:
		if a.EntityKind == EntityDataProperty {
			set[a.Entity] = struct{}{}
		}
	case AxiomSubObjectPropertyOf, AxiomSubPropertyChainOf,
		AxiomEquivalentObjectProperties, AxiomDisjointObjectProperties,
		AxiomInverseObjectProperties, AxiomObjectPropertyDomain,
		AxiomObjectPropertyRange, AxiomFunctionalObjectProperty,
		AxiomInverseFunctionalObjectProperty, AxiomTransitiveObjectProperty,
		AxiomSymmetricObjectProperty, AxiomAsymmetricObjectProperty,
		AxiomReflexiveObjectProperty, AxiomIrreflexiveObjectProperty,
		AxiomObjectPropertyAssertion, AxiomNegativeObjectPropertyAssertion,
		AxiomSameIndividual, AxiomDifferentIndividuals:
		// No data property references.
	default:
		panic(fmt.Sprintf("owl: unknown axiom kind %d", a.Kind))
	}
	return sortedKeys(set)
}

// ReferencedIndividuals returns the sorted set of named-individual IRIs the
// axiom mentions.
func (a Axiom) ReferencedIndividuals() []string {
	set := map[string]struct{}{}
	addInd := func(ind Individual) {
		if ind.Kind == IndividualNamed && ind.IRI != "" {
			set[ind.IRI] = struct{}{}
		}
	}
	add := func(iris []string) {
		for _, iri := range iris {
			set[iri] = struct{}{}
		}
	}
	switch a.Kind {
	case AxiomSubClassOf:
		add(a.Class.UsedIndividuals())
		add(a.SuperClass.UsedIndividuals())
	case AxiomEquivalentClasses, AxiomDisjointClasses, AxiomDisjointUnion:
		for _, c := range a.Classes {
			add(c.UsedIndividuals())
		}
	case AxiomClassAssertion:
		add(a.Class.UsedIndividuals())
		addInd(a.Subject)
	case AxiomObjectPropertyAssertion, AxiomNegativeObjectPropertyAssertion:
		addInd(a.Subject)
		addInd(a.Object)
	case AxiomDataPropertyAssertion, AxiomNegativeDataPropertyAssertion:
		addInd(a.Subject)
	case AxiomSameIndividual, AxiomDifferentIndividuals:
		for _, ind := range a.Individuals {
			addInd(ind)
		}
	case AxiomDeclaration:
		if a.EntityKind == EntityNamedIndividual {
			set[a.Entity] = struct{}{}
		}
	case AxiomSubObjectPropertyOf, AxiomSubPropertyChainOf,
		AxiomEquivalentObjectProperties, AxiomDisjointObjectProperties,
		AxiomInverseObjectProperties, AxiomObjectPropertyDomain,
		AxiomObjectPropertyRange, AxiomFunctionalObjectProperty,
		AxiomInverseFunctionalObjectProperty, AxiomTransitiveObjectProperty,
		AxiomSymmetricObjectProperty, AxiomAsymmetricObjectProperty,
		AxiomReflexiveObjectProperty, AxiomIrreflexiveObjectProperty,
		AxiomSubDataPropertyOf, AxiomEquivalentDataProperties,
		AxiomDisjointDataProperties, AxiomDataPropertyDomain,
		AxiomDataPropertyRange, AxiomFunctionalDataProperty:
		// No individual references.
	default:
		panic(fmt.Sprintf("owl: unknown axiom kind %d", a.Kind))
	}
	return sortedKeys(set)
}
