package owl

import "strconv"

// xsd: datatype IRIs.
const (
	XSDString             = XSDNamespace + "string"
	XSDBoolean            = XSDNamespace + "boolean"
	XSDInteger            = XSDNamespace + "integer"
	XSDInt                = XSDNamespace + "int"
	XSDLong               = XSDNamespace + "long"
	XSDDecimal            = XSDNamespace + "decimal"
	XSDDouble             = XSDNamespace + "double"
	XSDFloat              = XSDNamespace + "float"
	XSDDate               = XSDNamespace + "date"
	XSDDateTime           = XSDNamespace + "dateTime"
	XSDNonNegativeInteger = XSDNamespace + "nonNegativeInteger"
	XSDAnyURI             = XSDNamespace + "anyURI"
)

// xsd: facet IRIs, used in facet-restricted datatypes.
const (
	XSDMinInclusive = XSDNamespace + "minInclusive"
	XSDMaxInclusive = XSDNamespace + "maxInclusive"
	XSDMinExclusive = XSDNamespace + "minExclusive"
	XSDMaxExclusive = XSDNamespace + "maxExclusive"
	XSDLength       = XSDNamespace + "length"
	XSDMinLength    = XSDNamespace + "minLength"
	XSDMaxLength    = XSDNamespace + "maxLength"
	XSDPattern      = XSDNamespace + "pattern"
)

// Literal is a typed literal value: a lexical form, a datatype IRI and an
// optional language tag. A non-empty Lang implies Datatype rdf:langString.
type Literal struct {
	Lexical  string `json:"lexical"`
	Datatype string `json:"datatype"`
	Lang     string `json:"lang,omitempty"`
}

// StringLiteral returns a plain xsd:string literal.
func StringLiteral(lexical string) Literal {
	return Literal{Lexical: lexical, Datatype: XSDString}
}

// TypedLiteral returns a literal with an explicit datatype IRI. An empty
// datatype defaults to xsd:string.
func TypedLiteral(lexical, datatype string) Literal {
	if datatype == "" {
		datatype = XSDString
	}
	return Literal{Lexical: lexical, Datatype: datatype}
}

// LangLiteral returns a language-tagged literal. Per the RDF data model its
// datatype is always rdf:langString.
func LangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Datatype: RDFLangString, Lang: lang}
}

// IntegerLiteral returns an xsd:integer literal.
func IntegerLiteral(v int64) Literal {
	return Literal{Lexical: strconv.FormatInt(v, 10), Datatype: XSDInteger}
}

// DoubleLiteral returns an xsd:double literal.
func DoubleLiteral(v float64) Literal {
	return Literal{Lexical: strconv.FormatFloat(v, 'g', -1, 64), Datatype: XSDDouble}
}

// BooleanLiteral returns an xsd:boolean literal.
func BooleanLiteral(v bool) Literal {
	return Literal{Lexical: strconv.FormatBool(v), Datatype: XSDBoolean}
}

// Int parses the lexical form as an integer.
func (l Literal) Int() (int64, bool) {
	v, err := strconv.ParseInt(l.Lexical, 10, 64)
	return v, err == nil
}

// Float parses the lexical form as a float.
func (l Literal) Float() (float64, bool) {
	v, err := strconv.ParseFloat(l.Lexical, 64)
	return v, err == nil
}

// Bool parses the lexical form as a boolean.
func (l Literal) Bool() (bool, bool) {
	v, err := strconv.ParseBool(l.Lexical)
	return v, err == nil
}

// IsNumeric reports whether the literal's datatype is one of the XSD numeric
// types the codec emits for bare numeric tokens.
func (l Literal) IsNumeric() bool {
	switch l.Datatype {
	case XSDInteger, XSDInt, XSDLong, XSDDecimal, XSDDouble, XSDFloat, XSDNonNegativeInteger:
		return true
	}
	return false
}

// FacetRestriction constrains a datatype by a single XSD facet.
type FacetRestriction struct {
	Facet string  `json:"facet"`
	Value Literal `json:"value"`
}
