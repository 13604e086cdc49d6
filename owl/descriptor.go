package owl

// PropertyDescriptor is the immutable metadata record that code generators
// produce for a mapped property. The core consumes these as plain values and
// has no dependency on how they are produced.
type PropertyDescriptor struct {
	Name        string `json:"name"`
	FieldName   string `json:"fieldName"`
	IRI         string `json:"iri"`
	Label       string `json:"label,omitempty"`
	TargetType  string `json:"targetType,omitempty"`
	TargetField string `json:"targetField,omitempty"`
}

// ExpandedIRI returns the descriptor's IRI expanded against a prefix table.
// A descriptor IRI already in full form passes through unchanged.
func (d PropertyDescriptor) ExpandedIRI(prefixes map[string]string) string {
	expanded, _ := ExpandIRI(d.IRI, prefixes)
	return expanded
}

// DescriptorIndex maps expanded property IRIs to their descriptors for
// lookup during assertion processing.
func DescriptorIndex(descriptors []PropertyDescriptor, prefixes map[string]string) map[string]PropertyDescriptor {
	index := make(map[string]PropertyDescriptor, len(descriptors))
	for _, d := range descriptors {
		index[d.ExpandedIRI(prefixes)] = d
	}
	return index
}
