package ledger

import "slices"

// Vocabulary is an insertion ordered set of labels. It is immutable; Add
// returns a new value.
type Vocabulary struct {
	values []string
}

// NewVocabulary builds a vocabulary from values, dropping duplicates.
func NewVocabulary(values ...string) Vocabulary {
	v := Vocabulary{}
	for _, value := range values {
		v, _ = v.Add(value)
	}
	return v
}

func (v Vocabulary) Contains(value string) bool {
	return slices.Contains(v.values, value)
}

// Add appends value when it is not already present.
func (v Vocabulary) Add(value string) (Vocabulary, bool) {
	if value == "" || v.Contains(value) {
		return v, false
	}
	values := make([]string, len(v.values), len(v.values)+1)
	copy(values, v.values)
	return Vocabulary{values: append(values, value)}, true
}

func (v Vocabulary) Len() int {
	return len(v.values)
}

// Values returns a copy of the labels in insertion order.
func (v Vocabulary) Values() []string {
	return slices.Clone(v.values)
}
