// FILE: internal/entity/feature_entity.go
// Feature set value type shared by accounts, plans and add-ons
package entity

import (
	"encoding/json"
	"sort"
)

// FeatureSet is a set of feature identifiers. Features are opaque strings;
// equality is exact match (normalization happens upstream in ingestion).
// JSON form is a sorted array so persisted payloads are byte-stable.
type FeatureSet map[string]struct{}

func NewFeatureSet(features ...string) FeatureSet {
	s := make(FeatureSet, len(features))
	for _, f := range features {
		if f == "" {
			continue
		}
		s[f] = struct{}{}
	}
	return s
}

func (s FeatureSet) Contains(feature string) bool {
	_, ok := s[feature]
	return ok
}

func (s FeatureSet) Len() int {
	return len(s)
}

func (s FeatureSet) IsEmpty() bool {
	return len(s) == 0
}

// Sorted returns the members in lexicographic order.
func (s FeatureSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (s FeatureSet) Clone() FeatureSet {
	out := make(FeatureSet, len(s))
	for f := range s {
		out[f] = struct{}{}
	}
	return out
}

func (s FeatureSet) Union(other FeatureSet) FeatureSet {
	out := s.Clone()
	for f := range other {
		out[f] = struct{}{}
	}
	return out
}

func (s FeatureSet) Intersect(other FeatureSet) FeatureSet {
	out := make(FeatureSet)
	for f := range s {
		if other.Contains(f) {
			out[f] = struct{}{}
		}
	}
	return out
}

// Diff returns the members of s that are not in other.
func (s FeatureSet) Diff(other FeatureSet) FeatureSet {
	out := make(FeatureSet)
	for f := range s {
		if !other.Contains(f) {
			out[f] = struct{}{}
		}
	}
	return out
}

func (s FeatureSet) Equal(other FeatureSet) bool {
	if len(s) != len(other) {
		return false
	}
	for f := range s {
		if !other.Contains(f) {
			return false
		}
	}
	return true
}

func (s FeatureSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *FeatureSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewFeatureSet(items...)
	return nil
}
