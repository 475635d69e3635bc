package adapter

import (
	"encoding/json"
	"fmt"
)

// Field paths understood by the aggregation endpoint. The dot paths address
// fields of the userWord entry joined into each aggregated word.
const (
	FieldIsLearned   = "userWord.optional.isLearned"
	FieldDateLearned = "userWord.optional.dateLearned"
)

// Filter is a typed builder for the Mongo-style filter object the
// aggregatedWords endpoint accepts in its "filter" query parameter.
//
// Two wire forms exist, matching what the endpoint understands:
//
//	Where(a, x).Where(b, y)        -> {"a":x,"b":y}
//	And(Where(a, x).Where(b, y))   -> {"$and":[{"a":x,"b":y}]}
//
// Filter values are immutable; Where returns a copy. The zero Filter
// serialises to an empty object and is treated as "no filter".
type Filter struct {
	fields map[string]any
	and    []Filter
}

// Where returns a filter matching documents whose dot-path field equals
// value, starting from an empty clause.
func Where(path string, value any) Filter {
	return Filter{}.Where(path, value)
}

// And returns a filter that wraps the given clauses in a "$and" list.
func And(clauses ...Filter) Filter {
	return Filter{and: clauses}
}

// Where returns a copy of the filter with an additional equality condition
// on the dot-path field.
func (f Filter) Where(path string, value any) Filter {
	fields := make(map[string]any, len(f.fields)+1)
	for k, v := range f.fields {
		fields[k] = v
	}
	fields[path] = value
	return Filter{fields: fields, and: f.and}
}

// IsZero reports whether the filter holds no conditions.
func (f Filter) IsZero() bool {
	return len(f.fields) == 0 && len(f.and) == 0
}

// MarshalJSON implements json.Marshaler and emits the endpoint's wire form.
func (f Filter) MarshalJSON() ([]byte, error) {
	if len(f.and) > 0 {
		clauses := make([]map[string]any, 0, len(f.and))
		for _, clause := range f.and {
			if clause.fields == nil {
				clauses = append(clauses, map[string]any{})
				continue
			}
			clauses = append(clauses, clause.fields)
		}
		return json.Marshal(map[string]any{"$and": clauses})
	}

	if f.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f.fields)
}

// Encode returns the JSON string placed into the "filter" query parameter.
func (f Filter) Encode() (string, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode filter: %w", err)
	}
	return string(payload), nil
}
