package seatable

// Ordered-candidate field resolution. The same semantic column shows up
// under different keys depending on the table revision that wrote the row,
// so every accessor takes the candidate keys in precedence order: current
// key first, older aliases after. A row is expected to carry at most one
// of them.

const idKey = "_id"

// ID returns the reserved SeaTable row identifier.
func (r Row) ID() string {
	id, _ := r[idKey].(string)
	return id
}

// First returns the value of the first candidate key that is present and
// not an empty string. The second return reports whether any candidate hit.
func (r Row) First(keys ...string) (interface{}, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// Str resolves the candidates to a string, falling back to def.
// Non-string scalars resolve to def as well; the callers own any
// numeric-to-text translation.
func (r Row) Str(def string, keys ...string) string {
	v, ok := r.First(keys...)
	if !ok {
		return def
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	return def
}

// Float resolves the candidates to a float64, falling back to def.
// JSON numbers decode as float64; anything else misses.
func (r Row) Float(def float64, keys ...string) float64 {
	v, ok := r.First(keys...)
	if !ok {
		return def
	}
	if f, isNum := v.(float64); isNum {
		return f
	}
	return def
}

// Flag resolves the candidates to a bool via CoerceBool.
func (r Row) Flag(keys ...string) bool {
	v, ok := r.First(keys...)
	if !ok {
		return false
	}
	return CoerceBool(v)
}

// CoerceBool maps the heterogeneous flag encodings seen across table
// revisions to one rule: the boolean true and the string "True" are true,
// everything else (including absent) is false.
func CoerceBool(v interface{}) bool {
	if b, isBool := v.(bool); isBool {
		return b
	}
	return v == "True"
}
