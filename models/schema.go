package models

import (
	"fmt"
	"math"
	"time"
)

// Kind is the declared type of a schema field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
	KindEnum
	KindNested
	KindNestedList
)

// Field describes one entity field: where it comes from in the payload
// (Alias), what it is called internally (Name), and how its value is
// validated. Exclude marks fields that are parsed but omitted from display
// output (internal sync IDs, secrets-adjacent data).
type Field struct {
	Name     string
	Alias    string
	Kind     Kind
	Required bool
	Default  any
	Exclude  bool
	Enum     *Enum
	Schema   *Schema
}

// Schema is the single source of truth for one entity type: an ordered
// list of field descriptions interpreted by Parse.
type Schema struct {
	Name   string
	Fields []Field
}

// Record is one parsed, validated entity. Values are keyed by internal
// field name. Records are immutable after Parse except for SetDerived.
type Record struct {
	schema  *Schema
	values  map[string]any
	derived map[string]any
}

// Timestamp layouts accepted by KindTime fields. The booking APIs return
// naive local datetimes, so bare layouts come before RFC3339 variants.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Parse validates raw JSON (as decoded into a map) against the schema and
// returns a Record. Missing required fields, unknown enum values and type
// mismatches all fail with a *ValidationError naming the field path.
func (s *Schema) Parse(raw map[string]any) (*Record, error) {
	rec := &Record{
		schema:  s,
		values:  make(map[string]any, len(s.Fields)),
		derived: make(map[string]any),
	}

	for _, f := range s.Fields {
		v, ok := raw[f.Alias]
		if !ok || v == nil {
			if f.Required {
				return nil, &ValidationError{Path: f.Name, Reason: "required field missing"}
			}
			rec.values[f.Name] = f.Default
			continue
		}

		parsed, err := parseValue(f, v)
		if err != nil {
			return nil, err
		}
		rec.values[f.Name] = parsed
	}

	return rec, nil
}

func parseValue(f Field, v any) (any, error) {
	switch f.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Reason: "expected string", Value: v}
		}
		return s, nil

	case KindInt:
		// encoding/json decodes all numbers as float64.
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return nil, &ValidationError{Path: f.Name, Reason: "expected integer", Value: v}
		}
		return int64(n), nil

	case KindFloat:
		n, ok := v.(float64)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Reason: "expected number", Value: v}
		}
		return n, nil

	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Reason: "expected boolean", Value: v}
		}
		return b, nil

	case KindTime:
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Reason: "expected timestamp string", Value: v}
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, &ValidationError{Path: f.Name, Reason: "unparseable timestamp", Value: s}

	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Reason: "expected string", Value: v}
		}
		canonical, err := f.Enum.FromValue(s)
		if err != nil {
			return nil, &ValidationError{Path: f.Name, Reason: "unknown value", Value: s, Allowed: f.Enum.Values()}
		}
		return canonical, nil

	case KindNested:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Reason: "expected object", Value: v}
		}
		nested, err := f.Schema.Parse(obj)
		if err != nil {
			return nil, nest(f.Name, err)
		}
		return nested, nil

	case KindNestedList:
		list, ok := v.([]any)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Reason: "expected array", Value: v}
		}
		recs := make([]*Record, 0, len(list))
		for i, item := range list {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, &ValidationError{Path: fmt.Sprintf("%s[%d]", f.Name, i), Reason: "expected object", Value: item}
			}
			nested, err := f.Schema.Parse(obj)
			if err != nil {
				return nil, nest(fmt.Sprintf("%s[%d]", f.Name, i), err)
			}
			recs = append(recs, nested)
		}
		return recs, nil
	}

	return nil, &ValidationError{Path: f.Name, Reason: "unknown field kind"}
}

// Get resolves a dotted path ("otf_class.studio.studio_name") through
// nested records. Derived fields take precedence at each level.
func (r *Record) Get(path string) (any, bool) {
	if r == nil {
		return nil, false
	}
	head, rest, dotted := cutPath(path)

	var v any
	var ok bool
	if v, ok = r.derived[head]; !ok {
		if v, ok = r.values[head]; !ok {
			return nil, false
		}
	}

	if !dotted {
		return v, true
	}
	nested, ok := v.(*Record)
	if !ok {
		return nil, false
	}
	return nested.Get(rest)
}

func cutPath(path string) (head, rest string, dotted bool) {
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			return path[:i], path[i+1:], true
		}
	}
	return path, "", false
}

// SetDerived patches a computed field onto the record after parsing. This
// is the one documented mutation step; façades use it for fields like
// is_home_studio that cannot be computed from the payload alone.
func (r *Record) SetDerived(name string, value any) {
	r.derived[name] = value
}

// Display returns the record as a plain map for output, omitting fields
// marked Exclude and recursing into nested records. Derived fields are
// included.
func (r *Record) Display() map[string]any {
	out := make(map[string]any, len(r.values))
	for _, f := range r.schema.Fields {
		if f.Exclude {
			continue
		}
		out[f.Name] = displayValue(r.values[f.Name])
	}
	for name, v := range r.derived {
		out[name] = displayValue(v)
	}
	return out
}

func displayValue(v any) any {
	switch val := v.(type) {
	case *Record:
		return val.Display()
	case []*Record:
		list := make([]any, len(val))
		for i, rec := range val {
			list[i] = rec.Display()
		}
		return list
	default:
		return v
	}
}

// Typed accessors. Each returns the zero value when the field is absent
// or holds a different type; schemas guarantee the declared types, so
// callers only hit the zero path on optional fields.

func (r *Record) String(path string) string {
	v, _ := r.Get(path)
	s, _ := v.(string)
	return s
}

func (r *Record) Int(path string) int64 {
	v, _ := r.Get(path)
	n, _ := v.(int64)
	return n
}

func (r *Record) Float(path string) float64 {
	v, _ := r.Get(path)
	n, _ := v.(float64)
	return n
}

func (r *Record) Bool(path string) bool {
	v, _ := r.Get(path)
	b, _ := v.(bool)
	return b
}

func (r *Record) Time(path string) time.Time {
	v, _ := r.Get(path)
	t, _ := v.(time.Time)
	return t
}

func (r *Record) Record(path string) *Record {
	v, _ := r.Get(path)
	rec, _ := v.(*Record)
	return rec
}

func (r *Record) Records(path string) []*Record {
	v, _ := r.Get(path)
	recs, _ := v.([]*Record)
	return recs
}
