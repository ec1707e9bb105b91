package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValueKind discriminates the answer value union
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

// Value is a single answer: a string, number, boolean, list of option
// values, or absent (question not answered yet). The zero Value is absent.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
	List []string
}

// StringValue wraps a text answer
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// NumberValue wraps a numeric answer
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// BoolValue wraps a toggle answer
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// ListValue wraps a multiselect answer
func ListValue(items ...string) Value { return Value{Kind: KindList, List: items} }

// IsAbsent reports whether the question has no stored answer
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// HasValue implements the hasValue operator semantics: a non-empty list, or
// any defined value other than the empty string and boolean false.
func (v Value) HasValue() bool {
	switch v.Kind {
	case KindAbsent:
		return false
	case KindString:
		return v.Str != ""
	case KindBool:
		return v.Bool
	case KindList:
		return len(v.List) > 0
	default:
		return true
	}
}

// Answered reports whether the value counts toward completion. Unlike
// HasValue, boolean false is a real answer; empty strings and empty lists
// are not.
func (v Value) Answered() bool {
	switch v.Kind {
	case KindAbsent:
		return false
	case KindString:
		return v.Str != ""
	case KindList:
		return len(v.List) > 0
	default:
		return true
	}
}

// Truthy reports whether the value should trigger risk/feature derivation:
// boolean true, a non-empty string, a non-zero number, or a non-empty list.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindString:
		return v.Str != ""
	case KindNumber:
		return v.Num != 0
	case KindBool:
		return v.Bool
	case KindList:
		return len(v.List) > 0
	default:
		return false
	}
}

// Equal is strict equality across the union: kinds must match and payloads
// must be identical (lists element-wise, in order).
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == other.Str
	case KindNumber:
		return v.Num == other.Num
	case KindBool:
		return v.Bool == other.Bool
	case KindList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if v.List[i] != other.List[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Contains reports whether a list answer contains the given option value
func (v Value) Contains(option string) bool {
	if v.Kind != KindList {
		return false
	}
	for _, item := range v.List {
		if item == option {
			return true
		}
	}
	return false
}

func (v Value) native() interface{} {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindList:
		if v.List == nil {
			return []string{}
		}
		return v.List
	default:
		return nil
	}
}

// MarshalJSON emits the natural JSON form; absent marshals as null
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

// UnmarshalJSON accepts null, string, boolean, number, or array-of-string
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = Value{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = ListValue(list...)
		return nil
	}
	return fmt.Errorf("unsupported answer value: %s", data)
}

// MarshalBSONValue stores the natural BSON form; absent stores as null
func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if v.Kind == KindAbsent {
		return bson.MarshalValue(primitive.Null{})
	}
	return bson.MarshalValue(v.native())
}

// UnmarshalBSONValue restores a Value from its stored BSON form
func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*v = Value{}
	case bsontype.String:
		*v = StringValue(raw.StringValue())
	case bsontype.Boolean:
		*v = BoolValue(raw.Boolean())
	case bsontype.Double:
		*v = NumberValue(raw.Double())
	case bsontype.Int32:
		*v = NumberValue(float64(raw.Int32()))
	case bsontype.Int64:
		*v = NumberValue(float64(raw.Int64()))
	case bsontype.Array:
		var list []string
		if err := raw.Unmarshal(&list); err != nil {
			return err
		}
		*v = ListValue(list...)
	default:
		return fmt.Errorf("unsupported stored answer type %s", t)
	}
	return nil
}

// AnswerSet maps question id to its stored answer. Missing keys read as the
// absent Value, so lookups never need an existence check.
type AnswerSet map[string]Value

// Get returns the stored answer, or the absent Value when unanswered
func (a AnswerSet) Get(questionID string) Value {
	if a == nil {
		return Value{}
	}
	return a[questionID]
}

// Set upserts the answer for a question id
func (a AnswerSet) Set(questionID string, value Value) {
	a[questionID] = value
}

// Clone returns a shallow copy sharing list backing arrays
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
