package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		json string
	}{
		{"absent", Value{}, `null`},
		{"string", StringValue("hello"), `"hello"`},
		{"number", NumberValue(3.5), `3.5`},
		{"bool", BoolValue(true), `true`},
		{"list", ListValue("a", "b"), `["a","b"]`},
		{"empty list", ListValue(), `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			var out Value
			require.NoError(t, json.Unmarshal(data, &out))
			assert.True(t, tt.in.Equal(out), "round trip changed %v to %v", tt.in, out)
		})
	}
}

func TestValueUnmarshalRejectsObjects(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"nested":1}`), &v))
}

func TestAnsweredVersusHasValue(t *testing.T) {
	// Boolean false counts as an answer but fails hasValue.
	f := BoolValue(false)
	assert.True(t, f.Answered())
	assert.False(t, f.HasValue())

	// Zero counts for both.
	z := NumberValue(0)
	assert.True(t, z.Answered())
	assert.True(t, z.HasValue())
	assert.False(t, z.Truthy())

	assert.False(t, StringValue("").Answered())
	assert.False(t, ListValue().Answered())
	assert.False(t, Value{}.Answered())
}

func TestValueEqualIsStrict(t *testing.T) {
	assert.False(t, StringValue("1").Equal(NumberValue(1)))
	assert.False(t, BoolValue(true).Equal(StringValue("true")))
	assert.True(t, ListValue("a", "b").Equal(ListValue("a", "b")))
	assert.False(t, ListValue("a", "b").Equal(ListValue("b", "a")))
	assert.True(t, Value{}.Equal(Value{}))
}

func TestAnswerSetGetOnNil(t *testing.T) {
	var a AnswerSet
	assert.True(t, a.Get("anything").IsAbsent())
}

func TestAnswerSetClone(t *testing.T) {
	a := AnswerSet{"q": StringValue("x")}
	b := a.Clone()
	b.Set("q", StringValue("y"))
	assert.Equal(t, StringValue("x"), a.Get("q"))
}
