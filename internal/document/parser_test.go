package document

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_ObjectKeepsMemberOrder(t *testing.T) {
	t.Parallel()

	v, err := Parse([]byte(`{"zeta":1,"alpha":"x","mid":true}`))

	require.NoError(t, err)
	require.Equal(t, Object, v.Kind())
	require.Equal(t, []string{"zeta", "alpha", "mid"}, v.Keys())
}

func TestParse_DuplicateKeyLastValueWinsFirstPositionKept(t *testing.T) {
	t.Parallel()

	v, err := Parse([]byte(`{"a":1,"b":2,"a":3}`))

	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, v.Keys())
	a, ok := v.Get("a")
	require.True(t, ok)
	require.Equal(t, "3", a.Text())
}

func TestParse_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		kind Kind
		text string
	}{
		{name: "null", in: `null`, kind: Null},
		{name: "true", in: ` true `, kind: Bool},
		{name: "integer", in: `42`, kind: Number, text: "42"},
		{name: "decimal keeps literal", in: `1.50`, kind: Number, text: "1.50"},
		{name: "exponent keeps literal", in: `1e3`, kind: Number, text: "1e3"},
		{name: "string", in: `"héllo"`, kind: String, text: "héllo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := Parse([]byte(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.kind, v.Kind())
			require.Equal(t, tc.text, v.Text())
		})
	}
}

func TestParse_NestedArrays(t *testing.T) {
	t.Parallel()

	v, err := Parse([]byte(`[{"a":[1,2]},{"a":{"b":null}}]`))

	require.NoError(t, err)
	require.Equal(t, Array, v.Kind())
	require.Equal(t, 2, v.Len())
	first, _ := v.Items()[0].Get("a")
	require.Equal(t, Array, first.Kind())
	second, _ := v.Items()[1].Get("a")
	require.Equal(t, Object, second.Kind())
}

func TestParse_SyntaxErrors(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":            ``,
		"whitespace only":  "  \n",
		"unterminated":     `[{"a":1}`,
		"trailing comma":   `{"a":1,}`,
		"missing comma":    `[1 2]`,
		"trailing garbage": `{"a":1} x`,
		"second value":     `{} {}`,
		"bare word":        `hello`,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(in))
			require.Error(t, err)
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "expected *SyntaxError, got %T", err)
		})
	}
}

func TestParse_NestingLimit(t *testing.T) {
	t.Parallel()

	atLimit := strings.Repeat("[", MaxDepth) + strings.Repeat("]", MaxDepth)
	_, err := Parse([]byte(atLimit))
	require.NoError(t, err)

	tooDeep := map[string][]byte{
		"one past the limit": []byte(strings.Repeat("[", MaxDepth+1) + strings.Repeat("]", MaxDepth+1)),
		"unclosed arrays":    bytes.Repeat([]byte("["), 2_000_000),
		"nested objects":     []byte(strings.Repeat(`{"a":`, MaxDepth+1) + "1" + strings.Repeat("}", MaxDepth+1)),
	}

	for name, in := range tooDeep {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(in)
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "expected *SyntaxError, got %T", err)
			require.ErrorIs(t, err, errTooDeep)
		})
	}
}

func TestValue_MarshalJSONKeepsOrderAndDoesNotEscapeHTML(t *testing.T) {
	t.Parallel()

	v, err := Parse([]byte(`{ "z" : [1, 2.0, "a<b"], "a" : {"q": "\"x\""}, "n": null, "t": false }`))
	require.NoError(t, err)

	out, err := v.MarshalJSON()

	require.NoError(t, err)
	require.Equal(t, `{"z":[1,2.0,"a<b"],"a":{"q":"\"x\""},"n":null,"t":false}`, string(out))
}

func TestObjectValue_Deduplicates(t *testing.T) {
	t.Parallel()

	v := ObjectValue(
		Member{Key: "a", Value: NumberValue("1")},
		Member{Key: "b", Value: StringValue("x")},
		Member{Key: "a", Value: BoolValue(true)},
	)

	require.Equal(t, []string{"a", "b"}, v.Keys())
	require.Equal(t, `{"a":true,"b":"x"}`, v.String())
}
