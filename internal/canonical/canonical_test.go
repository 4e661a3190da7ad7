package canonical

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/afmkit/afm"
	"github.com/roach88/afmkit/embedding/ad"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whitespace", "{ \"b\" : [ 1 , 2 ] ,\n \"a\" : true }", `{"a":true,"b":[1,2]}`},
		{"nested key order", `{"z":{"y":1,"x":2},"a":null}`, `{"a":null,"z":{"x":2,"y":1}}`},
		{"no html escaping", `{"expr":"a < b && c > d"}`, `{"expr":"a < b && c > d"}`},
		{"line separators literal", "{\"s\":\"a\u2028b\u2029c\"}", "{\"s\":\"a\u2028b\u2029c\"}"},
		{"escaped backslash kept", `{"s":"\\u2028"}`, `{"s":"\\u2028"}`},
		{"control characters", `{"s":"\u0001\t\n"}`, `{"s":"\u0001\t\n"}`},
		{"nfc strings", "{\"s\":\"e\u0301\"}", "{\"s\":\"\u00e9\"}"},
		{"nfc keys", "{\"e\u0301\":1}", "{\"\u00e9\":1}"},
		{"utf16 key order", "{\"\uFFFD\":1,\"\U0001F600\":2}", "{\"\U0001F600\":2,\"\uFFFD\":1}"},
		{"scalar", ` "x" `, `"x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestTransform_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"1.0", "1"},
		{"100", "100"},
		{"1e2", "100"},
		{"-1.5", "-1.5"},
		{"0.001", "0.001"},
		{"0.0000001", "1e-7"},
		{"123456789012345678901", "123456789012345680000"},
		{"1e21", "1e+21"},
		{"1.5e300", "1.5e+300"},
		{"4.5E-10", "4.5e-10"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Transform([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestTransform_Errors(t *testing.T) {
	for _, input := range []string{``, `{`, `{"a":1} {"b":2}`, `1e400`, "{\"e\u0301\":1,\"\u00e9\":2}"} {
		_, err := Transform([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestCompareUTF16(t *testing.T) {
	assert.Negative(t, compareUTF16("a", "b"))
	assert.Negative(t, compareUTF16("a", "ab"))
	assert.Zero(t, compareUTF16("abc", "abc"))
	// U+1F600 is D83D DE00 in UTF-16 and sorts before U+FFFD, unlike in UTF-8.
	assert.Negative(t, compareUTF16("\U0001F600", "\uFFFD"))
}

func TestMarshal_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	exec := afm.Execution{AFM: afm.AFM{
		Attributes: []afm.Attribute{{LocalIdentifier: "a1", DisplayForm: afm.Identifier("label.region")}},
		Measures: []afm.Measure{{
			LocalIdentifier: "m1",
			Definition:      afm.SimpleMeasure{Item: afm.URI("/gdc/mock/measure"), Aggregation: afm.AggregationSum},
		}},
		Filters: []afm.CompatibilityFilter{afm.MeasureValueFilter{
			Measure:   afm.LocalIdentifier("m1"),
			Condition: afm.ComparisonCondition{Operator: afm.GreaterThan, Value: 1.5},
		}},
	}}
	got, err := Marshal(exec)
	require.NoError(t, err)
	g.Assert(t, "execution", got)

	got, err = Marshal(ad.SaveInsight("My Insight", "corr-1"))
	require.NoError(t, err)
	g.Assert(t, "save_command", got)
}

func TestFingerprint(t *testing.T) {
	a, err := FingerprintJSON(DomainExecution, []byte(`{"afm":{"measures":[{"localIdentifier":"m1","definition":{"measure":{"item":{"uri":"/m"}}}}]}}`))
	require.NoError(t, err)
	b, err := FingerprintJSON(DomainExecution, []byte(`{ "afm" : { "measures" : [ { "definition" : { "measure" : { "item" : { "uri" : "/m" } } }, "localIdentifier" : "m1" } ] } }`))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	other, err := FingerprintJSON(DomainMessage, []byte(`{"afm":{"measures":[{"localIdentifier":"m1","definition":{"measure":{"item":{"uri":"/m"}}}}]}}`))
	require.NoError(t, err)
	assert.NotEqual(t, a, other, "domains must separate fingerprints")

	exec, err := afm.DecodeExecution([]byte(`{"afm":{"measures":[{"localIdentifier":"m1","definition":{"measure":{"item":{"uri":"/m"}}}}]}}`))
	require.NoError(t, err)
	typed, err := Fingerprint(DomainExecution, exec)
	require.NoError(t, err)
	assert.Equal(t, a, typed)
}

func TestHashWithDomain_Separator(t *testing.T) {
	// Without the separator "ab"+"c" and "a"+"bc" would collide.
	assert.NotEqual(t, hashWithDomain("ab", []byte("c")), hashWithDomain("a", []byte("bc")))
}
