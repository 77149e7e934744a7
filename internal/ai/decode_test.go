package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stepRow struct {
	Step  int    `json:"step"`
	Title string `json:"title"`
	Note  string `json:"note"`
}

func stepSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"step":  {Type: genai.TypeInteger},
				"title": {Type: genai.TypeString},
				"note":  {Type: genai.TypeString},
			},
			Required: []string{"step", "title"},
		},
	}
}

func TestDecode_Valid(t *testing.T) {
	raw := "\n  [{\"step\":1,\"title\":\"Learn\"},{\"step\":2,\"title\":\"Build\",\"note\":\"x\"}]  \n"

	got, err := Decode[[]stepRow](raw, stepSchema())
	require.NoError(t, err)
	assert.Equal(t, []stepRow{{Step: 1, Title: "Learn"}, {Step: 2, Title: "Build", Note: "x"}}, got)
}

func TestDecode_OptionalNullIsAccepted(t *testing.T) {
	got, err := Decode[[]stepRow](`[{"step":1,"title":"a","note":null}]`, stepSchema())
	require.NoError(t, err)
	assert.Equal(t, "", got[0].Note)
}

func TestDecode_Failures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		path string
	}{
		{"empty", "   ", "$"},
		{"not json", "Sure! Here are your steps", "$"},
		{"trailing data", `[] []`, "$"},
		{"null payload", `null`, "$"},
		{"wrong root", `{"step":1}`, "$"},
		{"missing required", `[{"step":1}]`, "$[0].title"},
		{"wrong field type", `[{"step":"one","title":"a"}]`, "$[0].step"},
		{"fractional integer", `[{"step":1.5,"title":"a"}]`, "$[0].step"},
		{"required null", `[{"step":1,"title":null}]`, "$[0].title"},
		{"second item", `[{"step":1,"title":"a"},{"step":2,"title":3}]`, "$[1].title"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode[[]stepRow](tc.raw, stepSchema())
			require.Error(t, err)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.path, de.Path)
			assert.Contains(t, err.Error(), tc.path)
		})
	}
}

func TestDecode_NestedObjectAndBoolean(t *testing.T) {
	type flags struct {
		Tags struct {
			Names []string `json:"names"`
		} `json:"tags"`
		On bool `json:"on"`
	}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tags": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"names": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"names"},
			},
			"on": {Type: genai.TypeBoolean},
		},
		Required: []string{"tags", "on"},
	}

	got, err := Decode[flags](`{"tags":{"names":["a","b"]},"on":true}`, schema)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Tags.Names)
	assert.True(t, got.On)

	_, err = Decode[flags](`{"tags":{"names":["a",2]},"on":true}`, schema)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "$.tags.names[1]", de.Path)
	assert.Equal(t, "expected string, got number", de.Reason)

	_, err = Decode[flags](`{"tags":{"names":[]},"on":"yes"}`, schema)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "$.on", de.Path)
}

func TestDecode_WithoutSchemaStillParses(t *testing.T) {
	got, err := Decode[map[string]int](`{"a":1}`, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got["a"])
}

func TestDecode_TypeConversionFailureIsDecodeError(t *testing.T) {
	schema := &genai.Schema{Type: genai.TypeNumber}
	_, err := Decode[int](`2.5`, schema)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "$", de.Path)
}

func TestDecode_IntegralFloatFillsIntegerField(t *testing.T) {
	got, err := Decode[[]stepRow](`[{"step":1.0,"title":"a"},{"step":2e0,"title":"b"}]`, stepSchema())
	require.NoError(t, err)
	assert.Equal(t, []stepRow{{Step: 1, Title: "a"}, {Step: 2, Title: "b"}}, got)
}
