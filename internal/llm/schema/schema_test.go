package schema

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub-utils/pkg/utils"
)

var scoreContract = &Contract{
	Name: "score",
	Fields: []Field{
		{Name: "score", Type: Number, Description: "A percentage from 0 to 100."},
		{Name: "explanation", Type: String, Description: "Why the score was given."},
		{Name: "tags", Type: StringArray, Description: "Labels for the result."},
	},
}

type scoreResult struct {
	Score       float64  `json:"score" validate:"gte=0,lte=100"`
	Explanation string   `json:"explanation"`
	Tags        []string `json:"tags"`
}

func TestInstructionsIncludeFieldDescriptions(t *testing.T) {
	out := scoreContract.Instructions()

	assert.Contains(t, out, `"score"`)
	assert.Contains(t, out, "A percentage from 0 to 100.")
	assert.Contains(t, out, `"explanation"`)
	assert.Contains(t, out, "Why the score was given.")
	assert.Contains(t, out, "array of strings")
}

func TestInstructionsMarkOptionalFields(t *testing.T) {
	c := &Contract{
		Name: "with_optional",
		Fields: []Field{
			{Name: "manager", Type: String, Description: "The project manager.", Optional: true},
		},
	}
	assert.Contains(t, c.Instructions(), "(optional, may be omitted)")
}

func TestInstructionsNestedObjects(t *testing.T) {
	c := &Contract{
		Name: "nested",
		Fields: []Field{
			{Name: "link", Type: Object, Description: "A navigation link.", Fields: []Field{
				{Name: "text", Type: String, Description: "The link text."},
				{Name: "href", Type: String, Description: "The target URL."},
			}},
		},
	}
	out := c.Instructions()
	assert.Contains(t, out, `"link"`)
	assert.Contains(t, out, `"text"`)
	assert.Contains(t, out, `"href"`)
}

func TestDecodeValidResponse(t *testing.T) {
	var result scoreResult
	err := Decode([]byte(`{"score": 80, "explanation": "Good fit", "tags": ["match"]}`), &result)
	require.NoError(t, err)
	assert.Equal(t, 80.0, result.Score)
	assert.Equal(t, "Good fit", result.Explanation)
}

func TestDecodeInvalidJSON(t *testing.T) {
	var result scoreResult
	err := Decode([]byte("not json at all"), &result)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, utils.HTTPStatus(err))
}

func TestDecodeSchemaViolation(t *testing.T) {
	var result scoreResult
	err := Decode([]byte(`{"score": 250, "explanation": "impossible", "tags": []}`), &result)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, utils.HTTPStatus(err))
	assert.True(t, utils.IsLLMError(err))
}
