package prompt

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInterpolation(t *testing.T) {
	p, err := Render("Hello {{name}}, you have {{count}} tasks.", map[string]interface{}{
		"name":  "Alex",
		"count": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Alex, you have 3 tasks.", p.Text)
	assert.Empty(t, p.Attachments)
}

func TestRenderTripleBraces(t *testing.T) {
	p, err := Render("Context:\n{{{context}}}", map[string]interface{}{
		"context": `{"key": "value"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "Context:\n{\"key\": \"value\"}", p.Text)
}

func TestRenderUnknownVariable(t *testing.T) {
	_, err := Render("Hello {{name}}", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variable")
}

func TestRenderEachList(t *testing.T) {
	p, err := Render("Skills:\n{{#each skills}}- {{{this}}}\n{{/each}}", map[string]interface{}{
		"skills": []string{"Go", "Python"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Skills:\n- Go\n- Python\n", p.Text)
}

func TestRenderEachEmptyFallback(t *testing.T) {
	p, err := Render("{{#each projects}}- {{name}}\n{{else}}- None assigned.\n{{/each}}", map[string]interface{}{
		"projects": []map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.Equal(t, "- None assigned.\n", p.Text)
}

func TestRenderEachObjectScope(t *testing.T) {
	p, err := Render("{{#each projects}}Project: {{name}}, Allocation: {{allocation}}%\n{{/each}}", map[string]interface{}{
		"projects": []map[string]interface{}{
			{"name": "Apollo", "allocation": 100},
			{"name": "Hermes", "allocation": 50},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Project: Apollo, Allocation: 100%\nProject: Hermes, Allocation: 50%\n", p.Text)
}

func TestRenderEachKeepsOuterScope(t *testing.T) {
	p, err := Render("{{#each items}}{{prefix}}{{{this}}} {{/each}}", map[string]interface{}{
		"prefix": "#",
		"items":  []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "#a #b ", p.Text)
}

func TestRenderMediaAttachment(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("resume contents"))
	uri := "data:application/pdf;base64," + payload

	p, err := Render("Resume:\n{{media url=document}}\nDone.", map[string]interface{}{
		"document": uri,
	})
	require.NoError(t, err)

	require.Len(t, p.Attachments, 1)
	assert.Equal(t, "application/pdf", p.Attachments[0].MimeType)
	assert.Equal(t, payload, p.Attachments[0].Data, "payload must stay base64-encoded")
	assert.Contains(t, p.Text, "[attached document 1, application/pdf]")
	assert.NotContains(t, p.Text, payload, "raw payload must not leak into the prompt text")
}

func TestRenderMediaRejectsMalformedURI(t *testing.T) {
	_, err := Render("{{media url=document}}", map[string]interface{}{
		"document": "not-a-data-uri",
	})
	require.Error(t, err)
}

func TestRenderIsDeterministic(t *testing.T) {
	data := map[string]interface{}{
		"name":   "Maria",
		"skills": []string{"Figma", "Sketch"},
	}
	const tmpl = "{{name}}: {{#each skills}}{{{this}}},{{/each}}"

	first, err := Render(tmpl, data)
	require.NoError(t, err)
	second, err := Render(tmpl, data)
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
}
