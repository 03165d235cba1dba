// Package prompt renders instruction documents for the model from typed
// inputs. The template language is deliberately closed-form: scalar
// interpolation, list iteration with an empty-collection fallback, and
// binary-media references. Nothing in a template can execute code.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"staffhub-utils/pkg/utils"
)

// Attachment is a binary document forwarded to the model alongside the
// prompt text. The payload stays base64-encoded; decoding it is the model's
// responsibility.
type Attachment struct {
	MimeType string
	Data     string
}

// Prompt is a fully rendered model instruction
type Prompt struct {
	Text        string
	Attachments []Attachment
}

const (
	eachOpen  = "{{#each "
	eachElse  = "{{else}}"
	eachClose = "{{/each}}"
	mediaOpen = "{{media url="
)

// Render substitutes data into a template. Rendering is pure: the same
// template and data always produce the same Prompt.
//
// Supported forms:
//
//	{{name}} / {{{name}}}     scalar interpolation
//	{{#each list}}…{{else}}…{{/each}}  iteration with empty fallback
//	{{media url=name}}        attach the named data URI as a document
func Render(template string, data map[string]interface{}) (*Prompt, error) {
	p := &Prompt{}
	text, err := renderText(p, template, data)
	if err != nil {
		return nil, err
	}
	p.Text = text
	return p, nil
}

func renderText(p *Prompt, template string, data map[string]interface{}) (string, error) {
	var b strings.Builder
	rest := template

	for {
		eachIdx := strings.Index(rest, eachOpen)
		mediaIdx := strings.Index(rest, mediaOpen)

		switch {
		case eachIdx >= 0 && (mediaIdx < 0 || eachIdx < mediaIdx):
			out, err := interpolate(rest[:eachIdx], data)
			if err != nil {
				return "", err
			}
			b.WriteString(out)

			block, remaining, err := splitEachBlock(rest[eachIdx:])
			if err != nil {
				return "", err
			}

			out, err = renderEach(p, block, data)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			rest = remaining

		case mediaIdx >= 0:
			out, err := interpolate(rest[:mediaIdx], data)
			if err != nil {
				return "", err
			}
			b.WriteString(out)

			end := strings.Index(rest[mediaIdx:], "}}")
			if end < 0 {
				return "", fmt.Errorf("template: unterminated media tag")
			}
			name := strings.TrimSpace(rest[mediaIdx+len(mediaOpen) : mediaIdx+end])

			value, ok := data[name]
			if !ok {
				return "", fmt.Errorf("template: unknown variable %q in media tag", name)
			}
			uri, ok := value.(string)
			if !ok {
				return "", fmt.Errorf("template: media variable %q is not a string", name)
			}

			parsed, err := utils.ParseDataURI(uri)
			if err != nil {
				return "", err
			}
			p.Attachments = append(p.Attachments, Attachment{
				MimeType: parsed.MimeType,
				Data:     parsed.Payload,
			})
			fmt.Fprintf(&b, "[attached document %d, %s]", len(p.Attachments), parsed.MimeType)

			rest = rest[mediaIdx+end+2:]

		default:
			out, err := interpolate(rest, data)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			return b.String(), nil
		}
	}
}

// eachBlock is one parsed iteration section
type eachBlock struct {
	listName string
	body     string
	fallback string
}

// splitEachBlock consumes a {{#each}} section from the front of s, returning
// the parsed block and the text after its {{/each}}. Nested blocks inside the
// body are left intact for the recursive render.
func splitEachBlock(s string) (*eachBlock, string, error) {
	headEnd := strings.Index(s, "}}")
	if headEnd < 0 {
		return nil, "", fmt.Errorf("template: unterminated each tag")
	}
	listName := strings.TrimSpace(s[len(eachOpen):headEnd])

	inner := s[headEnd+2:]
	depth := 1
	elseIdx := -1
	i := 0
	for i < len(inner) {
		switch {
		case strings.HasPrefix(inner[i:], eachOpen):
			depth++
			i += len(eachOpen)
		case strings.HasPrefix(inner[i:], eachClose):
			depth--
			if depth == 0 {
				block := &eachBlock{listName: listName}
				if elseIdx >= 0 {
					block.body = inner[:elseIdx]
					block.fallback = inner[elseIdx+len(eachElse) : i]
				} else {
					block.body = inner[:i]
				}
				return block, inner[i+len(eachClose):], nil
			}
			i += len(eachClose)
		case strings.HasPrefix(inner[i:], eachElse) && depth == 1:
			elseIdx = i
			i += len(eachElse)
		default:
			i++
		}
	}
	return nil, "", fmt.Errorf("template: each block for %q is not closed", listName)
}

func renderEach(p *Prompt, block *eachBlock, data map[string]interface{}) (string, error) {
	value, ok := data[block.listName]
	if !ok {
		return "", fmt.Errorf("template: unknown list %q", block.listName)
	}

	items, err := asList(value)
	if err != nil {
		return "", fmt.Errorf("template: variable %q: %w", block.listName, err)
	}

	if len(items) == 0 {
		return renderText(p, block.fallback, data)
	}

	var b strings.Builder
	for _, item := range items {
		scope := scopeFor(item, data)
		out, err := renderText(p, block.body, scope)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// scopeFor exposes an element's fields to the sub-template, or the raw
// element as "this" when it is a scalar. Outer variables stay visible.
func scopeFor(item interface{}, outer map[string]interface{}) map[string]interface{} {
	scope := make(map[string]interface{}, len(outer)+2)
	for k, v := range outer {
		scope[k] = v
	}

	if fields, ok := item.(map[string]interface{}); ok {
		for k, v := range fields {
			scope[k] = v
		}
	}
	scope["this"] = item
	return scope
}

func asList(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case []string:
		items := make([]interface{}, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, nil
	case []map[string]interface{}:
		items := make([]interface{}, len(v))
		for i, m := range v {
			items[i] = m
		}
		return items, nil
	default:
		return nil, fmt.Errorf("not a list")
	}
}

// interpolate replaces {{name}} and {{{name}}} occurrences in a text segment
// that contains no block or media tags.
func interpolate(segment string, data map[string]interface{}) (string, error) {
	var b strings.Builder
	rest := segment

	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])
		rest = rest[open:]

		triple := strings.HasPrefix(rest, "{{{")
		var closeTag string
		var openLen int
		if triple {
			closeTag, openLen = "}}}", 3
		} else {
			closeTag, openLen = "}}", 2
		}

		end := strings.Index(rest, closeTag)
		if end < 0 {
			return "", fmt.Errorf("template: unterminated interpolation")
		}

		name := strings.TrimSpace(rest[openLen:end])
		value, ok := data[name]
		if !ok {
			return "", fmt.Errorf("template: unknown variable %q", name)
		}

		s, err := stringify(value)
		if err != nil {
			return "", fmt.Errorf("template: variable %q: %w", name, err)
		}
		b.WriteString(s)

		rest = rest[end+len(closeTag):]
	}
}

func stringify(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("not a scalar")
	}
}
