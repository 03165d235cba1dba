// Package schema describes the structured output contract of each AI flow as
// data. The field descriptions are not documentation: they are rendered into
// the prompt so the model knows what each field means, and the same contract
// is used to check the decoded response.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"staffhub-utils/pkg/utils"
)

// Type is the JSON type of a schema field
type Type int

const (
	String Type = iota
	Number
	Integer
	Boolean
	Object
	StringArray
	ObjectArray
)

// Field describes one field of a structured output
type Field struct {
	Name        string
	Type        Type
	Description string
	Optional    bool
	Fields      []Field // populated for Object and ObjectArray
}

// Contract is the complete output schema for one flow
type Contract struct {
	Name   string
	Fields []Field
}

var validate = validator.New()

// Instructions renders the contract as a JSON skeleton with per-field
// descriptions, suitable for embedding in a prompt.
func (c *Contract) Instructions() string {
	var b strings.Builder
	writeObject(&b, c.Fields, 0)
	return b.String()
}

func writeObject(b *strings.Builder, fields []Field, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString("{\n")
	for i, f := range fields {
		b.WriteString(indent + "  ")
		fmt.Fprintf(b, "%q: ", f.Name)
		writeFieldValue(b, f, depth+1)
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + "}")
}

func writeFieldValue(b *strings.Builder, f Field, depth int) {
	hint := f.Description
	if f.Optional {
		hint += " (optional, may be omitted)"
	}

	switch f.Type {
	case String:
		fmt.Fprintf(b, "%q", "string - "+hint)
	case Number:
		fmt.Fprintf(b, "number - %s", hint)
	case Integer:
		fmt.Fprintf(b, "integer - %s", hint)
	case Boolean:
		fmt.Fprintf(b, "boolean - %s", hint)
	case StringArray:
		fmt.Fprintf(b, "[%q]", "array of strings - "+hint)
	case Object:
		writeObject(b, f.Fields, depth)
	case ObjectArray:
		b.WriteString("[")
		writeObject(b, f.Fields, depth)
		b.WriteString("]")
	}
}

// Decode unmarshals a raw model response into out and checks it against the
// declared contract via the struct's validate tags. Any failure is a
// model-format error, distinct from input validation failures.
func Decode(raw []byte, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return utils.NewModelFormatError(fmt.Sprintf("invalid JSON: %v", err))
	}

	if err := validate.Struct(out); err != nil {
		return utils.NewModelFormatError(fmt.Sprintf("schema violation: %v", err))
	}

	return nil
}
