package utils

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DataURIPattern matches self-describing binary references of the form
// data:<mimetype>;base64,<payload>
var DataURIPattern = regexp.MustCompile(`^data:([a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]*/[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]*);base64,(.+)$`)

// DataURI is a parsed data URI carrying an inline base64 payload
type DataURI struct {
	MimeType string
	Payload  string // still base64-encoded; decoding is the model's job
}

// ParseDataURI parses and validates a data URI string. The MIME type and
// payload must both be present and the payload must be valid base64.
func ParseDataURI(s string) (*DataURI, error) {
	matches := DataURIPattern.FindStringSubmatch(s)
	if matches == nil {
		if !strings.HasPrefix(s, "data:") {
			return nil, NewValidationError("document must be a data URI (data:<mimetype>;base64,<payload>)")
		}
		return nil, NewValidationError("data URI must declare a MIME type and a base64 payload")
	}

	if _, err := base64.StdEncoding.DecodeString(matches[2]); err != nil {
		return nil, NewValidationError("data URI payload is not valid base64")
	}

	return &DataURI{
		MimeType: matches[1],
		Payload:  matches[2],
	}, nil
}

// ValidateDataURI is the validator.v10 hook for the "datauri" tag
func ValidateDataURI(fl validator.FieldLevel) bool {
	_, err := ParseDataURI(fl.Field().String())
	return err == nil
}

// RegisterFlowValidators registers all AI-flow custom validators
func RegisterFlowValidators(v *validator.Validate) {
	v.RegisterValidation("datauri", ValidateDataURI)
}
