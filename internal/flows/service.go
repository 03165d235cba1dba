// Package flows contains the orchestrators for the AI-backed operations.
// Each orchestrator validates its input, applies the business rules that
// precede a model call, renders a prompt, and post-processes the structured
// result coming back through the gateway.
package flows

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"staffhub-utils/internal/llm"
	"staffhub-utils/internal/logging"
	"staffhub-utils/internal/store"
	"staffhub-utils/pkg/utils"
)

// Service executes the AI flows against a model gateway and a read-only
// record store
type Service struct {
	gen     llm.Generator
	records store.RecordStore
	logger  logging.Logger
}

// NewService creates a new flow service
func NewService(gen llm.Generator, records store.RecordStore) *Service {
	return &Service{
		gen:     gen,
		records: records,
		logger:  logging.GetGlobalLogger(),
	}
}

var validate = newFlowValidator()

func newFlowValidator() *validator.Validate {
	v := validator.New()
	utils.RegisterFlowValidators(v)
	return v
}

// checkInput runs struct validation on a flow request and converts failures
// into the validation branch of the error taxonomy
func checkInput(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); ok {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, describeFieldError(fe))
		}
		return utils.NewValidationError(strings.Join(details, "; "))
	}
	return utils.NewValidationError(err.Error())
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "datauri":
		return fmt.Sprintf("%s must be a data URI (data:<mimetype>;base64,<payload>)", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
