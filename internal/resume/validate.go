package resume

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports the set of required fields that are missing. It is
// surfaced as a single combined message rather than per-field errors.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill in the required fields: %s", strings.Join(e.Fields, ", "))
}

// fieldLabels maps struct field names to the labels shown to users.
var fieldLabels = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Summary": "summary",
}

// Validate checks that name, email and summary are populated. Rendering must
// not be attempted while this returns an error.
func (r *Record) Validate() error {
	r.Normalize()

	validate := validator.New()
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := fieldLabels[fe.StructField()]
		if label == "" {
			label = strings.ToLower(fe.StructField())
		}
		missing = append(missing, label)
	}
	return &ValidationError{Fields: missing}
}
