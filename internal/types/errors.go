package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PreconditionError indicates a caller-supplied parameter failed a
// range or shape rule the core depends on. It is never retried and is
// surfaced immediately, before any generation call is made.
type PreconditionError struct {
	Field   string
	Message string
}

func (e *PreconditionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("precondition failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

// checkRanges runs struct tag validation and converts the first
// violation into a PreconditionError.
func checkRanges(v any) error {
	if err := validator.New().Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &PreconditionError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("value %v violates %q constraint", fe.Value(), constraintText(fe)),
			}
		}
		return err
	}
	return nil
}

func constraintText(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
