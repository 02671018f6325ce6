package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"race_timing/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct runs tag validation on a request payload, wrapping failures as
// a 400-class error naming the first offending field.
func checkStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("field %s failed on %s: %w", f.Field(), f.Tag(), common.ErrValidation)
	}
	return fmt.Errorf("%v: %w", err, common.ErrValidation)
}
