package validate

import (
	"errors"

	"social-feed/internal/shared/apperr"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

func Struct(s any) error {
	if err := v.Struct(s); err != nil {
		return errors.Join(apperr.ErrInvalid, err)
	}
	return nil
}
