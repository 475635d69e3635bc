package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"learnwords/models"
)

// credential input wrappers carry the validation tags so that the models
// stay free of validation concerns
type signInInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type createAccountInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type credentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator builds a [Validator] for [models.Credentials] and
// [models.User] inputs of the authorization flows.
func NewCredentialsValidator() Validator {
	return &credentialsValidator{validate: validator.New()}
}

// Validate implements [Validator]. It accepts [models.Credentials] (sign-in)
// and [models.User] (create-account) values and returns one of the
// field-level sentinel errors when a required field is empty. Unknown input
// types yield [ErrUnsupportedType].
func (v *credentialsValidator) Validate(ctx context.Context, input any, fields ...string) error {
	switch value := input.(type) {
	case models.Credentials:
		return v.mapFieldErrors(v.validate.StructCtx(ctx, signInInput{
			Email:    value.Email,
			Password: value.Password,
		}))
	case models.User:
		return v.mapFieldErrors(v.validate.StructCtx(ctx, createAccountInput{
			Name:     value.Name,
			Email:    value.Email,
			Password: value.Password,
		}))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}
}

func (v *credentialsValidator) mapFieldErrors(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	for _, fieldError := range fieldErrors {
		switch fieldError.Field() {
		case "Name":
			return ErrEmptyName
		case "Email":
			return ErrEmptyEmail
		case "Password":
			return ErrEmptyPassword
		}
	}

	return err
}
