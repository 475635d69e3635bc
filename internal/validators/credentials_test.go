package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnwords/models"
)

func TestValidateCredentials(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Credentials{Email: "a@b.c", Password: "secret"}))

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "secret"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "a@b.c"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{}), ErrEmptyEmail)
}

func TestValidateUser(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.User{Name: "Alice", Email: "a@b.c", Password: "secret"}))

	assert.ErrorIs(t, v.Validate(ctx, models.User{Email: "a@b.c", Password: "secret"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Name: "Alice", Password: "secret"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Name: "Alice", Email: "a@b.c"}), ErrEmptyPassword)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
