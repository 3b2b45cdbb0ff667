package serverutils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavor118/notes/internal/pkg/apperror"
)

type sampleRequest struct {
	Username string `validate:"required,max=10"`
	Email    string `validate:"omitempty,email"`
	Color    string `validate:"omitempty,len=7"`
}

func TestValidateRequestOk(t *testing.T) {
	err := ValidateRequest(sampleRequest{Username: "mike", Email: "mike@example.com", Color: "#FFFFFF"})
	assert.NoError(t, err)
}

func TestValidateRequestRequired(t *testing.T) {
	err := ValidateRequest(sampleRequest{})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "This field is required.", appErr.Fields["username"])
}

func TestValidateRequestLen(t *testing.T) {
	err := ValidateRequest(sampleRequest{Username: "mike", Color: "red"})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Must be exactly 7 characters.", appErr.Fields["color"])
}

func TestValidateRequestEmail(t *testing.T) {
	err := ValidateRequest(sampleRequest{Username: "mike", Email: "not-an-email"})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Must be a valid email address.", appErr.Fields["email"])
}
