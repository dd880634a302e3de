package validator

import (
	"testing"

	"courier/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	UserID string  `json:"user_id" validate:"required,uuid"`
	Title  string  `json:"title" validate:"required,max=5"`
	Lat    float64 `json:"lat" validate:"gte=-90,lte=90"`
}

func TestValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{UserID: "4b5c8f3e-2b3a-4a55-9a1c-0d7e1f7b2a10", Title: "hi", Lat: 10}))

	err := v.Validate(&sample{UserID: "nope", Title: "too long", Lat: 91})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "user_id", Rule: "uuid"},
		{Field: "title", Rule: "max", Param: "5"},
		{Field: "lat", Rule: "lte", Param: "90"},
	}, verr.Fields)
	assert.Contains(t, err.Error(), "title failed max=5")
}
