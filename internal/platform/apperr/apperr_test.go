// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
)

/*
TestNotFound_SurvivesWrapping verifies that a wrapped sentinel is still recognised.
*/
func TestNotFound_SurvivesWrapping(t *testing.T) {
	sentinel := apperr.NotFound("Manga")
	wrapped := fmt.Errorf("lookup failed: %w", sentinel)

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, apperr.NotFound("Manga")))
	assert.False(t, errors.Is(wrapped, apperr.NotFound("Reading progress")))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, "Manga not found", ae.Error())
}

/*
TestInternal_HidesCause checks that the cause is reachable but not the message.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	ae := apperr.Internal(cause)

	assert.Equal(t, apperr.CodeInternal, ae.Code)
	assert.NotContains(t, ae.Error(), "disk")
	assert.ErrorIs(t, ae, cause)
	assert.False(t, apperr.IsNotFound(ae))
}

func TestValidationError_Details(t *testing.T) {
	ae := apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "mangaId", Message: "This field is required"},
	)

	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "mangaId", ae.Details[0].Field)
}
