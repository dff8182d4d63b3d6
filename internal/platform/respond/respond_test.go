// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
	"github.com/taibuivan/mangaread/internal/platform/respond"
)

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) respond.ErrorEnvelope {
	t.Helper()

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, []string{})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())
}

/*
TestError covers the status, code and header mapping of each error kind.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not_found", apperr.NotFound("Manga"), http.StatusNotFound, apperr.CodeNotFound},
		{"validation", apperr.ValidationError("bad", apperr.FieldError{Field: "mangaId", Message: "required"}), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(1), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"plain", errors.New("disk on fire"), http.StatusInternalServerError, apperr.CodeInternal},
		{"unavailable", apperr.ServiceUnavailable("Catalogue is not loaded", nil), http.StatusServiceUnavailable, apperr.CodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, recorder).Code)
		})
	}
}

func TestError_HidesCauseAndSetsRetryAfter(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("disk on fire"))
	assert.NotContains(t, recorder.Body.String(), "disk on fire")

	recorder = httptest.NewRecorder()
	respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), apperr.RateLimited(2))
	assert.Equal(t, "2", recorder.Header().Get("Retry-After"))
}

func TestRouterFallbacks(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.NotFound(recorder, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Route /api/nope not found", decodeError(t, recorder).Error)

	recorder = httptest.NewRecorder()
	respond.MethodNotAllowed(recorder, httptest.NewRequest(http.MethodDelete, "/api/manga", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.Equal(t, apperr.CodeMethodNotAllowed, decodeError(t, recorder).Code)
}
