// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
	"github.com/taibuivan/mangaread/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	notFound := apperr.NotFound("Reading progress")

	assert.NoError(t, dberr.Wrap(nil, "find", notFound))
	assert.Same(t, notFound, dberr.Wrap(pgx.ErrNoRows, "find", notFound))
	assert.Same(t, notFound, dberr.Wrap(sql.ErrNoRows, "find", notFound))

	cause := errors.New("connection reset")
	wrapped := dberr.Wrap(cause, "upsert_progress", notFound)

	ae := apperr.As(wrapped)
	if assert.NotNil(t, ae) {
		assert.Equal(t, apperr.CodeInternal, ae.Code)
	}
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, ae.Cause.Error(), "upsert_progress")
}
