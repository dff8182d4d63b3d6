// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package respond writes every JSON body the API produces.

Success bodies are {"data": ...}. Failures are {"error", "code", "details"}
built from an [apperr.AppError]. The reader frontend and the middleware chain
both go through here, so a 429 from the limiter and a 404 from a handler
have the same shape.
*/
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
	"github.com/taibuivan/mangaread/internal/platform/ctxutil"
)

const contentTypeJSON = "application/json; charset=utf-8"

// SuccessEnvelope wraps successful payloads.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the body of every non-2xx JSON response.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON encodes payload with statusCode. Encoding failures after the header
// is sent can only be logged.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", contentTypeJSON)
	writer.WriteHeader(statusCode)
	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		slog.Default().Warn("response_encode_failed", slog.Any("error", err))
	}
}

// OK writes data with 200.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Status writes data in the success envelope with statusCode.
// Readiness uses it to return 503 together with the check results.
func Status(writer http.ResponseWriter, statusCode int, data any) {
	JSON(writer, statusCode, SuccessEnvelope{Data: data})
}

/*
Error renders err as an error envelope.

Non-AppErrors become INTERNAL_ERROR. 5xx causes are logged with the request
logger and never reach the client.
*/
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		ctxutil.Logger(request.Context()).ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	if appError.RetryAfter > 0 {
		writer.Header().Set("Retry-After", strconv.Itoa(appError.RetryAfter))
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// NotFound is the router fallback for unknown paths.
func NotFound(writer http.ResponseWriter, request *http.Request) {
	Error(writer, request, apperr.NotFound("Route "+request.URL.Path))
}

// MethodNotAllowed is the router fallback for a known path with another verb.
func MethodNotAllowed(writer http.ResponseWriter, request *http.Request) {
	Error(writer, request, apperr.MethodNotAllowed(request.Method))
}
