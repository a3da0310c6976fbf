package controller

import (
	"context"
	"errors"
	"io"
	"net/http"

	faster "github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"scanguard/pkg/logger"
	"scanguard/pkg/serrors"
)

// DefaultBodyLimit bounds request bodies decoded by DecodeJSON.
const DefaultBodyLimit = 1 << 20

// internalMessage is the only message clients see for unexpected failures.
const internalMessage = "internal error"

// kindStatus maps semantic error kinds to HTTP status codes.
var kindStatus = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:           http.StatusBadRequest,
	serrors.ErrUnauthorized:         http.StatusUnauthorized,
	serrors.ErrForbidden:            http.StatusForbidden,
	serrors.ErrNotFound:             http.StatusNotFound,
	serrors.ErrConflict:             http.StatusConflict,
	serrors.ErrQuotaExceeded:        http.StatusTooManyRequests,
	serrors.ErrRateLimited:          http.StatusTooManyRequests,
	serrors.ErrDetectionUnavailable: http.StatusInternalServerError,
	serrors.ErrTimeout:              http.StatusGatewayTimeout,
	serrors.ErrUnavailable:          http.StatusServiceUnavailable,
}

// ErrorStatus returns the HTTP status, public code and public message for err.
// Errors without a mapped kind are reported as internal errors and their
// details are never exposed.
func ErrorStatus(err error) (int, string, string) {
	k := serrors.KindOf(err)
	status, ok := kindStatus[k]
	if !ok {
		return http.StatusInternalServerError, serrors.ErrInternal.Error(), internalMessage
	}

	return status, k.Error(), serrors.PublicMessage(err)
}

// WriteJSON writes a JSON response whose body is produced by fn.
func WriteJSON(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	fn(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// WriteError writes err as a {code, message} JSON body. Server side errors are
// logged with the request scoped logger.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code, msg := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.Int("status_code", status))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("status_code", status))
	}

	WriteJSON(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(code)
		e.FieldStart("message")
		e.Str(msg)
		e.ObjEnd()
	})
}

// DecodeJSON reads at most DefaultBodyLimit bytes from the request body and
// hands every top level field to fn. Malformed bodies are reported as
// serrors.ErrBadRequest.
func DecodeJSON(w http.ResponseWriter, r *http.Request, fn func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, DefaultBodyLimit))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(body) == 0 {
		return serrors.With(serrors.ErrBadRequest, "request body is required")
	}

	if err := jx.DecodeBytes(body).Obj(fn); err != nil {
		var serr *serrors.Error
		if errors.As(err, &serr) {
			return serr
		}

		return serrors.Wrap(serrors.ErrBadRequest, faster.Wrap(err, "decode body"), "invalid JSON body")
	}

	return nil
}
