package controller_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"

	"scanguard/pkg/controller"
	"scanguard/pkg/serrors"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"bad request", serrors.With(serrors.ErrBadRequest, "url must be absolute"), 400, "BAD_REQUEST", "url must be absolute"},
		{"unauthorized", serrors.KindOnly(serrors.ErrUnauthorized), 401, "UNAUTHORIZED", "UNAUTHORIZED"},
		{"forbidden", serrors.With(serrors.ErrForbidden, "invalid admin key"), 403, "FORBIDDEN", "invalid admin key"},
		{"not found", serrors.With(serrors.ErrNotFound, "scan not found"), 404, "NOT_FOUND", "scan not found"},
		{"conflict", serrors.With(serrors.ErrConflict, "already resolved"), 409, "CONFLICT", "already resolved"},
		{"quota", serrors.With(serrors.ErrQuotaExceeded, "quota exceeded"), 429, "QUOTA_EXCEEDED", "quota exceeded"},
		{
			"detection wrapped",
			fmt.Errorf("submit: %w", serrors.Wrap(serrors.ErrDetectionUnavailable, errors.New("dial tcp"), "detection unavailable")),
			500, "DETECTION_UNAVAILABLE", "detection unavailable",
		},
		{"internal", errors.New("pq: connection refused"), 500, "INTERNAL", "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := controller.ErrorStatus(tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, code)
			require.Equal(t, tt.message, msg)
		})
	}
}

func TestWriteError_DoesNotLeakInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.WriteError(t.Context(), rec, errors.New("password=hunter2"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"code":"INTERNAL","message":"internal error"}`, rec.Body.String())
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.WriteJSON(rec, http.StatusCreated, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("score")
		e.Float64(0.7)
		e.ObjEnd()
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"score":0.7}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	decodeURL := func(body string) (string, error) {
		req := httptest.NewRequest(http.MethodPost, "/v1/scan", strings.NewReader(body))
		var got string
		err := controller.DecodeJSON(httptest.NewRecorder(), req, func(d *jx.Decoder, key string) error {
			if key != "url" {
				return d.Skip()
			}
			v, err := d.Str()
			got = v

			return err
		})

		return got, err
	}

	got, err := decodeURL(`{"url":"https://example.com","source":"twitter"}`)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", got)

	_, err = decodeURL(`{"url":`)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = decodeURL(``)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = decodeURL(`[]`)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestDecodeJSON_KeepsCallbackKind(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"verdict":"maybe"}`))
	err := controller.DecodeJSON(httptest.NewRecorder(), req, func(d *jx.Decoder, key string) error {
		return serrors.With(serrors.ErrBadRequest, "unknown verdict")
	})

	var serr *serrors.Error
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "unknown verdict", serr.Message())
}
