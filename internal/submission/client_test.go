package submission

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkin/internal/document"
	"checkin/pkg/platform/sentinel"
)

func samplePayload() document.GuestPayload {
	r := document.BlankRecord().
		WithValue(document.FieldSurnames, "ESPAÑOLA ESPAÑOLA").
		WithValue(document.FieldGivenNames, "CARMEN").
		WithValue(document.FieldCountry, "ESPAÑA")
	return document.NewGuestPayload(r, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
}

func TestSubmit(t *testing.T) {
	t.Run("posts every key as multipart form data", func(t *testing.T) {
		var form map[string][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			form = r.MultipartForm.Value
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		err := New(srv.URL, time.Second).Submit(context.Background(), samplePayload())
		require.NoError(t, err)

		for _, key := range document.PayloadKeys() {
			assert.Contains(t, form, key)
		}
		assert.Equal(t, []string{"ESPAÑOLA ESPAÑOLA"}, form["apellidos"])
		assert.Equal(t, []string{"2026-03-14T09:30:00Z"}, form["consentimientoTimestamp"])
		assert.Equal(t, []string{""}, form["direccion"])
	})

	t.Run("non-2xx carries status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "script quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		err := New(srv.URL, time.Second).Submit(context.Background(), samplePayload())
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
		assert.Equal(t, "script quota exceeded", statusErr.Body)
		assert.ErrorContains(t, err, "429")
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		err := New(url, time.Second).Submit(context.Background(), samplePayload())
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("honors the context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.Copy(io.Discard, r.Body)
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		err := New(srv.URL, time.Minute).Submit(ctx, samplePayload())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
