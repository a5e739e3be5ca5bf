// Package requestcontext carries request-scoped values through services
// without importing net/http.
//
// Middleware stamps the request ID and the request time; the check-in
// service stamps the scan ID so every log line of one scan can be joined:
//
//	ctx = requestcontext.WithScanID(ctx, id)
//	logger.InfoContext(ctx, "...", "scan_id", requestcontext.ScanID(ctx))
package requestcontext

import (
	"context"
	"time"
)

type key int

const (
	requestIDKey key = iota
	requestTimeKey
	scanIDKey
)

func stringValue(ctx context.Context, k key) string {
	v, _ := ctx.Value(k).(string)
	return v
}

// RequestID returns the request ID, or "" outside an HTTP request.
func RequestID(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ScanID returns the scan a call belongs to, or "".
func ScanID(ctx context.Context) string {
	return stringValue(ctx, scanIDKey)
}

func WithScanID(ctx context.Context, scanID string) context.Context {
	return context.WithValue(ctx, scanIDKey, scanID)
}

// Now returns the time the request started. Outside HTTP requests it falls
// back to the wall clock.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime pins the request time, mostly for tests.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey, t)
}
