package contextutil

import (
	"context"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"

	"go.uber.org/zap"
)

// contextKey is private so keys never collide with other packages.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	loggerKey    contextKey = "logger"
	callerKey    contextKey = "caller"
)

// --- Request ID Helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// GetKey returns the raw key name, for middleware that mirrors it on gin.Context.
func GetKey() string {
	return string(requestIDKey)
}

// --- User ID Helpers ---

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(userIDKey).(string); ok {
		return uid
	}
	return ""
}

// --- Caller Helpers ---

// WithCaller stores the authenticated principal for the rest of the request.
func WithCaller(ctx context.Context, caller *domain.Caller) context.Context {
	ctx = context.WithValue(ctx, callerKey, caller)
	if caller != nil {
		ctx = WithUserID(ctx, caller.UserID.String())
	}
	return ctx
}

// GetCaller returns nil for anonymous requests.
func GetCaller(ctx context.Context) *domain.Caller {
	if ctx == nil {
		return nil
	}
	if caller, ok := ctx.Value(callerKey).(*domain.Caller); ok {
		return caller
	}
	return nil
}

// --- Logger Helpers ---

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, falling back to defaultLogger and
// finally to a no-op logger so callers never get nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

// --- Combined Metadata ---

type Metadata struct {
	RequestID string
	UserID    string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID: GetRequestID(ctx),
		UserID:    GetUserID(ctx),
	}
}
