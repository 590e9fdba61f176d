package middleware

import (
	"context"
	"strings"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/security"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/contextutil"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CallerKey       = "caller"
	AccessTokenName = "access_token"
)

var (
	ErrTokenNotFound  = apperror.Authentication("Token not found")
	ErrUnknownAccount = apperror.Authentication("Account no longer exists")
)

// CallerResolver loads the principal a token refers to. Any package able to
// turn a user id into a domain.Caller can serve it.
type CallerResolver interface {
	ResolveCaller(ctx context.Context, userID uuid.UUID) (*domain.Caller, error)
}

// AuthMiddleware rejects requests without a valid access token for a user
// that still exists.
func AuthMiddleware(tokens security.TokenService, resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			abortWithError(c, ErrTokenNotFound)
			return
		}

		if err := authenticate(c, tokens, resolver, tokenString); err != nil {
			abortWithError(c, err)
			return
		}

		c.Next()
	}
}

// OptionalAuth lets anonymous requests through. A token that is present but
// invalid is still rejected.
func OptionalAuth(tokens security.TokenService, resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		if err := authenticate(c, tokens, resolver, tokenString); err != nil {
			abortWithError(c, err)
			return
		}

		c.Next()
	}
}

// RoleMiddleware requires the caller to hold at least the given role.
func RoleMiddleware(min domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			abortWithError(c, apperror.ErrUnauthorized)
			return
		}
		if !caller.Role.AtLeast(min) {
			abortWithError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetCaller returns the principal resolved by AuthMiddleware or OptionalAuth.
func GetCaller(c *gin.Context) (*domain.Caller, bool) {
	v, exists := c.Get(CallerKey)
	if !exists {
		return nil, false
	}
	caller, ok := v.(*domain.Caller)
	return caller, ok && caller != nil
}

func extractToken(c *gin.Context) string {
	if tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return strings.TrimSpace(tokenString)
	}
	if cookie, err := c.Cookie(AccessTokenName); err == nil {
		return cookie
	}
	return ""
}

func authenticate(c *gin.Context, tokens security.TokenService, resolver CallerResolver, tokenString string) error {
	claims, err := tokens.Verify(tokenString, true)
	if err != nil {
		return err
	}

	access, err := security.ParseAccessClaims(claims)
	if err != nil {
		return err
	}

	ctx := c.Request.Context()
	caller, err := resolver.ResolveCaller(ctx, access.Subject)
	if err != nil {
		if apperror.IsCode(err, apperror.CodeNotFound) {
			return ErrUnknownAccount
		}
		return err
	}

	c.Set(CallerKey, caller)
	c.Set("user_id", caller.UserID.String())
	c.Set("role", caller.Role.String())
	if caller.CompanyID != nil {
		c.Set("company_id", caller.CompanyID.String())
	}

	logger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", caller.UserID.String()))
	ctx = contextutil.WithCaller(ctx, caller)
	ctx = contextutil.WithLogger(ctx, logger)
	c.Request = c.Request.WithContext(ctx)

	return nil
}

func abortWithError(c *gin.Context, err error) {
	response.WriteError(c, contextutil.GetLogger(c.Request.Context(), zap.L()), err)
	c.Abort()
}
