package middleware

import (
	"errors"
	"strings"

	sharedContext "github.com/dormlife/community-api/internal/shared/context"
	sharedError "github.com/dormlife/community-api/internal/shared/error"
	"github.com/dormlife/community-api/internal/shared/logger"
	"github.com/dormlife/community-api/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
	wrongTokenUse = "WRONG_TOKEN_TYPE"
)

var (
	ErrMissingToken   = sharedError.NewDomainError(missingToken)
	ErrInvalidToken   = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken   = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims  = sharedError.NewDomainError(invalidClaims)
	ErrWrongTokenType = sharedError.NewDomainError(wrongTokenUse)
)

// Every token failure answers the same AUTH-000 so clients cannot tell which
// check failed; the distinction only reaches the logs.
func init() {
	for _, errInfo := range []string{missingToken, invalidToken, expiredToken, invalidClaims, wrongTokenUse} {
		sharedError.RegisterDomainErrorResponse(errInfo, sharedError.Unauthenticated)
	}
}

// JWT authenticates requests with an access token. Refresh tokens are rejected.
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, tokenManager)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("JWT 인증 실패",
				"error", err.Error(),
				"client_ip", c.ClientIP(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"user_agent", c.Request.UserAgent(),
			)
			resp := sharedError.Resolve(err)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		sharedContext.SetMemberID(c, claims.MemberID)
		c.Next()
	}
}

func authenticate(c *gin.Context, tokenManager token.Manager) (*token.Claims, error) {
	tokenString, err := extractToken(c)
	if err != nil {
		return nil, err
	}

	claims, err := tokenManager.ValidateToken(tokenString)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if claims.TokenType != token.ACCESS {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, tokenString, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, BearerScheme) || tokenString == "" {
		return "", ErrInvalidToken
	}

	return tokenString, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
