package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID   = "userID"
	ContextEmail    = "email"
	ContextRoleType = "roleType"
	ContextRollNo   = "rollNo"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores the claims on the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRoleType, claims.RoleType)
		c.Set(ContextRollNo, claims.RollNo)

		c.Next()
	}
}

// StudentRequired restricts a route to student accounts
func (m *AuthMiddleware) StudentRequired() gin.HandlerFunc {
	return m.roleRequired(models.RoleStudent)
}

// StaffRequired restricts a route to staff accounts
func (m *AuthMiddleware) StaffRequired() gin.HandlerFunc {
	return m.roleRequired(models.RoleStaff)
}

func (m *AuthMiddleware) roleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get(ContextRoleType)
		if !exists {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		roleStr, ok := got.(string)
		if !ok || roleStr != string(role) {
			abortWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "You don't have sufficient permissions for this operation")
			return
		}

		c.Next()
	}
}

// UserIDFromContext retrieves the authenticated account id set by JWTAuth
func UserIDFromContext(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// EmailFromContext retrieves the authenticated account email
func EmailFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

func abortWithError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
