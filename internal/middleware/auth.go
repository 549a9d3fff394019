package middleware

import (
	"net/http"

	"studymate-backend/internal/apperr"
	"studymate-backend/internal/auth"
	"studymate-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserEmail is the gin context key holding the verified principal.
const ContextUserEmail = "userEmail"

func AuthMiddleware(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Token from "Authorization: Bearer <token>"
		token, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, apperr.PublicMessage(err, auth.ErrUnauthorized.Message), nil)
			c.Abort()
			return
		}

		// 2. Ask the identity provider
		email, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, auth.ErrUnauthorized.Message, nil)
			c.Abort()
			return
		}

		c.Set(ContextUserEmail, email)
		c.Next()
	}
}

// UserEmail returns the principal set by AuthMiddleware, or "".
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}
