package middlewares

import (
	"context"
	"net/http"
	"strings"

	"esgreporting/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated identity. Role mirrors the role-based
// access model of the upstream admin app; handlers that don't care about it
// only read the username.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type contextKey string

const principalContextKey contextKey = "principal"

type principal struct {
	Username string
	Role     string
}

func JWTMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bearer := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(bearer, "Bearer ")
			if !found || tokenString == "" {
				utils.HandleErrorResponse(w, "Missing bearer token", http.StatusUnauthorized)
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc)
			if err != nil || !token.Valid {
				utils.HandleErrorResponse(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}
			if claims.Username == "" {
				utils.HandleErrorResponse(w, "Token carries no identity", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey, principal{
				Username: claims.Username,
				Role:     claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUsernameFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(principalContextKey).(principal); ok {
		return p.Username
	}
	return ""
}

func GetRoleFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(principalContextKey).(principal); ok {
		return p.Role
	}
	return ""
}
