package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"casedesk/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const IdentityKey contextKey = "identity"

// AnonymousIdentity is used when no signing secret is configured.
const AnonymousIdentity = "admin"

// Identity returns the display identity attached by IdentityMiddleware.
func Identity(ctx context.Context) string {
	if id, ok := ctx.Value(IdentityKey).(string); ok && id != "" {
		return id
	}
	return AnonymousIdentity
}

// IdentityMiddleware resolves who is acting so new workspaces get an organizer.
// With an empty secret every request is AnonymousIdentity; otherwise a valid
// HMAC-signed bearer token is required.
func IdentityMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				ctx := context.WithValue(r.Context(), IdentityKey, AnonymousIdentity)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// Browsers cannot set headers on WebSocket dials, so accept a query token too.
			tokenString := r.URL.Query().Get("token")
			if tokenString == "" {
				tokenString = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}
			if tokenString == "" {
				http.Error(w, "Unauthorized: No token provided", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Sugar.Warnf("Invalid token: %v", err)
				http.Error(w, "Unauthorized: Invalid or expired token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Unauthorized: Could not parse token claims", http.StatusUnauthorized)
				return
			}
			identity := claimString(claims, "preferred_username")
			if identity == "" {
				identity = claimString(claims, "sub")
			}
			if identity == "" {
				http.Error(w, "Unauthorized: Subject claim is missing or invalid", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
