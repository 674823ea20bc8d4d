package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/jei-ifri/showdown/internal/httputil"
)

type ContextKey string

const AdminKey ContextKey = "admin"

// Admin tokens are short-lived; re-login after expiry.
const adminTokenTTL = 12 * time.Hour

const roleClaim = "role"

// MintAdminToken issues a signed HS256 token. The password check has already
// happened by the time this is called.
func MintAdminToken(secret string) (string, error) {
	claims := jwt.MapClaims{
		roleClaim: "admin",
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(adminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verifyAdminToken(secret, tokenStr string) bool {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return ok && claims[roleClaim] == "admin"
}

// RequireAdmin verifies the Bearer token and stores the authorization
// decision in the request context. Services fail closed when it is missing.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || !verifyAdminToken(secret, tokenStr) {
				httputil.Unauthorized(w, "Unauthorized", nil)
				return
			}

			ctx := context.WithValue(r.Context(), AdminKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin reports whether the context carries a verified admin identity.
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(AdminKey).(bool)
	return ok && isAdmin
}

// WithAdmin marks a context as carrying a verified admin identity.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, AdminKey, true)
}
