package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"stockholdings/src/utils"

	"github.com/go-chi/jwtauth"
	"github.com/lestrrat-go/jwx/jwt"
)

const (
	ClaimUserID = "user_id"
	ClaimRole   = "role"
	RoleAdmin   = "admin"

	msgUnauthorized = "Authentication required"
	msgForbidden    = "Admin privileges required"
)

type ctxKey string

const userIDKey = ctxKey("user_id")

// NewJWTAuth returns the HS256 verifier shared by the router and token issuers.
func NewJWTAuth(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// Verifier reads the bearer token from the Authorization header only.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, jwtauth.TokenFromHeader)
}

// Authenticator rejects requests without a valid token or without a usable
// user id claim, and stores the user id on the request context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil || jwt.Validate(token) != nil {
			utils.WriteError(w, utils.Unauthorized(msgUnauthorized))
			return
		}

		userID, err := userIDFromClaims(claims)
		if err != nil {
			utils.LoggerFromContext(r.Context()).WithError(err).Warn("Rejected token")
			utils.WriteError(w, utils.Unauthorized(msgUnauthorized))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly lets through tokens whose role claim is admin.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			utils.WriteError(w, utils.Unauthorized(msgUnauthorized))
			return
		}
		role, _ := claims[ClaimRole].(string)
		if !strings.EqualFold(role, RoleAdmin) {
			utils.WriteError(w, utils.Forbidden(msgForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext returns the user id stored by Authenticator.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func userIDFromClaims(claims map[string]interface{}) (int64, error) {
	raw, ok := claims[ClaimUserID]
	if !ok {
		raw, ok = claims[jwt.SubjectKey]
	}
	if !ok {
		return 0, fmt.Errorf("token has neither %s nor %s claim", ClaimUserID, jwt.SubjectKey)
	}

	var userID int64
	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("user id %v is not an integer", v)
		}
		userID = int64(v)
	case int64:
		userID = v
	case int:
		userID = int64(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing user id %q: %w", v, err)
		}
		userID = parsed
	default:
		return 0, fmt.Errorf("unsupported user id claim type %T", raw)
	}

	if userID <= 0 {
		return 0, fmt.Errorf("user id %d is not positive", userID)
	}
	return userID, nil
}
