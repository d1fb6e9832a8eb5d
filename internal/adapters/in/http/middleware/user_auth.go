// internal/adapters/in/http/middleware/user_auth.go
package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias so callers can take *middleware.FirebaseAuthClient.
type FirebaseAuthClient = fbauth.Client

// Identity is the verified principal extracted from the Firebase ID token.
// Only uid/email/name are read; the identity record itself stays external.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// context key uses a private type to avoid collisions (SA1029)
type ctxKey struct{ name string }

var ctxKeyIdentity = ctxKey{name: "identity"}

// ContextWithIdentity stores an identity directly, bypassing token
// verification. Handler tests use it; production code goes through Handler.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the identity stored by UserAuthMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(ctxKeyIdentity).(Identity)
	if !ok || strings.TrimSpace(v.UID) == "" {
		return Identity{}, false
	}
	return v, true
}

// UserAuthMiddleware verifies
//
//	Authorization: Bearer <ID_TOKEN>
//
// against Firebase Auth and stores the resulting Identity in the request
// context. All mutating storefront endpoints sit behind it; the cart partition
// key is the verified uid, never a client-supplied id.
type UserAuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *UserAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil {
			http.Error(w, "user auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		id := Identity{UID: uid}
		if raw, ok := token.Claims["email"]; ok {
			if e, ok2 := raw.(string); ok2 {
				id.Email = strings.TrimSpace(e)
			}
		}
		if raw, ok := token.Claims["name"]; ok {
			if s, ok2 := raw.(string); ok2 {
				id.Name = strings.TrimSpace(s)
			}
		}

		log.Printf("[user_auth] verified path=%s uid=%s", r.URL.Path, maskUID(uid))

		ctx := context.WithValue(r.Context(), ctxKeyIdentity, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// maskUID keeps the Firebase UID out of logs.
func maskUID(uid string) string {
	uid = strings.TrimSpace(uid)
	if len(uid) <= 6 {
		return "***"
	}
	return "***" + uid[len(uid)-6:]
}
