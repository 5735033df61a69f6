package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"youthive/internal/config"
	handlers "youthive/internal/handler"
)

type Middleware func(http.Handler) http.Handler

// publicPaths need no token at all.
var publicPaths = map[string]bool{
	"/":                        true,
	"/health":                  true,
	"/api/auth/register":       true,
	"/api/auth/login":          true,
	"/api/auth/refresh-token":  true,
	"/api/auth/reset-password": true,
	"/api/auth/events":         true,
}

// publicGet lists read-only surfaces open without a session: browsing,
// reading and the view-count increment work for anonymous visitors.
func publicGet(r *http.Request) bool {
	if r.URL.Path == "/api/categories" && r.Method == http.MethodGet {
		return true
	}
	if strings.HasPrefix(r.URL.Path, "/api/articles") {
		if r.Method == http.MethodGet {
			return true
		}
		if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/view") {
			return true
		}
	}
	return false
}

// AuthMiddleware verifies the JWT token and adds user data to the context
func AuthMiddleware(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || publicGet(r) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Oturum gerekli.", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, "Geçersiz token formatı.", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecretKey), nil
			})
			if err != nil || !token.Valid {
				handlers.WriteError(w, "Geçersiz veya süresi dolmuş token.", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				handlers.WriteError(w, "Geçersiz token.", http.StatusUnauthorized)
				return
			}

			userID, ok1 := claims["userId"].(string)
			email, ok2 := claims["email"].(string)
			isEditor, ok3 := claims["isEditor"].(bool)
			if !ok1 || !ok2 || !ok3 {
				handlers.WriteError(w, "Geçersiz token.", http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, "userID", userID)
			ctx = context.WithValue(ctx, "email", email)
			ctx = context.WithValue(ctx, "isEditor", isEditor)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EditorOnly guards moderation routes.
func EditorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isEditor, ok := r.Context().Value("isEditor").(bool)
		if !ok || !isEditor {
			handlers.WriteError(w, "Bu işlem için editör yetkisi gereklidir.", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
