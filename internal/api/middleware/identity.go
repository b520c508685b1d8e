package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const ctxKeyIdentity ctxKey = iota

const (
	HeaderUserName  = "X-User-Name"
	HeaderUserEmail = "X-User-Email"
)

// Identity непроверенные данные пользователя из заголовков; используются только для подстановки контакта
type Identity struct {
	Name  string
	Email string
}

// IsZero true, если ни одно поле не передано
func (i Identity) IsZero() bool {
	return i.Name == "" && i.Email == ""
}

// GetIdentity возвращает Identity из контекста запроса
func GetIdentity(ctx context.Context) Identity {
	id, _ := ctx.Value(ctxKeyIdentity).(Identity)
	return id
}

// WithIdentity кладёт Identity в контекст
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityMiddleware переносит заголовки X-User-Name и X-User-Email в контекст
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := Identity{
			Name:  strings.TrimSpace(r.Header.Get(HeaderUserName)),
			Email: strings.TrimSpace(r.Header.Get(HeaderUserEmail)),
		}
		if id.IsZero() {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}
