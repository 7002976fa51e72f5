package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/gateway/auth"
	"dispatch/pkg/logger"
)

type contextKey struct{}

var actorKey = contextKey{}

func ContextWithActor(ctx context.Context, actor *entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (*entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(*entities.Actor)
	return actor, ok
}

// Middleware проверяет bearer-токен через auth-service и кладет
// проверенного актора в контекст запроса. Дальше хендлеры работают
// только с актором, сам токен ниже не спускается.
func Middleware(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				writeBody(log, w, r, `{"error":"Unauthorized","message":"Missing or malformed Authorization header."}`)
				return
			}

			actor, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrInvalidCredential):
					w.WriteHeader(http.StatusUnauthorized)
					writeBody(log, w, r, `{"error":"Unauthorized","message":"Invalid or expired credential."}`)
				case errors.Is(err, auth.ErrUnavailable):
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("auth service unavailable")
					w.WriteHeader(http.StatusServiceUnavailable)
					writeBody(log, w, r, `{"error":"Service Unavailable","message":"Authentication temporarily unavailable."}`)
				default:
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("token verification failed")
					w.WriteHeader(http.StatusInternalServerError)
					writeBody(log, w, r, `{"error":"Internal Server Error"}`)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithActor(r.Context(), actor)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}

func writeBody(log handlerLogger, w http.ResponseWriter, r *http.Request, body string) {
	if _, err := w.Write([]byte(body)); err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write auth response")
	}
}
