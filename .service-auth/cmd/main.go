// Заглушка auth-сервиса для локальной разработки: отдает пару
// (subject_id, role) по статическим токенам вида "role:subject".
// В бою здесь живет настоящий сервис аутентификации.
package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"service-auth/internal/rest/verify_post"
)

type staticTokenStore struct{}

func (staticTokenStore) Resolve(token string) (string, string, bool) {
	role, subject, found := strings.Cut(token, ":")
	if !found || subject == "" {
		return "", "", false
	}

	switch role {
	case "client", "operator", "supervisor":
		return subject, role, true
	default:
		return "", "", false
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Method(http.MethodPost, "/verify", verify_post.New(staticTokenStore{}))

	log.Printf("auth stub listening on :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("auth stub: %v", err)
	}
}
