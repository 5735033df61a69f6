package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"youthive/cmd/app"
	"youthive/internal/config"
	handlers "youthive/internal/handler"
	"youthive/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", handler.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/reset-password", handler.PasswordResetRequest).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/password", handler.PasswordUpdate).Methods(http.MethodPut)
	router.HandleFunc("/api/auth/events", handler.AuthEvents).Methods(http.MethodGet)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/me/articles", handler.MyArticles).Methods(http.MethodGet)
	router.HandleFunc("/api/me/favorites", handler.GetFavorites).Methods(http.MethodGet)

	router.HandleFunc("/api/articles", handler.GetArticles).Methods(http.MethodGet)
	router.HandleFunc("/api/articles", handler.UploadArticle).Methods(http.MethodPost)
	router.HandleFunc("/api/articles/{id:[0-9]+}", handler.GetArticle).Methods(http.MethodGet)
	router.HandleFunc("/api/articles/{id:[0-9]+}/view", handler.ReadArticle).Methods(http.MethodPost)
	router.HandleFunc("/api/articles/{id:[0-9]+}/favorite", handler.ToggleFavorite).Methods(http.MethodPost)

	router.Handle("/api/articles/{id:[0-9]+}", middleware.EditorOnly(http.HandlerFunc(handler.UpdateArticle))).Methods(http.MethodPut)
	router.Handle("/api/articles/{id:[0-9]+}", middleware.EditorOnly(http.HandlerFunc(handler.DeleteArticle))).Methods(http.MethodDelete)
	router.Handle("/api/articles/{id:[0-9]+}/status", middleware.EditorOnly(http.HandlerFunc(handler.UpdateArticleStatus))).Methods(http.MethodPatch)
	router.Handle("/api/editor/articles", middleware.EditorOnly(http.HandlerFunc(handler.EditorArticles))).Methods(http.MethodGet)

	router.HandleFunc("/api/categories", handler.GetCategories).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Server listening on %s\n", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
