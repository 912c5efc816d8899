package routes

import (
	"net/http"
	"strings"

	"bloghub/internal/handlers"
	"bloghub/internal/middleware"
	helpers "bloghub/internal/utils/helpers"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	blogH *handlers.BlogHandler,
	authorH *handlers.AuthorHandler,
	categoryH *handlers.CategoryHandler,
	postH *handlers.PostHandler,
	tagH *handlers.TagHandler,
	commentH *handlers.CommentHandler,
	simpleH *handlers.SimplePostHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	// Неизвестный ресурс под /api — 404; всё вне /api — информационная заглушка
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			helpers.Error(w, http.StatusNotFound, "Ресурс не найден")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Bloghub API. Все ресурсы доступны под /api/, документация — /swagger/"))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.Error(w, http.StatusMethodNotAllowed, "Метод не поддерживается")
	})

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/blogs", blogH.List).Methods("GET")
	api.HandleFunc("/blogs", blogH.Create).Methods("POST")
	api.HandleFunc("/blogs/{id:[0-9]+}", blogH.GetByID).Methods("GET")
	api.HandleFunc("/blogs/{id:[0-9]+}", blogH.Update).Methods("PUT")
	api.HandleFunc("/blogs/{id:[0-9]+}", blogH.Delete).Methods("DELETE")

	api.HandleFunc("/authors", authorH.List).Methods("GET")
	api.HandleFunc("/authors", authorH.Create).Methods("POST")
	api.HandleFunc("/authors/{id:[0-9]+}", authorH.GetByID).Methods("GET")
	api.HandleFunc("/authors/{id:[0-9]+}", authorH.Update).Methods("PUT")
	api.HandleFunc("/authors/{id:[0-9]+}", authorH.Delete).Methods("DELETE")

	api.HandleFunc("/categories", categoryH.List).Methods("GET")
	api.HandleFunc("/categories", categoryH.Create).Methods("POST")
	api.HandleFunc("/categories/{id:[0-9]+}", categoryH.GetByID).Methods("GET")
	api.HandleFunc("/categories/{id:[0-9]+}", categoryH.Update).Methods("PUT")
	api.HandleFunc("/categories/{id:[0-9]+}", categoryH.Delete).Methods("DELETE")

	api.HandleFunc("/posts", postH.List).Methods("GET")
	api.HandleFunc("/posts", postH.Create).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}", postH.GetByID).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", postH.Update).Methods("PUT")
	api.HandleFunc("/posts/{id:[0-9]+}", postH.Delete).Methods("DELETE")

	api.HandleFunc("/tags", tagH.List).Methods("GET")
	api.HandleFunc("/tags", tagH.Create).Methods("POST")
	api.HandleFunc("/tags/{id:[0-9]+}", tagH.GetByID).Methods("GET")
	api.HandleFunc("/tags/{id:[0-9]+}", tagH.Update).Methods("PUT")
	api.HandleFunc("/tags/{id:[0-9]+}", tagH.Delete).Methods("DELETE")

	api.HandleFunc("/comments", commentH.List).Methods("GET")
	api.HandleFunc("/comments", commentH.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}", commentH.GetByID).Methods("GET")
	api.HandleFunc("/comments/{id:[0-9]+}", commentH.Update).Methods("PUT")
	api.HandleFunc("/comments/{id:[0-9]+}", commentH.Delete).Methods("DELETE")

	api.HandleFunc("/simple", simpleH.Create).Methods("POST")
}
