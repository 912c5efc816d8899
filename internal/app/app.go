package app

import (
	"context"

	"bloghub/internal/config"
	"bloghub/internal/db"
	"bloghub/internal/handlers"
	"bloghub/internal/repository"
	"bloghub/internal/routes"
	"bloghub/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(context.Background(), conn); err != nil {
		return nil, err
	}

	// Репозитории
	blogRepo := repository.NewBlogRepo(conn)
	authorRepo := repository.NewAuthorRepo(conn)
	categoryRepo := repository.NewCategoryRepo(conn)
	postRepo := repository.NewPostRepo(conn)
	tagRepo := repository.NewTagRepo(conn)
	commentRepo := repository.NewCommentRepo(conn)

	// Сервисы
	blogSvc := services.NewBlogService(blogRepo)
	authorSvc := services.NewAuthorService(authorRepo, blogRepo)
	categorySvc := services.NewCategoryService(categoryRepo, blogRepo)
	postSvc := services.NewPostService(postRepo, blogRepo, authorRepo, categoryRepo, tagRepo)
	tagSvc := services.NewTagService(tagRepo)
	commentSvc := services.NewCommentService(commentRepo, postRepo)
	simpleSvc := services.NewSimplePostService(blogRepo, authorRepo, categoryRepo, postRepo)

	// Хендлеры
	blogH := handlers.NewBlogHandler(blogSvc)
	authorH := handlers.NewAuthorHandler(authorSvc)
	categoryH := handlers.NewCategoryHandler(categorySvc)
	postH := handlers.NewPostHandler(postSvc)
	tagH := handlers.NewTagHandler(tagSvc)
	commentH := handlers.NewCommentHandler(commentSvc)
	simpleH := handlers.NewSimplePostHandler(simpleSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, blogH, authorH, categoryH, postH, tagH, commentH, simpleH)

	return router, nil
}
