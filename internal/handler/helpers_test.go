package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/book-manager/internal/repository"
	"github.com/snnyvrz/book-manager/internal/service"
	"gorm.io/gorm"
)

func setupBookRouterWithService(svc BookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookHandler(svc)
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	repo := repository.NewGormBookRepository(db)
	return setupBookRouterWithService(service.NewBookService(repo))
}
