package handlers

import (
	"github.com/go-playground/validator/v10"

	"youthive/internal/config"
	"youthive/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	ArticleService  service.ArticleService
	CategoryService service.CategoryService
	FavoriteService service.FavoriteService
	Events          *service.EventBroker
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		ArticleService:  services.Article,
		CategoryService: services.Category,
		FavoriteService: services.Favorite,
		Events:          services.Events,
		Cfg:             config,
		Validate:        validator.New(),
	}
}
