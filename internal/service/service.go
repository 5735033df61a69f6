package service

import (
	"youthive/internal/config"
	"youthive/internal/repository"
	"youthive/internal/storage"
)

type Service struct {
	Auth     AuthService
	Article  ArticleService
	Category CategoryService
	Favorite FavoriteService
	Events   *EventBroker
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	events := NewEventBroker()

	return &Service{
		Auth:     NewAuthService(rep.User, cfg, events),
		Article:  NewArticleService(rep.Article, rep.Category, storage, cfg),
		Category: NewCategoryService(rep.Category),
		Favorite: NewFavoriteService(rep.Favorite, rep.Article),
		Events:   events,
	}
}
