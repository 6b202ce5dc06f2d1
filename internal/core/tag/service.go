package tag

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context)
}

func (service *Service) GetTag(context context.Context, id int) (*Tag, error) {
	return service.repo.GetTag(context, id)
}
