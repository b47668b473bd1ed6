package usecase

import (
	"album-shop/internal/data/repository"
	"album-shop/internal/token"
	"album-shop/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Album  AlbumService
	Order  OrderService
	Review ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	issuer := token.NewIssuer(config.JWT.Secret, config.JWT.ExpiryHours)

	return &Service{
		Auth:   NewAuthService(repo, issuer, config, log),
		User:   NewUserService(repo.User, log),
		Album:  NewAlbumService(repo.Album, log),
		Order:  NewOrderService(repo, log),
		Review: NewReviewService(repo, log),
	}
}
