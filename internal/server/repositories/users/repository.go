package users

import (
	"context"

	"github.com/dmitrijs2005/examhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
	Update(ctx context.Context, id string, upd models.ProfileUpdate) (*models.User, error)
}
