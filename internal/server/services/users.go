// Package services contains server-side business logic. Each service works
// on repositories obtained from a repomanager.RepositoryManager and uses
// dbx.WithTx where a request writes more than one row.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/server/auth"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// UserService resolves Telegram identities to users and serves profiles
// and follows.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// defaultUsername is "user_" plus the last six digits of the Telegram id.
func defaultUsername(telegramID string) string {
	if len(telegramID) > 6 {
		telegramID = telegramID[len(telegramID)-6:]
	}
	return "user_" + telegramID
}

// Verify returns the user for tg, creating it on first sight. The stored
// avatar follows the Telegram photo when it changes.
func (s *UserService) Verify(ctx context.Context, tg *auth.TelegramUser) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	telegramID := tg.IDString()

	user, err := repo.GetByTelegramID(ctx, telegramID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	if user == nil {
		username := tg.Username
		if username == "" {
			username = defaultUsername(telegramID)
		}
		user, err = repo.Create(ctx, &models.User{
			ID:         uuid.NewString(),
			TelegramID: telegramID,
			Username:   username,
			AvatarURL:  tg.PhotoURL,
		})
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}

	if tg.PhotoURL != "" && tg.PhotoURL != user.AvatarURL {
		if err := repo.UpdateAvatar(ctx, user.ID, tg.PhotoURL); err != nil {
			return nil, fmt.Errorf("update avatar: %w", err)
		}
		user.AvatarURL = tg.PhotoURL
	}
	return user, nil
}

// Resolve returns the registered user for tg without creating one.
func (s *UserService) Resolve(ctx context.Context, tg *auth.TelegramUser) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByTelegramID(ctx, tg.IDString())
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.NotFound("User")
	}
	return user, err
}

// Profile returns userID's profile with follow counts. IsFollowing is filled
// when viewerID is someone else.
func (s *UserService) Profile(ctx context.Context, userID, viewerID string) (*models.Profile, error) {
	if !isID(userID) {
		return nil, common.NotFound("User")
	}
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NotFound("User")
		}
		return nil, err
	}

	follows := s.repomanager.Follows(s.db)
	followers, following, err := follows.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &models.Profile{User: *user, FollowersCount: followers, FollowingCount: following}
	if viewerID != "" && viewerID != userID {
		ok, err := follows.Exists(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
		p.IsFollowing = &ok
	}
	return p, nil
}

// UpdateProfile applies upd. It returns nil without touching storage when
// upd is empty.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Empty() {
		return nil, nil
	}
	if upd.Username != nil {
		name := strings.TrimSpace(*upd.Username)
		if name == "" {
			return nil, common.Invalid("username", "must not be empty")
		}
		upd.Username = &name
	}

	user, err := s.repomanager.Users(s.db).Update(ctx, userID, upd)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.NotFound("User")
	}
	return user, err
}

// Follow makes followerID follow targetID. already reports an existing
// follow, which is not an error.
func (s *UserService) Follow(ctx context.Context, followerID, targetID string) (already bool, err error) {
	if !isID(targetID) {
		return false, common.NotFound("User")
	}
	if followerID == targetID {
		return false, common.Invalid("user_id", "cannot follow yourself")
	}
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, targetID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.NotFound("User")
		}
		return false, err
	}

	follows := s.repomanager.Follows(s.db)
	exists, err := follows.Exists(ctx, followerID, targetID)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}
	return false, follows.Create(ctx, followerID, targetID)
}

func (s *UserService) Unfollow(ctx context.Context, followerID, targetID string) error {
	if !isID(targetID) {
		return nil
	}
	return s.repomanager.Follows(s.db).Delete(ctx, followerID, targetID)
}
