package follows

import "context"

type Repository interface {
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	Create(ctx context.Context, followerID, followingID string) error
	Delete(ctx context.Context, followerID, followingID string) error
	// Counts returns how many users follow userID and how many userID follows.
	Counts(ctx context.Context, userID string) (followers, following int, err error)
}
