// Package models holds the server-side records and their JSON shapes.
package models

import "time"

type User struct {
	ID         string    `json:"id"`
	TelegramID string    `json:"telegram_id"`
	Username   string    `json:"username"`
	Bio        string    `json:"bio"`
	AvatarURL  string    `json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// Profile is a user with follow counts. IsFollowing is set only when the
// viewer is a different user.
type Profile struct {
	User
	FollowersCount int   `json:"followers_count"`
	FollowingCount int   `json:"following_count"`
	IsFollowing    *bool `json:"is_following,omitempty"`
}

// ProfileUpdate lists the editable fields; nil means unchanged.
type ProfileUpdate struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.Bio == nil && u.AvatarURL == nil
}
