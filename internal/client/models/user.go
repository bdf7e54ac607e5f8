// Package models holds the JSON wire types exchanged with the ExamHub API.
package models

import "time"

// User is a profile as returned by the profile and auth endpoints.
// IsFollowing is set only when viewing another user's profile.
type User struct {
	ID             string    `json:"id"`
	TelegramID     string    `json:"telegram_id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	AvatarURL      string    `json:"avatar_url"`
	CreatedAt      time.Time `json:"created_at"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	IsFollowing    *bool     `json:"is_following,omitempty"`
}

// ProfileUpdate carries the editable profile fields; nil fields are left
// untouched by the server.
type ProfileUpdate struct {
	Username  *string `json:"username,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type University struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
