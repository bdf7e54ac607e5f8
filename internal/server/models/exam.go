package models

import "time"

type Exam struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	UniversityID string      `json:"university_id"`
	CourseID     string      `json:"course_id"`
	Year         int         `json:"year"`
	ExamType     string      `json:"exam_type"`
	TeacherName  string      `json:"teacher_name"`
	Title        string      `json:"title"`
	IsHidden     bool        `json:"is_hidden"`
	CreatedAt    time.Time   `json:"created_at"`
	Files        []ExamFile  `json:"files"`
	IsLiked      bool        `json:"is_liked"`
	LikesCount   int         `json:"likes_count"`
	User         *User       `json:"users,omitempty"`
	University   *University `json:"universities,omitempty"`
	Course       *Course     `json:"courses,omitempty"`
}

type ExamFile struct {
	ID        string `json:"id"`
	ExamID    string `json:"exam_id"`
	FileURL   string `json:"file_url"`
	PageOrder int    `json:"page_order"`
}

// ExamFilter narrows List. Zero values are ignored. FollowerID restricts the
// listing to authors followed by that user.
type ExamFilter struct {
	UniversityID string
	CourseID     string
	Year         int
	UserID       string
	Search       string
	FollowerID   string
}

const (
	FeedAll       = "all"
	FeedFollowing = "following"
)
