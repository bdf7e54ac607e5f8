package models

import "time"

// Exam is an uploaded exam with its ordered pages.
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

// NewExam is the body of an exam creation call. Files are page URLs in page
// order. ID may be set by the caller to keep a client-generated identifier.
type NewExam struct {
	ID           string   `json:"id,omitempty"`
	UniversityID string   `json:"university_id"`
	CourseID     string   `json:"course_id"`
	Year         int      `json:"year"`
	ExamType     string   `json:"exam_type"`
	TeacherName  string   `json:"teacher_name,omitempty"`
	Title        string   `json:"title,omitempty"`
	Files        []string `json:"files"`
}

// Feed types accepted by the exam listing.
const (
	FeedAll       = "all"
	FeedFollowing = "following"
)
