package client

import (
	"net/url"
	"strconv"
)

// ExamFilters narrows the exam listing. Nil fields are omitted from the
// query string.
type ExamFilters struct {
	UniversityID *string
	CourseID     *string
	Year         *int
	Search       *string
	UserID       *string
	FeedType     *string
}

// Ptr returns a pointer to v, for filling optional filter fields.
func Ptr[T any](v T) *T {
	return &v
}

// Values returns the query parameters for the set fields only.
func (f ExamFilters) Values() url.Values {
	q := url.Values{}
	set := func(key string, v *string) {
		if v != nil {
			q.Set(key, *v)
		}
	}
	set("university_id", f.UniversityID)
	set("course_id", f.CourseID)
	if f.Year != nil {
		q.Set("year", strconv.Itoa(*f.Year))
	}
	set("search", f.Search)
	set("user_id", f.UserID)
	set("feed_type", f.FeedType)
	return q
}

// Endpoint returns /api/exams with the encoded filters, if any.
func (f ExamFilters) Endpoint() string {
	q := f.Values()
	if len(q) == 0 {
		return "/api/exams"
	}
	return "/api/exams?" + q.Encode()
}
