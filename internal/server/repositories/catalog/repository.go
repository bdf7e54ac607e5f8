// Package catalog stores the university and course dictionaries.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/examhub/internal/server/models"
)

type Repository interface {
	ListUniversities(ctx context.Context) ([]models.University, error)
	CreateUniversity(ctx context.Context, u *models.University) (*models.University, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	CreateCourse(ctx context.Context, c *models.Course) (*models.Course, error)
}
