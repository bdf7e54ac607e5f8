package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

func (s *CatalogService) Universities(ctx context.Context) ([]models.University, error) {
	return s.repomanager.Catalog(s.db).ListUniversities(ctx)
}

func (s *CatalogService) AddUniversity(ctx context.Context, name string) (*models.University, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.Required("name")
	}
	return s.repomanager.Catalog(s.db).CreateUniversity(ctx, &models.University{ID: uuid.NewString(), Name: name})
}

func (s *CatalogService) Courses(ctx context.Context) ([]models.Course, error) {
	return s.repomanager.Catalog(s.db).ListCourses(ctx)
}

func (s *CatalogService) AddCourse(ctx context.Context, name string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.Required("name")
	}
	return s.repomanager.Catalog(s.db).CreateCourse(ctx, &models.Course{ID: uuid.NewString(), Name: name})
}
