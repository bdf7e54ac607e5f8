package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/examhub/internal/dbx"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/exams"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/follows"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/likes"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/reports"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can use
// the same repository on a plain connection or inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Follows(db dbx.DBTX) follows.Repository
	Catalog(db dbx.DBTX) catalog.Repository
	Exams(db dbx.DBTX) exams.Repository
	Likes(db dbx.DBTX) likes.Repository
	Reports(db dbx.DBTX) reports.Repository
}
