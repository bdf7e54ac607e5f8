package likes

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikesRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM exam_likes WHERE exam_id = \$1 AND user_id = \$2\)`).
		WithArgs("e-1", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO exam_likes \(exam_id, user_id\) VALUES \(\$1, \$2\) ON CONFLICT DO NOTHING`).
		WithArgs("e-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM exam_likes WHERE exam_id = \$1 AND user_id = \$2`).
		WithArgs("e-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Exists(ctx, "e-1", "u-1")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, repo.Create(ctx, "e-1", "u-1"))
	require.NoError(t, repo.Delete(ctx, "e-1", "u-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
