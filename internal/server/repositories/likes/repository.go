package likes

import "context"

type Repository interface {
	Exists(ctx context.Context, examID, userID string) (bool, error)
	Create(ctx context.Context, examID, userID string) error
	Delete(ctx context.Context, examID, userID string) error
}
