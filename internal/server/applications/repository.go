// Package applications tracks job applications and who may see or move
// them through the hiring pipeline.
package applications

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/models"
)

type Repository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	Update(ctx context.Context, app *models.Application) (*models.Application, error)
	Get(ctx context.Context, id int64) (*models.Application, error)
	// List returns the applications accepted by keep, oldest first.
	List(ctx context.Context, keep func(*models.Application) bool) ([]models.Application, error)
}
