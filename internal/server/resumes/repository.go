// Package resumes keeps uploaded resume files per owner.
package resumes

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// Stored is a resume together with its owner and raw bytes.
type Stored struct {
	models.Resume
	OwnerID int64
	Content []byte
}

type Repository interface {
	Create(ctx context.Context, r *Stored) (*Stored, error)
	Get(ctx context.Context, id int64) (*Stored, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Resume, error)
	Delete(ctx context.Context, id int64) error
}
