package resumes

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/gabriel-vasile/mimetype"
)

const UploadedMessage = "Resume uploaded successfully"

var (
	ErrEmptyFile    = fmt.Errorf("%w: file is empty", common.ErrValidation)
	ErrFileTooLarge = errors.New("file too large")
)

type Service struct {
	repo    Repository
	maxSize int64
}

func NewService(repo Repository, maxSize int64) *Service {
	return &Service{repo: repo, maxSize: maxSize}
}

// Upload stores data as a resume of ownerID. Plain text files have their
// content kept as the parsed text; other formats are stored as is.
func (s *Service) Upload(ctx context.Context, ownerID int64, fileName string, data []byte) (*models.ResumeUploadResponse, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, ErrFileTooLarge
	}

	fileName = filepath.Base(fileName)
	mtype := mimetype.Detect(data)

	stored := &Stored{
		Resume: models.Resume{
			FileName: fileName,
			FileType: mtype.String(),
			FileSize: int64(len(data)),
		},
		OwnerID: ownerID,
		Content: data,
	}
	if mtype.Is("text/plain") && utf8.Valid(data) {
		stored.ParsedContent = strings.TrimSpace(string(data))
	}

	created, err := s.repo.Create(ctx, stored)
	if err != nil {
		return nil, err
	}

	return &models.ResumeUploadResponse{Message: UploadedMessage, Resume: created.Resume}, nil
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]models.Resume, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get hides resumes of other users behind common.ErrNotFound.
func (s *Service) Get(ctx context.Context, ownerID, id int64) (*models.Resume, error) {
	stored, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	return &stored.Resume, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
