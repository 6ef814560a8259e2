package resumes

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_UploadText(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepository(), 1024)

	resp, err := s.Upload(ctx, 1, "../../etc/cv.txt", []byte("Jane Doe\nGo, SQL\n"))
	require.NoError(t, err)
	assert.Equal(t, UploadedMessage, resp.Message)
	assert.Equal(t, "cv.txt", resp.Resume.FileName)
	assert.Equal(t, int64(17), resp.Resume.FileSize)
	assert.True(t, strings.HasPrefix(resp.Resume.FileType, "text/plain"))
	assert.Equal(t, "Jane Doe\nGo, SQL", resp.Resume.ParsedContent)
	assert.NotZero(t, resp.Resume.ID)
}

func TestService_UploadBinaryKeepsNoText(t *testing.T) {
	s := NewService(NewMemoryRepository(), 1024)

	resp, err := s.Upload(context.Background(), 1, "cv.pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", resp.Resume.FileType)
	assert.Empty(t, resp.Resume.ParsedContent)
}

func TestService_UploadLimits(t *testing.T) {
	s := NewService(NewMemoryRepository(), 4)

	_, err := s.Upload(context.Background(), 1, "cv.txt", nil)
	require.ErrorIs(t, err, ErrEmptyFile)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Upload(context.Background(), 1, "cv.txt", []byte("too long"))
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestService_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepository(), 0)

	a, err := s.Upload(ctx, 1, "a.txt", []byte("a"))
	require.NoError(t, err)
	_, err = s.Upload(ctx, 2, "b.txt", []byte("b"))
	require.NoError(t, err)

	mine, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a.txt", mine[0].FileName)

	_, err = s.Get(ctx, 2, a.Resume.ID)
	require.ErrorIs(t, err, common.ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, 2, a.Resume.ID), common.ErrNotFound)

	require.NoError(t, s.Delete(ctx, 1, a.Resume.ID))
	mine, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
