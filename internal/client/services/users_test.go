package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/session"
	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ProfileMergesIntoStoredUser(t *testing.T) {
	f := newFake()
	f.Responses["GET "+testEndpoints.Profile] = models.Profile{
		Email: "ann@example.org", Role: common.RoleJobSeeker, FirstName: "Anna", LastName: "Lee", Title: "Engineer",
	}
	store := session.NewMemoryStore()
	seedSession(store, "tok", `{"email":"ann@example.org","role":"JOB_SEEKER","firstName":"Ann"}`)
	svc := NewUserService(f, testEndpoints, store, logging.Nop{})

	p, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Engineer", p.Title)

	u, err := loadUser(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, "Anna", u.FirstName)
	assert.Equal(t, "Lee", u.LastName)
}

func TestUserService_NoSessionNoMerge(t *testing.T) {
	f := newFake()
	f.Responses["PUT "+testEndpoints.Profile] = models.Profile{Email: "x@example.org", Skills: []string{"go"}}
	store := session.NewMemoryStore()
	svc := NewUserService(f, testEndpoints, store, logging.Nop{})

	p, err := svc.UpdateProfile(context.Background(), models.ProfileUpdateRequest{Skills: []string{"go"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, p.Skills)

	u, err := loadUser(context.Background(), store)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserService_MergeFailureDoesNotFailCall(t *testing.T) {
	f := newFake()
	f.Responses["GET "+testEndpoints.Profile] = models.Profile{Email: "x@example.org"}
	svc := NewUserService(f, testEndpoints, brokenStore{}, logging.Nop{})

	_, err := svc.Profile(context.Background())
	require.NoError(t, err)
}
