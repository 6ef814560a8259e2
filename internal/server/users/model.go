package users

import (
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// User is the stored account. PasswordHash never leaves this package's
// callers in API responses.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	Title        string
	Skills       []string
	Education    []string
	Experience   []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) Public() *models.User {
	created, updated := u.CreatedAt, u.UpdatedAt
	return &models.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: &created,
		UpdatedAt: &updated,
	}
}

func (u *User) Profile() *models.Profile {
	return &models.Profile{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Title:      u.Title,
		Skills:     append([]string(nil), u.Skills...),
		Education:  append([]string(nil), u.Education...),
		Experience: append([]string(nil), u.Experience...),
	}
}

func (u *User) clone() *User {
	c := *u
	c.Skills = append([]string(nil), u.Skills...)
	c.Education = append([]string(nil), u.Education...)
	c.Experience = append([]string(nil), u.Experience...)
	return &c
}
