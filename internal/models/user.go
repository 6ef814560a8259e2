package models

import "time"

// User is the client's copy of a user. Only Email, Role, FirstName and
// LastName survive in the stored session; the rest comes from /auth/me.
type User struct {
	ID        int64      `json:"id,omitempty"`
	Username  string     `json:"username,omitempty"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FullName joins the first and last name, skipping blanks.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Session is the client-held proof of authentication.
type Session struct {
	Token string
	User  User
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=JOB_SEEKER RECRUITER"`
}

// ResumeLoginRequest signs a user in by the email found on their resume.
// Names are optional and only used when the account is created.
type ResumeLoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type AuthResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// ReducedUser is the part of an AuthResponse that gets persisted.
func (r *AuthResponse) ReducedUser() User {
	return User{
		Email:     r.Email,
		Role:      r.Role,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// Profile is the editable view of the signed-in user.
type Profile struct {
	ID         int64    `json:"id,omitempty"`
	Username   string   `json:"username,omitempty"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Title      string   `json:"title,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Education  []string `json:"education,omitempty"`
	Experience []string `json:"experience,omitempty"`
}

// ProfileUpdateRequest replaces only the fields that are set.
type ProfileUpdateRequest struct {
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Title      string   `json:"title,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Education  []string `json:"education,omitempty"`
	Experience []string `json:"experience,omitempty"`
}
