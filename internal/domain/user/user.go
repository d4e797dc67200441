package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tracklet-io/tracklet/internal/shared/biztime"
)

const (
	MaxUsernameLength = 50
	MaxEmailLength    = 100
)

// User is an account able to log in. Accounts are provisioned by seeding;
// there is no self-registration.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	createdAt    time.Time
	isActive     bool
}

// NewUser creates an active user from an already hashed password.
func NewUser(username, email, passwordHash string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    biztime.NowUTC(),
		isActive:     true,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, username, email, passwordHash string, createdAt time.Time, isActive bool) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt.UTC(),
		isActive:     isActive,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) IsActive() bool {
	return u.isActive
}

// CanAuthenticate reports whether the account may log in at all.
func (u *User) CanAuthenticate() bool {
	return u.isActive && u.passwordHash != ""
}

func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return fmt.Errorf("username exceeds maximum length of %d characters", MaxUsernameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return fmt.Errorf("email exceeds maximum length of %d characters", MaxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email: %s", email)
	}
	return nil
}
