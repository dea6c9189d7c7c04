package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

// Account rules.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20

	minPasswordScore = 3 // zxcvbn score in [0, 4]
	bcryptCost       = 12
)

// User errors.
var (
	ErrUsernameTooShort  = errors.New("username too short")
	ErrUsernameTooLong   = errors.New("username too long")
	ErrUsernameFormat    = errors.New("username may only hold letters, digits and underscores")
	ErrWeakPassword      = errors.New("weak password")
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameConflict  = errors.New("username conflict")
	ErrInvalidCredential = errors.New("invalid username or password")
)

var usernameChars = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// User is a registered player. Leaderboards show the username, so it is unique.
type User struct {
	ID           uuid.UUID `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// UserConfig holds the fields a player registers with.
type UserConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
}

// NewUser checks the username and password rules and hashes the password.
func NewUser(config UserConfig) (*User, error) {
	if err := CheckUsername(config.Username); err != nil {
		return nil, err
	}
	if zxcvbn.PasswordStrength(config.PlainPassword, []string{config.Username}).Score < minPasswordScore {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.PlainPassword), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           config.ID,
		Username:     config.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckUsername reports which rule, if any, a username breaks.
func CheckUsername(username string) error {
	switch {
	case len(username) < MinUsernameLength:
		return ErrUsernameTooShort
	case len(username) > MaxUsernameLength:
		return ErrUsernameTooLong
	case !usernameChars.MatchString(username):
		return ErrUsernameFormat
	}
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
