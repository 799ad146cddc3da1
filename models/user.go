package models

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateLogin is returned when a signup reuses an existing username.
	ErrDuplicateLogin = errors.New("username already taken")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("record not found")
)

type User struct {
	ID           uint      `gorm:"primary_key" autoIncrement:"true"`
	Name         string    `gorm:"not null" json:"name"`
	Contact      string    `gorm:"not null" json:"contact"`
	Username     string    `gorm:"index:idx_username;unique;not null" json:"username"`
	Password     string    `gorm:"not null" json:"-"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}

func GetUserByUsername(db *gorm.DB, username string) (User, error) {
	var user User
	if res := db.Where("username = ?", username).First(&user); res.Error != nil {
		return User{}, res.Error
	}
	return user, nil
}

func GetUserByID(db *gorm.DB, id uint) (User, error) {
	var user User
	if res := db.Where("id = ?", id).First(&user); res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, res.Error
	}
	return user, nil
}

// CreateUser inserts the user, letting the store's uniqueness
// constraint arbitrate concurrent signups with the same username.
func (user *User) CreateUser(db *gorm.DB) error {
	if res := db.Create(user); res.Error != nil {
		var pgErr *pgconn.PgError
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) ||
			(errors.As(res.Error, &pgErr) && pgErr.Code == "23505") {
			return ErrDuplicateLogin
		}
		return res.Error
	}
	return nil
}

// Authenticate verifies username and password against the store.
// A missing user and a failed hash comparison are indistinguishable
// to the caller.
func Authenticate(db *gorm.DB, username, password string) (User, error) {
	user, err := GetUserByUsername(db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !user.ValidatePassword(password) {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func (user *User) ValidatePassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}
