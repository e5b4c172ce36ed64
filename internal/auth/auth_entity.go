package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:uq_user_email;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(20);not null;default:'Employee'"`
	ProfilePending bool      `gorm:"not null;default:false"`
	Avatar         string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (User) TableName() string {
	return "users"
}
