package meeting

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"column:title;type:varchar(255);not null"`
	Description  string    `gorm:"column:description;type:text;not null;default:''"`
	Date         string    `gorm:"column:date;type:varchar(10);not null;index"`
	TimeStart    string    `gorm:"column:time_start;type:varchar(5);not null"`
	TimeEnd      string    `gorm:"column:time_end;type:varchar(5);not null;default:''"`
	AllEmployees bool      `gorm:"column:all_employees;not null;default:false"`
	Invitees     []string  `gorm:"column:invitees;type:jsonb;serializer:json"`
	CreatedBy    string    `gorm:"column:created_by;type:varchar(255);not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Meeting) TableName() string {
	return "meetings"
}
