package employee

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Employee struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	FullName       string    `gorm:"column:full_name;type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_employee_email"`
	DateOfBirth    time.Time `gorm:"column:date_of_birth;type:date;not null"`
	Gender         Gender    `gorm:"type:varchar(10);not null"`
	PhoneNumber    string    `gorm:"column:phone_number;type:varchar(10);not null"`
	Active         bool      `gorm:"not null;default:true"`
	HashedPassword string    `gorm:"column:hashed_password;type:text;not null" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
