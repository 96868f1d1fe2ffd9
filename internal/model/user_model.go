package model

import "time"

type User struct {
	UserId    int       `gorm:"primaryKey;autoIncrement;column:user_id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
