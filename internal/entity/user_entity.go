package entity

import "time"

type User struct {
	UserId    int
	Username  string
	CreatedAt time.Time
}
