package domain

import "time"

type User struct {
	ID           int64
	Email        string
	Fullname     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is what registration and login hand back to the caller.
type Session struct {
	Token string
	User  *User
}

type Registration struct {
	Fullname         string
	Email            string
	Password         string
	RepeatedPassword string
}
