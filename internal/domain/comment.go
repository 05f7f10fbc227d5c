package domain

import "time"

type Comment struct {
	ID         int64
	TaskID     int64
	AuthorID   int64
	AuthorName string
	Content    string
	CreatedAt  time.Time
}
