// Серверные модели пользователя и ссылки
package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Link struct {
	ID        uuid.UUID
	Title     string
	URL       string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
