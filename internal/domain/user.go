package domain

import (
	"time"
)

type Role string

const (
	RoleDoctor      Role = "doctor"
	RoleCoordinator Role = "rota-coordinator"
	RoleAdmin       Role = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
