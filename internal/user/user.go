package user

import (
	"bloguser/internal/user/models"
	"bloguser/internal/user/service"
	"bloguser/internal/user/store"
)

// Service exposes user creation, insertion and lookup.
type Service = service.Service

// User is a blog user record.
type User = models.User

// Role is the permission class of a user.
type Role = models.Role

// CreateUserRequest is the input to Service.Create.
type CreateUserRequest = models.CreateUserRequest

const (
	RoleWriter = models.RoleWriter
	RoleReader = models.RoleReader
)

// NewRegistry constructs a service backed by a fresh in-memory store.
func NewRegistry(opts ...service.Option) *Service {
	return service.New(store.NewInMemory(), opts...)
}
