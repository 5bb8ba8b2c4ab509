package userRepo

import "wirehaul/models"

// UserRepository is the narrow identity-store surface this service
// consumes. Account management lives in the external auth service.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// ListAdmins retrieves all administrator users.
	ListAdmins() ([]models.User, error)
}
