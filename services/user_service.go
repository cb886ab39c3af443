package services

import (
	"context"
	"errors"

	"estore-api/models"
	"estore-api/repositories"
)

// UserService backs the admin user-management surface.
type UserService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int, search string) (*models.PaginationResponse, error) {
	page, limit = normalizePage(page, limit, 10)

	users, total, err := s.userRepo.FindAll(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	return paginatedResponse("Users retrieved successfully", users, page, limit, total), nil
}

func (s *UserService) GetUser(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetUserRole(ctx context.Context, userID int, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ToggleUserActive(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.userRepo.ToggleActive(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
