package services

import (
	"context"
	"time"

	"estore-api/models"
	"estore-api/repositories"
)

// Interfaces over the repository layer. The pgx-backed implementations in
// the repositories package satisfy these; tests substitute mocks.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindAll(ctx context.Context, page, limit int, search string) ([]models.User, int, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
	UpdateRole(ctx context.Context, userID int, role string) (*models.User, error)
	ToggleActive(ctx context.Context, userID int) (*models.User, error)
	Delete(ctx context.Context, userID int) error
	RecordLogin(ctx context.Context, userID int) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID, page, limit int) ([]models.Order, int, error)
	FindByIDForUser(ctx context.Context, orderID, userID int) (*models.Order, error)
	FindByID(ctx context.Context, orderID int) (*models.Order, error)
	FindAll(ctx context.Context, page, limit int, status, search string) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error)
}

type StatsRepository interface {
	CountUsersByRole(ctx context.Context, role string) (int, error)
	CountSignedInUsers(ctx context.Context) (int, error)
	RecentUsers(ctx context.Context, limit int) ([]models.User, error)
	CountOrders(ctx context.Context) (int, error)
	OrderTotals(ctx context.Context, since time.Time) (repositories.OrderTotals, error)
	MonthlyTotals(ctx context.Context, since time.Time) ([]repositories.MonthlyRow, error)
	TopProducts(ctx context.Context, since time.Time, limit int) ([]models.ProductStat, error)
}

// ProductCatalog is the external catalog collaborator. Product data is not
// owned by this service; only the count is consumed, for dashboard totals.
type ProductCatalog interface {
	ProductCount(ctx context.Context) (int, error)
}
