package services

import (
	"context"
	"errors"
	"time"

	"estore-api/models"
	"estore-api/repositories"
)

// Func-field mocks for the repository interfaces. Methods without a
// configured func fail loudly so tests only stub what they exercise.

var errNotStubbed = errors.New("not stubbed")

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user *models.User) error
	findByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	findByIDFunc       func(ctx context.Context, id int) (*models.User, error)
	findAllFunc        func(ctx context.Context, page, limit int, search string) ([]models.User, int, error)
	updateProfileFunc  func(ctx context.Context, user *models.User) error
	updatePasswordFunc func(ctx context.Context, userID int, hashedPassword string) error
	updateRoleFunc     func(ctx context.Context, userID int, role string) (*models.User, error)
	toggleActiveFunc   func(ctx context.Context, userID int) (*models.User, error)
	deleteFunc         func(ctx context.Context, userID int) error
	recordLoginFunc    func(ctx context.Context, userID int) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errNotStubbed
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errNotStubbed
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotStubbed
}

func (m *mockUserRepo) FindAll(ctx context.Context, page, limit int, search string) ([]models.User, int, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, page, limit, search)
	}
	return nil, 0, errNotStubbed
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, user)
	}
	return errNotStubbed
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, userID, hashedPassword)
	}
	return errNotStubbed
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, userID int, role string) (*models.User, error) {
	if m.updateRoleFunc != nil {
		return m.updateRoleFunc(ctx, userID, role)
	}
	return nil, errNotStubbed
}

func (m *mockUserRepo) ToggleActive(ctx context.Context, userID int) (*models.User, error) {
	if m.toggleActiveFunc != nil {
		return m.toggleActiveFunc(ctx, userID)
	}
	return nil, errNotStubbed
}

func (m *mockUserRepo) Delete(ctx context.Context, userID int) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID)
	}
	return errNotStubbed
}

func (m *mockUserRepo) RecordLogin(ctx context.Context, userID int) error {
	if m.recordLoginFunc != nil {
		return m.recordLoginFunc(ctx, userID)
	}
	return nil
}

type mockOrderRepo struct {
	createFunc          func(ctx context.Context, order *models.Order) error
	findByUserFunc      func(ctx context.Context, userID, page, limit int) ([]models.Order, int, error)
	findByIDForUserFunc func(ctx context.Context, orderID, userID int) (*models.Order, error)
	findByIDFunc        func(ctx context.Context, orderID int) (*models.Order, error)
	findAllFunc         func(ctx context.Context, page, limit int, status, search string) ([]models.Order, int, error)
	updateStatusFunc    func(ctx context.Context, orderID int, status string) (*models.Order, error)
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, order)
	}
	return errNotStubbed
}

func (m *mockOrderRepo) FindByUser(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
	if m.findByUserFunc != nil {
		return m.findByUserFunc(ctx, userID, page, limit)
	}
	return nil, 0, errNotStubbed
}

func (m *mockOrderRepo) FindByIDForUser(ctx context.Context, orderID, userID int) (*models.Order, error) {
	if m.findByIDForUserFunc != nil {
		return m.findByIDForUserFunc(ctx, orderID, userID)
	}
	return nil, errNotStubbed
}

func (m *mockOrderRepo) FindByID(ctx context.Context, orderID int) (*models.Order, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, orderID)
	}
	return nil, errNotStubbed
}

func (m *mockOrderRepo) FindAll(ctx context.Context, page, limit int, status, search string) ([]models.Order, int, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, page, limit, status, search)
	}
	return nil, 0, errNotStubbed
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, orderID, status)
	}
	return nil, errNotStubbed
}

type mockStatsRepo struct {
	countUsersByRoleFunc func(ctx context.Context, role string) (int, error)
	countSignedInFunc    func(ctx context.Context) (int, error)
	recentUsersFunc      func(ctx context.Context, limit int) ([]models.User, error)
	countOrdersFunc      func(ctx context.Context) (int, error)
	orderTotalsFunc      func(ctx context.Context, since time.Time) (repositories.OrderTotals, error)
	monthlyTotalsFunc    func(ctx context.Context, since time.Time) ([]repositories.MonthlyRow, error)
	topProductsFunc      func(ctx context.Context, since time.Time, limit int) ([]models.ProductStat, error)
}

func (m *mockStatsRepo) CountUsersByRole(ctx context.Context, role string) (int, error) {
	if m.countUsersByRoleFunc != nil {
		return m.countUsersByRoleFunc(ctx, role)
	}
	return 0, errNotStubbed
}

func (m *mockStatsRepo) CountSignedInUsers(ctx context.Context) (int, error) {
	if m.countSignedInFunc != nil {
		return m.countSignedInFunc(ctx)
	}
	return 0, errNotStubbed
}

func (m *mockStatsRepo) RecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	if m.recentUsersFunc != nil {
		return m.recentUsersFunc(ctx, limit)
	}
	return nil, errNotStubbed
}

func (m *mockStatsRepo) CountOrders(ctx context.Context) (int, error) {
	if m.countOrdersFunc != nil {
		return m.countOrdersFunc(ctx)
	}
	return 0, errNotStubbed
}

func (m *mockStatsRepo) OrderTotals(ctx context.Context, since time.Time) (repositories.OrderTotals, error) {
	if m.orderTotalsFunc != nil {
		return m.orderTotalsFunc(ctx, since)
	}
	return repositories.OrderTotals{}, errNotStubbed
}

func (m *mockStatsRepo) MonthlyTotals(ctx context.Context, since time.Time) ([]repositories.MonthlyRow, error) {
	if m.monthlyTotalsFunc != nil {
		return m.monthlyTotalsFunc(ctx, since)
	}
	return nil, errNotStubbed
}

func (m *mockStatsRepo) TopProducts(ctx context.Context, since time.Time, limit int) ([]models.ProductStat, error) {
	if m.topProductsFunc != nil {
		return m.topProductsFunc(ctx, since, limit)
	}
	return nil, errNotStubbed
}

type mockCatalog struct {
	productCountFunc func(ctx context.Context) (int, error)
}

func (m *mockCatalog) ProductCount(ctx context.Context) (int, error) {
	if m.productCountFunc != nil {
		return m.productCountFunc(ctx)
	}
	return 0, errNotStubbed
}
