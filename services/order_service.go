package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"estore-api/models"
	"estore-api/repositories"
)

type OrderService struct {
	orderRepo OrderRepository
	now       func() time.Time
}

func NewOrderService(orderRepo OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, now: time.Now}
}

func (s *OrderService) orderNumber() string {
	return fmt.Sprintf("ORD-%d", s.now().UnixMilli())
}

// CreateOrder persists a checkout snapshot for the authenticated user.
// The submitted total is stored as-is: the cart is priced by the catalog
// collaborator and the reference behavior trusts it at checkout.
func (s *OrderService) CreateOrder(ctx context.Context, userID int, req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		category := item.Category
		if category == "" {
			category = "default"
		}
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Category:  category,
		})
	}

	order := &models.Order{
		OrderNumber:   s.orderNumber(),
		UserID:        userID,
		Items:         items,
		Total:         req.Total,
		Status:        models.OrderStatusPending,
		Shipping:      req.ShippingAddress,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
	}

	err := s.orderRepo.Create(ctx, order)
	if errors.Is(err, repositories.ErrDuplicate) {
		// Two checkouts hit the same millisecond; retry once with a
		// disambiguating suffix before giving up.
		order.OrderNumber = fmt.Sprintf("%s-%04d", s.orderNumber(), rand.Intn(10000))
		err = s.orderRepo.Create(ctx, order)
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrOrderNumberTaken
		}
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID, page, limit int) (*models.PaginationResponse, error) {
	page, limit = normalizePage(page, limit, 20)

	orders, total, err := s.orderRepo.FindByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	return paginatedResponse("Orders retrieved successfully", orders, page, limit, total), nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID int) (*models.Order, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrderAdmin(ctx context.Context, orderID int) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrdersAdmin(ctx context.Context, page, limit int, status, search string) (*models.PaginationResponse, error) {
	page, limit = normalizePage(page, limit, 20)

	orders, total, err := s.orderRepo.FindAll(ctx, page, limit, status, search)
	if err != nil {
		return nil, err
	}
	return paginatedResponse("Orders retrieved successfully", orders, page, limit, total), nil
}

// UpdateStatus moves an order to any of the five fulfillment states.
// The status set is validated; the transition itself is not restricted.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// paginatedResponse builds the list envelope. page and limit must already
// be normalized so the meta reflects what was actually queried.
func paginatedResponse(message string, data interface{}, page, limit, total int) *models.PaginationResponse {
	return &models.PaginationResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}
}
