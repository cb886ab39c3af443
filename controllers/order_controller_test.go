package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estore-api/models"
	"estore-api/repositories"
	"estore-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	createFunc          func(ctx context.Context, order *models.Order) error
	findByUserFunc      func(ctx context.Context, userID, page, limit int) ([]models.Order, int, error)
	findByIDForUserFunc func(ctx context.Context, orderID, userID int) (*models.Order, error)
	findByIDFunc        func(ctx context.Context, orderID int) (*models.Order, error)
	findAllFunc         func(ctx context.Context, page, limit int, status, search string) ([]models.Order, int, error)
	updateStatusFunc    func(ctx context.Context, orderID int, status string) (*models.Order, error)
}

func (s *stubOrderRepo) Create(ctx context.Context, order *models.Order) error {
	return s.createFunc(ctx, order)
}

func (s *stubOrderRepo) FindByUser(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
	return s.findByUserFunc(ctx, userID, page, limit)
}

func (s *stubOrderRepo) FindByIDForUser(ctx context.Context, orderID, userID int) (*models.Order, error) {
	return s.findByIDForUserFunc(ctx, orderID, userID)
}

func (s *stubOrderRepo) FindByID(ctx context.Context, orderID int) (*models.Order, error) {
	return s.findByIDFunc(ctx, orderID)
}

func (s *stubOrderRepo) FindAll(ctx context.Context, page, limit int, status, search string) ([]models.Order, int, error) {
	return s.findAllFunc(ctx, page, limit, status, search)
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error) {
	return s.updateStatusFunc(ctx, orderID, status)
}

func orderRouter(repo *stubOrderRepo, userID int) *gin.Engine {
	ctrl := NewOrderController(services.NewOrderService(repo))

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	router.POST("/orders", ctrl.CreateOrder)
	router.GET("/orders", ctrl.GetMyOrders)
	router.GET("/orders/:id", ctrl.GetMyOrder)
	router.PATCH("/admin/orders/:id/status", ctrl.UpdateOrderStatus)
	return router
}

func TestCreateOrderEndpoint(t *testing.T) {
	body := `{
		"items": [{"product_id": "1", "name": "Premium Wireless Headphones", "price": 10, "quantity": 2}],
		"total": 20,
		"payment_method": "card",
		"shipping_address": {"type": "home", "street": "1 Main St", "city": "Pune", "state": "MH", "zip": "411001", "country": "IN"}
	}`

	t.Run("returns the created order in an envelope", func(t *testing.T) {
		repo := &stubOrderRepo{
			createFunc: func(ctx context.Context, order *models.Order) error {
				order.ID = 5
				return nil
			},
		}
		router := orderRouter(repo, 7)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp models.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Order created successfully", resp.Message)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(5), data["id"])
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, "pending", data["payment_status"])
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		router := orderRouter(&stubOrderRepo{}, 7)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items": "nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty cart is a bad request", func(t *testing.T) {
		router := orderRouter(&stubOrderRepo{}, 7)

		empty := `{"items": [], "total": 0, "payment_method": "card", "shipping_address": {}}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(empty))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetMyOrderEndpoint(t *testing.T) {
	t.Run("non-numeric id looks like a missing order", func(t *testing.T) {
		router := orderRouter(&stubOrderRepo{}, 7)

		req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("scopes the lookup to the caller", func(t *testing.T) {
		var gotUserID int
		repo := &stubOrderRepo{
			findByIDForUserFunc: func(ctx context.Context, orderID, userID int) (*models.Order, error) {
				gotUserID = userID
				return nil, repositories.ErrNotFound
			},
		}
		router := orderRouter(repo, 7)

		req := httptest.NewRequest(http.MethodGet, "/orders/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 7, gotUserID)
	})
}

func TestGetMyOrdersEndpoint(t *testing.T) {
	listMeta := func(t *testing.T, total int, query string) models.MetaData {
		t.Helper()
		repo := &stubOrderRepo{
			findByUserFunc: func(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
				return []models.Order{{ID: 1}, {ID: 2}}, total, nil
			},
		}
		router := orderRouter(repo, 7)

		req := httptest.NewRequest(http.MethodGet, "/orders"+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp models.PaginationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Meta
	}

	t.Run("returns pagination meta", func(t *testing.T) {
		meta := listMeta(t, 12, "?page=2&limit=5")
		assert.Equal(t, 2, meta.Page)
		assert.Equal(t, 5, meta.Limit)
		assert.Equal(t, 12, meta.TotalItems)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("zero limit reports the default, not a division artifact", func(t *testing.T) {
		meta := listMeta(t, 5, "?limit=0")
		assert.Equal(t, 20, meta.Limit)
		assert.Equal(t, 1, meta.TotalPages)
		assert.GreaterOrEqual(t, meta.TotalPages, 0)
	})

	t.Run("oversized limit reports the applied cap", func(t *testing.T) {
		meta := listMeta(t, 250, "?limit=5000")
		assert.Equal(t, 100, meta.Limit)
		assert.Equal(t, 3, meta.TotalPages)
	})
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	t.Run("invalid status is a bad request", func(t *testing.T) {
		router := orderRouter(&stubOrderRepo{}, 7)

		req := httptest.NewRequest(http.MethodPatch, "/admin/orders/3/status", strings.NewReader(`{"status": "refunded"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("updates the status", func(t *testing.T) {
		repo := &stubOrderRepo{
			updateStatusFunc: func(ctx context.Context, orderID int, status string) (*models.Order, error) {
				return &models.Order{ID: orderID, Status: status}, nil
			},
		}
		router := orderRouter(repo, 7)

		req := httptest.NewRequest(http.MethodPatch, "/admin/orders/3/status", strings.NewReader(`{"status": "shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"shipped"`)
	})
}
