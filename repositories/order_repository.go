package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estore-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `o.id, o.order_number, o.user_id, o.total, o.status,
	o.payment_method, o.payment_status,
	o.shipping_type, o.shipping_street, o.shipping_city, o.shipping_state,
	o.shipping_zip, o.shipping_country, o.created_at, o.updated_at`

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.Total,
		&order.Status,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.Shipping.Type,
		&order.Shipping.Street,
		&order.Shipping.City,
		&order.Shipping.State,
		&order.Shipping.Zip,
		&order.Shipping.Country,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Create persists the order and its line items in one transaction.
// A unique violation on order_number surfaces as ErrDuplicate so the
// service can retry with a different number.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (order_number, user_id, total, status, payment_method, payment_status,
			shipping_type, shipping_street, shipping_city, shipping_state, shipping_zip, shipping_country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		order.OrderNumber, order.UserID, order.Total, order.Status,
		order.PaymentMethod, order.PaymentStatus,
		order.Shipping.Type, order.Shipping.Street, order.Shipping.City,
		order.Shipping.State, order.Shipping.Zip, order.Shipping.Country,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, name, price, quantity, image, category)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			item.OrderID, item.ProductID, item.Name, item.Price,
			item.Quantity, item.Image, item.Category,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) loadItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, len(orders))
	byID := make(map[int]*models.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		byID[orders[i].ID] = &orders[i]
		orders[i].Items = []models.OrderItem{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, product_id, name, price, quantity, image, category
		 FROM order_items WHERE order_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.Price, &item.Quantity, &item.Image, &item.Category); err != nil {
			return err
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	return rows.Err()
}

// FindByUser returns the caller's orders, newest first.
func (r *OrderRepository) FindByUser(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM orders o WHERE o.user_id = $1
		ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`, orderColumns)
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindByIDForUser scopes the lookup to the owner. A missing order and an
// order owned by someone else are indistinguishable to the caller.
func (r *OrderRepository) FindByIDForUser(ctx context.Context, orderID, userID int) (*models.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders o WHERE o.id = $1 AND o.user_id = $2`, orderColumns)
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID, userID))
	if err != nil {
		return nil, err
	}

	orders := []models.Order{*order}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// FindByID is the admin lookup: unscoped, enriched with the owner's
// name and email.
func (r *OrderRepository) FindByID(ctx context.Context, orderID int) (*models.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.name, u.email
		FROM orders o JOIN users u ON u.id = o.user_id
		WHERE o.id = $1`, orderColumns)

	order := &models.Order{}
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.Total, &order.Status,
		&order.PaymentMethod, &order.PaymentStatus,
		&order.Shipping.Type, &order.Shipping.Street, &order.Shipping.City,
		&order.Shipping.State, &order.Shipping.Zip, &order.Shipping.Country,
		&order.CreatedAt, &order.UpdatedAt,
		&order.UserName, &order.UserEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	orders := []models.Order{*order}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// FindAll lists orders for the back office: optional exact status filter,
// optional search against the order number or the owner's name/email.
func (r *OrderRepository) FindAll(ctx context.Context, page, limit int, status, search string) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	conditions := []string{}
	args := []interface{}{}

	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(o.order_number ILIKE $%d OR u.name ILIKE $%d OR u.email ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM orders o JOIN users u ON u.id = o.user_id` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s, u.name, u.email
		FROM orders o JOIN users u ON u.id = o.user_id%s
		ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order := models.Order{}
		err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.UserID, &order.Total, &order.Status,
			&order.PaymentMethod, &order.PaymentStatus,
			&order.Shipping.Type, &order.Shipping.Street, &order.Shipping.City,
			&order.Shipping.State, &order.Shipping.Zip, &order.Shipping.Country,
			&order.CreatedAt, &order.UpdatedAt,
			&order.UserName, &order.UserEmail,
		)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error) {
	query := fmt.Sprintf(`
		UPDATE orders o SET status = $1, updated_at = $2 WHERE o.id = $3
		RETURNING %s`, orderColumns)

	order, err := scanOrder(r.db.QueryRow(ctx, query, status, time.Now(), orderID))
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, order.ID)
}
