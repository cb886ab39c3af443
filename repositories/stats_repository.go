package repositories

import (
	"context"
	"fmt"
	"time"

	"estore-api/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// MonthlyRow is one month bucket of the analytics series. The service
// layer turns Year/Month into a display label.
type MonthlyRow struct {
	Year    int
	Month   int
	Revenue float64
	Orders  int
}

// OrderTotals aggregates revenue, order count and distinct buyers over
// orders created at or after since.
type OrderTotals struct {
	Revenue float64
	Orders  int
	Buyers  int
}

func (r *StatsRepository) CountUsersByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	return count, err
}

func (r *StatsRepository) CountSignedInUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users
		 WHERE role = $1 AND (login_count > 0 OR last_login IS NOT NULL)`,
		models.RoleUser).Scan(&count)
	return count, err
}

// RecentUsers returns the most recently signed-in shopper accounts,
// falling back to signup date for accounts that never logged in.
func (r *StatsRepository) RecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users u WHERE role = $1
		ORDER BY last_login DESC NULLS LAST, created_at DESC
		LIMIT $2`, statsUserColumns)

	rows, err := r.db.Query(ctx, query, models.RoleUser, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *StatsRepository) CountOrders(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

func (r *StatsRepository) OrderTotals(ctx context.Context, since time.Time) (OrderTotals, error) {
	var totals OrderTotals
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COUNT(*), COUNT(DISTINCT user_id)
		 FROM orders WHERE created_at >= $1`, since).
		Scan(&totals.Revenue, &totals.Orders, &totals.Buyers)
	return totals, err
}

func (r *StatsRepository) MonthlyTotals(ctx context.Context, since time.Time) ([]MonthlyRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT EXTRACT(YEAR FROM created_at)::int AS y,
		        EXTRACT(MONTH FROM created_at)::int AS m,
		        COALESCE(SUM(total), 0), COUNT(*)
		 FROM orders WHERE created_at >= $1
		 GROUP BY y, m ORDER BY y, m`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := []MonthlyRow{}
	for rows.Next() {
		var row MonthlyRow
		if err := rows.Scan(&row.Year, &row.Month, &row.Revenue, &row.Orders); err != nil {
			return nil, err
		}
		series = append(series, row)
	}
	return series, rows.Err()
}

// TopProducts explodes line items of orders in the period, grouped by
// product id and name, ranked by revenue.
func (r *StatsRepository) TopProducts(ctx context.Context, since time.Time, limit int) ([]models.ProductStat, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.product_id, i.name,
		        SUM(i.quantity)::int AS sales,
		        SUM(i.price * i.quantity) AS revenue
		 FROM order_items i
		 JOIN orders o ON o.id = i.order_id
		 WHERE o.created_at >= $1
		 GROUP BY i.product_id, i.name
		 ORDER BY revenue DESC
		 LIMIT $2`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.ProductStat{}
	for rows.Next() {
		var p models.ProductStat
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Sales, &p.Revenue); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const statsUserColumns = `u.id, u.name, u.email, u.password, u.role, u.phone, u.address,
	u.profile_image, u.is_active, u.login_count, u.last_login, u.created_at, u.updated_at`
