package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estore-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password, role, phone, address, profile_image,
	is_active, login_count, last_login, created_at, updated_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.Phone,
		&user.Address,
		&user.ProfileImage,
		&user.IsActive,
		&user.LoginCount,
		&user.LastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role, phone, address, profile_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, login_count, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Role,
		user.Phone, user.Address, user.ProfileImage,
	).Scan(&user.ID, &user.IsActive, &user.LoginCount, &user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// FindAll returns a page of users, newest first. A non-empty search term
// matches name or email as a case-insensitive substring.
func (r *UserRepository) FindAll(ctx context.Context, page, limit int, search string) ([]models.User, int, error) {
	offset := (page - 1) * limit

	where := ""
	args := []interface{}{}
	if search != "" {
		where = " WHERE name ILIKE $1 OR email ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, phone = $2, address = $3, profile_image = $4, updated_at = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		user.Name, user.Phone, user.Address, user.ProfileImage, time.Now(), user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, hashedPassword, time.Now(), userID)
	return err
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID int, role string) (*models.User, error) {
	query := fmt.Sprintf(`
		UPDATE users SET role = $1, updated_at = $2 WHERE id = $3
		RETURNING %s`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, role, time.Now(), userID))
}

func (r *UserRepository) ToggleActive(ctx context.Context, userID int) (*models.User, error) {
	query := fmt.Sprintf(`
		UPDATE users SET is_active = NOT is_active, updated_at = $1 WHERE id = $2
		RETURNING %s`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, time.Now(), userID))
}

func (r *UserRepository) Delete(ctx context.Context, userID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordLogin bumps the sign-in counter and timestamp on successful login.
func (r *UserRepository) RecordLogin(ctx context.Context, userID int) error {
	query := `
		UPDATE users
		SET login_count = login_count + 1, last_login = $1, updated_at = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, time.Now(), userID)
	return err
}
