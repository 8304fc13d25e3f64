package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.UserProfileRepository = (*UserProfileRepo)(nil)

// UserProfileRepo implementación de UserProfileRepository sobre PostgreSQL.
type UserProfileRepo struct {
	q Querier
}

// NewUserProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserProfileRepository(q Querier) *UserProfileRepo {
	return &UserProfileRepo{q: q}
}

const userColumns = `id, email, password_hash, full_name, role, is_active, can_request_purchases, can_approve_purchases, created_at, updated_at`

func scanUserProfile(row pgx.Row) (*entity.UserProfile, error) {
	var p entity.UserProfile
	var role string
	err := row.Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &role, &p.IsActive,
		&p.CanRequestPurchases, &p.CanApprovePurchases, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Role = entity.ParseRole(role)
	return &p, nil
}

// Create persiste un nuevo perfil.
func (r *UserProfileRepo) Create(profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, email, password_hash, full_name, role, is_active, can_request_purchases, can_approve_purchases, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Email, profile.PasswordHash, profile.FullName,
		string(profile.Role), profile.IsActive, profile.CanRequestPurchases,
		profile.CanApprovePurchases, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *UserProfileRepo) GetByID(id string) (*entity.UserProfile, error) {
	profile, err := scanUserProfile(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM user_profiles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return profile, nil
}

// GetByEmail obtiene un perfil por email (para login).
func (r *UserProfileRepo) GetByEmail(email string) (*entity.UserProfile, error) {
	profile, err := scanUserProfile(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM user_profiles WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user profile by email: %w", err)
	}
	return profile, nil
}

// Update actualiza un perfil existente.
func (r *UserProfileRepo) Update(profile *entity.UserProfile) error {
	query := `
		UPDATE user_profiles SET full_name = $2, role = $3, is_active = $4, can_request_purchases = $5, can_approve_purchases = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.FullName, string(profile.Role), profile.IsActive,
		profile.CanRequestPurchases, profile.CanApprovePurchases, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}

// List lista perfiles con paginación.
func (r *UserProfileRepo) List(limit, offset int) ([]*entity.UserProfile, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM user_profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list user profiles: %w", err)
	}
	defer rows.Close()

	var list []*entity.UserProfile
	for rows.Next() {
		profile, err := scanUserProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user profile: %w", err)
		}
		list = append(list, profile)
	}
	return list, rows.Err()
}
