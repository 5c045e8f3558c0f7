package sqlite

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
)

type usersRepo struct {
	q querier
}

// selectUsers joins the role so every read carries the role's current name.
func selectUsers() sq.SelectBuilder {
	return builder.
		Select("u.id", "u.name", "u.email", "u.role_id", "r.name", "u.status", "u.created_at", "u.last_login").
		From("users u").
		Join("roles r ON r.id = u.role_id")
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	query, args, err := selectUsers().Where(sq.Eq{"u.id": id}).Limit(1).ToSql()
	if err != nil {
		return domain.User{}, err
	}

	u, err := scanUser(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	query, args, err := selectUsers().
		Where(sq.Expr("u.email = ? COLLATE NOCASE", email)).
		OrderBy("u.rowid").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.User{}, err
	}

	u, err := scanUser(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	query, args, err := selectUsers().OrderBy("u.rowid").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	query, args, err := builder.Insert("users").
		Columns("id", "name", "email", "role_id", "status", "created_at", "last_login").
		Values(u.ID, u.Name, u.Email, u.RoleID, string(u.Status), u.CreatedAt, u.LastLogin).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx, query, args...)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	query, args, err := builder.Update("users").
		Set("name", u.Name).
		Set("email", u.Email).
		Set("role_id", u.RoleID).
		Set("status", string(u.Status)).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	query, args, err := builder.Update("users").
		Set("last_login", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) ReassignRole(ctx context.Context, fromRoleID, toRoleID string) (int64, error) {
	query, args, err := builder.Update("users").
		Set("role_id", toRoleID).
		Where(sq.Eq{"role_id": fromRoleID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	query, args, err := builder.Delete("users").Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) Count(ctx context.Context) (int, int, error) {
	total, err := count(ctx, r.q, builder.Select("COUNT(*)").From("users"))
	if err != nil {
		return 0, 0, err
	}

	active, err := count(ctx, r.q, builder.Select("COUNT(*)").From("users").
		Where(sq.Eq{"status": string(domain.StatusActive)}))
	if err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := count(ctx, r.q, builder.Select("COUNT(*)").From("users"))
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u      domain.User
		status string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.RoleID, &u.Role, &status, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		return domain.User{}, err
	}
	u.Status = domain.UserStatus(status)
	return u, nil
}
