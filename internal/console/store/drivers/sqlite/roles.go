package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
)

var roleColumns = []string{"id", "name", "permissions", "created_at", "updated_at"}

type rolesRepo struct {
	q querier
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	return r.getOne(ctx, sq.Eq{"name": name})
}

func (r *rolesRepo) getOne(ctx context.Context, where sq.Eq) (domain.Role, error) {
	query, args, err := builder.Select(roleColumns...).From("roles").Where(where).Limit(1).ToSql()
	if err != nil {
		return domain.Role{}, err
	}

	role, err := scanRole(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	query, args, err := builder.Select(roleColumns...).From("roles").OrderBy("rowid").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	now := time.Now().UTC()
	if role.CreatedAt.IsZero() {
		role.CreatedAt = now
	}
	if role.UpdatedAt.IsZero() {
		role.UpdatedAt = role.CreatedAt
	}

	query, args, err := builder.Insert("roles").
		Columns(roleColumns...).
		Values(role.ID, role.Name, joinPermissions(role.Permissions), role.CreatedAt, role.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx, query, args...)
	return mapConstraint(err)
}

func (r *rolesRepo) UpdateRole(ctx context.Context, role domain.Role) error {
	query, args, err := builder.Update("roles").
		Set("name", role.Name).
		Set("permissions", joinPermissions(role.Permissions)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": role.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *rolesRepo) DeleteRole(ctx context.Context, roleID string) error {
	query, args, err := builder.Delete("roles").Where(sq.Eq{"id": roleID}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := count(ctx, r.q, builder.Select("COUNT(*)").From("roles"))
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRole(row rowScanner) (domain.Role, error) {
	var (
		role        domain.Role
		permissions string
	)
	if err := row.Scan(&role.ID, &role.Name, &permissions, &role.CreatedAt, &role.UpdatedAt); err != nil {
		return domain.Role{}, err
	}
	role.Permissions = splitPermissions(permissions)
	return role, nil
}

func count(ctx context.Context, q querier, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	var n sql.NullInt64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return int(n.Int64), nil
}
