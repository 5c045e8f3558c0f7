package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
)

type auditLogsRepo struct {
	q querier
}

func (r *auditLogsRepo) AppendAuditEntry(ctx context.Context, e domain.AuditEntry) error {
	var targetType, targetID, targetName sql.NullString
	if e.Target != nil {
		targetType = mapStringNull(string(e.Target.Type))
		targetID = mapStringNull(e.Target.ID)
		targetName = mapStringNull(e.Target.Name)
	}

	query, args, err := builder.Insert("audit_logs").
		Columns("id", "actor_id", "actor_name", "action", "target_type", "target_id", "target_name", "created_at").
		Values(e.ID, e.Actor.ID, e.Actor.Name, e.Action, targetType, targetID, targetName, e.Timestamp).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx, query, args...)
	return mapConstraint(err)
}

func (r *auditLogsRepo) ListAuditEntries(ctx context.Context) ([]domain.AuditEntry, error) {
	query, args, err := builder.
		Select("id", "actor_id", "actor_name", "action", "target_type", "target_id", "target_name", "created_at").
		From("audit_logs").
		OrderBy("seq DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var (
			e                              domain.AuditEntry
			targetType, targetID, targetNm sql.NullString
		)
		err := rows.Scan(&e.ID, &e.Actor.ID, &e.Actor.Name, &e.Action, &targetType, &targetID, &targetNm, &e.Timestamp)
		if err != nil {
			return nil, err
		}
		if targetType.Valid {
			e.Target = &domain.AuditTarget{
				Type: domain.TargetType(targetType.String),
				ID:   mapNullString(targetID),
				Name: mapNullString(targetNm),
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *auditLogsRepo) CountAuditEntries(ctx context.Context) (int, error) {
	return count(ctx, r.q, builder.Select("COUNT(*)").From("audit_logs"))
}
