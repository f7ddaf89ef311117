package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// RegistrationRepository owns the event↔user relation. Add and Remove are
// the conditional mutations everything else depends on: each runs in a
// single transaction that locks the event row, so racing callers are
// serialized per event and the attendee count can never pass capacity.
// Different events lock different rows and do not serialize each other.
type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Add inserts the registration if and only if the event is published, has
// a free slot, and the user is not already on the roster. Preconditions are
// re-checked under the row lock, in the order callers observe failures:
// not found, not open, full, already registered.
func (r *RegistrationRepository) Add(ctx context.Context, eventID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStoreErr("begin tx", err)
	}
	defer tx.Rollback()

	var status domain.EventStatus
	var capacity int
	lockQuery := `SELECT status, capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&status, &capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return wrapStoreErr("lock event", err)
	}

	if status != domain.EventStatusPublished {
		return domain.ErrEventNotOpen
	}

	var attendees int
	countQuery := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&attendees); err != nil {
		return wrapStoreErr("count attendees", err)
	}
	if attendees >= capacity {
		return domain.ErrEventFull
	}

	var registered bool
	memberQuery := `SELECT EXISTS (SELECT 1 FROM registrations WHERE event_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, memberQuery, eventID, userID).Scan(&registered); err != nil {
		return wrapStoreErr("check membership", err)
	}
	if registered {
		return domain.ErrAlreadyRegistered
	}

	insertQuery := `INSERT INTO registrations (event_id, user_id, created_at)
					VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, insertQuery, eventID, userID, time.Now().UTC()); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return wrapStoreErr("insert registration", err)
	}

	if err = tx.Commit(); err != nil {
		return wrapStoreErr("commit registration", err)
	}

	return nil
}

// Remove deletes the registration. The single DELETE removes the user from
// the event's attendee set and the event from the user's registered set at
// once; a missing row means the pair was never registered.
func (r *RegistrationRepository) Remove(ctx context.Context, eventID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStoreErr("begin tx", err)
	}
	defer tx.Rollback()

	var exists bool
	eventQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
	if err = tx.QueryRowContext(ctx, eventQuery, eventID).Scan(&exists); err != nil {
		return wrapStoreErr("check event", err)
	}
	if !exists {
		return domain.ErrEventNotFound
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM registrations WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)
	if err != nil {
		return wrapStoreErr("delete registration", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return wrapStoreErr("registration rows affected", err)
	}
	if rows == 0 {
		return domain.ErrNotRegistered
	}

	if err = tx.Commit(); err != nil {
		return wrapStoreErr("commit unregistration", err)
	}

	return nil
}

// ListByEvent resolves the roster in registration order.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.UserSummary, error) {
	query := `SELECT u.id, u.name, u.email
			  FROM registrations reg
			  JOIN users u ON u.id = reg.user_id
			  WHERE reg.event_id = $1
			  ORDER BY reg.created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var res []domain.UserSummary
	for rows.Next() {
		var s domain.UserSummary
		if err = rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan registration count: %w", err)
	}

	return n, nil
}

// wrapStoreErr tags serialization and deadlock failures (SQLSTATE 40001,
// 40P01) as transient so the service layer can retry them; everything else
// is wrapped as-is.
func wrapStoreErr(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return fmt.Errorf("%s: %w", op, domain.ErrTransientStore)
	}
	return fmt.Errorf("%s: %w", op, err)
}
