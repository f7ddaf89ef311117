package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, organizer_id, title, description, category, event_date, event_time,
		address, city, state, zip_code, image, capacity, price, is_free, tags,
		status, featured, contact_email, contact_phone, contact_website, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OrganizerID, e.Title, e.Description, e.Category, e.Date, e.Time,
		e.Location.Address, e.Location.City, e.Location.State, e.Location.ZipCode,
		e.Image, e.Capacity, e.Price, e.IsFree, pq.Array(e.Tags),
		e.Status, e.Featured, e.Contact.Email, e.Contact.Phone, e.Contact.Website,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// UpdateMetadata writes every non-attendee field of the event. The event
// row is locked so a capacity edit cannot race with registrations; shrinking
// capacity below the current attendee count is rejected.
func (r *EventRepository) UpdateMetadata(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var attendees int
	lockQuery := `SELECT (SELECT COUNT(*) FROM registrations WHERE event_id = e.id)
				  FROM events e
				  WHERE e.id = $1
				  FOR UPDATE OF e`
	if err = tx.QueryRowContext(ctx, lockQuery, e.ID).Scan(&attendees); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if e.Capacity < attendees {
		return domain.ErrCapacityBelowAttendance
	}

	query := `UPDATE events
			  SET title = $2, description = $3, category = $4, event_date = $5, event_time = $6,
			      address = $7, city = $8, state = $9, zip_code = $10, image = $11,
			      capacity = $12, price = $13, is_free = $14, tags = $15, status = $16,
			      featured = $17, contact_email = $18, contact_phone = $19, contact_website = $20,
			      updated_at = now()
			  WHERE id = $1`
	_, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Description, e.Category, e.Date, e.Time,
		e.Location.Address, e.Location.City, e.Location.State, e.Location.ZipCode,
		e.Image, e.Capacity, e.Price, e.IsFree, pq.Array(e.Tags), e.Status,
		e.Featured, e.Contact.Email, e.Contact.Phone, e.Contact.Website,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return tx.Commit()
}

// Delete removes the event; registration rows cascade, so the event also
// disappears from every user's registered-event set.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

var sortColumns = map[string]string{
	"date":       "event_date",
	"created_at": "created_at",
	"title":      "title",
	"price":      "price",
}

func filterClauses(f domain.EventFilter) (string, []any) {
	clauses := []string{"status = $1"}
	args := []any{f.Status}

	if f.Category != "" {
		args = append(args, f.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		clauses = append(clauses, fmt.Sprintf("featured = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE $%d))",
			n, n, n,
		))
	}

	return strings.Join(clauses, " AND "), args
}

func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	where, args := filterClauses(f)

	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "event_date"
	}
	order := "ASC"
	if f.SortOrder == "desc" {
		order = "DESC"
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`SELECT `+eventColumns+`
			  FROM events
			  WHERE %s
			  ORDER BY %s %s
			  LIMIT $%d OFFSET $%d`,
		where, col, order, len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) Count(ctx context.Context, f domain.EventFilter) (int, error) {
	where, args := filterClauses(f)

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COUNT(*) FROM events WHERE `+where, args...)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	var total int
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return total, nil
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE organizer_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list events by organizer: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListRegisteredByUser(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT e.id, e.organizer_id, e.title, e.description, e.category, e.event_date, e.event_time,
			         e.address, e.city, e.state, e.zip_code, e.image, e.capacity, e.price, e.is_free, e.tags,
			         e.status, e.featured, e.contact_email, e.contact_phone, e.contact_website, e.created_at, e.updated_at
			  FROM events e
			  JOIN registrations r ON r.event_id = e.id
			  WHERE r.user_id = $1
			  ORDER BY e.event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list registered events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// CompletePastEvents flips published events whose date has passed to
// completed and returns the affected ids.
func (r *EventRepository) CompletePastEvents(ctx context.Context, now time.Time) ([]string, error) {
	query := `UPDATE events
			  SET status = $1, updated_at = now()
			  WHERE status = $2 AND event_date < $3
			  RETURNING id`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.EventStatusCompleted, domain.EventStatusPublished, now,
	)
	if err != nil {
		return nil, fmt.Errorf("complete past events: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan event id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.Category, &e.Date, &e.Time,
		&e.Location.Address, &e.Location.City, &e.Location.State, &e.Location.ZipCode,
		&e.Image, &e.Capacity, &e.Price, &e.IsFree, pq.Array(&e.Tags),
		&e.Status, &e.Featured, &e.Contact.Email, &e.Contact.Phone, &e.Contact.Website,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
