package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/models"
)

// EventReadRepository handles event read operations.
type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// GetByID returns the event with the given id, or nil if it does not exist.
func (r *EventReadRepository) GetByID(ctx context.Context, eventID uuid.UUID) (*models.EventDB, error) {
	const query = `
		SELECT event_id, title, description, start_ts, end_ts, owner_id, created_at, updated_at
		FROM events
		WHERE event_id = $1
	`

	var event models.EventDB
	err := r.db.GetContext(ctx, &event, query, eventID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// GetAttendees returns the display identities of all attendees of an event.
func (r *EventReadRepository) GetAttendees(ctx context.Context, eventID uuid.UUID) ([]models.UserInfo, error) {
	const query = `
		SELECT u.user_id, u.username
		FROM event_attendees a
		JOIN users u ON u.user_id = a.user_id
		WHERE a.event_id = $1
		ORDER BY u.username
	`

	attendees := []models.UserInfo{}
	err := r.db.SelectContext(ctx, &attendees, query, eventID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID},
		"result", len(attendees),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return attendees, nil
}

// ListForUser returns the union of events the user owns and events the
// user attends, each expanded with owner and attendee identities.
func (r *EventReadRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.EventView, error) {
	const query = `
		SELECT e.event_id, e.title, e.description, e.start_ts, e.end_ts,
		       e.owner_id, u.username AS owner_username
		FROM events e
		JOIN users u ON u.user_id = e.owner_id
		WHERE e.owner_id = $1
		   OR EXISTS (
			SELECT 1 FROM event_attendees a
			WHERE a.event_id = e.event_id AND a.user_id = $1
		   )
		ORDER BY e.start_ts, e.event_id
	`

	var rows []struct {
		EventID       uuid.UUID `db:"event_id"`
		Title         string    `db:"title"`
		Description   string    `db:"description"`
		Start         int64     `db:"start_ts"`
		End           int64     `db:"end_ts"`
		OwnerID       uuid.UUID `db:"owner_id"`
		OwnerUsername string    `db:"owner_username"`
	}
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	events := make([]models.EventView, 0, len(rows))
	if len(rows) == 0 {
		return events, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.EventID)
	}

	attendeesQuery, args, err := sqlx.In(`
		SELECT a.event_id, u.user_id, u.username
		FROM event_attendees a
		JOIN users u ON u.user_id = a.user_id
		WHERE a.event_id IN (?)
		ORDER BY u.username
	`, ids)
	if err != nil {
		return nil, err
	}
	attendeesQuery = r.db.Rebind(attendeesQuery)

	var attendeeRows []struct {
		EventID  uuid.UUID `db:"event_id"`
		UserID   uuid.UUID `db:"user_id"`
		Username string    `db:"username"`
	}
	err = r.db.SelectContext(ctx, &attendeeRows, attendeesQuery, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(attendeesQuery), " "),
		"args", []any{ids},
		"result", len(attendeeRows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	attendeesByEvent := make(map[uuid.UUID][]models.UserInfo, len(rows))
	for _, a := range attendeeRows {
		attendeesByEvent[a.EventID] = append(attendeesByEvent[a.EventID], models.UserInfo{
			ID:       a.UserID,
			Username: a.Username,
		})
	}

	for _, row := range rows {
		attendees := attendeesByEvent[row.EventID]
		if attendees == nil {
			attendees = []models.UserInfo{}
		}
		events = append(events, models.EventView{
			ID:          row.EventID,
			Title:       row.Title,
			Description: row.Description,
			Start:       row.Start,
			End:         row.End,
			Owner:       models.UserInfo{ID: row.OwnerID, Username: row.OwnerUsername},
			Attendees:   attendees,
		})
	}

	return events, nil
}

// EventWriteRepository handles event write operations. Writes run inside
// the request transaction when one is present in the context.
type EventWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEventWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EventWriteRepository {
	return &EventWriteRepository{db: db, txGetter: txGetter}
}

func (r *EventWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new event row with an empty attendee set.
func (r *EventWriteRepository) Save(ctx context.Context, eventID, ownerID uuid.UUID, title, description string, start, end int64) error {
	const query = `
		INSERT INTO events (event_id, title, description, start_ts, end_ts, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{eventID, title, description, start, end, ownerID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update applies a sparse patch: nil fields keep their current value.
func (r *EventWriteRepository) Update(ctx context.Context, eventID uuid.UUID, upd models.EventUpdate) error {
	const query = `
		UPDATE events
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    start_ts = COALESCE($4, start_ts),
		    end_ts = COALESCE($5, end_ts),
		    updated_at = NOW()
		WHERE event_id = $1
	`
	args := []any{eventID, upd.Title, upd.Description, upd.Start, upd.End}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes an event row; attendance rows go with it via cascade.
func (r *EventWriteRepository) Delete(ctx context.Context, eventID uuid.UUID) error {
	const query = `DELETE FROM events WHERE event_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, eventID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{eventID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// AddAttendee inserts an attendance row; adding twice is a no-op.
func (r *EventWriteRepository) AddAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	const query = `
		INSERT INTO event_attendees (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, eventID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID, userID},
		"error", err,
	)

	return err
}

// RemoveAttendee deletes an attendance row; removing a non-attendee is
// a silent no-op.
func (r *EventWriteRepository) RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	const query = `
		DELETE FROM event_attendees
		WHERE event_id = $1 AND user_id = $2
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, eventID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID, userID},
		"error", err,
	)

	return err
}
