package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"study-assistant/internal/model"
	repo "study-assistant/internal/reminder/repository"
)

const reminderColumns = `id, user_id, target_kind, target_id, title, remind_at,
	channel, status, is_sent, sent_at, created_at, updated_at`

func scanReminder(row pgx.Row) (model.Reminder, error) {
	var r model.Reminder
	err := row.Scan(
		&r.ID, &r.UserID, &r.Target.Kind, &r.Target.ID, &r.Title, &r.RemindAt,
		&r.Channel, &r.Status, &r.IsSent, &r.SentAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// BulkInsertReminders inserts the batch unordered via a pipelined pgx batch.
// Unique index collisions are dropped by ON CONFLICT DO NOTHING; the returned
// count covers only rows that actually landed.
func (r *implRepository) BulkInsertReminders(ctx context.Context, opts []repo.CreateReminderOptions) (int, error) {
	if len(opts) == 0 {
		return 0, nil
	}

	const query = `
		INSERT INTO reminders (id, user_id, target_kind, target_id, title, remind_at, channel, status, is_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', FALSE, NOW(), NOW())
		ON CONFLICT (user_id, target_kind, target_id, remind_at, channel) DO NOTHING`

	batch := &pgx.Batch{}
	for _, opt := range opts {
		batch.Queue(query,
			uuid.NewString(), opt.UserID, opt.Target.Kind, opt.Target.ID,
			opt.Title, opt.RemindAt, opt.Channel,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for range opts {
		tag, err := br.Exec()
		if err != nil {
			r.l.Errorf(ctx, "reminder/repository/postgre.BulkInsertReminders: %v", err)
			return inserted, repo.ErrFailedToInsert
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// GetOneReminder retrieves a single Reminder by the provided filters (AND
// condition). Returns the zero Reminder when not found, without error.
func (r *implRepository) GetOneReminder(ctx context.Context, opt repo.GetOneReminderOptions) (model.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`
	args := []any{opt.ID}
	if opt.UserID != "" {
		query += ` AND user_id = $2`
		args = append(args, opt.UserID)
	}

	rem, err := scanReminder(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "reminder/repository/postgre.GetOneReminder: %v", err)
		return model.Reminder{}, repo.ErrFailedToGet
	}
	return rem, nil
}

// SnoozeReminder moves remind_at forward and resets sent markers so the cron
// engine will pick the reminder up again.
func (r *implRepository) SnoozeReminder(ctx context.Context, opt repo.SnoozeReminderOptions) (model.Reminder, error) {
	const query = `
		UPDATE reminders
		SET remind_at = $1, status = 'pending', is_sent = FALSE, sent_at = NULL, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + reminderColumns

	rem, err := scanReminder(r.db.QueryRow(ctx, query, opt.RemindAt, opt.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "reminder/repository/postgre.SnoozeReminder: %v", err)
		return model.Reminder{}, repo.ErrFailedToUpdate
	}
	return rem, nil
}

// ListDueReminders returns up to limit pending unsent reminders due at or
// before now, oldest first.
func (r *implRepository) ListDueReminders(ctx context.Context, now time.Time, limit int) ([]model.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE remind_at <= $1 AND is_sent = FALSE AND status = 'pending'
		ORDER BY remind_at
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		r.l.Errorf(ctx, "reminder/repository/postgre.ListDueReminders: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

// MarkRemindersDone flips the given reminders to done/sent in one statement.
func (r *implRepository) MarkRemindersDone(ctx context.Context, ids []string, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	const query = `
		UPDATE reminders
		SET status = 'done', is_sent = TRUE, sent_at = $1, updated_at = NOW()
		WHERE id = ANY($2)`

	if _, err := r.db.Exec(ctx, query, sentAt, ids); err != nil {
		r.l.Errorf(ctx, "reminder/repository/postgre.MarkRemindersDone: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// MarkRemindersOverdue flips stale pending reminders to overdue.
func (r *implRepository) MarkRemindersOverdue(ctx context.Context, cutoff time.Time) (int, error) {
	const query = `
		UPDATE reminders
		SET status = 'overdue', updated_at = NOW()
		WHERE remind_at < $1 AND is_sent = FALSE AND status = 'pending'`

	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		r.l.Errorf(ctx, "reminder/repository/postgre.MarkRemindersOverdue: %v", err)
		return 0, repo.ErrFailedToUpdate
	}
	return int(tag.RowsAffected()), nil
}
