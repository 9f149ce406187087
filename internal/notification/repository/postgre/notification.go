package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"study-assistant/internal/model"
	repo "study-assistant/internal/notification/repository"
)

const notificationColumns = `id, user_id, reminder_id, title, fire_at, channel,
	delivery_status, delivered_at, COALESCE(last_error, ''), created_at`

// InsertNotifications bulk-inserts via a pipelined pgx batch. The RETURNING
// clause only fires for rows that survive ON CONFLICT DO NOTHING, so the
// result is exactly the set of newly materialized notifications.
func (r *implRepository) InsertNotifications(ctx context.Context, opts []repo.CreateNotificationOptions) ([]model.Notification, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	const query = `
		INSERT INTO notifications (id, user_id, reminder_id, title, fire_at, channel, delivery_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', NOW())
		ON CONFLICT (reminder_id) DO NOTHING
		RETURNING ` + notificationColumns

	batch := &pgx.Batch{}
	for _, opt := range opts {
		batch.Queue(query,
			uuid.NewString(), opt.UserID, opt.ReminderID, opt.Title, opt.FireAt, opt.Channel,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	var created []model.Notification
	for range opts {
		var n model.Notification
		err := br.QueryRow().Scan(
			&n.ID, &n.UserID, &n.ReminderID, &n.Title, &n.FireAt, &n.Channel,
			&n.DeliveryStatus, &n.DeliveredAt, &n.LastError, &n.CreatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: another tick already materialized this reminder.
			continue
		}
		if err != nil {
			r.l.Errorf(ctx, "notification/repository/postgre.InsertNotifications: %v", err)
			return created, repo.ErrFailedToInsert
		}
		created = append(created, n)
	}
	return created, nil
}

// MarkDelivery records the outcome of one delivery attempt. delivered_at is
// only stamped on success.
func (r *implRepository) MarkDelivery(ctx context.Context, opt repo.MarkDeliveryOptions) error {
	const query = `
		UPDATE notifications
		SET delivery_status = $1,
		    last_error = NULLIF($2, ''),
		    delivered_at = CASE WHEN $1 = 'sent' THEN NOW() ELSE delivered_at END
		WHERE id = $3`

	if _, err := r.db.Exec(ctx, query, opt.Status, opt.LastError, opt.ID); err != nil {
		r.l.Errorf(ctx, "notification/repository/postgre.MarkDelivery: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteByReminderID removes the materialized notification for a reminder.
func (r *implRepository) DeleteByReminderID(ctx context.Context, reminderID string) error {
	const query = `DELETE FROM notifications WHERE reminder_id = $1`
	if _, err := r.db.Exec(ctx, query, reminderID); err != nil {
		r.l.Errorf(ctx, "notification/repository/postgre.DeleteByReminderID: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// GetUserEmail resolves the delivery address for email notifications.
// A user without an address yields "" without error.
func (r *implRepository) GetUserEmail(ctx context.Context, userID string) (string, error) {
	const query = `SELECT COALESCE(email, '') FROM users WHERE id = $1`

	var email string
	err := r.db.QueryRow(ctx, query, userID).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "notification/repository/postgre.GetUserEmail: %v", err)
		return "", repo.ErrFailedToGet
	}
	return email, nil
}
