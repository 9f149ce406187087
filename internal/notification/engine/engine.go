// Package engine is the time-driven half of the reminder pipeline: it scans
// due reminders on a fixed interval, materializes notifications exactly once
// and dispatches them by channel.
package engine

import (
	"context"
	"fmt"
	"time"

	"study-assistant/internal/model"
	notifrepo "study-assistant/internal/notification/repository"
	remrepo "study-assistant/internal/reminder/repository"
	"study-assistant/pkg/log"
	"study-assistant/pkg/mailer"
	"study-assistant/pkg/push"
)

// Config tunes one engine instance.
type Config struct {
	Interval     time.Duration
	BatchSize    int
	OverdueGrace time.Duration
	Timezone     *time.Location
}

// Engine runs the notification delivery loop.
type Engine struct {
	cfg       Config
	reminders remrepo.Repository
	notifs    notifrepo.Repository
	mail      mailer.Mailer
	push      push.Gateway
	l         log.Logger

	now func() time.Time
}

// New creates a delivery engine. mail and push may not be nil; a deployment
// without SMTP should inject a mailer that fails fast instead.
func New(cfg Config, reminders remrepo.Repository, notifs notifrepo.Repository, mail mailer.Mailer, pushGW push.Gateway, l log.Logger) *Engine {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 200
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Timezone == nil {
		cfg.Timezone = time.UTC
	}
	return &Engine{
		cfg:       cfg,
		reminders: reminders,
		notifs:    notifs,
		mail:      mail,
		push:      pushGW,
		l:         l,
		now:       time.Now,
	}
}

// Run ticks until ctx is cancelled. A failed tick is logged and the next one
// retries against the same durable query, so errors never stop the loop.
func (e *Engine) Run(ctx context.Context) {
	e.l.Infof(ctx, "%s: starting interval=%s batch=%d", LogPrefixRun, e.cfg.Interval, e.cfg.BatchSize)

	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := e.Tick(ctx); err != nil {
			e.l.Errorf(ctx, "%s: tick failed: %v", LogPrefixRun, err)
		}
		select {
		case <-ctx.Done():
			e.l.Infof(ctx, "%s: stopping", LogPrefixRun)
			return
		case <-ticker.C:
		}
	}
}

// Tick performs one delivery pass:
//  1. flip stale pending reminders to overdue,
//  2. scan a bounded batch of due reminders,
//  3. materialize notifications (the unique reminder_id index drops rows a
//     concurrent tick already created),
//  4. dispatch only the newly materialized rows,
//  5. unconditionally advance the whole scanned batch to done.
//
// Step 5 runs regardless of delivery outcome: a failed email is recorded on
// the notification and never retried.
func (e *Engine) Tick(ctx context.Context) error {
	now := e.now()

	if e.cfg.OverdueGrace > 0 {
		flipped, err := e.reminders.MarkRemindersOverdue(ctx, now.Add(-e.cfg.OverdueGrace))
		if err != nil {
			return err
		}
		if flipped > 0 {
			e.l.Warnf(ctx, "%s: %d stale reminders marked overdue", LogPrefixTick, flipped)
		}
	}

	due, err := e.reminders.ListDueReminders(ctx, now, e.cfg.BatchSize)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	opts := make([]notifrepo.CreateNotificationOptions, 0, len(due))
	for _, rem := range due {
		opts = append(opts, notifrepo.CreateNotificationOptions{
			UserID:     rem.UserID,
			ReminderID: rem.ID,
			Title:      rem.Title,
			FireAt:     rem.RemindAt,
			Channel:    rem.Channel,
		})
	}

	created, err := e.notifs.InsertNotifications(ctx, opts)
	if err != nil {
		return err
	}

	for _, n := range created {
		e.dispatch(ctx, n)
	}

	ids := make([]string, 0, len(due))
	for _, rem := range due {
		ids = append(ids, rem.ID)
	}
	if err := e.reminders.MarkRemindersDone(ctx, ids, now); err != nil {
		return err
	}

	e.l.Infof(ctx, "%s: due=%d materialized=%d", LogPrefixTick, len(due), len(created))
	return nil
}

// dispatch delivers one freshly materialized notification and records the
// outcome. Delivery errors stay on the notification row.
func (e *Engine) dispatch(ctx context.Context, n model.Notification) {
	var deliverErr error
	switch n.Channel {
	case model.ChannelEmail:
		deliverErr = e.sendEmail(ctx, n)
	default:
		deliverErr = e.push.Emit(ctx, n.UserID, PushEventReminder, map[string]any{
			"notification_id": n.ID,
			"title":           n.Title,
			"fire_at":         n.FireAt,
		})
	}

	opt := notifrepo.MarkDeliveryOptions{ID: n.ID, Status: model.DeliveryStatusSent}
	if deliverErr != nil {
		opt.Status = model.DeliveryStatusFailed
		opt.LastError = deliverErr.Error()
		e.l.Warnf(ctx, "%s: delivery failed id=%s channel=%s: %v", LogPrefixTick, n.ID, n.Channel, deliverErr)
	}
	if err := e.notifs.MarkDelivery(ctx, opt); err != nil {
		e.l.Errorf(ctx, "%s: MarkDelivery id=%s: %v", LogPrefixTick, n.ID, err)
	}
}

func (e *Engine) sendEmail(ctx context.Context, n model.Notification) error {
	to, err := e.notifs.GetUserEmail(ctx, n.UserID)
	if err != nil {
		return err
	}
	if to == "" {
		return fmt.Errorf("user %s has no email address", n.UserID)
	}

	body := fmt.Sprintf(EmailBodyTemplate, n.Title, n.FireAt.In(e.cfg.Timezone).Format("15:04 02/01/2006"))
	return e.mail.Send(ctx, to, EmailSubjectPrefix+n.Title, body)
}
