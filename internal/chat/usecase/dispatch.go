package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study-assistant/internal/chat"
	"study-assistant/internal/intent"
	"study-assistant/internal/model"
	"study-assistant/internal/reminder"
)

const replyTimeFormat = "15:04 02/01/2006"

// dispatch routes a classified, extracted turn to the matching action. No
// partial action is ever taken: slot validation happens before any write.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, intentName string, ent model.Entities) (chat.Reply, error) {
	switch intentName {
	case intent.IntentCreateTask:
		return uc.dispatchCreateTask(ctx, sc, ent)
	case intent.IntentAddEvent:
		return uc.dispatchAddEvent(ctx, sc, ent)
	case intent.IntentFindEvent:
		return uc.dispatchFindEvent(ctx, sc, ent)
	default:
		return chat.Reply{Kind: chat.ReplyUnknown, Intent: intentName, Message: chat.MsgUnknown}, nil
	}
}

// missingSlots returns the required fields the entities do not carry, in the
// order they are reported to the user.
func missingSlots(intentName string, ent model.Entities) []string {
	var missing []string
	if ent.Title == "" {
		missing = append(missing, chat.SlotTitle)
	}
	if ent.Date == nil {
		missing = append(missing, chat.SlotDate)
	}
	if ent.TimeStart == "" {
		missing = append(missing, chat.SlotTimeStart)
	}
	if intentName == intent.IntentCreateTask && ent.Type == "" {
		missing = append(missing, chat.SlotType)
	}
	return missing
}

func missingInfoReply(intentName string, missing []string) chat.Reply {
	return chat.Reply{
		Kind:         chat.ReplyMissingInfo,
		Intent:       intentName,
		MissingSlots: missing,
		Message:      fmt.Sprintf(chat.MsgMissingInfo, strings.Join(missing, ", ")),
	}
}

// needsChannelFollowUp stores the turn and asks which channel to use. Only
// reached when all required slots are present.
func (uc *implUseCase) needsChannelFollowUp(ctx context.Context, sc model.Scope, intentName string, ent model.Entities) chat.Reply {
	uc.pending.Put(sc.UserID, chat.PendingAction{
		Intent:    intentName,
		Entities:  ent,
		CreatedAt: uc.now(),
	})
	uc.l.Infof(ctx, "%s: user=%s pending channel follow-up for %s", chat.LogPrefixDispatch, sc.UserID, intentName)
	return chat.Reply{Kind: chat.ReplyFollowUp, Intent: intentName, Message: chat.MsgAskChannel}
}

func (uc *implUseCase) dispatchCreateTask(ctx context.Context, sc model.Scope, ent model.Entities) (chat.Reply, error) {
	if missing := missingSlots(intent.IntentCreateTask, ent); len(missing) > 0 {
		return missingInfoReply(intent.IntentCreateTask, missing), nil
	}
	if len(ent.ReminderOffsets) > 0 && ent.ReminderChannel == "" {
		return uc.needsChannelFollowUp(ctx, sc, intent.IntentCreateTask, ent), nil
	}

	courseID := uc.resolveCourse(ctx, sc, ent.CourseRef)
	created, err := uc.tasks.CreateFromEntities(ctx, sc, ent, courseID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateFromEntities: %v", chat.LogPrefixDispatch, err)
		return chat.Reply{Kind: chat.ReplyFailed, Intent: intent.IntentCreateTask, Message: chat.MsgFailed}, nil
	}

	count := uc.buildReminders(ctx, sc,
		model.ReminderTarget{Kind: model.TargetTask, ID: created.ID},
		created.Title, created.DueAt, ent)

	msg := fmt.Sprintf(chat.MsgTaskCreated, created.Title, created.DueAt.In(uc.loc).Format(replyTimeFormat))
	if count > 0 {
		msg += fmt.Sprintf(chat.MsgWithReminder, count)
	}
	return chat.Reply{
		Kind: chat.ReplyCreated, Intent: intent.IntentCreateTask,
		Message: msg, Task: &created, Reminders: count,
	}, nil
}

func (uc *implUseCase) dispatchAddEvent(ctx context.Context, sc model.Scope, ent model.Entities) (chat.Reply, error) {
	if missing := missingSlots(intent.IntentAddEvent, ent); len(missing) > 0 {
		return missingInfoReply(intent.IntentAddEvent, missing), nil
	}
	if len(ent.ReminderOffsets) > 0 && ent.ReminderChannel == "" {
		return uc.needsChannelFollowUp(ctx, sc, intent.IntentAddEvent, ent), nil
	}

	courseID := uc.resolveCourse(ctx, sc, ent.CourseRef)
	created, err := uc.schedules.CreateFromEntities(ctx, sc, ent, courseID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateFromEntities: %v", chat.LogPrefixDispatch, err)
		return chat.Reply{Kind: chat.ReplyFailed, Intent: intent.IntentAddEvent, Message: chat.MsgFailed}, nil
	}

	count := uc.buildReminders(ctx, sc,
		model.ReminderTarget{Kind: model.TargetSchedule, ID: created.ID},
		created.Title, created.StartAt, ent)

	msg := fmt.Sprintf(chat.MsgEventCreated, created.Title, created.StartAt.In(uc.loc).Format(replyTimeFormat))
	if count > 0 {
		msg += fmt.Sprintf(chat.MsgWithReminder, count)
	}
	return chat.Reply{
		Kind: chat.ReplyCreated, Intent: intent.IntentAddEvent,
		Message: msg, Schedule: &created, Reminders: count,
	}, nil
}

func (uc *implUseCase) dispatchFindEvent(ctx context.Context, sc model.Scope, ent model.Entities) (chat.Reply, error) {
	var from, to time.Time
	if ent.Date != nil {
		from = ent.Date.In(uc.loc)
		to = from.Add(24 * time.Hour)
	} else {
		from = uc.now().In(uc.loc)
		to = from.Add(7 * 24 * time.Hour)
	}

	found, err := uc.schedules.Find(ctx, sc, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "%s: Find: %v", chat.LogPrefixDispatch, err)
		return chat.Reply{Kind: chat.ReplyFailed, Intent: intent.IntentFindEvent, Message: chat.MsgFailed}, nil
	}
	if len(found) == 0 {
		return chat.Reply{Kind: chat.ReplyFound, Intent: intent.IntentFindEvent, Message: chat.MsgNoEvents}, nil
	}

	var b strings.Builder
	b.WriteString(chat.MsgFoundHeader)
	for _, s := range found {
		fmt.Fprintf(&b, "\n- %s: %s", s.StartAt.In(uc.loc).Format(replyTimeFormat), s.Title)
	}
	return chat.Reply{
		Kind: chat.ReplyFound, Intent: intent.IntentFindEvent,
		Message: b.String(), Schedules: found,
	}, nil
}

// resolveCourse is best effort: a failed lookup only costs the course tag.
func (uc *implUseCase) resolveCourse(ctx context.Context, sc model.Scope, ref string) string {
	if ref == "" {
		return ""
	}
	c, err := uc.courses.Resolve(ctx, sc, ref)
	if err != nil {
		uc.l.Warnf(ctx, "%s: course resolve %q: %v", chat.LogPrefixDispatch, ref, err)
		return ""
	}
	return c.ID
}

// buildReminders persists the requested reminders for a created record.
// Failure is logged, not surfaced: the record itself was created.
func (uc *implUseCase) buildReminders(ctx context.Context, sc model.Scope, target model.ReminderTarget, title string, baseAt time.Time, ent model.Entities) int {
	if len(ent.ReminderOffsets) == 0 {
		return 0
	}

	offsets := make([]reminder.Offset, 0, len(ent.ReminderOffsets))
	for _, seconds := range ent.ReminderOffsets {
		offsets = append(offsets, reminder.Offset{Seconds: seconds, Channel: ent.ReminderChannel})
	}

	out, err := uc.reminders.Build(ctx, sc, reminder.BuildInput{
		Target:  target,
		Title:   title,
		BaseAt:  baseAt,
		Offsets: offsets,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: reminders.Build: %v", chat.LogPrefixDispatch, err)
		return 0
	}
	return out.Created
}
