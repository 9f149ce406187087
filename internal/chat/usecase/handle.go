package usecase

import (
	"context"
	"strings"

	"study-assistant/internal/chat"
	"study-assistant/internal/model"
	"study-assistant/pkg/vntext"
)

// Handle runs one chat turn. A turn that answers a pending channel question
// merges the selection into the stored entities and re-enters dispatch
// directly; everything else goes through classification and extraction.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, message string) (chat.Reply, error) {
	if pending, ok := uc.pending.Take(sc.UserID); ok {
		if channel := parseChannelSelection(message); channel != "" {
			uc.l.Infof(ctx, "%s: user=%s answered channel follow-up with %s", chat.LogPrefixHandle, sc.UserID, channel)
			pending.Entities.ReminderChannel = channel
			return uc.dispatch(ctx, sc, pending.Intent, pending.Entities)
		}
		// Not an answer to the question; keep the follow-up alive and treat
		// the message as a fresh request.
		uc.pending.Put(sc.UserID, pending)
	}

	result := uc.resolver.Resolve(ctx, message)
	entities := uc.extractor.Extract(ctx, message, uc.now())

	uc.l.Infof(ctx, "%s: user=%s intent=%s source=%s", chat.LogPrefixHandle, sc.UserID, result.Name, result.Source)
	return uc.dispatch(ctx, sc, result.Name, entities)
}

// parseChannelSelection recognizes a bare channel answer. Returns "" when the
// message does not look like one.
func parseChannelSelection(message string) model.Channel {
	normalized := vntext.Normalize(message)
	switch {
	case strings.Contains(normalized, "email"):
		return model.ChannelEmail
	case strings.Contains(normalized, "ung dung"), strings.Contains(normalized, "app"):
		return model.ChannelInApp
	}
	return ""
}
