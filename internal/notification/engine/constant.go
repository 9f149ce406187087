package engine

const (
	LogPrefixTick = "internal.notification.engine.Tick"
	LogPrefixRun  = "internal.notification.engine.Run"

	// PushEventReminder is the event name emitted on the realtime channel.
	PushEventReminder = "reminder.due"

	// EmailSubjectPrefix prefixes every reminder email subject.
	EmailSubjectPrefix = "Nhắc nhở: "

	// EmailBodyTemplate is the plain-text body; args: title, local time.
	EmailBodyTemplate = "Bạn có lịch sắp tới: %s\nThời gian: %s\n\nStudy Assistant"
)
