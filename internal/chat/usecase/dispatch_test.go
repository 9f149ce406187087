package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"study-assistant/internal/chat"
	"study-assistant/internal/intent"
	"study-assistant/internal/model"
	"study-assistant/internal/reminder"
)

type stubResolver struct {
	result intent.Result
	calls  int
}

func (s *stubResolver) Resolve(ctx context.Context, text string) intent.Result {
	s.calls++
	return s.result
}

type stubExtractor struct {
	entities model.Entities
	calls    int
}

func (s *stubExtractor) Extract(ctx context.Context, text string, now time.Time) model.Entities {
	s.calls++
	return s.entities
}

type mockCourseUC struct {
	course model.Course
	err    error
}

func (m *mockCourseUC) Resolve(ctx context.Context, sc model.Scope, ref string) (model.Course, error) {
	return m.course, m.err
}

type mockTaskUC struct {
	created  model.Task
	err      error
	gotEnt   model.Entities
	courseID string
	calls    int
}

func (m *mockTaskUC) CreateFromEntities(ctx context.Context, sc model.Scope, ent model.Entities, courseID string) (model.Task, error) {
	m.calls++
	m.gotEnt = ent
	m.courseID = courseID
	return m.created, m.err
}

type mockScheduleUC struct {
	created    model.Schedule
	err        error
	found      []model.Schedule
	findFrom   time.Time
	findTo     time.Time
	createCall int
}

func (m *mockScheduleUC) CreateFromEntities(ctx context.Context, sc model.Scope, ent model.Entities, courseID string) (model.Schedule, error) {
	m.createCall++
	return m.created, m.err
}

func (m *mockScheduleUC) Find(ctx context.Context, sc model.Scope, from, to time.Time) ([]model.Schedule, error) {
	m.findFrom, m.findTo = from, to
	return m.found, nil
}

type mockReminderUC struct {
	input reminder.BuildInput
	out   reminder.BuildOutput
	err   error
	calls int
}

func (m *mockReminderUC) Build(ctx context.Context, sc model.Scope, input reminder.BuildInput) (reminder.BuildOutput, error) {
	m.calls++
	m.input = input
	return m.out, m.err
}

func (m *mockReminderUC) Snooze(ctx context.Context, sc model.Scope, reminderID, duration string) (model.Reminder, error) {
	return model.Reminder{}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, template string, a ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, template string, a ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, template string, a ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, template string, a ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                {}
func (nopLogger) DPanicf(ctx context.Context, template string, a ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                 {}
func (nopLogger) Panicf(ctx context.Context, template string, a ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, template string, a ...any)  {}

type fixture struct {
	uc        *implUseCase
	resolver  *stubResolver
	extractor *stubExtractor
	tasks     *mockTaskUC
	schedules *mockScheduleUC
	reminders *mockReminderUC
}

func newFixture(t *testing.T, result intent.Result, entities model.Entities) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	pending, err := chat.NewPendingStore()
	if err != nil {
		t.Fatalf("NewPendingStore: %v", err)
	}

	f := &fixture{
		resolver:  &stubResolver{result: result},
		extractor: &stubExtractor{entities: entities},
		tasks:     &mockTaskUC{created: model.Task{ID: "t1", Title: entities.Title}},
		schedules: &mockScheduleUC{created: model.Schedule{ID: "s1", Title: entities.Title}},
		reminders: &mockReminderUC{},
	}
	f.tasks.created.DueAt = time.Date(2026, 12, 12, 9, 0, 0, 0, loc)
	f.schedules.created.StartAt = f.tasks.created.DueAt

	f.uc = New(f.resolver, f.extractor, &mockCourseUC{}, f.tasks, f.schedules, f.reminders, pending, loc, nopLogger{})
	f.uc.now = func() time.Time { return time.Date(2026, 5, 6, 8, 0, 0, 0, loc) }
	return f
}

func sc() model.Scope { return model.Scope{UserID: "u1"} }

func entitiesWith(loc *time.Location, title, timeStart string, eventType model.EventType) model.Entities {
	day := time.Date(2026, 12, 12, 0, 0, 0, 0, loc)
	return model.Entities{Title: title, Type: eventType, Date: &day, TimeStart: timeStart}
}

func TestHandleMissingSlots(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	day := time.Date(2026, 12, 12, 0, 0, 0, 0, loc)
	// Only title and date: no timeStart, no type.
	ent := model.Entities{Title: "Nộp bài tập", Date: &day}

	f := newFixture(t, intent.Result{Name: intent.IntentCreateTask}, ent)
	reply, err := f.uc.Handle(context.Background(), sc(), "tạo việc nộp bài tập 12/12")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if reply.Kind != chat.ReplyMissingInfo {
		t.Fatalf("Kind = %q, want missing_info", reply.Kind)
	}
	want := []string{chat.SlotTimeStart, chat.SlotType}
	if !reflect.DeepEqual(reply.MissingSlots, want) {
		t.Errorf("MissingSlots = %v, want %v", reply.MissingSlots, want)
	}
	if f.tasks.calls != 0 {
		t.Errorf("task created despite missing slots")
	}
}

func TestHandleCreateTask(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	ent := entitiesWith(loc, "Kỳ thi Toán", "09:00", model.EventTypeExam)

	f := newFixture(t, intent.Result{Name: intent.IntentCreateTask}, ent)
	reply, err := f.uc.Handle(context.Background(), sc(), "thêm kỳ thi toán 12/12 9h")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if reply.Kind != chat.ReplyCreated || reply.Task == nil {
		t.Fatalf("reply = %+v, want created with task echo", reply)
	}
	if !strings.Contains(reply.Message, "Kỳ thi Toán") {
		t.Errorf("Message = %q", reply.Message)
	}
	if f.reminders.calls != 0 {
		t.Errorf("reminders built without offsets")
	}
}

func TestHandleChannelFollowUp(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	ent := entitiesWith(loc, "Kỳ thi Toán", "09:00", model.EventTypeExam)
	ent.ReminderOffsets = []int{-3600}

	f := newFixture(t, intent.Result{Name: intent.IntentCreateTask}, ent)

	reply, err := f.uc.Handle(context.Background(), sc(), "thêm kỳ thi toán 12/12 9h nhắc trước 1 tiếng")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.Kind != chat.ReplyFollowUp {
		t.Fatalf("Kind = %q, want follow_up", reply.Kind)
	}
	if f.tasks.calls != 0 {
		t.Fatalf("task created before channel selection")
	}

	resolverCalls := f.resolver.calls
	reply, err = f.uc.Handle(context.Background(), sc(), "email")
	if err != nil {
		t.Fatalf("Handle follow-up: %v", err)
	}

	if reply.Kind != chat.ReplyCreated {
		t.Fatalf("Kind = %q, want created", reply.Kind)
	}
	// The channel answer must bypass re-classification entirely.
	if f.resolver.calls != resolverCalls {
		t.Errorf("resolver called on channel selection turn")
	}
	if f.tasks.gotEnt.ReminderChannel != model.ChannelEmail {
		t.Errorf("channel = %q, want email", f.tasks.gotEnt.ReminderChannel)
	}
	if f.reminders.input.Offsets[0].Channel != model.ChannelEmail {
		t.Errorf("reminder channel = %q, want email", f.reminders.input.Offsets[0].Channel)
	}
}

func TestHandleNonAnswerKeepsFollowUpAlive(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	ent := entitiesWith(loc, "Kỳ thi Toán", "09:00", model.EventTypeExam)
	ent.ReminderOffsets = []int{-3600}

	f := newFixture(t, intent.Result{Name: intent.IntentUnknown}, model.Entities{})
	f.uc.pending.Put("u1", chat.PendingAction{Intent: intent.IntentCreateTask, Entities: ent})

	// An unrelated message does not consume the pending follow-up.
	if _, err := f.uc.Handle(context.Background(), sc(), "hôm nay trời đẹp"); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	reply, err := f.uc.Handle(context.Background(), sc(), "qua ứng dụng nhé")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.Kind != chat.ReplyCreated {
		t.Fatalf("Kind = %q, want created", reply.Kind)
	}
	if f.tasks.gotEnt.ReminderChannel != model.ChannelInApp {
		t.Errorf("channel = %q, want in_app", f.tasks.gotEnt.ReminderChannel)
	}
}

func TestHandleAddEvent(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	ent := entitiesWith(loc, "Họp nhóm", "14:00", model.EventTypeOther)
	ent.ReminderOffsets = []int{-1800}
	ent.ReminderChannel = model.ChannelInApp

	f := newFixture(t, intent.Result{Name: intent.IntentAddEvent}, ent)
	f.reminders.out = reminder.BuildOutput{Requested: 1, Created: 1}

	reply, err := f.uc.Handle(context.Background(), sc(), "thêm lịch họp nhóm")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if reply.Kind != chat.ReplyCreated || reply.Schedule == nil {
		t.Fatalf("reply = %+v, want created with schedule echo", reply)
	}
	if reply.Reminders != 1 {
		t.Errorf("Reminders = %d, want 1", reply.Reminders)
	}
	if f.reminders.input.Target.Kind != model.TargetSchedule {
		t.Errorf("reminder target = %+v", f.reminders.input.Target)
	}
}

func TestHandleFindEvent(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")

	f := newFixture(t, intent.Result{Name: intent.IntentFindEvent}, model.Entities{})
	f.schedules.found = []model.Schedule{
		{Title: "Họp nhóm", StartAt: time.Date(2026, 5, 7, 14, 0, 0, 0, loc)},
	}

	reply, err := f.uc.Handle(context.Background(), sc(), "xem lịch tuần này")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if reply.Kind != chat.ReplyFound || len(reply.Schedules) != 1 {
		t.Fatalf("reply = %+v, want found with 1 schedule", reply)
	}
	if !strings.Contains(reply.Message, "Họp nhóm") {
		t.Errorf("Message = %q", reply.Message)
	}
	// No date slot: defaults to a 7-day window from now.
	if got := f.schedules.findTo.Sub(f.schedules.findFrom); got != 7*24*time.Hour {
		t.Errorf("window = %v, want 168h", got)
	}
}

func TestHandleUnknownIntent(t *testing.T) {
	f := newFixture(t, intent.Result{Name: intent.IntentUnknown}, model.Entities{})

	reply, err := f.uc.Handle(context.Background(), sc(), "xin chào")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.Kind != chat.ReplyUnknown {
		t.Errorf("Kind = %q, want unknown", reply.Kind)
	}
}

func TestHandleCreationFailureSurfacesAsReply(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	ent := entitiesWith(loc, "Kỳ thi Toán", "09:00", model.EventTypeExam)

	f := newFixture(t, intent.Result{Name: intent.IntentCreateTask}, ent)
	f.tasks.err = errors.New("insert failed")

	reply, err := f.uc.Handle(context.Background(), sc(), "thêm kỳ thi toán 12/12 9h")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.Kind != chat.ReplyFailed {
		t.Errorf("Kind = %q, want failed", reply.Kind)
	}
	if f.reminders.calls != 0 {
		t.Errorf("reminders built after failed creation")
	}
}
