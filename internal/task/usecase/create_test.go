package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-assistant/internal/model"
	"study-assistant/internal/task"
	repo "study-assistant/internal/task/repository"
)

type mockRepo struct {
	got     repo.CreateTaskOptions
	created model.Task
	err     error
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	m.got = opt
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.created.UserID = opt.UserID
	m.created.Title = opt.Title
	m.created.Type = opt.Type
	m.created.DueAt = opt.DueAt
	m.created.CourseID = opt.CourseID
	return m.created, nil
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

func testLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return loc
}

func TestCreateFromEntities(t *testing.T) {
	loc := testLoc(t)
	day := time.Date(2026, 12, 12, 0, 0, 0, 0, loc)
	ent := model.Entities{
		Title:     "Kỳ thi Toán",
		Type:      model.EventTypeExam,
		Date:      &day,
		TimeStart: "09:00",
	}

	m := &mockRepo{created: model.Task{ID: "t1"}}
	uc := New(m, loc, nopLogger{})

	created, err := uc.CreateFromEntities(context.Background(), model.Scope{UserID: "u1"}, ent, "c1")
	if err != nil {
		t.Fatalf("CreateFromEntities: %v", err)
	}
	if created.ID != "t1" {
		t.Errorf("ID = %q, want t1", created.ID)
	}

	wantDue := time.Date(2026, 12, 12, 9, 0, 0, 0, loc)
	if !m.got.DueAt.Equal(wantDue) {
		t.Errorf("DueAt = %v, want %v", m.got.DueAt, wantDue)
	}
	if m.got.CourseID != "c1" {
		t.Errorf("CourseID = %q, want c1", m.got.CourseID)
	}
}

func TestCreateFromEntitiesValidation(t *testing.T) {
	loc := testLoc(t)
	day := time.Date(2026, 12, 12, 0, 0, 0, 0, loc)

	tests := []struct {
		name    string
		ent     model.Entities
		wantErr error
	}{
		{"missing title", model.Entities{Date: &day}, task.ErrMissingTitle},
		{"missing date", model.Entities{Title: "Nộp bài"}, task.ErrMissingDueAt},
	}

	uc := New(&mockRepo{}, loc, nopLogger{})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateFromEntities(context.Background(), model.Scope{UserID: "u1"}, tc.ent, "")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreateFromEntitiesRepoError(t *testing.T) {
	loc := testLoc(t)
	day := time.Date(2026, 12, 12, 0, 0, 0, 0, loc)
	wantErr := errors.New("insert failed")

	uc := New(&mockRepo{err: wantErr}, loc, nopLogger{})
	_, err := uc.CreateFromEntities(context.Background(), model.Scope{UserID: "u1"},
		model.Entities{Title: "Nộp bài", Date: &day}, "")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
