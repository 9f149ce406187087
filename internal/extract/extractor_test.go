package extract

import (
	"context"
	"testing"
	"time"

	"study-assistant/internal/model"
	"study-assistant/pkg/datemath"
)

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

func newTestExtractor(t *testing.T) (*Extractor, time.Time) {
	t.Helper()
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	// Wednesday.
	now := time.Date(2026, 5, 6, 8, 0, 0, 0, parser.Location())
	return New(parser, nopLogger{}), now
}

func TestExtract(t *testing.T) {
	e, now := newTestExtractor(t)
	loc := e.dates.Location()

	day := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return &t
	}

	tests := []struct {
		name string
		text string
		want model.Entities
	}{
		{
			name: "exam with explicit date and bare hour",
			text: "Thêm kỳ thi Toán 12/12 9h",
			want: model.Entities{
				Title:     "Kỳ thi Toán",
				Type:      model.EventTypeExam,
				Date:      day(2026, time.December, 12),
				TimeStart: "09:00",
			},
		},
		{
			name: "assignment deadline on weekday",
			text: "Deadline AI thứ 6 23:59",
			want: model.Entities{
				Title:     "Deadline AI",
				Type:      model.EventTypeAssignment,
				Date:      day(2026, time.May, 8),
				TimeStart: "23:59",
			},
		},
		{
			name: "lecture with course, reminder offset and channel",
			text: "Học môn Giải tích lúc 9 giờ ngày mai, nhắc trước 30 phút qua email",
			want: model.Entities{
				Title:           "Học môn Giải tích",
				Type:            model.EventTypeLecture,
				Date:            day(2026, time.May, 7),
				TimeStart:       "09:00",
				CourseRef:       "Giải tích",
				ReminderOffsets: []int{-1800},
				ReminderChannel: model.ChannelEmail,
			},
		},
		{
			name: "meeting with start and end clocks",
			text: "Họp nhóm thứ 2 14:00 16:00",
			want: model.Entities{
				Title:     "Họp nhóm",
				Type:      model.EventTypeOther,
				Date:      day(2026, time.May, 11),
				TimeStart: "14:00",
				TimeEnd:   "16:00",
			},
		},
		{
			name: "action words stripped down to placeholder",
			text: "thêm lịch ngày mai",
			want: model.Entities{
				Title: PlaceholderTitle,
				Type:  model.EventTypeOther,
				Date:  day(2026, time.May, 7),
			},
		},
		{
			name: "no date at all",
			text: "nộp bài tập lớn",
			want: model.Entities{
				Title: "Nộp bài tập lớn",
				Type:  model.EventTypeAssignment,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Extract(context.Background(), tc.text, now)

			if got.Title != tc.want.Title {
				t.Errorf("Title = %q, want %q", got.Title, tc.want.Title)
			}
			if got.Type != tc.want.Type {
				t.Errorf("Type = %q, want %q", got.Type, tc.want.Type)
			}
			if got.TimeStart != tc.want.TimeStart {
				t.Errorf("TimeStart = %q, want %q", got.TimeStart, tc.want.TimeStart)
			}
			if got.TimeEnd != tc.want.TimeEnd {
				t.Errorf("TimeEnd = %q, want %q", got.TimeEnd, tc.want.TimeEnd)
			}
			if got.CourseRef != tc.want.CourseRef {
				t.Errorf("CourseRef = %q, want %q", got.CourseRef, tc.want.CourseRef)
			}
			if got.ReminderChannel != tc.want.ReminderChannel {
				t.Errorf("ReminderChannel = %q, want %q", got.ReminderChannel, tc.want.ReminderChannel)
			}
			if len(got.ReminderOffsets) != len(tc.want.ReminderOffsets) {
				t.Fatalf("ReminderOffsets = %v, want %v", got.ReminderOffsets, tc.want.ReminderOffsets)
			}
			for i := range got.ReminderOffsets {
				if got.ReminderOffsets[i] != tc.want.ReminderOffsets[i] {
					t.Errorf("ReminderOffsets = %v, want %v", got.ReminderOffsets, tc.want.ReminderOffsets)
				}
			}
			switch {
			case tc.want.Date == nil && got.Date != nil:
				t.Errorf("Date = %v, want nil", got.Date)
			case tc.want.Date != nil && got.Date == nil:
				t.Errorf("Date = nil, want %v", tc.want.Date)
			case tc.want.Date != nil && !got.Date.Equal(*tc.want.Date):
				t.Errorf("Date = %v, want %v", got.Date, tc.want.Date)
			}
		})
	}
}

func TestExtractNeverPanics(t *testing.T) {
	e, now := newTestExtractor(t)

	inputs := []string{
		"",
		"   ",
		"////",
		"99/99 vs 0h",
		"môn ",
		"nhắc trước 0 phút",
	}
	for _, in := range inputs {
		got := e.Extract(context.Background(), in, now)
		if got.Type == "" {
			t.Errorf("Extract(%q): empty type", in)
		}
	}
}
