package datemath_test

import (
	"testing"
	"time"

	"study-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2026, 5, 6, 15, 30, 0, 0, time.UTC) // Wednesday, May 6, 2026
	startOfBase := time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5),
		},
		{
			name:     "Bare Friday means next Friday",
			relative: "friday",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "Bare Wednesday from Wednesday is one week out",
			relative: "wednesday",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "Explicit date this year",
			relative: "12/12",
			want:     time.Date(2026, 12, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Explicit date already passed rolls forward",
			relative: "1/2",
			want:     time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Explicit date with year",
			relative: "5/1/2027",
			want:     time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2026, 5, 6, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name     string
		text     string
		want     time.Time
		wantSpan string
		wantOK   bool
	}{
		{
			name:     "Explicit date in text",
			text:     "ky thi toan 12/12 09:00",
			want:     time.Date(2026, 12, 12, 0, 0, 0, 0, time.UTC),
			wantSpan: "12/12",
			wantOK:   true,
		},
		{
			name:     "Weekday in text",
			text:     "deadline ai friday 23:59",
			want:     time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
			wantSpan: "friday",
			wantOK:   true,
		},
		{
			name:     "Relative keyword",
			text:     "hop nhom tomorrow",
			want:     time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC),
			wantSpan: "tomorrow",
			wantOK:   true,
		},
		{
			name:   "No date",
			text:   "hop nhom do an",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, span, ok := parser.FindDate(tt.text, baseTime)
			if ok != tt.wantOK {
				t.Fatalf("FindDate() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("FindDate() got = %v, want %v", got, tt.want)
			}
			if span != tt.wantSpan {
				t.Errorf("FindDate() span = %q, want %q", span, tt.wantSpan)
			}
		})
	}
}

func TestFindClocks(t *testing.T) {
	clocks := datemath.FindClocks("thi 09:00 den 11:30, xem 99:99")
	if len(clocks) != 2 {
		t.Fatalf("expected 2 valid clocks, got %d", len(clocks))
	}
	if clocks[0].Hour != 9 || clocks[0].Minute != 0 {
		t.Errorf("first clock = %02d:%02d, want 09:00", clocks[0].Hour, clocks[0].Minute)
	}
	if clocks[1].Hour != 11 || clocks[1].Minute != 30 {
		t.Errorf("second clock = %02d:%02d, want 11:30", clocks[1].Hour, clocks[1].Minute)
	}
}
