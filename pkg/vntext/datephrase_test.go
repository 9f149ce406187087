package vntext_test

import (
	"testing"

	"study-assistant/pkg/vntext"
)

func TestTranslateDatePhrases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Whole phrase wins over short form",
			in:   "họp ngày mai",
			want: "họp tomorrow",
		},
		{
			name: "Bare mai as standalone word",
			in:   "nộp bài mai nhé",
			want: "nộp bài tomorrow nhé",
		},
		{
			name: "Mai inside a longer token does not fire",
			in:   "gặp bạn Maika",
			want: "gặp bạn Maika",
		},
		{
			name: "Numeric weekday",
			in:   "deadline ai thứ 6 23:59",
			want: "deadline ai friday 23:59",
		},
		{
			name: "Named weekday",
			in:   "thi thứ sáu tuần sau",
			want: "thi friday next week",
		},
		{
			name: "No phrases leaves input untouched",
			in:   "Họp với thầy Nam",
			want: "Họp với thầy Nam",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vntext.TranslateDatePhrases(tt.in); got != tt.want {
				t.Errorf("TranslateDatePhrases(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewriteClockTimes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Hour with minutes", in: "họp 9h30", want: "họp 09:30"},
		{name: "Bare hour", in: "thi 9h", want: "thi 09:00"},
		{name: "Hour word", in: "lúc 9 giờ", want: "lúc 09:00"},
		{name: "Hour word with minutes", in: "lúc 14 giờ 15", want: "lúc 14:15"},
		{name: "Already HH:MM untouched", in: "deadline 23:59", want: "deadline 23:59"},
		{name: "No time", in: "họp nhóm đồ án", want: "họp nhóm đồ án"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vntext.RewriteClockTimes(tt.in); got != tt.want {
				t.Errorf("RewriteClockTimes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
