package extract

// Log prefixes
const (
	LogPrefixExtract = "internal.extract.Extract"
)

// PlaceholderTitle is used when stripping leaves nothing usable.
const PlaceholderTitle = "Sự kiện mới"

// typeKeywords classify the event type from folded text. Families are checked
// in order; first hit wins, default is "other".
var typeKeywords = []struct {
	eventType string
	keywords  []string
}{
	{"exam", []string{"ky thi", "kiem tra", "thi", "giua ky", "cuoi ky"}},
	{"assignment", []string{"deadline", "bai tap", "nop bai", "han chot", "nop"}},
	{"other", []string{"hop", "gap mat", "seminar", "workshop", "su kien"}},
	{"lecture", []string{"hoc", "lop", "bai giang", "tiet"}},
}

// dateTimeKeywords are single tokens (folded) stripped from the working copy
// after the matched date/time spans are removed.
var dateTimeKeywords = map[string]bool{
	// English tokens left behind by phrase translation
	"today": true, "tomorrow": true, "yesterday": true, "next": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true, "week": true, "month": true,
	// Vietnamese time words
	"ngay": true, "luc": true, "vao": true, "tuan": true, "thang": true,
	"gio": true, "phut": true, "sang": true, "trua": true, "chieu": true,
	"toi": true, "dem": true,
}

// actionKeywords are folded tokens repeatedly stripped from the start of the
// remainder before it becomes the title.
var actionKeywords = map[string]bool{
	"them": true, "tao": true, "lich": true, "nhac": true, "cho": true,
	"minh": true, "giup": true, "ho": true, "em": true, "mot": true,
	"cai": true, "su": true, "kien": true, "viec": true, "ve": true,
}

// courseStopwords terminate a course-name phrase.
var courseStopwords = map[string]bool{
	"luc": true, "vao": true, "ngay": true, "truoc": true, "sau": true,
	"o": true, "tai": true, "thu": true, "gio": true, "nhac": true,
	"today": true, "tomorrow": true, "yesterday": true, "next": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// Reminder offset units in seconds. "giờ" and "tiếng" are both hours.
var offsetUnits = map[string]int{
	"phut":  60,
	"gio":   3600,
	"tieng": 3600,
	"ngay":  86400,
}
