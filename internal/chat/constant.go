package chat

// Log prefixes
const (
	LogPrefixHandle   = "internal.chat.Handle"
	LogPrefixDispatch = "internal.chat.dispatch"
)

// Slot names reported back to the user on missing input.
const (
	SlotTitle     = "title"
	SlotDate      = "date"
	SlotTimeStart = "timeStart"
	SlotType      = "type"
)

// User-facing reply templates.
const (
	MsgMissingInfo  = "Mình còn thiếu thông tin: %s. Bạn bổ sung giúp mình nhé."
	MsgAskChannel   = "Bạn muốn nhận nhắc nhở qua kênh nào? Trả lời \"email\" hoặc \"ứng dụng\"."
	MsgTaskCreated  = "Đã tạo công việc \"%s\", hạn %s."
	MsgEventCreated = "Đã thêm sự kiện \"%s\" lúc %s."
	MsgWithReminder = " Kèm %d nhắc nhở."
	MsgNoEvents     = "Không tìm thấy sự kiện nào trong khoảng thời gian này."
	MsgFoundHeader  = "Lịch của bạn:"
	MsgUnknown      = "Xin lỗi, mình chưa hiểu yêu cầu. Bạn có thể thử: \"Thêm kỳ thi Toán 12/12 9h\" hoặc \"Deadline AI thứ 6 23:59\"."
	MsgFailed       = "Có lỗi khi xử lý yêu cầu, bạn thử lại sau nhé."
)

// pendingCapacity bounds the follow-up store; one entry per user.
const pendingCapacity = 1024
