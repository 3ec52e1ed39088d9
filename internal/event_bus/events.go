package event_bus

const (
	TypeClockInRecorded  EventType = "timesheet.clockin"
	TypeClockOutRecorded EventType = "timesheet.clockout"
)

// ClockInRecorded is published after a clock-in row has been persisted.
type ClockInRecorded struct {
	Date string
	Time string
}

// ClockOutRecorded is published after an entry has been closed and the
// total row rewritten.
type ClockOutRecorded struct {
	Date     string
	Time     string
	Duration string
}
