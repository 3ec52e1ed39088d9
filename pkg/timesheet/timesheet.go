package timesheet

// Fixed column layout of the persisted table. Row 1 is the header; data rows
// follow. The total row reuses the clock-out column for its marker.
const (
	HeaderRow   = 1
	ColDate     = 1
	ColClockIn  = 2
	ColClockOut = 3
	ColDuration = 4
)

// TotalLabel marks the single summary row in the clock-out column.
const TotalLabel = "Total Duration:"

// Header is the fixed first row of the table.
var Header = []string{"Date", "Time Clocked-In", "Time Clocked-Out", "Total Duration"}

// DateLayout and ClockLayout are the cell formats for dates and times of day.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

type Action string

const (
	ActionClockIn  Action = "clock-in"
	ActionClockOut Action = "clock-out"
)

// Entry is the typed view of one data row.
type Entry struct {
	Date     string
	ClockIn  string
	ClockOut string
	Duration string
}

// Open reports whether the entry still awaits its clock-out.
func (e Entry) Open() bool {
	return e.ClockOut == ""
}

// Entries extracts the typed data rows of a sheet: every row below the
// header with a non-empty date cell. The total row has no date and is
// excluded by construction.
func Entries(s *Sheet) []Entry {
	entries := make([]Entry, 0, s.MaxRow())
	for row := HeaderRow + 1; row <= s.MaxRow(); row++ {
		if s.Cell(row, ColDate) == "" {
			continue
		}
		entries = append(entries, Entry{
			Date:     s.Cell(row, ColDate),
			ClockIn:  s.Cell(row, ColClockIn),
			ClockOut: s.Cell(row, ColClockOut),
			Duration: s.Cell(row, ColDuration),
		})
	}
	return entries
}

// PunchResult describes the action a punch performed.
type PunchResult struct {
	Action   Action
	Date     string
	Time     string
	Duration string // formatted, set on clock-out only
}
