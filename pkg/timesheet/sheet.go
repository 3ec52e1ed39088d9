package timesheet

// Sheet is an in-memory cell grid mirroring the spreadsheet. Rows and
// columns are 1-based like the file format; reads outside the grid return
// the empty string, so callers never bounds-check.
type Sheet struct {
	rows [][]string
}

// NewSheet returns a sheet holding only the header row.
func NewSheet() *Sheet {
	s := &Sheet{}
	for col, title := range Header {
		s.SetCell(HeaderRow, col+1, title)
	}
	return s
}

func (s *Sheet) Cell(row, col int) string {
	if row < 1 || row > len(s.rows) {
		return ""
	}
	cells := s.rows[row-1]
	if col < 1 || col > len(cells) {
		return ""
	}
	return cells[col-1]
}

func (s *Sheet) SetCell(row, col int, value string) {
	if row < 1 || col < 1 {
		return
	}
	for len(s.rows) < row {
		s.rows = append(s.rows, make([]string, len(Header)))
	}
	for len(s.rows[row-1]) < col {
		s.rows[row-1] = append(s.rows[row-1], "")
	}
	s.rows[row-1][col-1] = value
}

// MaxRow returns the highest row index in use, 0 for an empty sheet.
func (s *Sheet) MaxRow() int {
	return len(s.rows)
}

// NumCols returns the fixed column count of the table.
func (s *Sheet) NumCols() int {
	return len(Header)
}
