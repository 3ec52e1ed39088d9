package timesheet

import (
	"context"
)

type StubRepository struct {
	Sheet   *Sheet
	Saves   int
	LoadErr error
	SaveErr error
}

func (s *StubRepository) Load(ctx context.Context) (*Sheet, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Sheet == nil {
		s.Sheet = NewSheet()
	}
	return s.Sheet, nil
}

func (s *StubRepository) Save(ctx context.Context, sheet *Sheet) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Sheet = sheet
	s.Saves++
	return nil
}

func (s *StubRepository) Path() string {
	return "timesheet.xlsx"
}

func (s *StubRepository) Cleanup() {
	s.Sheet = nil
	s.Saves = 0
}
