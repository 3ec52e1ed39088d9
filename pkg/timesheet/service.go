package timesheet

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/stempel/stempel/internal/event_bus"
	"github.com/stempel/stempel/internal/utils"
	"github.com/stempel/stempel/pkg/duration"
)

type Service interface {
	Punch(ctx context.Context) (PunchResult, error)
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo, &utils.SystemClock{}, bus}
}

// Punch derives the current state from the persisted table and performs the
// matching transition: no data rows or a closed last row means clock-in, an
// open last row means clock-out. The sheet is saved once, after the
// mutation; there is no other persisted state.
func (s *ServiceImpl) Punch(ctx context.Context) (PunchResult, error) {
	sheet, err := s.repo.Load(ctx)
	if err != nil {
		return PunchResult{}, fmt.Errorf("failed to load timesheet: %w", err)
	}

	now := s.clock.Now()
	date := now.Format(DateLayout)
	clockTime := now.Format(ClockLayout)

	lastRow := lastDataRow(sheet)

	var result PunchResult
	switch {
	case lastRow == HeaderRow:
		log.Debug("Timesheet has no entries, clocking in")
		clockIn(sheet, HeaderRow+1, date, clockTime)
		result = PunchResult{Action: ActionClockIn, Date: date, Time: clockTime}
	case sheet.Cell(lastRow, ColClockOut) == "":
		log.Debugf("Open entry at row %d, clocking out", lastRow)
		display, err := clockOut(sheet, lastRow, clockTime)
		if err != nil {
			return PunchResult{}, err
		}
		result = PunchResult{Action: ActionClockOut, Date: date, Time: clockTime, Duration: display}
	default:
		log.Debugf("Last entry at row %d is closed, clocking in on row %d", lastRow, lastRow+1)
		clockIn(sheet, lastRow+1, date, clockTime)
		result = PunchResult{Action: ActionClockIn, Date: date, Time: clockTime}
	}

	if err := s.repo.Save(ctx, sheet); err != nil {
		return PunchResult{}, fmt.Errorf("failed to save timesheet: %w", err)
	}

	s.publish(ctx, result)

	return result, nil
}

// lastDataRow finds the last row holding a date in column 1. The total row
// has no date, so it never counts. Returns HeaderRow when no data exists.
func lastDataRow(sheet *Sheet) int {
	last := HeaderRow
	for row := HeaderRow + 1; row <= sheet.MaxRow(); row++ {
		if sheet.Cell(row, ColDate) != "" {
			last = row
		}
	}
	return last
}

func clockIn(sheet *Sheet, row int, date, clockTime string) {
	// The row may previously have held the total row; clear its leftovers.
	sheet.SetCell(row, ColClockOut, "")
	sheet.SetCell(row, ColDuration, "")

	sheet.SetCell(row, ColDate, date)
	sheet.SetCell(row, ColClockIn, clockTime)
}

func clockOut(sheet *Sheet, row int, clockTime string) (string, error) {
	sheet.SetCell(row, ColClockOut, clockTime)

	hours, err := duration.Calculate(sheet.Cell(row, ColClockIn), clockTime)
	if err != nil {
		return "", fmt.Errorf("failed to calculate duration: %w", err)
	}
	display := duration.Format(hours)
	sheet.SetCell(row, ColDuration, display)

	updateTotalRow(sheet, row)

	return display, nil
}

// updateTotalRow rewrites the total row directly below the last data row.
// Any total marker found elsewhere is a stale leftover and gets cleared
// along with its value.
func updateTotalRow(sheet *Sheet, lastRow int) {
	totalRow := lastRow + 1

	for row := HeaderRow + 1; row <= sheet.MaxRow()+1; row++ {
		if sheet.Cell(row, ColClockOut) == TotalLabel && row != totalRow {
			log.Debugf("Clearing stray total row at row %d", row)
			sheet.SetCell(row, ColClockOut, "")
			sheet.SetCell(row, ColDuration, "")
		}
	}

	displays := make([]string, 0, lastRow-HeaderRow)
	for row := HeaderRow + 1; row <= lastRow; row++ {
		if display := sheet.Cell(row, ColDuration); display != "" {
			displays = append(displays, display)
		}
	}
	total := duration.Total(displays)

	sheet.SetCell(totalRow, ColClockOut, TotalLabel)
	sheet.SetCell(totalRow, ColDuration, duration.Format(total))
}

func (s *ServiceImpl) publish(ctx context.Context, result PunchResult) {
	if s.bus == nil {
		return
	}
	var err error
	switch result.Action {
	case ActionClockIn:
		err = s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TypeClockInRecorded, event_bus.ClockInRecorded{
			Date: result.Date,
			Time: result.Time,
		}))
	case ActionClockOut:
		err = s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TypeClockOutRecorded, event_bus.ClockOutRecorded{
			Date:     result.Date,
			Time:     result.Time,
			Duration: result.Duration,
		}))
	}
	if err != nil {
		log.Errorf("Failed to publish punch event: %v", err)
	}
}
