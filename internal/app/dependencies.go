package app

import (
	"io"

	"github.com/stempel/stempel/internal/config"
	"github.com/stempel/stempel/internal/event_bus"
	"github.com/stempel/stempel/internal/utils"
	"github.com/stempel/stempel/pkg/timesheet"
)

// Dependencies holds all services for the application.
type Dependencies struct {
	Clock utils.Clock
	Bus   *event_bus.EventBus

	TimesheetRepo    timesheet.Repository
	TimesheetService timesheet.Service

	Reporter *ConsoleReporter
}

// BuildDependencies initializes and wires all application services.
func BuildDependencies(cfg config.Application, timesheetPath string, out io.Writer) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.Bus = event_bus.NewEventBus()

	deps.TimesheetRepo = timesheet.NewXLSXRepository(timesheetPath, cfg)
	deps.TimesheetService = timesheet.NewService(deps.TimesheetRepo, deps.Bus)

	deps.Reporter = NewConsoleReporter(out, deps.Bus)

	return deps
}
