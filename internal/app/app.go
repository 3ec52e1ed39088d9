package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/stempel/stempel/internal/config"
)

// ConfigFileName is the optional per-workspace configuration file.
const ConfigFileName = "stempel.yaml"

// Application wires configuration and dependencies for one punch invocation.
type Application struct {
	cfg  config.Application
	deps *Dependencies
	out  io.Writer
}

// NewApplication validates the workspace and builds the full application,
// ready to Run(). The workspace must exist before anything is read: an
// invalid path must not leave a timesheet behind.
func NewApplication(workspace string) (*Application, error) {
	info, err := os.Stat(workspace)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("invalid workspace path: %s", workspace)
	}

	cfg, err := config.Load(filepath.Join(workspace, ConfigFileName))
	if err != nil {
		return nil, err
	}

	timesheetPath := filepath.Join(workspace, cfg.Timesheet.FileName)
	var out io.Writer = os.Stdout
	deps := BuildDependencies(cfg, timesheetPath, out)

	return &Application{cfg: cfg, deps: deps, out: out}, nil
}

// Run performs a single punch against the workspace timesheet. The clock-in
// and clock-out lines are printed by the console reporter subscribed to the
// event bus; the saved-path line follows once the punch has completed.
func (a *Application) Run(ctx context.Context) error {
	result, err := a.deps.TimesheetService.Punch(ctx)
	if err != nil {
		return err
	}
	log.Debugf("Punch completed with action %s", result.Action)

	fmt.Fprintf(a.out, "Timesheet saved to: %s\n", a.deps.TimesheetRepo.Path())
	return nil
}
