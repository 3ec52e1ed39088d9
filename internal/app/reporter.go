package app

import (
	"fmt"
	"io"

	"github.com/stempel/stempel/internal/event_bus"
)

// ConsoleReporter prints the punch outcome to standard output. It listens
// on the event bus so the timesheet service stays free of presentation.
type ConsoleReporter struct {
	out io.Writer
}

func NewConsoleReporter(out io.Writer, bus *event_bus.EventBus) *ConsoleReporter {
	r := &ConsoleReporter{out: out}
	event_bus.SubscribeTyped(bus, event_bus.TypeClockInRecorded, r.onClockIn)
	event_bus.SubscribeTyped(bus, event_bus.TypeClockOutRecorded, r.onClockOut)
	return r
}

func (r *ConsoleReporter) onClockIn(e event_bus.EventT[event_bus.ClockInRecorded]) error {
	_, err := fmt.Fprintf(r.out, "CLOCK-IN: %s at %s\n", e.Data.Date, e.Data.Time)
	return err
}

func (r *ConsoleReporter) onClockOut(e event_bus.EventT[event_bus.ClockOutRecorded]) error {
	if _, err := fmt.Fprintf(r.out, "CLOCK-OUT: %s at %s\n", e.Data.Date, e.Data.Time); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.out, "Duration: %s\n", e.Data.Duration)
	return err
}
