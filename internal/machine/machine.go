// Package machine wires the bus, CPU, and peripherals of the breadboard
// computer into a runnable unit and supplies the clock-pacing loop the
// spec's two CLI front ends drive.
package machine

import (
	"context"
	"time"

	"sixfiveoh/internal/acia"
	"sixfiveoh/internal/cpu"
	"sixfiveoh/internal/memory"
	"sixfiveoh/internal/via"
	applog "sixfiveoh/log"
)

// Machine bundles a Bus, its CPU, and the peripherals registered onto it.
// ACIA is optional: run-led builds a Machine with only a VIA; run-console
// adds an ACIA as well.
type Machine struct {
	Bus  *memory.Bus
	CPU  *cpu.CPU
	VIA  *via.VIA
	ACIA *acia.ACIA

	pacer *Pacer
}

// New constructs a Machine over freshly-loaded ROM, wiring a VIA (always)
// and an ACIA (only if acia is non-nil) onto the bus, then binding the CPU
// as the bus's IRQ sink. clockHz is the target cycle rate; 0 means
// unlimited (run as fast as the host can sustain).
func New(ram *memory.RAM, rom *memory.ROM, v *via.VIA, a *acia.ACIA, clockHz uint64) *Machine {
	bus := memory.NewBus(ram, rom)
	bus.AddPeripheral(v)
	if a != nil {
		bus.AddPeripheral(a)
	}
	c := cpu.New(bus)
	bus.SetCPU(c)

	return &Machine{
		Bus:   bus,
		CPU:   c,
		VIA:   v,
		ACIA:  a,
		pacer: NewPacer(clockHz),
	}
}

// Run executes cpu.Step in a loop, paced by the configured clock rate,
// until ctx is cancelled. A cancellation is the expected, clean exit path
// (spec.md §5's "cooperative cancellation via host interrupt signal") and
// is not itself returned as an error.
func (m *Machine) Run(ctx context.Context) error {
	applog.Default().Printf("starting run loop at %s", m.pacer.describe())
	cycles := uint64(0)
	for {
		select {
		case <-ctx.Done():
			applog.Default().Printf("run loop stopped after %d cycles", cycles)
			return nil
		default:
		}

		if err := m.CPU.Step(); err != nil {
			return err
		}
		cycles++
		m.pacer.waitForNextCycle(cycles)
	}
}

// Pacer implements spec.md §5's clock-pacing algorithm: a running target
// timestamp advanced by one cycle_period per executed cycle, with any
// positive remainder slept away. Overruns are absorbed silently — the next
// call simply finds no positive remainder until the schedule recovers.
type Pacer struct {
	period time.Duration // 0 means unlimited
	start  time.Time
}

// NewPacer builds a Pacer targeting clockHz cycles per second. clockHz == 0
// requests unlimited speed (Pacer.waitForNextCycle never sleeps).
func NewPacer(clockHz uint64) *Pacer {
	p := &Pacer{start: time.Now()}
	if clockHz > 0 {
		p.period = time.Second / time.Duration(clockHz)
	}
	return p
}

func (p *Pacer) describe() string {
	if p.period == 0 {
		return "unlimited clock rate"
	}
	return p.period.String() + "/cycle"
}

// waitForNextCycle sleeps until start + executedCycles*period, if that
// instant is still ahead; an overrun (elapsed time already past the target)
// falls through without sleeping, letting the run loop catch up.
func (p *Pacer) waitForNextCycle(executedCycles uint64) {
	if p.period == 0 {
		return
	}
	target := p.start.Add(p.period * time.Duration(executedCycles))
	if remainder := time.Until(target); remainder > 0 {
		time.Sleep(remainder)
	}
}
