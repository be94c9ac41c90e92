// Package machine wires the CPU, bus and cartridge together into a
// runnable Game Boy and owns the frame loop.
package machine

import (
	"context"
	"errors"

	"github.com/retrogb/dmgcore/internal/bus"
	"github.com/retrogb/dmgcore/internal/cartridge"
	"github.com/retrogb/dmgcore/internal/cpu"
	"github.com/retrogb/dmgcore/internal/dmglog"
	"github.com/retrogb/dmgcore/internal/ioreg"
	"github.com/retrogb/dmgcore/internal/scheduler"
)

// ErrNoCartridge is returned by Run when no cartridge has been loaded.
var ErrNoCartridge = errors.New("machine: no cartridge loaded")

// Machine is a complete DMG core: the CPU, the bus it fetches through,
// and whatever cartridge is currently inserted.
type Machine struct {
	CPU *cpu.CPU
	Bus *bus.Bus

	log dmglog.Logger
}

// New returns a Machine with no cartridge loaded.
func New(log dmglog.Logger) *Machine {
	b := bus.New(log)
	return &Machine{
		CPU: cpu.New(b, log),
		Bus: b,
		log: log,
	}
}

// LoadCartridge reads a ROM file (raw or archived) from disk and inserts
// it.
func (m *Machine) LoadCartridge(path string) error {
	cart, err := cartridge.Load(path)
	if err != nil {
		return err
	}
	m.Insert(cart)
	return nil
}

// Insert installs cart as the current cartridge.
func (m *Machine) Insert(cart *cartridge.Cartridge) {
	m.Bus.LoadCartridge(cart)
	m.log.Infof("machine: cartridge %s loaded: %s", cart.Digest(), cart.Header)
}

// Boot hands control to the cartridge entry point as if the boot ROM had
// just finished.
func (m *Machine) Boot() {
	m.CPU.Boot()
}

// Reset returns the machine to its pre-boot state: registers zeroed, bus
// memory cleared, cartridge ejected.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.CPU.IME = false
	m.CPU.Halted = false
	m.Bus.Reset()
}

// OnSerialWrite installs an observer for bytes written to the serial
// data register. Test ROMs report their results this way.
func (m *Machine) OnSerialWrite(obs ioreg.Observer) {
	m.Bus.IORegisters().OnSerialWrite(obs)
}

// RunFrame executes one video frame's worth of CPU work without pacing
// and returns the T-states executed.
func (m *Machine) RunFrame() int {
	return scheduler.Frame(m.CPU)
}

// Run executes frames paced to the hardware refresh rate until ctx is
// cancelled. The cartridge must already be loaded.
func (m *Machine) Run(ctx context.Context) error {
	if m.Bus.Cartridge() == nil {
		return ErrNoCartridge
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		scheduler.Pace(m.CPU)
	}
}
