// Package bus implements the Game Boy's 16-bit memory-mapped address
// space, routing reads and writes to the cartridge, VRAM, WRAM, OAM, I/O
// registers, HRAM, and the interrupt-enable register.
package bus

import (
	"github.com/retrogb/dmgcore/internal/cartridge"
	"github.com/retrogb/dmgcore/internal/dmglog"
	"github.com/retrogb/dmgcore/internal/ioreg"
)

const (
	vramSize = 0x2000
	wramSize = 0x2000
	oamSize  = 0xA0
	hramSize = 0x7F
)

// Bus owns every addressable byte of the machine other than the CPU's
// own registers.
type Bus struct {
	cart *cartridge.Cartridge

	vram [vramSize]uint8
	wram [wramSize]uint8
	oam  [oamSize]uint8
	hram [hramSize]uint8
	ie   uint8

	io  *ioreg.File
	log dmglog.Logger
}

// New returns a Bus with no cartridge loaded. Reads in the cartridge
// window return open-bus 0xFF until LoadCartridge is called.
func New(log dmglog.Logger) *Bus {
	return &Bus{io: ioreg.New(), log: log}
}

// LoadCartridge installs cart as the current cartridge, replacing
// whatever was loaded before.
func (b *Bus) LoadCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
}

// Cartridge returns the currently loaded cartridge, or nil.
func (b *Bus) Cartridge() *cartridge.Cartridge {
	return b.cart
}

// IORegisters exposes the I/O register file so callers (e.g. the
// machine's acceptance-test harness) can install observers such as the
// serial-output watcher.
func (b *Bus) IORegisters() *ioreg.File {
	return b.io
}

// Reset zeroes VRAM, WRAM, OAM, HRAM and IE, re-initializes the I/O
// register file, and drops the loaded cartridge — a new one must be
// loaded before the next tick.
func (b *Bus) Reset() {
	b.vram = [vramSize]uint8{}
	b.wram = [wramSize]uint8{}
	b.oam = [oamSize]uint8{}
	b.hram = [hramSize]uint8{}
	b.ie = 0
	b.io = ioreg.New()
	b.cart = nil
}

// Read returns the byte mapped at address.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	// The source this core is modeled on matched cartridge reads only
	// against 0x0000-0x07FF, an off-by-a-nibble bound that left almost
	// the entire ROM window unrouted. The full 0x0000-0x7FFF belongs to
	// the cartridge.
	case address <= 0x7FFF:
		return b.cartridgeRead(address)
	case address >= 0x8000 && address <= 0x9FFF:
		return b.vram[address-0x8000]
	case address >= 0xA000 && address <= 0xBFFF:
		return b.cartridgeRead(address)
	case address >= 0xC000 && address <= 0xDFFF:
		return b.wram[address-0xC000]
	case address >= 0xE000 && address <= 0xFDFF:
		return b.wram[address-0x2000-0xC000]
	case address >= 0xFE00 && address <= 0xFE9F:
		return b.oam[address-0xFE00]
	case address >= 0xFEA0 && address <= 0xFEFF:
		return 0xFF
	case address >= 0xFF00 && address <= 0xFF7F:
		return b.io.Read(address)
	case address >= 0xFF80 && address <= 0xFFFE:
		return b.hram[address-0xFF80]
	case address == 0xFFFF:
		return b.ie
	default:
		b.log.Errorf("bus: unmapped read at %04X", address)
		return 0xFF
	}
}

// Write stores value at the byte mapped to address.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF:
		b.cartridgeWrite(address, value)
	case address >= 0x8000 && address <= 0x9FFF:
		b.vram[address-0x8000] = value
	case address >= 0xA000 && address <= 0xBFFF:
		b.cartridgeWrite(address, value)
	case address >= 0xC000 && address <= 0xDFFF:
		b.wram[address-0xC000] = value
	case address >= 0xE000 && address <= 0xFDFF:
		b.wram[address-0x2000-0xC000] = value
	case address >= 0xFE00 && address <= 0xFE9F:
		b.oam[address-0xFE00] = value
	case address >= 0xFEA0 && address <= 0xFEFF:
		// prohibited region, writes discarded
	case address >= 0xFF00 && address <= 0xFF7F:
		b.io.Write(address, value)
	case address >= 0xFF80 && address <= 0xFFFE:
		b.hram[address-0xFF80] = value
	case address == 0xFFFF:
		b.ie = value
	default:
		b.log.Errorf("bus: unmapped write at %04X", address)
	}
}

func (b *Bus) cartridgeRead(address uint16) uint8 {
	if b.cart == nil {
		return 0xFF
	}
	return b.cart.Read(address)
}

func (b *Bus) cartridgeWrite(address uint16, value uint8) {
	if b.cart == nil {
		return
	}
	b.cart.Write(address, value)
}

// ReadWord reads a little-endian 16-bit value starting at address, with
// wrapping add on the high byte.
func (b *Bus) ReadWord(address uint16) uint16 {
	lo := b.Read(address)
	hi := b.Read(address + 1)
	return uint16(lo) | uint16(hi)<<8
}

// WriteWord stores value as a little-endian 16-bit pair starting at
// address, with wrapping add on the high byte.
func (b *Bus) WriteWord(address uint16, value uint16) {
	b.Write(address, uint8(value))
	b.Write(address+1, uint8(value>>8))
}

// IE returns the interrupt-enable register.
func (b *Bus) IE() uint8 { return b.ie }

// IF returns the interrupt-flag register (an ordinary I/O register at
// 0xFF0F from the bus's perspective).
func (b *Bus) IF() uint8 { return b.io.Read(0xFF0F) }

// SetIF writes the interrupt-flag register.
func (b *Bus) SetIF(value uint8) { b.io.Write(0xFF0F, value) }
