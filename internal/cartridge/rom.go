package cartridge

// romOnly backs cartridge type 0x00 — a fixed ROM image with no bank
// switching, plus an optional flat RAM window. spec.md 4.2.
type romOnly struct {
	rom []byte
	ram []byte
}

func newROMOnly(rom []byte, header Header) *romOnly {
	return &romOnly{
		rom: rom,
		ram: make([]byte, header.RAMSize),
	}
}

func (r *romOnly) Read(address uint16) uint8 {
	switch {
	case address <= 0x7FFF:
		if int(address) < len(r.rom) {
			return r.rom[address]
		}
		return openBus
	case address >= 0xA000 && address <= 0xBFFF:
		idx := address - 0xA000
		if int(idx) < len(r.ram) {
			return r.ram[idx]
		}
		return openBus
	default:
		panic(ErrCartridgeAddressOutOfRange{Address: address})
	}
}

// Write ignores writes to the ROM region (no bank controller to program)
// and stores writes to RAM in range; anything else is silently dropped.
func (r *romOnly) Write(address uint16, value uint8) {
	if address >= 0xA000 && address <= 0xBFFF {
		idx := address - 0xA000
		if int(idx) < len(r.ram) {
			r.ram[idx] = value
		}
	}
}
