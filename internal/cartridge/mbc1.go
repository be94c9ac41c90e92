package cartridge

// mbc1 backs cartridge types 0x01-0x03. rom is kept as a sequence of 16KiB
// banks and ram as a sequence of 8KiB banks, following the register names
// real MBC1 hardware uses (ramg/bank1/bank2/mode), rather than the raw
// byte-slice-plus-shift-arithmetic the reference emulator blits into the
// bus window — spec.md 4.3 models the controller as its own addressable
// bank array, so reads stay a plain index instead of a bus copy-in/copy-out.
type mbc1 struct {
	romBanks [][]byte
	ramBanks [][]byte
	hasRAM   bool

	ramg  bool  // RAM enable latch, written via 0x0000-0x1FFF
	bank1 uint8 // 5-bit ROM bank select, written via 0x2000-0x3FFF
	bank2 uint8 // 2-bit RAM bank select (not used as a ROM bank extension), written via 0x4000-0x5FFF
	mode  bool  // banking mode latch, written via 0x6000-0x7FFF; stored but not consulted
}

func newMBC1(rom []byte, header Header) *mbc1 {
	const bankSize = 16 * 1024
	nBanks := (len(rom) + bankSize - 1) / bankSize
	if nBanks < 2 {
		nBanks = 2
	}
	romBanks := make([][]byte, nBanks)
	for i := range romBanks {
		start := i * bankSize
		end := start + bankSize
		bank := make([]byte, bankSize)
		if start < len(rom) {
			if end > len(rom) {
				end = len(rom)
			}
			copy(bank, rom[start:end])
		}
		romBanks[i] = bank
	}

	const ramBankSize = 8 * 1024
	nRAMBanks := int(header.RAMSize) / ramBankSize
	if nRAMBanks == 0 {
		nRAMBanks = 1
	}
	ramBanks := make([][]byte, nRAMBanks)
	for i := range ramBanks {
		ramBanks[i] = make([]byte, ramBankSize)
	}

	return &mbc1{
		romBanks: romBanks,
		ramBanks: ramBanks,
		hasRAM:   header.RAMSize > 0,
		bank1:    1,
	}
}

// romBank returns the bank currently mapped into 0x4000-0x7FFF. bank2 is
// not folded in as an upper ROM-bank extension; the >1 MiB case is a
// known limitation.
func (m *mbc1) romBank() uint8 {
	return m.bank1 % uint8(len(m.romBanks))
}

// ramBank returns the bank currently mapped into 0xA000-0xBFFF.
func (m *mbc1) ramBank() uint8 {
	return m.bank2 % uint8(len(m.ramBanks))
}

func (m *mbc1) Read(address uint16) uint8 {
	switch {
	case address <= 0x3FFF:
		return m.romBanks[0][address]
	case address >= 0x4000 && address <= 0x7FFF:
		return m.romBanks[m.romBank()][address-0x4000]
	case address >= 0xA000 && address <= 0xBFFF:
		if !m.ramg || !m.hasRAM {
			return openBus
		}
		return m.ramBanks[m.ramBank()][address-0xA000]
	default:
		panic(ErrCartridgeAddressOutOfRange{Address: address})
	}
}

func (m *mbc1) Write(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		m.ramg = value&0x0F == 0x0A
	case address >= 0x2000 && address <= 0x3FFF:
		value &= 0x1F
		if value == 0 {
			value = 1
		}
		m.bank1 = value % uint8(len(m.romBanks))
	case address >= 0x4000 && address <= 0x5FFF:
		nRAMBanks := uint8(len(m.ramBanks))
		if nRAMBanks == 0 {
			nRAMBanks = 1
		}
		m.bank2 = (value & 0x03) % nRAMBanks
	case address >= 0x6000 && address <= 0x7FFF:
		m.mode = value&0x01 == 1
	case address >= 0xA000 && address <= 0xBFFF:
		if m.ramg && m.hasRAM {
			m.ramBanks[m.ramBank()][address-0xA000] = value
		}
	default:
		panic(ErrCartridgeAddressOutOfRange{Address: address})
	}
}
