package cartridge

import "testing"

func taggedROM(banks int) []byte {
	const bankSize = 16 * 1024
	rom := make([]byte, banks*bankSize)
	for i := 0; i < banks; i++ {
		rom[i*bankSize] = uint8(i)
	}
	return rom
}

func TestMBC1RAMEnable(t *testing.T) {
	m := newMBC1(taggedROM(4), Header{RAMSize: 8 * 1024})

	t.Run("disabled by default", func(t *testing.T) {
		if m.ramg {
			t.Errorf("expected RAM disabled by default")
		}
	})

	t.Run("enable with 0x0A low nibble", func(t *testing.T) {
		m.Write(0x0000, 0x0A)
		if !m.ramg {
			t.Errorf("expected RAM enabled after write(0x0000, 0x0A)")
		}
	})

	t.Run("disable with any other low nibble", func(t *testing.T) {
		for _, v := range []uint8{0x00, 0x0B, 0xFF, 0x05} {
			m.Write(0x0000, v)
			if m.ramg {
				t.Errorf("write(0x0000, %02X): expected RAM disabled", v)
			}
		}
	})
}

func TestMBC1ROMBankSelect(t *testing.T) {
	m := newMBC1(taggedROM(4), Header{})

	t.Run("defaults to bank 1", func(t *testing.T) {
		if got := m.Read(0x4000); got != 1 {
			t.Errorf("expected bank 1 mapped at reset, got %d", got)
		}
	})

	t.Run("selects requested bank", func(t *testing.T) {
		m.Write(0x2000, 0x02)
		if got := m.Read(0x4000); got != 2 {
			t.Errorf("expected bank 2, got %d", got)
		}
	})

	t.Run("masked value of 0 forces bank 1, not 0", func(t *testing.T) {
		m.Write(0x2000, 0x00)
		if got := m.Read(0x4000); got != 1 {
			t.Errorf("expected write(0x2000, 0x00) to select bank 1, got %d", got)
		}
	})

	t.Run("bank select is masked to 5 bits", func(t *testing.T) {
		m.Write(0x2000, 0x22)
		if got := m.Read(0x4000); got != 2 {
			t.Errorf("expected 0x22 masked to bank 2, got %d", got)
		}
	})

	t.Run("bank 0 of the pair is always fixed", func(t *testing.T) {
		m.Write(0x2000, 0x03)
		if got := m.Read(0x0000); got != 0 {
			t.Errorf("expected bank 0 fixed at 0x0000-0x3FFF, got %d", got)
		}
	})
}

func TestMBC1RAMBankSelect(t *testing.T) {
	m := newMBC1(taggedROM(2), Header{RAMSize: 32 * 1024})
	m.Write(0x0000, 0x0A)

	t.Run("bank 0 by default", func(t *testing.T) {
		m.Write(0xA000, 0x11)
		if got := m.Read(0xA000); got != 0x11 {
			t.Errorf("expected 0x11, got %02X", got)
		}
	})

	t.Run("bank select takes effect regardless of mode", func(t *testing.T) {
		m.Write(0x4000, 0x02)
		m.Write(0xA000, 0x22)
		if got := m.Read(0xA000); got != 0x22 {
			t.Errorf("expected 0x22 in bank 2, got %02X", got)
		}
		m.Write(0x4000, 0x00)
		if got := m.Read(0xA000); got != 0x11 {
			t.Errorf("expected bank 0 switched back in, got %02X", got)
		}
	})

	t.Run("bank select is masked to 2 bits and the bank count", func(t *testing.T) {
		m.Write(0x4000, 0x06)
		m.Write(0xA000, 0x33)
		m.Write(0x4000, 0x02)
		if got := m.Read(0xA000); got != 0x33 {
			t.Errorf("expected 0x06 masked to bank 2, got %02X", got)
		}
	})

	t.Run("disabled RAM reads open bus", func(t *testing.T) {
		m.Write(0x0000, 0x00)
		if got := m.Read(0xA000); got != openBus {
			t.Errorf("expected open bus when RAM disabled, got %02X", got)
		}
	})
}

func TestMBC1NoRAMFitted(t *testing.T) {
	m := newMBC1(taggedROM(2), Header{})
	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x42)
	if got := m.Read(0xA000); got != openBus {
		t.Errorf("expected open bus with no RAM fitted even when enabled, got %02X", got)
	}
}

func TestMBC1OutOfRangePanics(t *testing.T) {
	m := newMBC1(taggedROM(2), Header{})
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range address")
		}
	}()
	m.Read(0xC000)
}
