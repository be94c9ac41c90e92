package cartridge

import "testing"

func TestROMOnly(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0xAB
	rom[0x7FFF] = 0xCD
	header := Header{RAMSize: 8 * 1024}
	r := newROMOnly(rom, header)

	t.Run("reads pass through", func(t *testing.T) {
		if got := r.Read(0x0100); got != 0xAB {
			t.Errorf("expected 0xAB, got %02X", got)
		}
		if got := r.Read(0x7FFF); got != 0xCD {
			t.Errorf("expected 0xCD, got %02X", got)
		}
	})

	t.Run("ROM writes are no-ops", func(t *testing.T) {
		r.Write(0x0100, 0xFF)
		if got := r.Read(0x0100); got != 0xAB {
			t.Errorf("expected ROM write to be ignored, got %02X", got)
		}
	})

	t.Run("RAM read/write round-trip", func(t *testing.T) {
		r.Write(0xA000, 0x42)
		if got := r.Read(0xA000); got != 0x42 {
			t.Errorf("expected 0x42, got %02X", got)
		}
	})

	t.Run("out of range RAM reads as open bus", func(t *testing.T) {
		r2 := newROMOnly(rom, Header{RAMSize: 0})
		if got := r2.Read(0xA000); got != openBus {
			t.Errorf("expected open bus 0xFF, got %02X", got)
		}
	})

	t.Run("address outside mapped windows panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for out-of-range address")
			}
		}()
		r.Read(0xC000)
	})
}
