package cartridge

import "testing"

func TestNewUnsupportedType(t *testing.T) {
	rom := validHeader(t, 0xFF, 0x00, 0x00)
	_, err := New(rom)
	if err != ErrUnsupportedCartridgeType {
		t.Errorf("expected ErrUnsupportedCartridgeType, got %v", err)
	}
}

func TestNewDigestStable(t *testing.T) {
	rom := validHeader(t, 0x00, 0x00, 0x00)
	c1, err := New(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2, err := New(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c1.Digest() != c2.Digest() {
		t.Errorf("expected stable digest, got %s and %s", c1.Digest(), c2.Digest())
	}
}

func TestNewRoutesMBC1Variants(t *testing.T) {
	for _, cartType := range []uint8{0x01, 0x02, 0x03} {
		rom := validHeader(t, cartType, 0x00, 0x02)
		c, err := New(rom)
		if err != nil {
			t.Fatalf("type %02X: unexpected error: %v", cartType, err)
		}
		if _, ok := c.MemoryBankController.(*mbc1); !ok {
			t.Errorf("type %02X: expected *mbc1, got %T", cartType, c.MemoryBankController)
		}
	}
}
