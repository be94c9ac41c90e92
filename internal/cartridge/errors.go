package cartridge

import "errors"

// Load-time errors the cartridge package surfaces to its caller. Runtime
// bus-decode mistakes (routing a non-cartridge address here) panic instead,
// since they indicate a bug in the bus rather than a bad ROM.
var (
	ErrHeaderTooShort           = errors.New("cartridge: header too short")
	ErrHeaderChecksum           = errors.New("cartridge: header checksum mismatch")
	ErrUnsupportedCartridgeType = errors.New("cartridge: unsupported cartridge type")
)

// ErrCartridgeAddressOutOfRange indicates the bus routed an address to the
// cartridge that the cartridge has no mapping for. This is always a decode
// bug in the bus, never a property of the ROM.
type ErrCartridgeAddressOutOfRange struct {
	Address uint16
}

func (e ErrCartridgeAddressOutOfRange) Error() string {
	return "cartridge: address out of range"
}
