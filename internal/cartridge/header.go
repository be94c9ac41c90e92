package cartridge

import "fmt"

// Type identifies which memory bank controller a cartridge header asks for.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
)

// ramSizes decodes the RAM-size byte at 0x0149. Unknown codes decode to 0.
// New does not reject a zero size for any cartridge type: a zero RAM size
// means no RAM is fitted.
var ramSizes = map[uint8]uint{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the parsed form of the cartridge header at 0x0100-0x014F.
type Header struct {
	CGBFlag         uint8
	SGBFlag         bool
	CartridgeType   Type
	ROMSize         uint
	RAMSize         uint
	DestinationCode uint8
	HeaderChecksum  uint8
}

// Parse reads a Header out of a full ROM image. rom must be longer than
// 0x150 bytes and its stored header checksum must match the computed one;
// otherwise Parse reports ErrHeaderTooShort or ErrHeaderChecksum.
func Parse(rom []byte) (Header, error) {
	if len(rom) <= 0x150 {
		return Header{}, ErrHeaderTooShort
	}

	var checksum int
	for i := 0x134; i <= 0x14C; i++ {
		checksum = checksum - int(rom[i]) - 1
	}
	want := rom[0x14D]
	if uint8(checksum&0xFF) != want {
		return Header{}, ErrHeaderChecksum
	}

	h := Header{
		CGBFlag:         rom[0x143],
		SGBFlag:         rom[0x146] == 0x03,
		CartridgeType:   Type(rom[0x147]),
		DestinationCode: rom[0x14A],
		HeaderChecksum:  want,
	}

	if romCode := rom[0x148]; romCode <= 0x08 {
		h.ROMSize = (32 * 1024) << romCode
	}
	h.RAMSize = ramSizes[rom[0x149]]

	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("type=%02X rom=%dKiB ram=%dKiB cgb=%02X", uint8(h.CartridgeType), h.ROMSize/1024, h.RAMSize/1024, h.CGBFlag)
}
