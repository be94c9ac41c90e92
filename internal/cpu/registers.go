package cpu

// Flag identifies one of the four bits the F register actually uses.
type Flag = uint8

const (
	FlagZero      Flag = 0x80
	FlagSubtract  Flag = 0x40
	FlagHalfCarry Flag = 0x20
	FlagCarry     Flag = 0x10
)

// Registers is the Sharp LR35902 register file: eight 8-bit registers
// addressed individually or in big-endian pairs, plus the 16-bit SP and
// PC. AF and SetAF mask the low nibble of F to zero, and the flag helpers
// only touch its high nibble; F itself is a plain field.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8

	SP, PC uint16
}

func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F&0xF0) }

func (r *Registers) SetBC(v uint16) { r.B = uint8(v >> 8); r.C = uint8(v) }
func (r *Registers) SetDE(v uint16) { r.D = uint8(v >> 8); r.E = uint8(v) }
func (r *Registers) SetHL(v uint16) { r.H = uint8(v >> 8); r.L = uint8(v) }
func (r *Registers) SetAF(v uint16) { r.A = uint8(v >> 8); r.F = uint8(v) & 0xF0 }

// clearFlag clears flag in F, preserving the others.
func (r *Registers) clearFlag(flag Flag) { r.F &^= flag }

// setFlag sets flag in F, preserving the others.
func (r *Registers) setFlag(flag Flag) { r.F |= flag }

// putFlag sets flag if on is true, clears it otherwise.
func (r *Registers) putFlag(flag Flag, on bool) {
	if on {
		r.setFlag(flag)
	} else {
		r.clearFlag(flag)
	}
}

// isFlagSet reports whether flag is currently set.
func (r *Registers) isFlagSet(flag Flag) bool { return r.F&flag != 0 }

// Reset zeroes every register, consistent with PC=0x0000 pre-boot; the
// machine is responsible for setting PC=0x0100 after a simulated boot.
func (r *Registers) Reset() {
	*r = Registers{}
}
