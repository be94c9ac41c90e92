package cpu

// bit tests bit b of a, updating Z/N/H; C is left untouched.
func (c *CPU) bit(a uint8, b uint8) {
	c.putFlag(FlagZero, a&(1<<b) == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

func (c *CPU) res(a uint8, b uint8) uint8 { return a &^ (1 << b) }

func (c *CPU) set(a uint8, b uint8) uint8 { return a | (1 << b) }
