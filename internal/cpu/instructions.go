package cpu

import (
	"sixfiveoh/internal/mask"
	"sixfiveoh/internal/status"
)

// operand returns the value addressed by the current instruction's
// addressing mode: the accumulator itself in Accumulator mode, otherwise a
// bus read at absAddress.
func (c *CPU) operand() byte {
	if c.curMode == Accumulator {
		return c.A
	}
	return c.Bus.Read(c.absAddress)
}

// storeOperand writes v back to wherever operand() read it from.
func (c *CPU) storeOperand(v byte) {
	if c.curMode == Accumulator {
		c.A = v
		return
	}
	c.Bus.Write(c.absAddress, v)
}

func (c *CPU) setZN(v byte) {
	c.Status.SetZN(v)
}

// --- loads / stores ---

func (c *CPU) opLDA() { c.A = c.operand(); c.setZN(c.A) }
func (c *CPU) opLDX() { c.X = c.operand(); c.setZN(c.X) }
func (c *CPU) opLDY() { c.Y = c.operand(); c.setZN(c.Y) }

func (c *CPU) opSTA() { c.storeOperand(c.A) }
func (c *CPU) opSTX() { c.storeOperand(c.X) }
func (c *CPU) opSTY() { c.storeOperand(c.Y) }
func (c *CPU) opSTZ() { c.storeOperand(0) }

// --- transfers ---

func (c *CPU) opTAX() { c.X = c.A; c.setZN(c.X) }
func (c *CPU) opTAY() { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) opTXA() { c.A = c.X; c.setZN(c.A) }
func (c *CPU) opTYA() { c.A = c.Y; c.setZN(c.A) }
func (c *CPU) opTSX() { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) opTXS() { c.SP = c.X }

// --- stack ---

func (c *CPU) opPHA() { c.push(c.A) }
func (c *CPU) opPHX() { c.push(c.X) }
func (c *CPU) opPHY() { c.push(c.Y) }

func (c *CPU) opPLA() { c.A = c.pull(); c.setZN(c.A) }
func (c *CPU) opPLX() { c.X = c.pull(); c.setZN(c.X) }
func (c *CPU) opPLY() { c.Y = c.pull(); c.setZN(c.Y) }

func (c *CPU) opPHP() {
	c.Status.Set(status.B, true)
	c.Status.Set(status.U, true)
	c.push(c.Status.Byte())
}

func (c *CPU) opPLP() {
	v := c.pull()
	c.Status.FromByte(v)
	c.Status.Set(status.B, false)
	c.Status.Set(status.U, true)
}

// --- arithmetic ---

func (c *CPU) opADC() {
	m := c.operand()
	if c.Status.Get(status.D) {
		c.adcDecimal(m)
		return
	}
	carry := uint16(0)
	if c.Status.Get(status.C) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	result := byte(sum)
	c.Status.Set(status.C, sum > 0xFF)
	c.Status.Set(status.V, (c.A^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) opSBC() {
	m := c.operand()
	if c.Status.Get(status.D) {
		c.sbcDecimal(m)
		return
	}
	borrow := uint16(1)
	if c.Status.Get(status.C) {
		borrow = 0
	}
	diff := uint16(c.A) - uint16(m) - borrow
	result := byte(diff)
	c.Status.Set(status.C, diff <= 0xFF)
	c.Status.Set(status.V, (c.A^m)&(c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

// adcDecimal applies BCD correction per nibble after a binary add, the
// conventional software algorithm used when D=1.
func (c *CPU) adcDecimal(m byte) {
	carry := byte(0)
	if c.Status.Get(status.C) {
		carry = 1
	}
	lo := mask.LowNibble(c.A) + mask.LowNibble(m) + carry
	hi := mask.HighNibble(c.A) + mask.HighNibble(m)
	if lo > 9 {
		lo += 6
		hi++
	}
	if hi > 9 {
		hi += 6
	}
	result := (hi << 4) | (lo & 0x0F)
	c.Status.Set(status.C, hi > 15)
	binSum := uint16(c.A) + uint16(m) + uint16(carry)
	c.Status.Set(status.V, (c.A^byte(binSum))&(m^byte(binSum))&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) sbcDecimal(m byte) {
	borrow := byte(0)
	if !c.Status.Get(status.C) {
		borrow = 1
	}
	lo := int(mask.LowNibble(c.A)) - int(mask.LowNibble(m)) - int(borrow)
	hi := int(mask.HighNibble(c.A)) - int(mask.HighNibble(m))
	if lo < 0 {
		lo += 10
		hi--
	}
	if hi < 0 {
		hi += 10
	}
	result := byte((hi << 4) | (lo & 0x0F))
	binDiff := int(c.A) - int(m) - int(borrow)
	c.Status.Set(status.C, binDiff >= 0)
	c.Status.Set(status.V, (c.A^m)&(c.A^byte(binDiff))&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg byte) {
	m := c.operand()
	result := reg - m
	c.Status.Set(status.C, reg >= m)
	c.Status.Set(status.Z, reg == m)
	c.Status.Set(status.N, result&0x80 != 0)
}

func (c *CPU) opCMP() { c.compare(c.A) }
func (c *CPU) opCPX() { c.compare(c.X) }
func (c *CPU) opCPY() { c.compare(c.Y) }

// --- bitwise ---

func (c *CPU) opAND() { c.A &= c.operand(); c.setZN(c.A) }
func (c *CPU) opORA() { c.A |= c.operand(); c.setZN(c.A) }
func (c *CPU) opEOR() { c.A ^= c.operand(); c.setZN(c.A) }

func (c *CPU) opBIT() {
	m := c.operand()
	c.Status.Set(status.Z, c.A&m == 0)
	if c.curMode != Immediate {
		c.Status.Set(status.N, m&0x80 != 0)
		c.Status.Set(status.V, m&0x40 != 0)
	}
}

func (c *CPU) opTRB() {
	m := c.operand()
	c.Status.Set(status.Z, c.A&m == 0)
	c.storeOperand(m &^ c.A)
}

func (c *CPU) opTSB() {
	m := c.operand()
	c.Status.Set(status.Z, c.A&m == 0)
	c.storeOperand(m | c.A)
}

// --- shifts / rotates ---

func (c *CPU) opASL() {
	m := c.operand()
	c.Status.Set(status.C, m&0x80 != 0)
	m <<= 1
	c.setZN(m)
	c.storeOperand(m)
}

func (c *CPU) opLSR() {
	m := c.operand()
	c.Status.Set(status.C, m&0x01 != 0)
	m >>= 1
	c.setZN(m)
	c.storeOperand(m)
}

func (c *CPU) opROL() {
	m := c.operand()
	carryIn := byte(0)
	if c.Status.Get(status.C) {
		carryIn = 1
	}
	c.Status.Set(status.C, m&0x80 != 0)
	m = (m << 1) | carryIn
	c.setZN(m)
	c.storeOperand(m)
}

func (c *CPU) opROR() {
	m := c.operand()
	carryIn := byte(0)
	if c.Status.Get(status.C) {
		carryIn = 0x80
	}
	c.Status.Set(status.C, m&0x01 != 0)
	m = (m >> 1) | carryIn
	c.setZN(m)
	c.storeOperand(m)
}

// --- increments / decrements ---

func (c *CPU) opINC() { v := c.operand() + 1; c.setZN(v); c.storeOperand(v) }
func (c *CPU) opDEC() { v := c.operand() - 1; c.setZN(v); c.storeOperand(v) }

func (c *CPU) opINX() { c.X++; c.setZN(c.X) }
func (c *CPU) opDEX() { c.X--; c.setZN(c.X) }
func (c *CPU) opINY() { c.Y++; c.setZN(c.Y) }
func (c *CPU) opDEY() { c.Y--; c.setZN(c.Y) }

// --- flags ---

func (c *CPU) opCLC() { c.Status.Set(status.C, false) }
func (c *CPU) opSEC() { c.Status.Set(status.C, true) }
func (c *CPU) opCLI() { c.Status.Set(status.I, false) }
func (c *CPU) opSEI() { c.Status.Set(status.I, true) }
func (c *CPU) opCLD() { c.Status.Set(status.D, false) }
func (c *CPU) opSED() { c.Status.Set(status.D, true) }
func (c *CPU) opCLV() { c.Status.Set(status.V, false) }

// --- control flow ---

func (c *CPU) opJMP() { c.PC = c.absAddress }

func (c *CPU) opJSR() {
	c.pushWord(c.PC - 1)
	c.PC = c.absAddress
}

func (c *CPU) opRTS() {
	c.PC = c.pullWord() + 1
}

func (c *CPU) opBRK() {
	c.PC++
	c.pushWord(c.PC)
	c.Status.Set(status.B, true)
	c.Status.Set(status.U, true)
	c.push(c.Status.Byte())
	c.Status.Set(status.I, true)
	c.PC = c.Bus.ReadWord(vectorIRQ)
}

func (c *CPU) opRTI() {
	v := c.pull()
	c.Status.FromByte(v)
	c.Status.Set(status.B, false)
	c.Status.Set(status.U, true)
	c.PC = c.pullWord()
}

func (c *CPU) branch(take bool) {
	if take {
		c.PC = c.absAddress
	}
}

func (c *CPU) opBCC() { c.branch(!c.Status.Get(status.C)) }
func (c *CPU) opBCS() { c.branch(c.Status.Get(status.C)) }
func (c *CPU) opBEQ() { c.branch(c.Status.Get(status.Z)) }
func (c *CPU) opBNE() { c.branch(!c.Status.Get(status.Z)) }
func (c *CPU) opBMI() { c.branch(c.Status.Get(status.N)) }
func (c *CPU) opBPL() { c.branch(!c.Status.Get(status.N)) }
func (c *CPU) opBVC() { c.branch(!c.Status.Get(status.V)) }
func (c *CPU) opBVS() { c.branch(c.Status.Get(status.V)) }
func (c *CPU) opBRA() { c.branch(true) }

func (c *CPU) opNOP() {}

func (c *CPU) opWAI() { c.waiting = true }
func (c *CPU) opSTP() { c.halted = true }

// --- CMOS bit-index family: RMB/SMB/BBR/BBS ---
//
// All four share the same opcode encoding, n<<4 | base, where n (0-7) is
// the bit index embedded in bits 4-6 of the opcode byte.

func bitIndex(opcode byte) byte {
	return mask.Range(opcode, mask.I2, mask.I4)
}

func (c *CPU) opRMB() {
	n := bitIndex(c.curOpcode)
	v := c.operand() &^ (1 << n)
	c.storeOperand(v)
}

func (c *CPU) opSMB() {
	n := bitIndex(c.curOpcode)
	v := c.operand() | (1 << n)
	c.storeOperand(v)
}

// opBBR/opBBS read the zero-page operand, then a second (relative) operand
// byte that addressing.go does not model directly (BBRn/BBSn is the one
// 3-byte instruction whose second operand is always the branch offset
// immediately following the zero-page address, regardless of the
// CPU-wide addressing mode table).
func (c *CPU) opBBR() {
	n := bitIndex(c.curOpcode)
	zp := c.operand()
	offset := int8(c.Bus.Read(c.PC))
	c.PC++
	target := uint16(int32(c.PC) + int32(offset))
	if zp&(1<<n) == 0 {
		c.PC = target
	}
}

func (c *CPU) opBBS() {
	n := bitIndex(c.curOpcode)
	zp := c.operand()
	offset := int8(c.Bus.Read(c.PC))
	c.PC++
	target := uint16(int32(c.PC) + int32(offset))
	if zp&(1<<n) != 0 {
		c.PC = target
	}
}
