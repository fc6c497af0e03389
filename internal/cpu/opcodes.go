package cpu

// opcode describes one byte value's addressing mode, base cycle count, the
// instruction it dispatches to, and its mnemonic (used by the debugger).
type opcode struct {
	mode   AddressingMode
	cycles int
	exec   func(*CPU)
	name   string
}

// opcodeTable maps every one of the 256 possible opcode bytes to an entry.
// It is built once in init: the documented 65C02 instruction set, the
// bit-indexed RMB/SMB/BBR/BBS family generated programmatically, then a
// fallback pass filling every remaining byte with a NOP of the width and
// cycle count conventionally assigned to that unused opcode column.
var opcodeTable = map[byte]opcode{}

func def(b byte, name string, mode AddressingMode, cycles int, exec func(*CPU)) {
	opcodeTable[b] = opcode{mode: mode, cycles: cycles, exec: exec, name: name}
}

func init() {
	// ADC
	def(0x69, "ADC", Immediate, 2, (*CPU).opADC)
	def(0x65, "ADC", ZeroPage, 3, (*CPU).opADC)
	def(0x75, "ADC", ZeroPageX, 4, (*CPU).opADC)
	def(0x6D, "ADC", Absolute, 4, (*CPU).opADC)
	def(0x7D, "ADC", AbsoluteX, 4, (*CPU).opADC)
	def(0x79, "ADC", AbsoluteY, 4, (*CPU).opADC)
	def(0x61, "ADC", IndirectX, 6, (*CPU).opADC)
	def(0x71, "ADC", IndirectY, 5, (*CPU).opADC)
	def(0x72, "ADC", IndirectZP, 5, (*CPU).opADC)

	// AND
	def(0x29, "AND", Immediate, 2, (*CPU).opAND)
	def(0x25, "AND", ZeroPage, 3, (*CPU).opAND)
	def(0x35, "AND", ZeroPageX, 4, (*CPU).opAND)
	def(0x2D, "AND", Absolute, 4, (*CPU).opAND)
	def(0x3D, "AND", AbsoluteX, 4, (*CPU).opAND)
	def(0x39, "AND", AbsoluteY, 4, (*CPU).opAND)
	def(0x21, "AND", IndirectX, 6, (*CPU).opAND)
	def(0x31, "AND", IndirectY, 5, (*CPU).opAND)
	def(0x32, "AND", IndirectZP, 5, (*CPU).opAND)

	// ASL
	def(0x0A, "ASL", Accumulator, 2, (*CPU).opASL)
	def(0x06, "ASL", ZeroPage, 5, (*CPU).opASL)
	def(0x16, "ASL", ZeroPageX, 6, (*CPU).opASL)
	def(0x0E, "ASL", Absolute, 6, (*CPU).opASL)
	def(0x1E, "ASL", AbsoluteX, 6, (*CPU).opASL)

	// branches
	def(0x90, "BCC", Relative, 2, (*CPU).opBCC)
	def(0xB0, "BCS", Relative, 2, (*CPU).opBCS)
	def(0xF0, "BEQ", Relative, 2, (*CPU).opBEQ)
	def(0x30, "BMI", Relative, 2, (*CPU).opBMI)
	def(0xD0, "BNE", Relative, 2, (*CPU).opBNE)
	def(0x10, "BPL", Relative, 2, (*CPU).opBPL)
	def(0x50, "BVC", Relative, 2, (*CPU).opBVC)
	def(0x70, "BVS", Relative, 2, (*CPU).opBVS)
	def(0x80, "BRA", Relative, 3, (*CPU).opBRA)

	// BIT
	def(0x24, "BIT", ZeroPage, 3, (*CPU).opBIT)
	def(0x2C, "BIT", Absolute, 4, (*CPU).opBIT)
	def(0x34, "BIT", ZeroPageX, 4, (*CPU).opBIT)
	def(0x3C, "BIT", AbsoluteX, 4, (*CPU).opBIT)
	def(0x89, "BIT", Immediate, 2, (*CPU).opBIT)

	def(0x00, "BRK", Implied, 7, (*CPU).opBRK)

	// flags
	def(0x18, "CLC", Implied, 2, (*CPU).opCLC)
	def(0x38, "SEC", Implied, 2, (*CPU).opSEC)
	def(0x58, "CLI", Implied, 2, (*CPU).opCLI)
	def(0x78, "SEI", Implied, 2, (*CPU).opSEI)
	def(0xB8, "CLV", Implied, 2, (*CPU).opCLV)
	def(0xD8, "CLD", Implied, 2, (*CPU).opCLD)
	def(0xF8, "SED", Implied, 2, (*CPU).opSED)

	// CMP
	def(0xC9, "CMP", Immediate, 2, (*CPU).opCMP)
	def(0xC5, "CMP", ZeroPage, 3, (*CPU).opCMP)
	def(0xD5, "CMP", ZeroPageX, 4, (*CPU).opCMP)
	def(0xCD, "CMP", Absolute, 4, (*CPU).opCMP)
	def(0xDD, "CMP", AbsoluteX, 4, (*CPU).opCMP)
	def(0xD9, "CMP", AbsoluteY, 4, (*CPU).opCMP)
	def(0xC1, "CMP", IndirectX, 6, (*CPU).opCMP)
	def(0xD1, "CMP", IndirectY, 5, (*CPU).opCMP)
	def(0xD2, "CMP", IndirectZP, 5, (*CPU).opCMP)

	def(0xE0, "CPX", Immediate, 2, (*CPU).opCPX)
	def(0xE4, "CPX", ZeroPage, 3, (*CPU).opCPX)
	def(0xEC, "CPX", Absolute, 4, (*CPU).opCPX)

	def(0xC0, "CPY", Immediate, 2, (*CPU).opCPY)
	def(0xC4, "CPY", ZeroPage, 3, (*CPU).opCPY)
	def(0xCC, "CPY", Absolute, 4, (*CPU).opCPY)

	// DEC / INC
	def(0xC6, "DEC", ZeroPage, 5, (*CPU).opDEC)
	def(0xD6, "DEC", ZeroPageX, 6, (*CPU).opDEC)
	def(0xCE, "DEC", Absolute, 6, (*CPU).opDEC)
	def(0xDE, "DEC", AbsoluteX, 7, (*CPU).opDEC)
	def(0x3A, "DEC", Accumulator, 2, (*CPU).opDEC)

	def(0xE6, "INC", ZeroPage, 5, (*CPU).opINC)
	def(0xF6, "INC", ZeroPageX, 6, (*CPU).opINC)
	def(0xEE, "INC", Absolute, 6, (*CPU).opINC)
	def(0xFE, "INC", AbsoluteX, 7, (*CPU).opINC)
	def(0x1A, "INC", Accumulator, 2, (*CPU).opINC)

	def(0xCA, "DEX", Implied, 2, (*CPU).opDEX)
	def(0xE8, "INX", Implied, 2, (*CPU).opINX)
	def(0x88, "DEY", Implied, 2, (*CPU).opDEY)
	def(0xC8, "INY", Implied, 2, (*CPU).opINY)

	// EOR
	def(0x49, "EOR", Immediate, 2, (*CPU).opEOR)
	def(0x45, "EOR", ZeroPage, 3, (*CPU).opEOR)
	def(0x55, "EOR", ZeroPageX, 4, (*CPU).opEOR)
	def(0x4D, "EOR", Absolute, 4, (*CPU).opEOR)
	def(0x5D, "EOR", AbsoluteX, 4, (*CPU).opEOR)
	def(0x59, "EOR", AbsoluteY, 4, (*CPU).opEOR)
	def(0x41, "EOR", IndirectX, 6, (*CPU).opEOR)
	def(0x51, "EOR", IndirectY, 5, (*CPU).opEOR)
	def(0x52, "EOR", IndirectZP, 5, (*CPU).opEOR)

	// JMP / JSR / RTS / RTI
	def(0x4C, "JMP", Absolute, 3, (*CPU).opJMP)
	def(0x6C, "JMP", Indirect, 6, (*CPU).opJMP)
	def(0x7C, "JMP", IndirectAbsoluteX, 6, (*CPU).opJMP)
	def(0x20, "JSR", Absolute, 6, (*CPU).opJSR)
	def(0x60, "RTS", Implied, 6, (*CPU).opRTS)
	def(0x40, "RTI", Implied, 6, (*CPU).opRTI)

	// LDA / LDX / LDY
	def(0xA9, "LDA", Immediate, 2, (*CPU).opLDA)
	def(0xA5, "LDA", ZeroPage, 3, (*CPU).opLDA)
	def(0xB5, "LDA", ZeroPageX, 4, (*CPU).opLDA)
	def(0xAD, "LDA", Absolute, 4, (*CPU).opLDA)
	def(0xBD, "LDA", AbsoluteX, 4, (*CPU).opLDA)
	def(0xB9, "LDA", AbsoluteY, 4, (*CPU).opLDA)
	def(0xA1, "LDA", IndirectX, 6, (*CPU).opLDA)
	def(0xB1, "LDA", IndirectY, 5, (*CPU).opLDA)
	def(0xB2, "LDA", IndirectZP, 5, (*CPU).opLDA)

	def(0xA2, "LDX", Immediate, 2, (*CPU).opLDX)
	def(0xA6, "LDX", ZeroPage, 3, (*CPU).opLDX)
	def(0xB6, "LDX", ZeroPageY, 4, (*CPU).opLDX)
	def(0xAE, "LDX", Absolute, 4, (*CPU).opLDX)
	def(0xBE, "LDX", AbsoluteY, 4, (*CPU).opLDX)

	def(0xA0, "LDY", Immediate, 2, (*CPU).opLDY)
	def(0xA4, "LDY", ZeroPage, 3, (*CPU).opLDY)
	def(0xB4, "LDY", ZeroPageX, 4, (*CPU).opLDY)
	def(0xAC, "LDY", Absolute, 4, (*CPU).opLDY)
	def(0xBC, "LDY", AbsoluteX, 4, (*CPU).opLDY)

	// LSR
	def(0x4A, "LSR", Accumulator, 2, (*CPU).opLSR)
	def(0x46, "LSR", ZeroPage, 5, (*CPU).opLSR)
	def(0x56, "LSR", ZeroPageX, 6, (*CPU).opLSR)
	def(0x4E, "LSR", Absolute, 6, (*CPU).opLSR)
	def(0x5E, "LSR", AbsoluteX, 6, (*CPU).opLSR)

	def(0xEA, "NOP", Implied, 2, (*CPU).opNOP)

	// ORA
	def(0x09, "ORA", Immediate, 2, (*CPU).opORA)
	def(0x05, "ORA", ZeroPage, 3, (*CPU).opORA)
	def(0x15, "ORA", ZeroPageX, 4, (*CPU).opORA)
	def(0x0D, "ORA", Absolute, 4, (*CPU).opORA)
	def(0x1D, "ORA", AbsoluteX, 4, (*CPU).opORA)
	def(0x19, "ORA", AbsoluteY, 4, (*CPU).opORA)
	def(0x01, "ORA", IndirectX, 6, (*CPU).opORA)
	def(0x11, "ORA", IndirectY, 5, (*CPU).opORA)
	def(0x12, "ORA", IndirectZP, 5, (*CPU).opORA)

	// stack
	def(0x48, "PHA", Implied, 3, (*CPU).opPHA)
	def(0x68, "PLA", Implied, 4, (*CPU).opPLA)
	def(0x08, "PHP", Implied, 3, (*CPU).opPHP)
	def(0x28, "PLP", Implied, 4, (*CPU).opPLP)
	def(0xDA, "PHX", Implied, 3, (*CPU).opPHX)
	def(0xFA, "PLX", Implied, 4, (*CPU).opPLX)
	def(0x5A, "PHY", Implied, 3, (*CPU).opPHY)
	def(0x7A, "PLY", Implied, 4, (*CPU).opPLY)
	def(0x9A, "TXS", Implied, 2, (*CPU).opTXS)
	def(0xBA, "TSX", Implied, 2, (*CPU).opTSX)

	// ROL / ROR
	def(0x2A, "ROL", Accumulator, 2, (*CPU).opROL)
	def(0x26, "ROL", ZeroPage, 5, (*CPU).opROL)
	def(0x36, "ROL", ZeroPageX, 6, (*CPU).opROL)
	def(0x2E, "ROL", Absolute, 6, (*CPU).opROL)
	def(0x3E, "ROL", AbsoluteX, 6, (*CPU).opROL)

	def(0x6A, "ROR", Accumulator, 2, (*CPU).opROR)
	def(0x66, "ROR", ZeroPage, 5, (*CPU).opROR)
	def(0x76, "ROR", ZeroPageX, 6, (*CPU).opROR)
	def(0x6E, "ROR", Absolute, 6, (*CPU).opROR)
	def(0x7E, "ROR", AbsoluteX, 6, (*CPU).opROR)

	// SBC
	def(0xE9, "SBC", Immediate, 2, (*CPU).opSBC)
	def(0xE5, "SBC", ZeroPage, 3, (*CPU).opSBC)
	def(0xF5, "SBC", ZeroPageX, 4, (*CPU).opSBC)
	def(0xED, "SBC", Absolute, 4, (*CPU).opSBC)
	def(0xFD, "SBC", AbsoluteX, 4, (*CPU).opSBC)
	def(0xF9, "SBC", AbsoluteY, 4, (*CPU).opSBC)
	def(0xE1, "SBC", IndirectX, 6, (*CPU).opSBC)
	def(0xF1, "SBC", IndirectY, 5, (*CPU).opSBC)
	def(0xF2, "SBC", IndirectZP, 5, (*CPU).opSBC)

	// STA / STX / STY / STZ
	def(0x85, "STA", ZeroPage, 3, (*CPU).opSTA)
	def(0x95, "STA", ZeroPageX, 4, (*CPU).opSTA)
	def(0x8D, "STA", Absolute, 4, (*CPU).opSTA)
	def(0x9D, "STA", AbsoluteX, 5, (*CPU).opSTA)
	def(0x99, "STA", AbsoluteY, 5, (*CPU).opSTA)
	def(0x81, "STA", IndirectX, 6, (*CPU).opSTA)
	def(0x91, "STA", IndirectY, 6, (*CPU).opSTA)
	def(0x92, "STA", IndirectZP, 5, (*CPU).opSTA)

	def(0x86, "STX", ZeroPage, 3, (*CPU).opSTX)
	def(0x96, "STX", ZeroPageY, 4, (*CPU).opSTX)
	def(0x8E, "STX", Absolute, 4, (*CPU).opSTX)

	def(0x84, "STY", ZeroPage, 3, (*CPU).opSTY)
	def(0x94, "STY", ZeroPageX, 4, (*CPU).opSTY)
	def(0x8C, "STY", Absolute, 4, (*CPU).opSTY)

	def(0x64, "STZ", ZeroPage, 3, (*CPU).opSTZ)
	def(0x74, "STZ", ZeroPageX, 4, (*CPU).opSTZ)
	def(0x9C, "STZ", Absolute, 4, (*CPU).opSTZ)
	def(0x9E, "STZ", AbsoluteX, 5, (*CPU).opSTZ)

	// TRB / TSB
	def(0x14, "TRB", ZeroPage, 5, (*CPU).opTRB)
	def(0x1C, "TRB", Absolute, 6, (*CPU).opTRB)
	def(0x04, "TSB", ZeroPage, 5, (*CPU).opTSB)
	def(0x0C, "TSB", Absolute, 6, (*CPU).opTSB)

	// transfers
	def(0xAA, "TAX", Implied, 2, (*CPU).opTAX)
	def(0x8A, "TXA", Implied, 2, (*CPU).opTXA)
	def(0xA8, "TAY", Implied, 2, (*CPU).opTAY)
	def(0x98, "TYA", Implied, 2, (*CPU).opTYA)

	// WAI / STP
	def(0xCB, "WAI", Implied, 3, (*CPU).opWAI)
	def(0xDB, "STP", Implied, 3, (*CPU).opSTP)

	defineBitIndexFamily()
	fillUnusedOpcodesAsNOP()
}

// defineBitIndexFamily generates the 32 RMB/SMB/BBR/BBS opcodes: each
// family's opcode byte encodes its bit index n (0-7) in bits 4-6.
func defineBitIndexFamily() {
	for n := byte(0); n < 8; n++ {
		def(0x07|(n<<4), "RMB", ZeroPage, 5, (*CPU).opRMB)
		def(0x87|(n<<4), "SMB", ZeroPage, 5, (*CPU).opSMB)
		def(0x0F|(n<<4), "BBR", ZeroPage, 5, (*CPU).opBBR)
		def(0x8F|(n<<4), "BBS", ZeroPage, 5, (*CPU).opBBS)
	}
}

// fillUnusedOpcodesAsNOP covers every remaining byte value with a NOP of
// the operand width conventionally assigned to that column by the WDC
// 65C02 datasheet, satisfying the requirement that the opcode table be
// exhaustive over all 256 byte values.
func fillUnusedOpcodesAsNOP() {
	twoByteImm := map[byte]bool{0x02: true, 0x22: true, 0x42: true, 0x62: true, 0x82: true, 0xC2: true, 0xE2: true, 0x44: true}
	twoByteZPX := map[byte]bool{0x54: true, 0xD4: true, 0xF4: true}
	threeByteAbsX := map[byte]bool{0xDC: true, 0xFC: true}
	threeByteAbs := map[byte]bool{0x5C: true}

	for b := 0; b < 256; b++ {
		byteVal := byte(b)
		if _, ok := opcodeTable[byteVal]; ok {
			continue
		}
		switch {
		case twoByteImm[byteVal]:
			def(byteVal, "NOP", Immediate, 2, (*CPU).opNOP)
		case twoByteZPX[byteVal]:
			def(byteVal, "NOP", ZeroPageX, 4, (*CPU).opNOP)
		case threeByteAbsX[byteVal]:
			def(byteVal, "NOP", AbsoluteX, 4, (*CPU).opNOP)
		case threeByteAbs[byteVal]:
			def(byteVal, "NOP", Absolute, 8, (*CPU).opNOP)
		default:
			def(byteVal, "NOP", Implied, 2, (*CPU).opNOP)
		}
	}
}
