package core

// TrapUnit implements the LC-3 TRAP handler. Trap vectors are read
// straight from RAM, bypassing the Router, to match the original source
// (original_source/LC3.c's trap() reads memory[vect] directly). This
// only matters if a program installs a trap vector at 0x0000-0x00FF that
// happens to coincide with DSR/DDR/MCR, which those low addresses never
// do.
type TrapUnit struct {
	regs *RegFile
	ram  *RAM
}

// NewTrapUnit creates a TrapUnit connected to the given register file and
// RAM.
func NewTrapUnit(regs *RegFile, ram *RAM) *TrapUnit {
	return &TrapUnit{regs: regs, ram: ram}
}

// Trap saves the return address in R7 and branches to the address stored
// at RAM[trapvect8]. A well-formed trap routine either writes 0 to MCR
// (halting the machine) or executes RET to return to the caller.
func (t *TrapUnit) Trap(trapvect8 uint16) {
	t.regs.R[7] = t.regs.PC
	t.regs.PC = t.ram.Read(trapvect8)
}
