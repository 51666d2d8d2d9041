package core

// BranchUnit implements the LC-3 BR, JSR, and RET handlers. None of the
// three touch the condition codes.
type BranchUnit struct {
	regs *RegFile
	psr  *PSR
}

// NewBranchUnit creates a BranchUnit connected to the given register file
// and PSR.
func NewBranchUnit(regs *RegFile, psr *PSR) *BranchUnit {
	return &BranchUnit{regs: regs, psr: psr}
}

// BR branches to PC + sign_ext(pcoffset9) if any of the requested
// condition bits matches the current CC. nzp == false,false,false is
// always a no-op; nzp == true,true,true is always taken.
func (b *BranchUnit) BR(n, z, p bool, pcoffset9 int16) {
	taken := (n && b.psr.N) || (z && b.psr.Z) || (p && b.psr.P)
	if taken {
		b.regs.PC += uint16(pcoffset9)
	}
}

// JSR saves the return address in R7 and branches to
// PC + sign_ext(pcoffset11). The JSRR form (bit 11 clear) is not
// supported by this core.
func (b *BranchUnit) JSR(pcoffset11 int16) {
	b.regs.R[7] = b.regs.PC
	b.regs.PC += uint16(pcoffset11)
}

// RET branches to the address saved in R7. The general JMP form with an
// arbitrary base register is not supported by this core.
func (b *BranchUnit) RET() {
	b.regs.PC = b.regs.R[7]
}
