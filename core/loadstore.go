package core

// LoadStoreUnit implements the LC-3 LD, LDI, LDR, ST, STI, STR, and LEA
// handlers. Every access goes through the Router, including both address
// resolutions of LDI/STI — the PC-relative pointer fetch is itself a
// routed read, not a raw RAM access.
type LoadStoreUnit struct {
	regs   *RegFile
	psr    *PSR
	router *Router
}

// NewLoadStoreUnit creates a LoadStoreUnit connected to the given
// register file, PSR, and router.
func NewLoadStoreUnit(regs *RegFile, psr *PSR, router *Router) *LoadStoreUnit {
	return &LoadStoreUnit{regs: regs, psr: psr, router: router}
}

// LD performs DR <- router.Read(PC + sign_ext(pcoffset9)) and sets CC.
func (u *LoadStoreUnit) LD(dr uint8, pcoffset9 int16) {
	addr := u.regs.PC + uint16(pcoffset9)
	v := u.router.Read(addr)
	u.regs.WriteReg(dr, v)
	u.psr.SetCC(int16(v))
}

// LDI performs ptr <- router.Read(PC + sign_ext(pcoffset9)); DR <-
// router.Read(ptr), and sets CC. Both reads are routed.
func (u *LoadStoreUnit) LDI(dr uint8, pcoffset9 int16) {
	ptrAddr := u.regs.PC + uint16(pcoffset9)
	ptr := u.router.Read(ptrAddr)
	v := u.router.Read(ptr)
	u.regs.WriteReg(dr, v)
	u.psr.SetCC(int16(v))
}

// LDR performs DR <- router.Read(BaseR + sign_ext(offset6)) and sets CC.
func (u *LoadStoreUnit) LDR(dr, baseR uint8, offset6 int16) {
	addr := u.regs.ReadReg(baseR) + uint16(offset6)
	v := u.router.Read(addr)
	u.regs.WriteReg(dr, v)
	u.psr.SetCC(int16(v))
}

// ST performs router.Write(PC + sign_ext(pcoffset9), SR). CC is unchanged.
func (u *LoadStoreUnit) ST(sr uint8, pcoffset9 int16) {
	addr := u.regs.PC + uint16(pcoffset9)
	u.router.Write(addr, u.regs.ReadReg(sr))
}

// STI performs ptr <- router.Read(PC + sign_ext(pcoffset9));
// router.Write(ptr, SR). CC is unchanged.
func (u *LoadStoreUnit) STI(sr uint8, pcoffset9 int16) {
	ptrAddr := u.regs.PC + uint16(pcoffset9)
	ptr := u.router.Read(ptrAddr)
	u.router.Write(ptr, u.regs.ReadReg(sr))
}

// STR performs router.Write(BaseR + sign_ext(offset6), SR). CC is unchanged.
func (u *LoadStoreUnit) STR(sr, baseR uint8, offset6 int16) {
	addr := u.regs.ReadReg(baseR) + uint16(offset6)
	u.router.Write(addr, u.regs.ReadReg(sr))
}

// LEA performs DR <- PC + sign_ext(pcoffset9) and sets CC. LEA never
// touches memory; the router is not invoked.
func (u *LoadStoreUnit) LEA(dr uint8, pcoffset9 int16) {
	v := u.regs.PC + uint16(pcoffset9)
	u.regs.WriteReg(dr, v)
	u.psr.SetCC(int16(v))
}
