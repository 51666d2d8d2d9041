package core

// Memory-mapped device addresses (spec §4.2).
const (
	AddrDSR uint16 = 0xFE04 // display status register
	AddrDDR uint16 = 0xFE06 // display data register
	AddrMCR uint16 = 0xFFFE // machine control register
)

// Router resolves a 16-bit address to RAM or to one of the three aliased
// device registers, on both the read and the write path. Every data-path
// access performed by LD/LDR/ST/STR, and both address resolutions
// performed by LDI/STI, go through the Router. Instruction fetch and the
// TRAP vector-table lookup do not — they read RAM directly.
type Router struct {
	ram     *RAM
	display *Display
	mcr     *uint16
}

// NewRouter creates a Router over the given RAM, display, and MCR cell.
func NewRouter(ram *RAM, display *Display, mcr *uint16) *Router {
	return &Router{ram: ram, display: display, mcr: mcr}
}

// Read resolves addr to RAM or an aliased device register.
func (r *Router) Read(addr uint16) uint16 {
	switch addr {
	case AddrDSR:
		return r.display.Status
	case AddrDDR:
		return r.display.Data
	case AddrMCR:
		return *r.mcr
	default:
		return r.ram.Read(addr)
	}
}

// Write resolves addr to RAM or an aliased device register and stores v.
// A write to DDR also marks the display as having a character pending.
func (r *Router) Write(addr uint16, v uint16) {
	switch addr {
	case AddrDSR:
		r.display.Status = v
	case AddrDDR:
		r.display.Data = v
		r.display.Status = 0x0000
	case AddrMCR:
		*r.mcr = v
	default:
		r.ram.Write(addr, v)
	}
}
