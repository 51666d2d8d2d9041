package core

import (
	"fmt"
	"io"
	"os"

	"github.com/lc3sim/lc3sim/insts"
)

// StepResult reports the outcome of executing a single instruction.
type StepResult struct {
	// Err is set if the fetched instruction could not be executed
	// (unsupported opcode).
	Err error
}

// Machine is a complete LC-3 machine: register file, RAM, condition
// codes, display device, machine control register, and the execution
// units that implement the fourteen supported opcodes. A Machine value
// exclusively owns all of its state; nothing is shared across machines.
type Machine struct {
	regs    *RegFile
	ram     *RAM
	psr     *PSR
	display *Display
	mcr     uint16

	router *Router
	decode *insts.Decoder
	alu    *ALU
	branch *BranchUnit
	ls     *LoadStoreUnit
	trap   *TrapUnit

	stdout io.Writer

	cycles    uint64
	maxCycles uint64
}

// MachineOption configures a Machine at construction time.
type MachineOption func(*Machine)

// WithStdout sets the writer that receives characters drained from the
// display device. Defaults to os.Stdout.
func WithStdout(w io.Writer) MachineOption {
	return func(m *Machine) {
		m.stdout = w
	}
}

// WithMaxCycles caps the number of fetch-execute cycles Run will perform
// before giving up, guarding against a program that never halts. Zero
// (the default) means no limit.
func WithMaxCycles(max uint64) MachineOption {
	return func(m *Machine) {
		m.maxCycles = max
	}
}

// WithTrapVectorTable pre-populates RAM with a trap vector table, mapping
// trap vector number to handler address. This is a convenience for
// callers (tests, embedders) that want to install trap handlers without
// writing a second object file; the fetch-execute loop itself has no
// notion of a table beyond "read RAM[trapvect8]".
func WithTrapVectorTable(table map[uint16]uint16) MachineOption {
	return func(m *Machine) {
		for vect, addr := range table {
			m.ram.Write(vect, addr)
		}
	}
}

// NewMachine creates a Machine in its post-init state: Z=1, MCR running,
// display idle, RAM and registers zeroed.
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		regs:    &RegFile{},
		ram:     &RAM{},
		psr:     &PSR{Z: true},
		display: NewDisplay(),
		mcr:     0x8000,
		stdout:  os.Stdout,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.router = NewRouter(m.ram, m.display, &m.mcr)
	m.alu = NewALU(m.regs, m.psr)
	m.branch = NewBranchUnit(m.regs, m.psr)
	m.ls = NewLoadStoreUnit(m.regs, m.psr, m.router)
	m.trap = NewTrapUnit(m.regs, m.ram)
	m.decode = insts.NewDecoder()

	return m
}

// RegFile returns the machine's register file.
func (m *Machine) RegFile() *RegFile {
	return m.regs
}

// RAM returns the machine's RAM.
func (m *Machine) RAM() *RAM {
	return m.ram
}

// PSR returns the machine's condition-code unit.
func (m *Machine) PSR() *PSR {
	return m.psr
}

// Display returns the machine's display device.
func (m *Machine) Display() *Display {
	return m.display
}

// Router returns the machine's MMIO router.
func (m *Machine) Router() *Router {
	return m.router
}

// MCR returns the current value of the machine control register.
func (m *Machine) MCR() uint16 {
	return m.mcr
}

// CycleCount returns the number of fetch-execute cycles performed so far.
func (m *Machine) CycleCount() uint64 {
	return m.cycles
}

// Running reports whether bit 15 of MCR is set. The fetch-execute loop
// continues only while this holds.
func (m *Machine) Running() bool {
	return m.mcr&0x8000 != 0
}

// Load places words[i] at RAM[start_addr+i] (wrapping at 2^16) and sets
// PC to start_addr. Loading a second file overlays the first; PC ends at
// the most recently loaded file's start address, matching the behavior
// of loading multiple object files in argument order.
func (m *Machine) Load(startAddr uint16, words []uint16) {
	addr := startAddr
	for _, w := range words {
		m.ram.Write(addr, w)
		addr++
	}
	m.regs.PC = startAddr
}

// Step drains a pending display character, fetches and decodes the
// instruction at PC, advances PC, and dispatches to the matching
// handler. Instruction fetch reads RAM directly; it is never routed
// through the MMIO router.
func (m *Machine) Step() StepResult {
	if m.display.Pending() {
		_, _ = fmt.Fprintf(m.stdout, "%c", m.display.Char())
		m.display.Drain()
	}

	word := m.ram.Read(m.regs.PC)
	m.regs.IR = word
	m.regs.PC++

	inst := m.decode.Decode(word)
	m.cycles++

	if err := m.execute(inst); err != nil {
		return StepResult{Err: err}
	}
	return StepResult{}
}

// Run drives the fetch-execute loop until MCR bit 15 clears or an
// unsupported opcode is encountered. It returns 0 on a clean halt and 1
// otherwise (unsupported opcode, or the optional cycle cap was reached).
func (m *Machine) Run() int {
	for m.Running() {
		if m.maxCycles > 0 && m.cycles >= m.maxCycles {
			_, _ = fmt.Fprintf(os.Stderr, "lc3sim: exceeded max cycles (%d) at PC=0x%04X\n", m.maxCycles, m.regs.PC)
			return 1
		}
		result := m.Step()
		if result.Err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "lc3sim: %v\n", result.Err)
			return 1
		}
	}
	return 0
}

// execute dispatches a decoded instruction to its handler.
func (m *Machine) execute(inst insts.Instruction) error {
	switch inst.Op {
	case insts.OpADD:
		if inst.ImmFlag {
			m.alu.AddImm(inst.DR, inst.SR1, inst.Imm5)
		} else {
			m.alu.AddReg(inst.DR, inst.SR1, inst.SR2)
		}
	case insts.OpAND:
		if inst.ImmFlag {
			m.alu.AndImm(inst.DR, inst.SR1, inst.Imm5)
		} else {
			m.alu.AndReg(inst.DR, inst.SR1, inst.SR2)
		}
	case insts.OpNOT:
		m.alu.Not(inst.DR, inst.SR1)
	case insts.OpBR:
		m.branch.BR(inst.N, inst.Z, inst.P, inst.PCOffset9)
	case insts.OpJSR:
		m.branch.JSR(inst.PCOffset11)
	case insts.OpRET:
		m.branch.RET()
	case insts.OpLD:
		m.ls.LD(inst.DR, inst.PCOffset9)
	case insts.OpLDI:
		m.ls.LDI(inst.DR, inst.PCOffset9)
	case insts.OpLDR:
		m.ls.LDR(inst.DR, inst.SR1, inst.Offset6)
	case insts.OpST:
		m.ls.ST(inst.DR, inst.PCOffset9)
	case insts.OpSTI:
		m.ls.STI(inst.DR, inst.PCOffset9)
	case insts.OpSTR:
		m.ls.STR(inst.DR, inst.SR1, inst.Offset6)
	case insts.OpLEA:
		m.ls.LEA(inst.DR, inst.PCOffset9)
	case insts.OpTRAP:
		m.trap.Trap(inst.TrapVect8)
	default:
		return fmt.Errorf("pc=0x%04X opcode=%d: %w", m.regs.PC-1, inst.Op, ErrUnsupportedOpcode)
	}
	return nil
}
