// Package insts provides LC-3 instruction definitions and decoding.
//
// This package implements decoding of LC-3 16-bit machine words into
// structured instruction representations. It supports the fourteen
// opcodes described by the LC-3 instruction set:
//   - ADD, AND (immediate and register forms), NOT
//   - BR, JSR, RET
//   - LD, LDI, LDR, ST, STI, STR, LEA
//   - TRAP
//
// JMP (general-register form of RET) and JSRR have no Op of their own:
// opcode 12 always decodes as OpRET and opcode 4 as OpJSR. RTI (opcode 8)
// and the reserved opcode 13 decode to OpRTI and OpRSVD but have no
// handler. KBSR/KBDR are device registers, not opcodes, and have no
// decoder footprint either way.
//
// Usage:
//
//	d := insts.NewDecoder()
//	inst := d.Decode(0x103F) // ADD R0, R0, #-1
//	fmt.Printf("Op: %v, DR: %d, SR1: %d, Imm: %d\n", inst.Op, inst.DR, inst.SR1, inst.Imm5)
package insts
