package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lc3sim/lc3sim/insts"
)

var _ = Describe("Decoder", func() {
	var d *insts.Decoder

	BeforeEach(func() {
		d = insts.NewDecoder()
	})

	Describe("opcode extraction", func() {
		It("extracts the 4-bit opcode from bits 15:12", func() {
			inst := d.Decode(0x1234)
			Expect(inst.Op).To(Equal(insts.OpADD))
		})

		It("decodes every opcode value, supported or not", func() {
			cases := map[uint16]insts.Op{
				0x0000: insts.OpBR,
				0x1000: insts.OpADD,
				0x2000: insts.OpLD,
				0x3000: insts.OpST,
				0x4000: insts.OpJSR,
				0x5000: insts.OpAND,
				0x6000: insts.OpLDR,
				0x7000: insts.OpSTR,
				0x8000: insts.OpRTI,
				0x9000: insts.OpNOT,
				0xA000: insts.OpLDI,
				0xB000: insts.OpSTI,
				0xC000: insts.OpRET,
				0xD000: insts.OpRSVD,
				0xE000: insts.OpLEA,
				0xF000: insts.OpTRAP,
			}
			for word, op := range cases {
				Expect(d.Decode(word).Op).To(Equal(op), "word 0x%04X", word)
			}
		})
	})

	Describe("register fields", func() {
		It("extracts DR, SR1, SR2 from bits 11:9, 8:6, 2:0", func() {
			// ADD R3, R2, R1 = 0001 011 010 000 001
			inst := d.Decode(0b0001_011_010_000_001)
			Expect(inst.DR).To(Equal(uint8(3)))
			Expect(inst.SR1).To(Equal(uint8(2)))
			Expect(inst.SR2).To(Equal(uint8(1)))
		})
	})

	Describe("imm5 flag and sign extension", func() {
		It("sets ImmFlag from bit 5", func() {
			Expect(d.Decode(0b0001_000_000_1_00000).ImmFlag).To(BeTrue())
			Expect(d.Decode(0b0001_000_000_0_00000).ImmFlag).To(BeFalse())
		})

		It("sign-extends a negative imm5 to 16 bits", func() {
			// ADD R0, R0, #-1 -> imm5 = 11111
			inst := d.Decode(0x103F)
			Expect(inst.Imm5).To(Equal(int16(-1)))
		})

		It("zero-extends a positive imm5", func() {
			inst := d.Decode(0x1021) // imm5 = 00001
			Expect(inst.Imm5).To(Equal(int16(1)))
		})
	})

	Describe("PC-relative offsets", func() {
		It("sign-extends PCOffset9", func() {
			inst := d.Decode(0b0000_111_111111111) // -1
			Expect(inst.PCOffset9).To(Equal(int16(-1)))
		})

		It("sign-extends PCOffset11", func() {
			inst := d.Decode(0b0100_1_11111111111) // JSR, -1
			Expect(inst.PCOffset11).To(Equal(int16(-1)))
		})

		It("sign-extends offset6", func() {
			inst := d.Decode(0b0110_000_000_111111) // LDR, -1
			Expect(inst.Offset6).To(Equal(int16(-1)))
		})
	})

	Describe("trapvect8", func() {
		It("zero-extends the 8-bit trap vector", func() {
			inst := d.Decode(0xF025) // TRAP x25
			Expect(inst.TrapVect8).To(Equal(uint16(0x25)))
		})
	})

	Describe("BR condition flags", func() {
		It("extracts n, z, p from bits 11, 10, 9", func() {
			inst := d.Decode(0b0000_111_000000000)
			Expect(inst.N).To(BeTrue())
			Expect(inst.Z).To(BeTrue())
			Expect(inst.P).To(BeTrue())
		})

		It("is all-zero for a no-op BR", func() {
			inst := d.Decode(0b0000_000_000000000)
			Expect(inst.N).To(BeFalse())
			Expect(inst.Z).To(BeFalse())
			Expect(inst.P).To(BeFalse())
		})
	})
})
