package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lc3sim/lc3sim/core"
)

var _ = Describe("LoadStoreUnit", func() {
	var (
		regs    *core.RegFile
		psr     *core.PSR
		ram     *core.RAM
		display *core.Display
		mcr     uint16
		router  *core.Router
		ls      *core.LoadStoreUnit
	)

	BeforeEach(func() {
		regs = &core.RegFile{PC: 0x3000}
		psr = &core.PSR{}
		ram = &core.RAM{}
		display = core.NewDisplay()
		mcr = 0x8000
		router = core.NewRouter(ram, display, &mcr)
		ls = core.NewLoadStoreUnit(regs, psr, router)
	})

	It("LD reads PC-relative and sets CC", func() {
		ram.Write(0x3005, 0x0042)
		ls.LD(0, 5)
		Expect(regs.ReadReg(0)).To(Equal(uint16(0x0042)))
		Expect(psr.P).To(BeTrue())
	})

	It("LDI double-routes: a PC-relative pointer to DDR reads display.Data", func() {
		ram.Write(0x3005, core.AddrDDR) // the pointer itself lives in RAM
		display.Data = 0x55
		ls.LDI(1, 5)
		Expect(regs.ReadReg(1)).To(Equal(uint16(0x55)))
	})

	It("LDR reads BaseR-relative", func() {
		regs.WriteReg(2, 0x4000)
		ram.Write(0x4003, 0x7777)
		ls.LDR(0, 2, 3)
		Expect(regs.ReadReg(0)).To(Equal(uint16(0x7777)))
	})

	It("ST writes PC-relative through the router", func() {
		regs.WriteReg(3, 0xABCD)
		ls.ST(3, 2)
		Expect(ram.Read(0x3002)).To(Equal(uint16(0xABCD)))
	})

	It("STI double-routes: writing through a pointer to DDR sets display state", func() {
		ram.Write(0x3002, core.AddrDDR)
		regs.WriteReg(3, 0x42)
		ls.STI(3, 2)
		Expect(display.Data).To(Equal(uint16(0x42)))
		Expect(display.Status).To(Equal(uint16(0x0000)))
	})

	It("STR writes BaseR-relative through the router", func() {
		regs.WriteReg(2, 0x4000)
		regs.WriteReg(3, 0x1111)
		ls.STR(3, 2, 1)
		Expect(ram.Read(0x4001)).To(Equal(uint16(0x1111)))
	})

	It("LEA computes an address and sets CC without touching the router", func() {
		ls.LEA(0, 0x10)
		Expect(regs.ReadReg(0)).To(Equal(uint16(0x3010)))
		Expect(psr.P).To(BeTrue())
		Expect(ram.Read(0x3010)).To(Equal(uint16(0))) // untouched
	})
})
