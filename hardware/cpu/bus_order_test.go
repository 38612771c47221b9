// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

var _ = Describe("Bus access", func() {
	var (
		mockCtrl *gomock.Controller
		mem      *MockMemory
		mc       *cpu.CPU
	)

	// reads expects a read of each address in turn, returning the paired value
	reads := func(pairs ...uint16) []*gomock.Call {
		calls := make([]*gomock.Call, 0, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			calls = append(calls, mem.EXPECT().Read(pairs[i]).Return(uint8(pairs[i+1])))
		}
		return calls
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mem = NewMockMemory(mockCtrl)
		mc = cpu.NewCPU(mem)
		mc.PC.Load(0x0200)
		mc.SP.Load(0xff)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("when reading operands", func() {
		It("should read an absolute operand and then the effective address", func() {
			gomock.InOrder(reads(
				0x0200, 0xad,
				0x0201, 0x34,
				0x0202, 0x12,
				0x1234, 0x80,
			)...)

			mc.Step()

			Expect(mc.A.Value()).To(Equal(uint8(0x80)))
			Expect(mc.Status.Sign).To(BeTrue())
			Expect(mc.PC.Address()).To(Equal(uint16(0x0203)))
			Expect(mc.LastResult.ByteCount).To(Equal(3))
			Expect(mc.LastResult.IsValid()).To(Succeed())
		})

		It("should read an immediate operand once only", func() {
			gomock.InOrder(reads(
				0x0200, 0xa9,
				0x0201, 0x05,
			)...)

			mc.Step()

			Expect(mc.A.Value()).To(Equal(uint8(0x05)))
			Expect(mc.PC.Address()).To(Equal(uint16(0x0202)))
		})

		It("should read the pointer from page zero for indirect indexed stores", func() {
			mc.A.Load(0x99)
			mc.Y.Load(0x10)

			calls := reads(
				0x0200, 0x91,
				0x0201, 0x20,
				0x0020, 0x00,
				0x0021, 0x30,
			)
			calls = append(calls, mem.EXPECT().Write(uint16(0x3010), uint8(0x99)))
			gomock.InOrder(calls...)

			mc.Step()

			Expect(mc.PC.Address()).To(Equal(uint16(0x0202)))
		})

		It("should wrap the pointer of indexed indirect within page zero", func() {
			mc.X.Load(0x01)

			gomock.InOrder(reads(
				0x0200, 0xa1,
				0x0201, 0xfe,
				0x00ff, 0x00,
				0x0000, 0x40,
				0x4000, 0x11,
			)...)

			mc.Step()

			Expect(mc.A.Value()).To(Equal(uint8(0x11)))
		})
	})

	Context("when modifying memory", func() {
		It("should read once and write once", func() {
			calls := reads(
				0x0200, 0xe6,
				0x0201, 0x40,
				0x0040, 0x7f,
			)
			calls = append(calls, mem.EXPECT().Write(uint16(0x0040), uint8(0x80)))
			gomock.InOrder(calls...)

			mc.Step()

			Expect(mc.Status.Sign).To(BeTrue())
			Expect(mc.Status.Zero).To(BeFalse())
		})
	})

	Context("when using the stack", func() {
		It("should push the return address between the operand reads for JSR", func() {
			calls := reads(
				0x0200, 0x20,
				0x0201, 0x00,
			)
			calls = append(calls,
				mem.EXPECT().Write(uint16(0x01ff), uint8(0x02)),
				mem.EXPECT().Write(uint16(0x01fe), uint8(0x02)),
			)
			calls = append(calls, reads(0x0202, 0x30)...)
			gomock.InOrder(calls...)

			mc.Step()

			Expect(mc.PC.Address()).To(Equal(uint16(0x3000)))
			Expect(mc.SP.Value()).To(Equal(uint8(0xfd)))
		})

		It("should pull the return address low byte first for RTS", func() {
			mc.SP.Load(0xfd)

			gomock.InOrder(reads(
				0x0200, 0x60,
				0x01fe, 0x02,
				0x01ff, 0x02,
			)...)

			mc.Step()

			Expect(mc.PC.Address()).To(Equal(uint16(0x0203)))
			Expect(mc.SP.Value()).To(Equal(uint8(0xff)))
		})

		It("should push and pull the accumulator", func() {
			mc.A.Load(0x42)

			gomock.InOrder(
				mem.EXPECT().Read(uint16(0x0200)).Return(uint8(0x48)),
				mem.EXPECT().Write(uint16(0x01ff), uint8(0x42)),
				mem.EXPECT().Read(uint16(0x0201)).Return(uint8(0x68)),
				mem.EXPECT().Read(uint16(0x01ff)).Return(uint8(0x00)),
			)

			mc.Step()
			Expect(mc.SP.Value()).To(Equal(uint8(0xfe)))

			mc.Step()
			Expect(mc.SP.Value()).To(Equal(uint8(0xff)))
			Expect(mc.A.Value()).To(Equal(uint8(0x00)))
			Expect(mc.Status.Zero).To(BeTrue())
		})
	})

	Context("when jumping", func() {
		It("should read the high byte from the same page when the bug is enabled", func() {
			mc.IndirectJMPBug = true

			gomock.InOrder(reads(
				0x0200, 0x6c,
				0x0201, 0xff,
				0x0202, 0x10,
				0x10ff, 0x00,
				0x1000, 0x40,
			)...)

			mc.Step()

			Expect(mc.PC.Address()).To(Equal(uint16(0x4000)))
		})

		It("should read the high byte from the next page when the bug is disabled", func() {
			gomock.InOrder(reads(
				0x0200, 0x6c,
				0x0201, 0xff,
				0x0202, 0x10,
				0x10ff, 0x00,
				0x1100, 0x50,
			)...)

			mc.Step()

			Expect(mc.PC.Address()).To(Equal(uint16(0x5000)))
		})
	})

	Context("when interrupted", func() {
		It("should push the PC and status with break set for BRK", func() {
			gomock.InOrder(
				mem.EXPECT().Read(uint16(0x0200)).Return(uint8(0x00)),
				mem.EXPECT().Write(uint16(0x01ff), uint8(0x02)),
				mem.EXPECT().Write(uint16(0x01fe), uint8(0x02)),
				mem.EXPECT().Write(uint16(0x01fd), uint8(0x34)),
				mem.EXPECT().Read(uint16(0xfffe)).Return(uint8(0x00)),
				mem.EXPECT().Read(uint16(0xffff)).Return(uint8(0x80)),
			)

			mc.Step()

			Expect(mc.PC.Address()).To(Equal(uint16(0x8000)))
			Expect(mc.Status.InterruptDisable).To(BeTrue())
			Expect(mc.LastResult.ByteCount).To(Equal(1))
		})

		It("should push the status with break clear for IRQ", func() {
			mc.Status.InterruptDisable = false

			gomock.InOrder(
				mem.EXPECT().Write(uint16(0x01ff), uint8(0x02)),
				mem.EXPECT().Write(uint16(0x01fe), uint8(0x00)),
				mem.EXPECT().Write(uint16(0x01fd), uint8(0x20)),
				mem.EXPECT().Read(uint16(0xfffe)).Return(uint8(0x00)),
				mem.EXPECT().Read(uint16(0xffff)).Return(uint8(0x90)),
			)

			Expect(mc.IRQ()).To(BeTrue())
			Expect(mc.PC.Address()).To(Equal(uint16(0x9000)))
			Expect(mc.LastResult.Interrupt).To(Equal(execution.IRQ))
			Expect(mc.LastResult.IsValid()).To(Succeed())
		})

		It("should not touch the bus when IRQ is refused", func() {
			Expect(mc.IRQ()).To(BeFalse())
			Expect(mc.PC.Address()).To(Equal(uint16(0x0200)))
		})

		It("should use the NMI vector regardless of the interrupt flag", func() {
			gomock.InOrder(
				mem.EXPECT().Write(uint16(0x01ff), uint8(0x02)),
				mem.EXPECT().Write(uint16(0x01fe), uint8(0x00)),
				mem.EXPECT().Write(uint16(0x01fd), uint8(0x24)),
				mem.EXPECT().Read(uint16(0xfffa)).Return(uint8(0x00)),
				mem.EXPECT().Read(uint16(0xfffb)).Return(uint8(0xa0)),
			)

			mc.NMI()

			Expect(mc.PC.Address()).To(Equal(uint16(0xa000)))
			Expect(mc.SP.Value()).To(Equal(uint8(0xfc)))
		})
	})
})
