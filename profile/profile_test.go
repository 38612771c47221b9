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

package profile_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/profile"
)

var _ = Describe("ParseAddress", func() {
	DescribeTable("valid addresses",
		func(s string, expected uint16) {
			v, err := profile.ParseAddress(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(expected))
		},
		Entry("hex with 0x", "0x0400", uint16(0x0400)),
		Entry("hex with upper case 0X", "0XFFFC", uint16(0xfffc)),
		Entry("hex with $", "$3469", uint16(0x3469)),
		Entry("decimal", "1024", uint16(1024)),
		Entry("surrounding space", " $00ff ", uint16(0x00ff)),
	)

	DescribeTable("invalid addresses",
		func(s string) {
			_, err := profile.ParseAddress(s)
			Expect(err).To(HaveOccurred())
			Expect(curated.Is(err, profile.InvalidAddress)).To(BeTrue())
		},
		Entry("empty", ""),
		Entry("too large", "0x10000"),
		Entry("not a number", "start"),
		Entry("negative", "-1"),
		Entry("bad hex", "$12g4"),
	)
})

var _ = Describe("Profile", func() {
	It("should start at the reset vector by default", func() {
		p := profile.Default()
		Expect(p.Entry.Reset).To(BeTrue())
		Expect(p.Trap).To(BeNil())
		Expect(p.Image).To(BeEmpty())
	})

	It("should parse a complete profile", func() {
		p, err := profile.Parse([]byte(`
image: interrupt.bin
load: 0x000a
entry: $0400
trap: 0x06f5
limit: 1000
nodecimal: true
jmpbug: true
feedback:
  address: 0xbffc
  irq: 0
  nmi: 1
console:
  out: 0xf001
  in: 61444
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Image).To(Equal("interrupt.bin"))
		Expect(p.Load).To(Equal(profile.Address(0x000a)))
		Expect(p.Entry.Reset).To(BeFalse())
		Expect(p.Entry.Address).To(Equal(profile.Address(0x0400)))
		Expect(p.Trap).NotTo(BeNil())
		Expect(*p.Trap).To(Equal(profile.Address(0x06f5)))
		Expect(p.Limit).To(Equal(1000))
		Expect(p.NoDecimal).To(BeTrue())
		Expect(p.JMPBug).To(BeTrue())
		Expect(p.Feedback).To(Equal(&profile.Feedback{Address: 0xbffc, IRQ: 0, NMI: 1}))
		Expect(p.Console).To(Equal(&profile.Console{Out: 0xf001, In: 0xf004}))
	})

	It("should accept the reset entry", func() {
		p, err := profile.Parse([]byte("entry: reset\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Entry.Reset).To(BeTrue())
	})

	It("should treat an empty document as the default profile", func() {
		p, err := profile.Parse([]byte(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(profile.Default()))
	})

	It("should reject unknown fields", func() {
		_, err := profile.Parse([]byte("rom: test.bin\n"))
		Expect(err).To(HaveOccurred())
		Expect(curated.Is(err, profile.LoadError)).To(BeTrue())
	})

	It("should reject invalid addresses", func() {
		_, err := profile.Parse([]byte("trap: 0x123456\n"))
		Expect(err).To(HaveOccurred())
		Expect(curated.Has(err, profile.InvalidAddress)).To(BeTrue())
	})

	It("should reject feedback bits out of range", func() {
		_, err := profile.Parse([]byte("feedback:\n  address: 0xbffc\n  irq: 8\n  nmi: 1\n"))
		Expect(err).To(HaveOccurred())
		Expect(curated.Is(err, profile.BadFeedback)).To(BeTrue())
	})

	It("should survive a round trip with hex addresses", func() {
		trap := profile.Address(0x3469)
		p := profile.Default()
		p.Image = "test.bin"
		p.Entry = profile.Entry{Address: 0x0400}
		p.Trap = &trap
		p.Console = profile.DefaultConsole()

		data, err := p.Marshal()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("0x3469"))
		Expect(string(data)).To(ContainSubstring("0xf001"))

		q, err := profile.Parse(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(q).To(Equal(p))
	})

	Context("when loading from a file", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("should resolve the image relative to the profile", func() {
			path := filepath.Join(dir, "machine.yaml")
			Expect(os.WriteFile(path, []byte("image: prog.bin\nentry: 0x0200\n"), 0o644)).To(Succeed())

			p, err := profile.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Image).To(Equal(filepath.Join(dir, "prog.bin")))
		})

		It("should fail for a missing file", func() {
			_, err := profile.Load(filepath.Join(dir, "missing.yaml"))
			Expect(err).To(HaveOccurred())
			Expect(curated.Is(err, profile.LoadError)).To(BeTrue())
		})
	})
})
