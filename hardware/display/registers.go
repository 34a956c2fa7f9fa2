// This file is part of GopherAGB.
//
// GopherAGB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAGB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAGB.  If not, see <https://www.gnu.org/licenses/>.

package display

// Bank discriminates the addressable register-width memories the scan-out
// hardware reads from. Separating the banks means a RegisterRef can never be
// a raw reinterpreted pointer; an out of range reference is caught at the
// Write/Read boundary.
type Bank int

// List of valid Bank values.
const (
	BankIO Bank = iota
	BankPalBG
	BankPalOBJ
)

// RegisterRef is a discriminated handle for one register-width location. It
// is the only currency the h-blank effect machinery deals in when naming an
// output register.
type RegisterRef struct {
	Bank  Bank
	Index int
}

// IO register indices. Word offsets into the IO bank, following the memory
// map of the original hardware.
const (
	RegDISPCNT = 0x00
	RegVCOUNT  = 0x03
	RegBG0CNT  = 0x04
	RegBG1CNT  = 0x05
	RegBG2CNT  = 0x06
	RegBG3CNT  = 0x07
	RegBG0HOFS = 0x08
	RegBG0VOFS = 0x09
	RegBG1HOFS = 0x0a
	RegBG1VOFS = 0x0b
	RegBG2HOFS = 0x0c
	RegBG2VOFS = 0x0d
	RegBG3HOFS = 0x0e
	RegBG3VOFS = 0x0f
	RegWIN0H   = 0x20
	RegWIN1H   = 0x21
	RegWIN0V   = 0x22
	RegWIN1V   = 0x23
	RegWININ   = 0x24
	RegWINOUT  = 0x25
)

// number of 16bit words in each bank.
const (
	ioBankSize  = 0x200
	palBankSize = 0x100
)

// RegisterFile is the collection of register-width memories read by the
// scan-out. IO registers and the two palette RAM banks.
type RegisterFile struct {
	io     [ioBankSize]uint16
	palBG  [palBankSize]uint16
	palOBJ [palBankSize]uint16
}

// Read the value at ref. Panics if ref does not name a valid location; a bad
// reference is a programming error and never a steady state condition.
func (rf *RegisterFile) Read(ref RegisterRef) uint16 {
	return *rf.locate(ref)
}

// Write the value at ref.
func (rf *RegisterFile) Write(ref RegisterRef, v uint16) {
	*rf.locate(ref) = v
}

func (rf *RegisterFile) locate(ref RegisterRef) *uint16 {
	switch ref.Bank {
	case BankIO:
		if ref.Index < 0 || ref.Index >= ioBankSize {
			break
		}
		return &rf.io[ref.Index]
	case BankPalBG:
		if ref.Index < 0 || ref.Index >= palBankSize {
			break
		}
		return &rf.palBG[ref.Index]
	case BankPalOBJ:
		if ref.Index < 0 || ref.Index >= palBankSize {
			break
		}
		return &rf.palOBJ[ref.Index]
	}
	panic("invalid register reference")
}
