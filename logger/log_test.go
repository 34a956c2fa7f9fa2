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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherAGB/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(100)

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "")

	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test\n")

	// repeated entries are folded, not appended
	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\n")

	l.log("test2", "this is another test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\ntest2: this is another test\n")
}

func TestLoggerMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("tag", "one")
	l.log("tag", "two")
	l.log("tag", "three")

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "tag: two\ntag: three\n")
}

func TestLoggerTail(t *testing.T) {
	l := newLogger(100)

	l.log("tag", "one")
	l.log("tag", "two")
	l.log("tag", "three")

	b := &strings.Builder{}
	l.tail(b, 2)
	test.Equate(t, b.String(), "tag: two\ntag: three\n")

	// a tail longer than the number of entries writes everything
	b.Reset()
	l.tail(b, 100)
	test.Equate(t, b.String(), "tag: one\ntag: two\ntag: three\n")
}
