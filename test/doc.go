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

// Package test bundles a number of functions and types that are useful in
// conjunction with the standard go test harness.
//
// The Expect*() functions test a value and report an error if the test fails.
// The Demand*() functions are the same except that a failure is fatal. Demand
// is useful when the value being tested is used by later parts of the test
// and so must be correct.
//
// It is worth describing how the success/failure functions handle the nil
// type because it is not obvious. A nil value is considered a success and so
// ExpectFailure(nil) will fail and ExpectSuccess(nil) will succeed. This
// mirrors how error values are normally interpreted.
//
// All functions accept optional tags. Tags are prepended to the failure
// message and help identify which iteration of a loop has failed.
//
// The CompareWriter and RingWriter types implement io.Writer and are used to
// capture output for later comparison.
package test
