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


package logger

import "sync/atomic"

// Permission is implemented by types that decide whether a log request should
// create a new entry. The decision is made at the moment of the request.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow always permits logging.
var Allow Permission = allow{}

// Limit permits a fixed number of log requests and refuses all others until
// Reset() is called. Useful for messages that emulated code can trigger
// repeatedly.
type Limit struct {
	limit     int32
	remaining atomic.Int32
}

// NewLimit returns a Limit that allows n log requests.
func NewLimit(n int) *Limit {
	l := &Limit{limit: int32(n)}
	l.Reset()
	return l
}

// AllowLogging implements the Permission interface.
func (l *Limit) AllowLogging() bool {
	for {
		r := l.remaining.Load()
		if r <= 0 {
			return false
		}
		if l.remaining.CompareAndSwap(r, r-1) {
			return true
		}
	}
}

// Reset the number of remaining log requests to the original limit.
func (l *Limit) Reset() {
	l.remaining.Store(l.limit)
}
