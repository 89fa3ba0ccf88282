// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - iterator over cli args that allows consuming the next value.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator. The slice is not copied.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns value at current index or an empty string after having fully read the list.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator) PeekNextValue() (string, bool) {
	if !a.ExistsNext() {
		return "", false
	}
	return a.data[a.idx+1], true
}

// Consume - Moves past the next value and returns it.
// Returns false without moving when there is nothing left.
func (a *Iterator) Consume() (string, bool) {
	v, ok := a.PeekNextValue()
	if ok {
		a.idx++
	}
	return v, ok
}

// Remaining - Get all values after the current index.
func (a *Iterator) Remaining() []string {
	if a.idx+1 >= len(a.data) {
		return []string{}
	}
	out := make([]string, len(a.data)-a.idx-1)
	copy(out, a.data[a.idx+1:])
	return out
}
