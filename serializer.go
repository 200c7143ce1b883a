// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

// Serializer is implemented by every wire type in this package.
//
// AppendWire appends the receiver's wire encoding to dst and returns
// the extended slice, in the manner of the standard library's append.
// On failure, AppendWire returns dst with its original length along
// with the error, so callers never observe a partially-encoded value.
//
// AppendWire never mutates the receiver and is safe for concurrent
// use with independent destination slices.
type Serializer interface {
	AppendWire(dst []byte) ([]byte, error)
}
