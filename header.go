// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "encoding/binary"

// HeaderSize is the wire size of a [Header] in bytes.
const HeaderSize = 12

// FlagRecursionDesired is the header flag bit asking the resolver to
// perform recursive resolution on behalf of the client.
const FlagRecursionDesired uint16 = 1 << 8

// Header is the fixed DNS message header defined by RFC 1035
// section 4.1.1.
//
// The section counts must match the number of records actually
// serialized after the header. [NewQuery] takes care of this for the
// single-question case.
type Header struct {
	// ID is the query transaction ID.
	ID uint16

	// Flags contains the header flag bits (e.g.,
	// [FlagRecursionDesired]).
	Flags uint16

	// QDCount is the number of question-section entries.
	QDCount uint16

	// ANCount is the number of answer records.
	ANCount uint16

	// NSCount is the number of authority records.
	NSCount uint16

	// ARCount is the number of additional records.
	ARCount uint16
}

// AppendWire implements [Serializer].
//
// The encoding is exactly [HeaderSize] bytes: each field in
// declaration order as a big-endian 16-bit unsigned integer. Field
// values are taken as given and never validated here.
func (h Header) AppendWire(dst []byte) ([]byte, error) {
	dst = binary.BigEndian.AppendUint16(dst, h.ID)
	dst = binary.BigEndian.AppendUint16(dst, h.Flags)
	dst = binary.BigEndian.AppendUint16(dst, h.QDCount)
	dst = binary.BigEndian.AppendUint16(dst, h.ANCount)
	dst = binary.BigEndian.AppendUint16(dst, h.NSCount)
	dst = binary.BigEndian.AppendUint16(dst, h.ARCount)
	return dst, nil
}
