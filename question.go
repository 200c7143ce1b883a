// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "encoding/binary"

// Type is a DNS record type code (RFC 1035 section 3.2.2).
type Type uint16

const (
	// TypeA identifies an IPv4 address record.
	TypeA Type = 0x0001
)

// Class is a DNS query class code (RFC 1035 section 3.2.4).
type Class uint16

const (
	// ClassIN identifies the Internet class.
	ClassIN Class = 0x0001
)

// Question is a single question-section entry.
type Question struct {
	// Name is the domain name being queried.
	Name Name

	// Type is the record type being queried.
	Type Type

	// Class is the query class, typically [ClassIN].
	Class Class
}

// AppendWire implements [Serializer].
//
// The encoding is the [Name] wire form followed by the type and the
// class codes, each as a big-endian 16-bit unsigned integer.
func (q Question) AppendWire(dst []byte) ([]byte, error) {
	dst, err := q.Name.AppendWire(dst)
	if err != nil {
		return dst, err
	}
	dst = binary.BigEndian.AppendUint16(dst, uint16(q.Type))
	dst = binary.BigEndian.AppendUint16(dst, uint16(q.Class))
	return dst, nil
}
