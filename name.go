// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"bytes"
	"errors"
	"math"
	"strings"

	"golang.org/x/net/idna"
)

// ErrLabelTooLong indicates that a domain label does not fit in the
// single length byte the wire format allows for it.
var ErrLabelTooLong = errors.New("dnswire: domain label too long")

// Name is a dot-separated ASCII domain name (e.g., "example.com").
//
// Use [ASCIIName] to obtain a Name from a possibly-internationalized
// hostname. A Name does not carry a trailing dot: the encoder itself
// emits the terminating zero byte standing for the root label.
type Name []byte

// ASCIIName converts a hostname to its ASCII form using IDNA and
// returns the corresponding [Name].
//
// We remove a single trailing dot, if present, so that encoding the
// returned Name does not produce a doubled root label.
func ASCIIName(hostname string) (Name, error) {
	punyName, err := idna.Lookup.ToASCII(hostname)
	if err != nil {
		return nil, err
	}
	punyName = strings.TrimSuffix(punyName, ".")
	return Name(punyName), nil
}

// AppendWire implements [Serializer].
//
// Each label is encoded as a length byte followed by the label's raw
// bytes, and the label sequence is terminated by a zero length byte.
// Empty labels are legal and encode as a bare zero byte.
//
// When any label is longer than 255 bytes, AppendWire fails with
// [ErrLabelTooLong] before appending anything.
func (n Name) AppendWire(dst []byte) ([]byte, error) {
	labels := bytes.Split(n, []byte{'.'})
	for _, label := range labels {
		if len(label) > math.MaxUint8 {
			return dst, ErrLabelTooLong
		}
	}
	for _, label := range labels {
		dst = append(dst, byte(len(label)))
		dst = append(dst, label...)
	}
	return append(dst, 0), nil
}

// String returns the dot-separated name.
func (n Name) String() string {
	return string(n)
}
