// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"strings"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	query := NewQuery(0xABCD, Name("example.com"), TypeA)

	require.Equal(t, uint16(0xABCD), query.Header.ID)
	require.Equal(t, FlagRecursionDesired, query.Header.Flags)
	require.Equal(t, uint16(1), query.Header.QDCount)
	require.Equal(t, uint16(0), query.Header.ANCount)
	require.Equal(t, uint16(0), query.Header.NSCount)
	require.Equal(t, uint16(0), query.Header.ARCount)

	require.Equal(t, Name("example.com"), query.Question.Name)
	require.Equal(t, TypeA, query.Question.Type)
	require.Equal(t, ClassIN, query.Question.Class)
}

func TestQueryAppendWire(t *testing.T) {
	expected := []byte(
		"\xAB\xCD\x01\x00\x00\x01\x00\x00\x00\x00\x00\x00" +
			"\x07example\x03com\x00\x00\x01\x00\x01")

	tests := []struct {
		name  string
		query *Query
	}{
		{
			name:  "Constructor",
			query: NewQuery(0xABCD, Name("example.com"), TypeA),
		},

		{
			name: "Literal",
			query: &Query{
				Header: Header{
					ID:      0xABCD,
					Flags:   FlagRecursionDesired,
					QDCount: 1,
				},
				Question: Question{
					Name:  Name("example.com"),
					Type:  TypeA,
					Class: ClassIN,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.AppendWire(nil)
			require.NoError(t, err)
			require.Equal(t, expected, got)
		})
	}
}

func TestQueryAppendWireLabelTooLong(t *testing.T) {
	query := NewQuery(0x1234, Name(strings.Repeat("x", 256)), TypeA)

	dst := []byte{0xde, 0xad}
	got, err := query.AppendWire(dst)
	require.ErrorIs(t, err, ErrLabelTooLong)
	require.Equal(t, dst, got)
}

// Decode our wire output with an independent implementation and make
// sure it sees the message we meant to send.
func TestQueryAppendWireInterop(t *testing.T) {
	query := NewQuery(0x1314, Name("www.example.com"), TypeA)
	raw, err := query.AppendWire(nil)
	require.NoError(t, err)

	msg := new(dns.Msg)
	require.NoError(t, msg.Unpack(raw))

	require.Equal(t, uint16(0x1314), msg.Id)
	require.False(t, msg.Response)
	require.True(t, msg.RecursionDesired)
	require.Len(t, msg.Question, 1)
	require.Equal(t, "www.example.com.", msg.Question[0].Name)
	require.Equal(t, dns.TypeA, msg.Question[0].Qtype)
	require.Equal(t, uint16(dns.ClassINET), msg.Question[0].Qclass)
	require.Empty(t, msg.Answer)
	require.Empty(t, msg.Ns)
	require.Empty(t, msg.Extra)
}
