// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

// Query is a complete single-question DNS query message.
//
// Construct using [NewQuery], which keeps the header's question count
// consistent with the single question the message carries.
type Query struct {
	// Header is the fixed message header.
	Header Header

	// Question is the single question-section entry.
	Question Question
}

// NewQuery constructs a [*Query] asking for records of the given type
// for the given name.
//
// The header uses the given transaction ID, requests recursion, and
// counts exactly one question; the question uses [ClassIN]. Use
// [github.com/miekg/dns.Id] to obtain a random transaction ID.
func NewQuery(id uint16, name Name, qtype Type) *Query {
	return &Query{
		Header: Header{
			ID:      id,
			Flags:   FlagRecursionDesired,
			QDCount: 1,
		},
		Question: Question{
			Name:  name,
			Type:  qtype,
			Class: ClassIN,
		},
	}
}

// AppendWire implements [Serializer].
//
// The encoding is the header immediately followed by the question,
// with no length prefix and no trailing padding.
func (q *Query) AppendWire(dst []byte) ([]byte, error) {
	start := len(dst)
	dst, err := q.Header.AppendWire(dst)
	if err != nil {
		return dst[:start], err
	}
	dst, err = q.Question.AppendWire(dst)
	if err != nil {
		return dst[:start], err
	}
	return dst, nil
}
