// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"context"
	"net"
)

// MaxResponseSizeUDP is the size of the receive buffer used by
// [ExchangeUDP] and is consistent with what the standard library uses.
const MaxResponseSizeUDP = 1232

// ExchangeUDP sends query to the given resolver over UDP and returns
// the raw response bytes.
//
// The query is fully serialized before anything touches the network
// and is sent as a single datagram. The reply is read into a buffer
// of [MaxResponseSizeUDP] bytes with no reassembly of any kind. There
// are no retries: the first transport error is returned as is.
//
// The context controls dialing and, through its deadline, the I/O on
// the connected socket.
func ExchangeUDP(ctx context.Context, resolver string, query *Query) ([]byte, error) {
	rawQuery, err := query.AppendWire(nil)
	if err != nil {
		return nil, err
	}

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "udp", resolver)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, err
		}
	}

	if _, err := conn.Write(rawQuery); err != nil {
		return nil, err
	}

	buffer := make([]byte, MaxResponseSizeUDP)
	count, err := conn.Read(buffer)
	if err != nil {
		return nil, err
	}
	return buffer[:count], nil
}
