// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnswire serializes DNS query messages into their RFC 1035
// wire format.
//
// [NewQuery] and [*Query] allow constructing a single-question,
// recursion-desired query message. [Name], [Header], and [Question]
// model the pieces of such a message; each of them, along with
// [*Query] itself, implements [Serializer], which appends the value's
// wire encoding to a byte slice. [ExchangeUDP] sends an encoded query
// to a resolver as a single datagram and reads back the raw reply.
//
// This package does not parse response messages. Use
// [github.com/miekg/dns] when you need to decode what the resolver
// returned.
package dnswire
