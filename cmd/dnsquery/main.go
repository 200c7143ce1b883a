// SPDX-License-Identifier: GPL-3.0-or-later

// Command dnsquery sends a single A query to a resolver over UDP and
// logs the size of the raw reply.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/bassosimone/dnswire"
	"github.com/miekg/dns"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		server  = flag.String("server", "8.8.8.8:53", "resolver HOST:PORT")
		name    = flag.String("name", "example.com", "domain name to query")
		timeout = flag.Duration("timeout", 5*time.Second, "exchange timeout")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	hostname, err := dnswire.ASCIIName(*name)
	if err != nil {
		log.Fatal().Err(err).Str("name", *name).Msg("cannot convert name to ASCII")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	query := dnswire.NewQuery(dns.Id(), hostname, dnswire.TypeA)
	resp, err := dnswire.ExchangeUDP(ctx, *server, query)
	if err != nil {
		log.Fatal().Err(err).Str("server", *server).Msg("query failed")
	}

	log.Info().Str("server", *server).Str("name", hostname.String()).
		Int("bytes", len(resp)).Msg("received response")
}
