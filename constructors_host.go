//go:build !tinygo && !baremetal

// This file is built only for non-embedded targets (host-based testing
// and the hostsim demo).
package calliope

import (
	"github.com/jannic/calliope-nrf24/driver/stub"
	"github.com/jannic/calliope-nrf24/radio"
)

// New returns a Standby radio backed by an in-memory stub transceiver,
// for development and automated tests off real hardware. Use
// driver/embd directly (see its package doc) to drive a real nRF24L01
// module from a host like a Raspberry Pi.
func New(group byte, opts ...Option) (*Standby, error) {
	return radio.NewStandby(stub.New(), group, opts...)
}
