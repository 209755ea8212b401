// Package calliope provides a façade over the frame codec and radio
// state machine: construct a Standby with New, then call Rx or Tx to
// start talking to other boards on the same group.
package calliope

import (
	"github.com/jannic/calliope-nrf24/frame"
	"github.com/jannic/calliope-nrf24/radio"
)

// The driver construction itself is split into build-tag specific files:
//   - constructors_nrf.go  - real nRF24L01 hardware (//go:build tinygo || baremetal)
//   - constructors_host.go - in-memory stub for development/testing
//     (//go:build !tinygo && !baremetal)

// Re-exported types, so callers need only import this package for the
// common case.
type (
	Standby = radio.Standby
	Rx      = radio.Rx
	Tx      = radio.Tx
	Option  = radio.Option
	Logger  = radio.Logger
)

// Re-exported constants and errors.
const (
	Channel = radio.Channel

	DataRate250kbps = radio.DataRate250kbps
	DataRate1Mbps   = radio.DataRate1Mbps
	DataRate2Mbps   = radio.DataRate2Mbps

	PowerMin  = radio.PowerMin
	PowerLow  = radio.PowerLow
	PowerHigh = radio.PowerHigh
	PowerMax  = radio.PowerMax

	MaxPayload = frame.MaxPayload
)

var (
	ErrConsumed         = radio.ErrConsumed
	ErrNoFrame          = radio.ErrNoFrame
	ErrTransmitterBusy  = radio.ErrTransmitterBusy
)

// Functional options, re-exported for convenience.
var (
	WithLogger         = radio.WithLogger
	WithAutoRetransmit = radio.WithAutoRetransmit
	WithDataRate       = radio.WithDataRate
	WithPowerLevel     = radio.WithPowerLevel
)
