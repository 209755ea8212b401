//go:build tinygo || baremetal

// This file is built only for embedded targets (using real radio hardware).
package calliope

import (
	"machine"

	"github.com/jannic/calliope-nrf24/driver/nrf24"
	"github.com/jannic/calliope-nrf24/radio"
)

// New configures a real nRF24L01 module wired to ce/csn/spi for the given
// group and returns a Standby radio ready to switch into Rx or Tx mode.
func New(ce, csn machine.Pin, spi machine.SPI, group byte, opts ...Option) (*Standby, error) {
	return radio.NewStandby(nrf24.New(ce, csn, spi), group, opts...)
}
