//go:build tinygo || baremetal

// Package nrf24 adapts TinyGo's machine.Pin/machine.SPI onto the
// radio.Pin/radio.Bus abstractions internal/nrf24proto needs, for boards
// wired to a real nRF24L01 module over CE/CSN/SPI.
package nrf24

import (
	"machine"

	"github.com/jannic/calliope-nrf24/internal/nrf24proto"
	"github.com/jannic/calliope-nrf24/radio"
)

// spiBus adapts machine.SPI's full-duplex Tx into radio.Bus's in-place
// Transfer.
type spiBus struct {
	spi machine.SPI
}

func (b spiBus) Transfer(tx []byte) error {
	return b.spi.Tx(tx, tx)
}

// New configures ce/csn as outputs and returns a radio.TransceiverDriver
// talking to an nRF24L01 over spi. machine.Pin already satisfies
// radio.Pin (it has High/Low), so only the SPI side needs wrapping.
func New(ce, csn machine.Pin, spi machine.SPI) radio.TransceiverDriver {
	ce.Configure(machine.PinConfig{Mode: machine.PinOutput})
	csn.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nrf24proto.New(ce, csn, spiBus{spi: spi})
}
