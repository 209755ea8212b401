//go:build !tinygo && !baremetal

// Package embd adapts github.com/kidoman/embd's GPIO and SPI access onto
// the radio.Pin/radio.Bus abstractions internal/nrf24proto needs, for a
// host (e.g. Raspberry Pi) wired to a real nRF24L01 module. Register the
// matching host package (e.g. github.com/kidoman/embd/host/rpi) with a
// blank import before calling New, the same way ausocean's speaker
// command registers its I2C host driver.
package embd

import (
	"github.com/kidoman/embd"

	"github.com/jannic/calliope-nrf24/internal/nrf24proto"
	"github.com/jannic/calliope-nrf24/radio"
)

// gpioPin adapts an embd.DigitalPin into radio.Pin. radio.Pin has no
// error return (matching machine.Pin on the TinyGo side), so a write
// failure here has nowhere to go but is vanishingly unlikely once
// SetDirection has already succeeded during New.
type gpioPin struct {
	pin embd.DigitalPin
}

func (p gpioPin) High() { p.pin.Write(embd.High) }
func (p gpioPin) Low()  { p.pin.Write(embd.Low) }

// spiBus adapts an embd.SPIBus into radio.Bus.
type spiBus struct {
	bus embd.SPIBus
}

func (b spiBus) Transfer(tx []byte) error {
	return b.bus.TransferAndReceiveData(tx)
}

// Config names the host GPIO pins and SPI bus parameters for a real
// nRF24L01 module.
type Config struct {
	CEPin, CSNPin string
	SPIChannel    byte
	SPISpeed      int
}

// DefaultConfig names Raspberry Pi GPIO pins: CE on GPIO22, CSN on GPIO8,
// SPI channel 0 at 8MHz.
func DefaultConfig() Config {
	return Config{
		CEPin:      "GPIO22",
		CSNPin:     "GPIO8",
		SPIChannel: 0,
		SPISpeed:   8000000,
	}
}

// New opens the GPIO pins and SPI bus named by cfg and returns a
// radio.TransceiverDriver talking to an nRF24L01 over them.
func New(cfg Config) (radio.TransceiverDriver, error) {
	ce, err := embd.NewDigitalPin(cfg.CEPin)
	if err != nil {
		return nil, err
	}
	if err := ce.SetDirection(embd.Out); err != nil {
		return nil, err
	}

	csn, err := embd.NewDigitalPin(cfg.CSNPin)
	if err != nil {
		return nil, err
	}
	if err := csn.SetDirection(embd.Out); err != nil {
		return nil, err
	}

	bus := embd.NewSPIBus(embd.SPIMode0, cfg.SPIChannel, cfg.SPISpeed, 8, 0)

	return nrf24proto.New(gpioPin{pin: ce}, gpioPin{pin: csn}, spiBus{bus: bus}), nil
}
