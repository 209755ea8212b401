//go:build tinygo || baremetal

// Command transmitter runs the reference transmit loop: construct a
// Standby radio on the board's nRF24L01 pins, switch to Tx, and send a
// literal "test" frame a few times a second, flashing the onboard LED on
// every successful send.
package main

import (
	"machine"
	"time"

	"github.com/jannic/calliope-nrf24"
	"github.com/jannic/calliope-nrf24/radio"
)

const group = 7

func main() {
	time.Sleep(3 * time.Second)

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High() // off

	spi := machine.SPI0
	spi.Configure(machine.SPIConfig{Frequency: 2000000, Mode: 0})

	sb, err := calliope.New(machine.P0, machine.P1, spi, group)
	if err != nil {
		println("radio init failed:", err.Error())
		return
	}

	tx, err := sb.Tx()
	if err != nil {
		println("enter tx mode failed:", err.Error())
		return
	}

	payload := []byte("test")
	for {
		sent, err := tx.Transmit(payload)
		switch {
		case err != nil && err != radio.ErrTransmitterBusy:
			println("transmit error:", err.Error())
			led.High()
		case sent:
			led.Low()
		default:
			led.High()
		}
		time.Sleep(100 * time.Millisecond)
	}
}
