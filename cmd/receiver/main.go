//go:build tinygo || baremetal

// Command receiver runs the reference receive loop: construct a Standby
// radio, switch to Rx, and light the onboard LED for every frame that
// decodes successfully.
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

	rx, err := sb.Rx()
	if err != nil {
		println("enter rx mode failed:", err.Error())
		return
	}

	for {
		payload, ok, err := rx.TryReceive()
		switch {
		case err != nil && err != radio.ErrNoFrame:
			println("receive error:", err.Error())
			led.High()
		case ok:
			println("payload:", string(payload))
			led.Low()
		default:
			led.High()
		}
		time.Sleep(time.Millisecond)
	}
}
