// Package radio drives the Standby/Rx/Tx state machine on top of an
// nRF24L01-class transceiver, using the wire format from package frame.
// It is transport-agnostic: callers supply a TransceiverDriver built from
// whatever bus (SPI over GPIO pins, an in-memory stub, ...) their platform
// offers.
package radio

import "time"

// DataRate selects the transceiver's over-the-air bit rate.
type DataRate uint8

const (
	DataRate250kbps DataRate = iota
	DataRate1Mbps
	DataRate2Mbps
)

// PowerLevel selects the transceiver's RF output power, in the same
// 0..3 scale the reference device uses (3 is the highest setting).
type PowerLevel uint8

const (
	PowerMin PowerLevel = iota
	PowerLow
	PowerHigh
	PowerMax
)

// Channel is the reference device's fixed operating channel.
const Channel = 7

// TransceiverDriver is the one-time configuration surface a Standby radio
// needs before it can transition into Rx or Tx mode. Implementations wrap
// a concrete SPI+GPIO bus (see driver/nrf24 and driver/embd) or a stub for
// tests (see driver/stub).
type TransceiverDriver interface {
	SetChannel(channel uint8) error
	SetAutoRetransmit(delay, count uint8) error
	SetDataRate(rate DataRate) error
	SetPowerLevel(level PowerLevel) error
	SetRxPipeEnable(pipe int, enable bool) error
	SetAutoAck(pipe int, enable bool) error
	SetHardwareCRC(enable bool) error
	SetRxAddress(pipe int, addr [5]byte) error
	SetRxPayloadLength(pipe int, length uint8) error
	SetTxAddress(addr [5]byte) error

	// IntoRx and IntoTx switch the physical transceiver mode and return
	// the driver handles the Rx/Tx states operate on. The TransceiverDriver
	// itself must not be used again after either call succeeds.
	IntoRx() (RxDriver, error)
	IntoTx() (TxDriver, error)
}

// RxDriver is the subset of transceiver operations available once the
// radio has switched into receive mode.
type RxDriver interface {
	// CanRead reports whether a full frame is waiting on any enabled pipe.
	CanRead() (bool, error)
	// Read returns the raw bytes of the waiting frame. Its length is the
	// pipe's configured payload width (always frame.Size here).
	Read() ([]byte, error)
}

// TxDriver is the subset of transceiver operations available once the
// radio has switched into transmit mode.
type TxDriver interface {
	// CanSend reports whether the transceiver is ready to accept another
	// outbound frame.
	CanSend() (bool, error)
	// Send queues data for transmission over the air.
	Send(data []byte) error
}

// defaultReceivePoll is how often Rx.Receive re-checks CanRead while
// waiting for a frame, for drivers whose CanRead doesn't block.
const defaultReceivePoll = time.Millisecond

// Pin is the minimal digital-output abstraction a TransceiverDriver needs
// for the nRF24L01's CE and CSN lines. It is implemented directly by
// TinyGo's machine.Pin and, on the host, by a small adapter over
// kidoman/embd's GPIO pins — see driver/nrf24 and driver/embd.
type Pin interface {
	High()
	Low()
}

// Bus is the minimal full-duplex SPI abstraction a TransceiverDriver
// needs to exchange nRF24L01 command bytes. Transfer overwrites tx with
// the bytes clocked back in, mirroring TinyGo's machine.SPI.Tx and
// embedded-hal's blocking SPI transfer.
type Bus interface {
	Transfer(tx []byte) error
}
