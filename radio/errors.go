package radio

import "errors"

var (
	// ErrConsumed is returned when a Standby value is used again after
	// Rx or Tx has already moved its driver out from under it, and by Rx
	// and Tx methods called on a value that holds no driver. The
	// embedded-nrf24l01 state machine this mirrors consumes `self` on
	// every transition; Go has no move semantics, so the consumed value's
	// driver field is nil instead, and every method checks for that
	// before touching it.
	ErrConsumed = errors.New("radio: value already consumed by a mode transition")

	// ErrNoFrame is returned by Rx.TryReceive when no frame was waiting, or
	// a waiting frame was dropped for failing CRC/length validation.
	// Rx.Receive treats it as "poll again", never surfacing it to its own
	// caller.
	ErrNoFrame = errors.New("radio: no frame available")

	// ErrTransmitterBusy is returned by Tx.Transmit when the transceiver
	// was not ready to accept another frame.
	ErrTransmitterBusy = errors.New("radio: transmitter not ready to send")
)
