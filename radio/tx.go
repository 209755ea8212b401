package radio

import (
	"github.com/pkg/errors"

	"github.com/jannic/calliope-nrf24/frame"
)

// Tx is a radio configured for the given group and switched into
// transmit mode. It is the result of calling Standby.Tx.
type Tx struct {
	driver TxDriver
	group  byte
	log    Logger
}

// Transmit encodes payload into a frame and sends it, reporting whether
// the transceiver actually accepted it. A false result with ErrTransmitterBusy
// means the transceiver was not ready to send — the reference behaviour
// for an overrun transmit queue, distinct from a driver error. Payloads
// longer than frame.MaxPayload are truncated; see frame.Encode.
func (t *Tx) Transmit(payload []byte) (bool, error) {
	if t.driver == nil {
		return false, ErrConsumed
	}

	ready, err := t.driver.CanSend()
	if err != nil {
		return false, errors.Wrap(err, "radio: can send")
	}
	if !ready {
		return false, ErrTransmitterBusy
	}

	f := frame.Encode(t.group, payload)
	if err := t.driver.Send(f[:]); err != nil {
		return false, errors.Wrap(err, "radio: send")
	}

	t.log.Debug("frame sent", "bytes", len(payload))
	return true, nil
}
