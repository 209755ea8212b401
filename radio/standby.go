package radio

import (
	"github.com/pkg/errors"

	"github.com/jannic/calliope-nrf24/frame"
)

// Standby holds a transceiver that has been configured for a given group
// but not yet switched into Rx or Tx mode. It is the only state a radio
// can be constructed in.
//
// Standby, Rx, and Tx form a linear state machine: calling Rx or Tx
// consumes the Standby value (its driver field is nilled out) and
// returns a new value in the target mode. Any further call on the
// consumed Standby returns ErrConsumed, which is this package's stand-in
// for the move semantics the reference implementation relies on.
type Standby struct {
	driver TransceiverDriver
	group  byte
	opts   options
}

// NewStandby configures driver for the given group and returns a Standby
// radio ready to switch into Rx or Tx mode. The configuration sequence —
// channel, retransmit, data rate, pipe/auto-ack setup, disabling the
// transceiver's own hardware CRC (package frame's software CRC replaces
// it), and programming the RX/TX addresses — mirrors the reference
// device's one-time setup.
func NewStandby(driver TransceiverDriver, group byte, opts ...Option) (*Standby, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := driver.SetChannel(Channel); err != nil {
		return nil, errors.Wrap(err, "radio: set channel")
	}
	if err := driver.SetAutoRetransmit(o.retransmitDelay, o.retransmitCount); err != nil {
		return nil, errors.Wrap(err, "radio: set auto retransmit")
	}
	if err := driver.SetDataRate(o.dataRate); err != nil {
		return nil, errors.Wrap(err, "radio: set data rate")
	}
	if err := driver.SetPowerLevel(o.power); err != nil {
		return nil, errors.Wrap(err, "radio: set power level")
	}
	if err := driver.SetRxPipeEnable(0, true); err != nil {
		return nil, errors.Wrap(err, "radio: enable rx pipe 0")
	}
	for pipe := 1; pipe < 6; pipe++ {
		if err := driver.SetRxPipeEnable(pipe, false); err != nil {
			return nil, errors.Wrap(err, "radio: disable unused rx pipe")
		}
	}
	for pipe := 0; pipe < 6; pipe++ {
		if err := driver.SetAutoAck(pipe, false); err != nil {
			return nil, errors.Wrap(err, "radio: disable auto ack")
		}
	}
	if err := driver.SetHardwareCRC(false); err != nil {
		return nil, errors.Wrap(err, "radio: disable hardware crc")
	}
	addr := frame.Address(group)
	if err := driver.SetRxAddress(0, addr); err != nil {
		return nil, errors.Wrap(err, "radio: set rx address")
	}
	for pipe := 0; pipe < 6; pipe++ {
		if err := driver.SetRxPayloadLength(pipe, frame.Size); err != nil {
			return nil, errors.Wrap(err, "radio: set rx payload length")
		}
	}
	if err := driver.SetTxAddress(addr); err != nil {
		return nil, errors.Wrap(err, "radio: set tx address")
	}

	o.log.Info("radio configured", "group", group)
	return &Standby{driver: driver, group: group, opts: o}, nil
}

// Rx switches the radio into receive mode, consuming the Standby value.
func (s *Standby) Rx() (*Rx, error) {
	if s.driver == nil {
		return nil, ErrConsumed
	}
	d, err := s.driver.IntoRx()
	if err != nil {
		return nil, errors.Wrap(err, "radio: enter rx mode")
	}
	s.driver = nil
	return &Rx{driver: d, group: s.group, log: s.opts.log}, nil
}

// Tx switches the radio into transmit mode, consuming the Standby value.
func (s *Standby) Tx() (*Tx, error) {
	if s.driver == nil {
		return nil, ErrConsumed
	}
	d, err := s.driver.IntoTx()
	if err != nil {
		return nil, errors.Wrap(err, "radio: enter tx mode")
	}
	s.driver = nil
	return &Tx{driver: d, group: s.group, log: s.opts.log}, nil
}
