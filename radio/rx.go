package radio

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/jannic/calliope-nrf24/frame"
)

// Rx is a radio configured for the given group and switched into receive
// mode. It is the result of calling Standby.Rx.
type Rx struct {
	driver RxDriver
	group  byte
	log    Logger
}

// TryReceive makes one non-blocking attempt to read a waiting frame. It
// returns (nil, false, ErrNoFrame) if nothing was waiting, and the same
// result if a frame was waiting but failed CRC validation or had an
// out-of-range length octet — channel noise is silently dropped, never
// reported as a driver error.
func (r *Rx) TryReceive() ([]byte, bool, error) {
	if r.driver == nil {
		return nil, false, ErrConsumed
	}

	ready, err := r.driver.CanRead()
	if err != nil {
		return nil, false, errors.Wrap(err, "radio: can read")
	}
	if !ready {
		return nil, false, ErrNoFrame
	}

	raw, err := r.driver.Read()
	if err != nil {
		return nil, false, errors.Wrap(err, "radio: read")
	}

	var buf [frame.Size]byte
	n := copy(buf[:], raw)
	if n < frame.Size {
		r.log.Warn("short frame from driver", "got", n, "want", frame.Size)
		return nil, false, ErrNoFrame
	}

	payload, ok := frame.Decode(r.group, buf)
	if !ok {
		r.log.Debug("dropped frame failing crc or length check")
		return nil, false, ErrNoFrame
	}
	return payload, true, nil
}

// Receive polls TryReceive at a fixed interval until a frame arrives or
// ctx is done. It returns ctx.Err() on cancellation/deadline; ErrNoFrame
// from an individual poll just means try again, and is never returned to
// Receive's own caller.
func (r *Rx) Receive(ctx context.Context) ([]byte, error) {
	ticker := time.NewTicker(defaultReceivePoll)
	defer ticker.Stop()

	for {
		payload, ok, err := r.TryReceive()
		if err != nil && err != ErrNoFrame {
			return nil, err
		}
		if ok {
			return payload, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
