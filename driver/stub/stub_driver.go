//go:build !tinygo && !baremetal

// Package stub provides an in-memory radio.TransceiverDriver for host
// tests and demos: no SPI, no GPIO, just queues that ConnectDrivers wires
// into a loopback or a point-to-point pair.
package stub

import (
	"sync"
	"time"

	"github.com/jannic/calliope-nrf24/radio"
)

const forwardInterval = time.Millisecond

// Driver is a configuration-phase radio.TransceiverDriver backed by
// plain Go slices. Calling IntoRx or IntoTx switches it into the
// corresponding mode object, exactly like a real transceiver.
type Driver struct {
	mu   sync.Mutex
	mode mode

	rxQueue [][]byte
	txLog   [][]byte
}

type mode int

const (
	modeStandby mode = iota
	modeRx
	modeTx
)

// New returns a fresh stub transceiver in standby/configuration mode.
func New() *Driver { return &Driver{} }

func (d *Driver) SetChannel(uint8) error                 { return nil }
func (d *Driver) SetAutoRetransmit(uint8, uint8) error    { return nil }
func (d *Driver) SetDataRate(radio.DataRate) error        { return nil }
func (d *Driver) SetPowerLevel(radio.PowerLevel) error    { return nil }
func (d *Driver) SetRxPipeEnable(int, bool) error         { return nil }
func (d *Driver) SetAutoAck(int, bool) error              { return nil }
func (d *Driver) SetHardwareCRC(bool) error                { return nil }
func (d *Driver) SetRxAddress(int, [5]byte) error         { return nil }
func (d *Driver) SetRxPayloadLength(int, uint8) error     { return nil }
func (d *Driver) SetTxAddress([5]byte) error              { return nil }

// IntoRx switches the stub into receive mode. Its queued frames (see
// InjectRx) become readable through the returned radio.RxDriver.
func (d *Driver) IntoRx() (radio.RxDriver, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = modeRx
	return d, nil
}

// IntoTx switches the stub into transmit mode. Frames sent through the
// returned radio.TxDriver are appended to the TX log (see GetTxLog).
func (d *Driver) IntoTx() (radio.TxDriver, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = modeTx
	return d, nil
}

// CanRead reports whether a frame is queued.
func (d *Driver) CanRead() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rxQueue) > 0, nil
}

// Read dequeues and returns the next waiting frame.
func (d *Driver) Read() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	pkt := d.rxQueue[0]
	d.rxQueue = d.rxQueue[1:]
	out := make([]byte, len(pkt))
	copy(out, pkt)
	return out, nil
}

// CanSend always reports ready: the stub has no transmit queue to overrun.
func (d *Driver) CanSend() (bool, error) { return true, nil }

// Send records data on the TX log for later inspection by GetTxLog or a
// peer stub wired up via ConnectDrivers.
func (d *Driver) Send(data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	pkt := make([]byte, len(data))
	copy(pkt, data)
	d.txLog = append(d.txLog, pkt)
	return nil
}

// InjectRx queues data to be returned by the next Read call.
func (d *Driver) InjectRx(data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	pkt := make([]byte, len(data))
	copy(pkt, data)
	d.rxQueue = append(d.rxQueue, pkt)
}

// GetTxLog returns a copy of every frame handed to Send so far.
func (d *Driver) GetTxLog() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]byte, len(d.txLog))
	for i, p := range d.txLog {
		cp := make([]byte, len(p))
		copy(cp, p)
		out[i] = cp
	}
	return out
}

// ClearTxLog empties the TX log.
func (d *Driver) ClearTxLog() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.txLog = d.txLog[:0]
}

// ConnectDrivers wires two stub transceivers together: whatever a sends
// is delivered to b's RX queue and vice versa. It returns a stop function
// that ends the forwarding goroutine.
func ConnectDrivers(a, b *Driver) (stop func()) {
	done := make(chan struct{})
	// drain takes the whole TX log under one lock, so a frame sent while
	// forwarding is in progress stays queued for the next tick.
	drain := func(d *Driver) [][]byte {
		d.mu.Lock()
		defer d.mu.Unlock()
		pkts := d.txLog
		d.txLog = nil
		return pkts
	}
	go func() {
		ticker := time.NewTicker(forwardInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				for _, pkt := range drain(a) {
					b.InjectRx(pkt)
				}
				for _, pkt := range drain(b) {
					a.InjectRx(pkt)
				}
			}
		}
	}()
	return func() { close(done) }
}
