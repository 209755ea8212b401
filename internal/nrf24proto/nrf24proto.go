package nrf24proto

import (
	"time"

	"github.com/jannic/calliope-nrf24/radio"
)

// payloadWidth is the fixed frame size every pipe in this driver is
// configured for; it always matches frame.Size, but this package doesn't
// import frame to stay a pure SPI-command layer.
const payloadWidth = 32

// Driver speaks the nRF24L01 SPI command set over a radio.Bus, toggling
// CE/CSN through a pair of radio.Pin. A single Driver value plays all
// three radio.TransceiverDriver / radio.RxDriver / radio.TxDriver roles;
// IntoRx and IntoTx just flip the PRIM_RX configuration bit and the CE
// line, then hand the same value back under a narrower interface.
type Driver struct {
	ce, csn radio.Pin
	bus     radio.Bus
}

// New returns a Driver in its post-reset configuration state: powered
// down, CE low, CSN high.
func New(ce, csn radio.Pin, bus radio.Bus) *Driver {
	d := &Driver{ce: ce, csn: csn, bus: bus}
	d.ce.Low()
	d.csn.High()
	return d
}

func (d *Driver) transfer(buf []byte) error {
	d.csn.Low()
	err := d.bus.Transfer(buf)
	d.csn.High()
	return err
}

func (d *Driver) readRegister(addr byte, n int) ([]byte, error) {
	buf := make([]byte, n+1)
	buf[0] = cmdRRegister | addr
	if err := d.transfer(buf); err != nil {
		return nil, err
	}
	return buf[1:], nil
}

func (d *Driver) writeRegister(addr byte, data []byte) error {
	buf := make([]byte, len(data)+1)
	buf[0] = cmdWRegister | addr
	copy(buf[1:], data)
	return d.transfer(buf)
}

func (d *Driver) writeRegisterByte(addr, value byte) error {
	return d.writeRegister(addr, []byte{value})
}

func (d *Driver) status() (byte, error) {
	buf := []byte{cmdNop}
	if err := d.transfer(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Driver) powerUp() error {
	cfg, err := d.readRegister(regConfig, 1)
	if err != nil {
		return err
	}
	if err := d.writeRegisterByte(regConfig, cfg[0]|configPwrUp); err != nil {
		return err
	}
	time.Sleep(1500 * time.Microsecond) // datasheet power-up timing
	return nil
}

// SetChannel programs RF_CH (0-125, 1MHz steps above 2.400GHz).
func (d *Driver) SetChannel(channel uint8) error {
	return d.writeRegisterByte(regRFCh, channel)
}

// SetAutoRetransmit programs SETUP_RETR: delay in 250us units (0-15),
// count of retries (0-15). The reference device disables both.
func (d *Driver) SetAutoRetransmit(delay, count uint8) error {
	return d.writeRegisterByte(regSetupRetr, (delay<<4)|(count&0x0F))
}

// SetDataRate programs the RF_DR bits in RF_SETUP.
func (d *Driver) SetDataRate(rate radio.DataRate) error {
	current, err := d.readRegister(regRFSetup, 1)
	if err != nil {
		return err
	}
	v := current[0] &^ (rfSetupRFDRHigh | rfSetupRFDRLow)
	switch rate {
	case radio.DataRate250kbps:
		v |= rfSetupRFDRLow
	case radio.DataRate2Mbps:
		v |= rfSetupRFDRHigh
	}
	return d.writeRegisterByte(regRFSetup, v)
}

// SetPowerLevel programs the 2-bit RF_PWR field in RF_SETUP.
func (d *Driver) SetPowerLevel(level radio.PowerLevel) error {
	current, err := d.readRegister(regRFSetup, 1)
	if err != nil {
		return err
	}
	v := current[0] &^ (0x3 << rfSetupRFPWRShift)
	v |= (byte(level) & 0x3) << rfSetupRFPWRShift
	return d.writeRegisterByte(regRFSetup, v)
}

// SetRxPipeEnable toggles a bit of EN_RXADDR.
func (d *Driver) SetRxPipeEnable(pipe int, enable bool) error {
	return d.setBit(regEnRxAddr, pipe, enable)
}

// SetAutoAck toggles a bit of EN_AA.
func (d *Driver) SetAutoAck(pipe int, enable bool) error {
	return d.setBit(regEnAA, pipe, enable)
}

func (d *Driver) setBit(addr byte, bit int, enable bool) error {
	current, err := d.readRegister(addr, 1)
	if err != nil {
		return err
	}
	v := current[0]
	mask := byte(1) << uint(bit)
	if enable {
		v |= mask
	} else {
		v &^= mask
	}
	return d.writeRegisterByte(addr, v)
}

// SetHardwareCRC toggles the transceiver's own CRC engine. The reference
// configuration disables it — package frame implements the CRC in
// software so the on-air bytes match the micro:bit's, not the
// nRF24L01's native scheme.
func (d *Driver) SetHardwareCRC(enable bool) error {
	cfg, err := d.readRegister(regConfig, 1)
	if err != nil {
		return err
	}
	v := cfg[0]
	if enable {
		v |= configEnCRC
	} else {
		v &^= configEnCRC
	}
	return d.writeRegisterByte(regConfig, v)
}

// SetRxAddress programs an RX pipe address. Pipes 0 and 1 take the full
// 5-octet address this driver always uses; pipes 2-5 only have a
// configurable LSB, which isn't exercised here.
func (d *Driver) SetRxAddress(pipe int, addr [5]byte) error {
	return d.writeRegister(regRxAddrP0+byte(pipe), addr[:])
}

// SetRxPayloadLength programs RX_PW_Pn for a pipe. Only fixed-width
// payloads are used — dynamic payload length is never enabled.
func (d *Driver) SetRxPayloadLength(pipe int, length uint8) error {
	return d.writeRegisterByte(regRxPWP0+byte(pipe), length)
}

// SetTxAddress programs TX_ADDR, the destination pipe-0 address used
// when transmitting.
func (d *Driver) SetTxAddress(addr [5]byte) error {
	return d.writeRegister(regTxAddr, addr[:])
}

// IntoRx sets PRIM_RX, powers the transceiver up, and raises CE to start
// listening continuously.
func (d *Driver) IntoRx() (radio.RxDriver, error) {
	cfg, err := d.readRegister(regConfig, 1)
	if err != nil {
		return nil, err
	}
	if err := d.writeRegisterByte(regConfig, cfg[0]|configPrimRx); err != nil {
		return nil, err
	}
	if err := d.powerUp(); err != nil {
		return nil, err
	}
	d.ce.High()
	return d, nil
}

// IntoTx clears PRIM_RX and powers the transceiver up. CE stays low until
// Send pulses it for each frame.
func (d *Driver) IntoTx() (radio.TxDriver, error) {
	cfg, err := d.readRegister(regConfig, 1)
	if err != nil {
		return nil, err
	}
	if err := d.writeRegisterByte(regConfig, cfg[0]&^configPrimRx); err != nil {
		return nil, err
	}
	if err := d.powerUp(); err != nil {
		return nil, err
	}
	d.ce.Low()
	return d, nil
}

// CanRead reports whether the RX FIFO holds a frame.
func (d *Driver) CanRead() (bool, error) {
	fifo, err := d.readRegister(regFIFOStatus, 1)
	if err != nil {
		return false, err
	}
	return fifo[0]&fifoStatusRXEmpty == 0, nil
}

// Read pulls payloadWidth octets off the RX FIFO and clears RX_DR.
func (d *Driver) Read() ([]byte, error) {
	buf := make([]byte, payloadWidth+1)
	buf[0] = cmdRRxPayload
	if err := d.transfer(buf); err != nil {
		return nil, err
	}
	if err := d.writeRegisterByte(regStatus, statusRXDR); err != nil {
		return nil, err
	}
	return buf[1:], nil
}

// CanSend reports whether the TX FIFO has room for another frame.
func (d *Driver) CanSend() (bool, error) {
	st, err := d.status()
	if err != nil {
		return false, err
	}
	return st&statusTXFull == 0, nil
}

// Send loads payloadWidth octets into the TX FIFO and pulses CE to start
// the over-the-air transmission, then clears TX_DS once it completes.
func (d *Driver) Send(data []byte) error {
	buf := make([]byte, payloadWidth+1)
	buf[0] = cmdWTxPayload
	copy(buf[1:], data)
	if err := d.transfer(buf); err != nil {
		return err
	}

	d.ce.High()
	time.Sleep(15 * time.Microsecond) // datasheet minimum CE pulse width
	d.ce.Low()

	for {
		st, err := d.status()
		if err != nil {
			return err
		}
		if st&statusTXDS != 0 {
			break
		}
		time.Sleep(time.Microsecond)
	}
	return d.writeRegisterByte(regStatus, statusTXDS)
}
