// Package nrf24proto implements the nRF24L01 SPI command protocol shared
// by every platform-specific driver (see driver/nrf24 for TinyGo,
// driver/embd for host Linux SPI). Platform adapters supply a radio.Pin
// pair (CE, CSN) and a radio.Bus; this package never touches hardware
// registers or GPIO/SPI libraries directly.
package nrf24proto

// Command bytes, SPI command map (nRF24L01+ datasheet section 8.3.1).
const (
	cmdRRegister    = 0x00 // OR'd with a 5-bit register address
	cmdWRegister    = 0x20 // OR'd with a 5-bit register address
	cmdRRxPayload   = 0x61
	cmdWTxPayload   = 0xA0
	cmdFlushTx      = 0xE1
	cmdFlushRx      = 0xE2
	cmdNop          = 0xFF
)

// Register addresses. regSetupAW is defined but never written by this
// driver.
const (
	regConfig     = 0x00
	regEnAA       = 0x01
	regEnRxAddr   = 0x02
	regSetupAW    = 0x03
	regSetupRetr  = 0x04
	regRFCh       = 0x05
	regRFSetup    = 0x06
	regStatus     = 0x07
	regRxAddrP0   = 0x0A
	regTxAddr     = 0x10
	regRxPWP0     = 0x11
	regFIFOStatus = 0x17
)

// CONFIG register bits.
const (
	configPrimRx  = 1 << 0
	configPwrUp   = 1 << 1
	configCRCO    = 1 << 2 // 0 = 1-byte hardware CRC, 1 = 2-byte
	configEnCRC   = 1 << 3
	configMaskMaxRT = 1 << 4
	configMaskTX  = 1 << 5
	configMaskRX  = 1 << 6
)

// RF_SETUP register bits.
const (
	rfSetupRFPWRShift = 1
	rfSetupRFDRHigh   = 1 << 3
	rfSetupRFDRLow    = 1 << 5
)

// STATUS register bits.
const (
	statusTXDS  = 1 << 5
	statusRXDR  = 1 << 6
	statusTXFull = 1 << 0
)

// FIFO_STATUS register bits.
const (
	fifoStatusRXEmpty = 1 << 0
)
