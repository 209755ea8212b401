package frame

import "github.com/snksoft/crc"

// crcParams describes CRC-16/CCITT-FALSE: init 0xFFFF, poly 0x1021,
// no input/output reflection, no final XOR. Grounded on
// go-gnss-spartn's crc.go, which builds the same snksoft/crc
// Parameters literal for its own CCITT variants instead of hand-rolling
// a CRC table.
var crcParams = &crc.Parameters{
	Width:      16,
	Polynomial: 0x1021,
	Init:       0xFFFF,
	FinalXor:   0x0000,
}

var crcHash = crc.NewHash(crcParams)

// crcSeed returns the 5 seed octets fed to the CRC before any frame
// octet: the bit-reversed ASCII of "tibu" (in that order) followed by
// the bit-reversed group id. This is a different octet order than the
// radio address (see Address), which spells the literal backwards.
func crcSeed(group byte) [5]byte {
	return [5]byte{
		reverse8('t'), reverse8('i'), reverse8('b'), reverse8('u'), reverse8(group),
	}
}

// crc16 computes CRC-16/CCITT-FALSE over data in one shot. The spec's
// incremental accumulator and this one-shot call are equivalent here
// because every CRC feed in this package is a single contiguous byte
// run (seed, then frame octets in index order) with no branching or
// re-seeding mid-stream.
func crc16(data []byte) uint16 {
	return uint16(crcHash.CalculateCRC(data))
}
