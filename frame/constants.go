// Package frame implements the over-the-air frame format shared with the
// BBC micro:bit "radio" protocol: bit reversal, LFSR whitening, the
// CRC-16/CCITT-FALSE check, and the fixed 32-octet layout. It is pure —
// no I/O, no allocation beyond what Go's slice/array semantics force.
package frame

// Frame geometry. Layout on air (after whitening):
//
//	length(1) | protocol/group/version header(3) | payload(length-3) | crc16(2) | pad
//
// Length counts everything from octet 1 up to and including the last
// payload octet (i.e. header + payload, never the CRC or trailing pad).
const (
	// Size is the fixed on-air frame size in octets.
	Size = 32

	// headerSize is the width of the protocol/group/version triplet
	// that immediately follows the length octet.
	headerSize = 3

	// MinLength is the smallest length value that carries a (possibly
	// empty) payload; anything below this has no payload to extract.
	MinLength = headerSize

	// MaxLength is the largest value the length octet can legitimately
	// hold: Size minus the 2 trailing CRC octets minus the length octet
	// itself (32 - 2 - 1 = 29).
	MaxLength = Size - 3

	// MaxPayload is the largest caller payload that survives untruncated.
	MaxPayload = MaxLength - headerSize

	// headerProtocol, headerGroupField and headerVersion are the fixed
	// {1,0,1} triplet observed on the reference micro:bit device. Their
	// meaning (protocol version? sub-group?) isn't documented upstream;
	// they are transmitted verbatim.
	headerProtocol   = 1
	headerGroupField = 0
	headerVersion    = 1
)
