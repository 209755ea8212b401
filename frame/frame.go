package frame

// Address returns the 5-octet radio address shared by the RX pipe-0 and
// TX address registers: the group id followed by the literal "tibu"
// spelled backwards ("ubit"), each octet bit-reversed. Note the octet
// order differs from crcSeed — the address spells the string backwards,
// the CRC seed does not.
func Address(group byte) [5]byte {
	return [5]byte{
		reverse8(group), reverse8('u'), reverse8('b'), reverse8('i'), reverse8('t'),
	}
}

// Encode builds an outbound 32-octet on-air frame from a caller payload.
// Payloads longer than MaxPayload are silently truncated to fit — this
// is the documented (and questioned, see DESIGN.md) micro:bit behaviour,
// not an error condition.
func Encode(group byte, payload []byte) [Size]byte {
	var f [Size]byte

	length := len(payload) + headerSize
	if length > MaxLength {
		length = MaxLength
	}
	f[0] = byte(length)
	f[1], f[2], f[3] = headerProtocol, headerGroupField, headerVersion

	payloadLen := length - headerSize
	copy(f[4:4+payloadLen], payload[:payloadLen])

	seed := crcSeed(group)
	crcInput := make([]byte, 0, len(seed)+length+1)
	crcInput = append(crcInput, seed[:]...)

	// Reverse the length/header/payload region in place while feeding
	// the (already reversed) octets to the CRC, exactly as the sender
	// does on the reference device.
	for i := 0; i <= length; i++ {
		f[i] = reverse8(f[i])
		crcInput = append(crcInput, f[i])
	}

	digest := crc16(crcInput)
	f[length+1] = byte(digest >> 8)
	f[length+2] = byte(digest)

	whiten(&f)
	return f
}

// Decode inverts Encode: it de-whitens a raw 32-octet frame, validates
// the CRC, and extracts the payload. A bad CRC or an out-of-range length
// octet is never reported as an error — it yields (nil, false), meaning
// "no data", matching the silent-drop policy for channel noise.
//
// The send path reverses octets [0..=length] before feeding them to the
// CRC; the receive path below gets the same bytes for free by
// de-whitening first and feeding the CRC *before* un-reversing each
// octet back to its original value. This is algebraically the same
// accumulation the reference implementation does one bit at a time
// while decoding; collecting it into one CalculateCRC call is simpler
// and exactly equivalent because the fed region is always a contiguous
// prefix of the de-whitened buffer.
func Decode(group byte, raw [Size]byte) ([]byte, bool) {
	f := raw
	whiten(&f)

	length := int(reverse8(f[0]))
	if length > MaxLength {
		return nil, false
	}

	seed := crcSeed(group)
	crcInput := make([]byte, 0, len(seed)+length+1)
	crcInput = append(crcInput, seed[:]...)
	crcInput = append(crcInput, f[:length+1]...)

	digest := crc16(crcInput)
	if f[length+1] != byte(digest>>8) || f[length+2] != byte(digest) {
		return nil, false
	}

	if length < MinLength {
		return nil, false
	}

	payload := make([]byte, length-headerSize)
	for i := range payload {
		payload[i] = reverse8(f[4+i])
	}
	return payload, true
}
