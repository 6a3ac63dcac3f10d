package save

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Every save file starts with a fixed 13-byte header:
//
//	magic    u32 (4)
//	version  i32 (4)
//	flags    u8  (1)
//	length   i32 (4)  payload byte count
//
// The payload bytes follow immediately after the header.
const (
	// Magic identifies a Komorebi save file ("KMRB" on disk).
	Magic uint32 = 0x42524D4B

	// FormatVersion is stamped into every file this build writes.
	FormatVersion int32 = 1

	// HeaderSize is the byte length of the fixed header block.
	HeaderSize = 13
)

var byteOrder = binary.LittleEndian

// Flags is the header flag bitset. Both defined bits are reserved for
// later format versions and are never set by this build.
type Flags uint8

const (
	FlagNone       Flags = 0
	FlagCompressed Flags = 1 << 0
	FlagEncrypted  Flags = 1 << 1
)

var (
	// ErrInvalidFormat reports a file that is not a well-formed save:
	// short header, wrong magic, or an impossible payload length.
	ErrInvalidFormat = errors.New("invalid save file format")

	// ErrUnsupportedVersion reports a format version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported save format version")
)

// Header is the decoded fixed-size prefix of a save file.
type Header struct {
	Magic   uint32
	Version int32
	Flags   Flags
	Length  int32
}

// EncodeHeader builds the header block for a payload of the given byte
// length. The current FormatVersion is always stamped, regardless of what
// the payload was decoded from.
func EncodeHeader(flags Flags, payloadLen int) []byte {
	buf := make([]byte, HeaderSize)
	byteOrder.PutUint32(buf[0:4], Magic)
	byteOrder.PutUint32(buf[4:8], uint32(FormatVersion))
	buf[8] = byte(flags)
	byteOrder.PutUint32(buf[9:13], uint32(payloadLen))
	return buf
}

// DecodeHeader parses the fixed header prefix of a save file. It validates
// shape only; whether the version is supported is the caller's concern.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is too short for a header", ErrInvalidFormat, len(data))
	}
	h := Header{
		Magic:   byteOrder.Uint32(data[0:4]),
		Version: int32(byteOrder.Uint32(data[4:8])),
		Flags:   Flags(data[8]),
		Length:  int32(byteOrder.Uint32(data[9:13])),
	}
	if h.Magic != Magic {
		return Header{}, fmt.Errorf("%w: bad magic 0x%08x", ErrInvalidFormat, h.Magic)
	}
	if h.Length < 0 {
		return Header{}, fmt.Errorf("%w: negative payload length %d", ErrInvalidFormat, h.Length)
	}
	return h, nil
}
