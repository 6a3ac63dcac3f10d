package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrDecode reports payload bytes that could not be decoded into a record.
var ErrDecode = errors.New("save payload decode failed")

// encodePayload renders a record as UTF-8 JSON bytes. A nil value encodes
// as the empty object so the codec never fails on an absent record.
func encodePayload(v any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

// decodePayload parses UTF-8 JSON bytes into out. Empty input, bytes that
// are not valid UTF-8, and malformed JSON all fail with ErrDecode; out is
// a caller-provided value so a failed decode never yields a nil record.
func decodePayload(data []byte, out any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrDecode)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: payload is not valid UTF-8 text", ErrDecode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
