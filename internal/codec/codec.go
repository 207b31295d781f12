package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Bytes is a byte slice that marshals as {"type":"Buffer","data":[...]}.
//
// On unmarshal it also accepts a plain JSON array of numbers and a base64
// string, so records written by other encoders still load.
type Bytes []byte

// MarshalJSON implements json.Marshaler.
func (b Bytes) MarshalJSON() ([]byte, error) {
	data := make([]int, len(b))
	for i, c := range b {
		data[i] = int(c)
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		Data []int  `json:"data"`
	}{Type: "Buffer", Data: data})
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(raw []byte) error {
	if len(raw) == 0 || string(raw) == "null" {
		*b = nil
		return nil
	}

	switch raw[0] {
	case '{':
		var marker struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &marker); err != nil {
			return err
		}
		if marker.Type != "Buffer" {
			return fmt.Errorf("codec: unexpected marker type %q", marker.Type)
		}
		var nums []uint8
		if err := unmarshalByteArray(marker.Data, &nums); err != nil {
			return err
		}
		*b = nums
		return nil
	case '[':
		var nums []uint8
		if err := unmarshalByteArray(raw, &nums); err != nil {
			return err
		}
		*b = nums
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("codec: bad base64 payload: %w", err)
		}
		*b = decoded
		return nil
	default:
		return fmt.Errorf("codec: cannot decode %q as bytes", string(raw))
	}
}

// unmarshalByteArray decodes a JSON array of numbers into out. encoding/json
// would otherwise treat []uint8 as base64.
func unmarshalByteArray(raw json.RawMessage, out *[]uint8) error {
	var nums []uint16
	if err := json.Unmarshal(raw, &nums); err != nil {
		return err
	}
	buf := make([]uint8, len(nums))
	for i, n := range nums {
		if n > 0xff {
			return fmt.Errorf("codec: byte value %d out of range", n)
		}
		buf[i] = uint8(n)
	}
	*out = buf
	return nil
}

// Marshal encodes v as indented JSON.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
