package protocol

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
)

// Codec handles message encoding/decoding
type Codec struct {
	enc *gob.Encoder
	dec *gob.Decoder
}

// NewCodec creates a codec for the given read/writer
func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{
		enc: gob.NewEncoder(rw),
		dec: gob.NewDecoder(rw),
	}
}

// Encode writes a message
func (c *Codec) Encode(msg *Message) error {
	return c.enc.Encode(msg)
}

// Decode reads a message
func (c *Codec) Decode() (*Message, error) {
	var msg Message
	if err := c.dec.Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Marshal encodes a message as a self-contained frame.
// Every frame carries its own type information so frames can be dropped or
// delivered to late joiners independently.
func Marshal(msg *Message) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewCodec(&buf).Encode(msg); err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a frame produced by Marshal
func Unmarshal(frame []byte) (*Message, error) {
	msg, err := NewCodec(bytes.NewBuffer(frame)).Decode()
	if err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	return msg, nil
}
