package smpp

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// fieldCodec is the capability every mandatory-parameter codec provides:
// turn a Go value into wire bytes, and read wire bytes back into a Go
// value. PDU.Params is a map[string]any because mandatory parameters
// are heterogeneously typed, so the codec boundary trades static typing
// for a single uniform interface.
//
// encode errors are ordinary errors: they happen before any bytes reach
// the wire, so they carry no SMPP command status. decode errors are
// *ParseError or *CorruptError carrying the status to surface.
type fieldCodec interface {
	encode(v any) ([]byte, error)
	decode(c *cursor) (any, error)
}

// nullable is the mixin contract every scalar field codec embeds:
// whether a null value may be encoded/decoded at all, whether the wire
// sentinel should be recognized as null on decode, and whether null is
// the *only* value decode will accept. Concrete codecs supply nullBytes
// (the wire sentinel) and the non-null encode/decode path. Fields
// default to nullable with decodeNull off.
type nullable struct {
	allowNull    bool
	decodeNull   bool
	requireNull  bool
	nullBytes    []byte
	decodeStatus CommandStatus
}

func (n nullable) validate() {
	if n.decodeNull && !n.allowNull {
		panic("smpp: decodeNull set without nullable")
	}
	if n.requireNull && !n.decodeNull {
		panic("smpp: requireNull set without decodeNull")
	}
}

func (n nullable) encodeWith(v any, encodeValue func(any) ([]byte, error)) ([]byte, error) {
	if v == nil {
		if !n.allowNull {
			return nil, fmt.Errorf("smpp: field is not nullable")
		}
		return append([]byte(nil), n.nullBytes...), nil
	}
	if n.requireNull {
		return nil, fmt.Errorf("smpp: field must be null")
	}
	return encodeValue(v)
}

func (n nullable) decodeWith(raw []byte, decodeValue func([]byte) (any, error)) (any, error) {
	if n.decodeNull && bytes.Equal(raw, n.nullBytes) {
		return nil, nil
	}
	if n.requireNull {
		return nil, parseErrf(n.errStatus(), "field must be null")
	}
	return decodeValue(raw)
}

func (n nullable) errStatus() CommandStatus {
	if n.decodeStatus != 0 {
		return n.decodeStatus
	}
	return ESME_RUNKNOWNERR
}

// intCodec encodes unsigned big-endian integers of 1, 2 or 4 bytes,
// bounded to [min, max] on encode. Values travel through PDU.Params as
// uint32 regardless of wire width; nil represents the null sentinel.
type intCodec struct {
	nullable
	size     int
	min, max uint32
}

func newIntCodec(size int) *intCodec {
	c := &intCodec{size: size, max: maxForSize(size)}
	c.allowNull = true
	c.nullBytes = make([]byte, size)
	return c
}

func maxForSize(size int) uint32 {
	switch size {
	case 1:
		return 0xFF
	case 2:
		return 0xFFFF
	default:
		return 0xFFFFFFFF
	}
}

// withBounds returns a copy of c with min/max overridden. A nullable
// codec whose legal range excludes zero gets the all-zero sentinel
// interpreted as null on decode automatically.
func (c *intCodec) withBounds(min, max uint32) *intCodec {
	cp := *c
	cp.min, cp.max = min, max
	if cp.allowNull && cp.min > 0 {
		cp.decodeNull = true
	}
	return &cp
}

func (c *intCodec) withNullable(nullable, decodeNull, requireNull bool) *intCodec {
	cp := *c
	cp.allowNull, cp.decodeNull, cp.requireNull = nullable, decodeNull, requireNull
	if cp.allowNull && cp.min > 0 {
		cp.decodeNull = true
	}
	cp.validate()
	return &cp
}

func (c *intCodec) withStatus(status CommandStatus) *intCodec {
	cp := *c
	cp.decodeStatus = status
	return &cp
}

func (c *intCodec) encode(v any) ([]byte, error) {
	return c.encodeWith(v, func(v any) ([]byte, error) {
		n, err := asUint32(v)
		if err != nil {
			return nil, err
		}
		if n > c.max {
			return nil, fmt.Errorf("smpp: value %d exceeds max %d", n, c.max)
		}
		if n < c.min {
			return nil, fmt.Errorf("smpp: value %d is less than min %d", n, c.min)
		}
		buf := make([]byte, c.size)
		switch c.size {
		case 1:
			buf[0] = byte(n)
		case 2:
			binary.BigEndian.PutUint16(buf, uint16(n))
		case 4:
			binary.BigEndian.PutUint32(buf, n)
		}
		return buf, nil
	})
}

func (c *intCodec) decode(cur *cursor) (any, error) {
	raw, err := cur.read(c.size)
	if err != nil {
		return nil, err
	}
	return c.decodeWith(raw, func(raw []byte) (any, error) {
		return decodeUint(raw), nil
	})
}

func decodeUint(raw []byte) uint32 {
	switch len(raw) {
	case 1:
		return uint32(raw[0])
	case 2:
		return uint32(binary.BigEndian.Uint16(raw))
	default:
		return binary.BigEndian.Uint32(raw)
	}
}

func asUint32(v any) (uint32, error) {
	switch n := v.(type) {
	case uint32:
		return n, nil
	case uint16:
		return uint32(n), nil
	case uint8:
		return uint32(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("smpp: negative value %d", n)
		}
		return uint32(n), nil
	default:
		return 0, fmt.Errorf("smpp: expected an integer value, got %T", v)
	}
}

// cOctetStringCodec encodes ASCII text terminated by a single 0x00 byte,
// the terminator counting against maxSize. maxSize 0 means unbounded.
type cOctetStringCodec struct {
	nullable
	maxSize int
}

func newCOctetStringCodec(maxSize int) *cOctetStringCodec {
	c := &cOctetStringCodec{maxSize: maxSize}
	c.allowNull = true
	c.nullBytes = []byte{0x00}
	return c
}

func (c *cOctetStringCodec) withNullable(allowNull, decodeNull, requireNull bool) *cOctetStringCodec {
	cp := *c
	cp.allowNull, cp.decodeNull, cp.requireNull = allowNull, decodeNull, requireNull
	cp.validate()
	return &cp
}

func (c *cOctetStringCodec) withStatus(status CommandStatus) *cOctetStringCodec {
	cp := *c
	cp.decodeStatus = status
	return &cp
}

func (c *cOctetStringCodec) encode(v any) ([]byte, error) {
	return c.encodeWith(v, func(v any) ([]byte, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("smpp: expected string, got %T", v)
		}
		if c.maxSize > 0 && len(s)+1 > c.maxSize {
			return nil, fmt.Errorf(
				"smpp: COctetString longer than allowed maximum size (%d): %s", c.maxSize, s)
		}
		return append([]byte(s), 0x00), nil
	})
}

func (c *cOctetStringCodec) decode(cur *cursor) (any, error) {
	raw, err := readCStringBytes(cur)
	if err != nil {
		return nil, err
	}
	return c.decodeWith(raw, func(raw []byte) (any, error) {
		if c.maxSize > 0 && len(raw) > c.maxSize {
			return nil, parseErrf(c.errStatus(),
				"COctetString longer than allowed maximum size (%d)", c.maxSize)
		}
		return string(raw[:len(raw)-1]), nil
	})
}

// readCStringBytes reads one byte at a time up to and including the
// terminating 0x00, returning the raw bytes (terminator included) so the
// nullable mixin can compare against its null sentinel ([]byte{0}).
func readCStringBytes(cur *cursor) ([]byte, error) {
	var out []byte
	for {
		b, err := cur.readByte()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
		if b == 0x00 {
			return out, nil
		}
	}
}

// emptyCodec encodes to zero bytes and decodes to nil. Used for
// alert_on_message_delivery.
type emptyCodec struct{}

func (emptyCodec) encode(any) ([]byte, error)  { return nil, nil }
func (emptyCodec) decode(*cursor) (any, error) { return nil, nil }
