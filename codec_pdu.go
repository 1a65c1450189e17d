package smpp

import (
	"encoding/binary"
	"fmt"
)

const pduHeaderSize = 16

// maxPDUSize caps the command_length a decoder will accept. The field
// is 32 bits wide on the wire, but no real PDU approaches that; the cap
// keeps a corrupt length from driving allocation.
const maxPDUSize = 1 << 20

// shortMessageCodec encodes the sm_length + short_message pair as a
// single logical field: a one-byte length prefix (capped at 254, the
// SMPP v3.4 ceiling — longer payloads must travel in the message_payload
// TLV instead) followed by that many bytes of message body. A nil value
// encodes as a zero-length message.
type shortMessageCodec struct{}

const maxShortMessageLen = 254

func (shortMessageCodec) encode(v any) ([]byte, error) {
	var b []byte
	if v != nil {
		var ok bool
		b, ok = v.([]byte)
		if !ok {
			return nil, fmt.Errorf("smpp: expected []byte, got %T", v)
		}
	}
	if len(b) > maxShortMessageLen {
		return nil, fmt.Errorf("smpp: short_message of %d bytes exceeds max %d", len(b), maxShortMessageLen)
	}
	out := make([]byte, 1, 1+len(b))
	out[0] = byte(len(b))
	return append(out, b...), nil
}

func (shortMessageCodec) decode(cur *cursor) (any, error) {
	n, err := cur.readByte()
	if err != nil {
		return nil, err
	}
	raw, err := cur.read(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), raw...), nil
}

// paramSpec binds a mandatory parameter's PDU.Params key to the codec
// that reads/writes its wire representation, in the fixed order SMPP
// v3.4 defines for that command.
type paramSpec struct {
	name  string
	codec fieldCodec
}

// commandSpec is the per-CommandID metadata that drives encode/decode:
// the ordered mandatory parameters, the ordered optional parameters the
// command may carry, and whether a non-success response carries no body
// at all.
type commandSpec struct {
	params         []paramSpec
	optionalParams []Tag
	noBodyOnError  bool
}

// Codec encodes and decodes SMPP v3.4 PDUs. It is stateless and safe
// for concurrent use; every decode call threads its own cursor and
// every TLV its own explicit length rather than touching shared state.
type Codec struct{}

// NewCodec returns a ready-to-use Codec.
func NewCodec() *Codec { return &Codec{} }

// Encode serializes p into a complete SMPP PDU, header included. Every
// mandatory parameter of p's command must be present in p.Params; a
// nullable field carries an explicit nil.
func (Codec) Encode(p *PDU) ([]byte, error) {
	spec, ok := commandSpecs[p.CommandID]
	if !ok {
		return nil, fmt.Errorf("smpp: unrecognized command_id 0x%08x", uint32(p.CommandID))
	}
	if p.SequenceNumber < 1 {
		return nil, fmt.Errorf("smpp: sequence_number must be >= 1, got %d", p.SequenceNumber)
	}
	var body []byte
	if !(spec.noBodyOnError && p.CommandStatus != ESME_ROK) {
		optionValues := make(map[string]any, len(p.Params))
		for k, v := range p.Params {
			optionValues[k] = v
		}
		for _, ps := range spec.params {
			v, ok := p.Params[ps.name]
			if !ok {
				return nil, fmt.Errorf("smpp: missing required parameter %q", ps.name)
			}
			delete(optionValues, ps.name)
			b, err := ps.codec.encode(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ps.name, err)
			}
			body = append(body, b...)
		}
		opts, err := encodeOptions(optionValues, spec.optionalParams)
		if err != nil {
			return nil, err
		}
		body = append(body, opts...)
	}
	out := make([]byte, pduHeaderSize+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(pduHeaderSize+len(body)))
	binary.BigEndian.PutUint32(out[4:8], uint32(p.CommandID))
	binary.BigEndian.PutUint32(out[8:12], uint32(p.CommandStatus))
	binary.BigEndian.PutUint32(out[12:16], p.SequenceNumber)
	copy(out[16:], body)
	return out, nil
}

// Decode parses a single complete SMPP PDU out of data. data must
// contain exactly one PDU; callers that frame PDUs off a stream are
// responsible for slicing command_length bytes before calling Decode.
// Nullable mandatory parameters decoded as null appear in Params with
// an explicit nil value, so a decoded PDU re-encodes as-is.
func (Codec) Decode(data []byte) (*PDU, error) {
	if len(data) < pduHeaderSize {
		return nil, corruptErrf(ESME_RINVCMDLEN, "pdu shorter than the 16-byte header")
	}
	cmdLen := binary.BigEndian.Uint32(data[0:4])
	if cmdLen < pduHeaderSize {
		return nil, corruptErrf(ESME_RINVCMDLEN, "command_length %d is smaller than the header", cmdLen)
	}
	if cmdLen > maxPDUSize {
		return nil, corruptErrf(ESME_RINVCMDLEN, "command_length %d exceeds the %d-byte cap", cmdLen, maxPDUSize)
	}
	if int(cmdLen) != len(data) {
		return nil, corruptErrf(ESME_RINVCMDLEN, "command_length %d does not match %d bytes supplied", cmdLen, len(data))
	}
	cmdID := CommandID(binary.BigEndian.Uint32(data[4:8]))
	status := CommandStatus(binary.BigEndian.Uint32(data[8:12]))
	seq := binary.BigEndian.Uint32(data[12:16])
	spec, ok := commandSpecs[cmdID]
	if !ok {
		return nil, corruptErrf(ESME_RINVCMDID, "unrecognized command_id 0x%08x", uint32(cmdID))
	}
	if _, ok := commandStatusNames[status]; !ok {
		return nil, parseErrf(ESME_RUNKNOWNERR, "unknown command_status 0x%08x", uint32(status))
	}
	if seq < 1 {
		return nil, corruptErrf(ESME_RUNKNOWNERR, "sequence_number must be >= 1, got %d", seq)
	}
	p := &PDU{CommandID: cmdID, CommandStatus: status, SequenceNumber: seq, Params: map[string]any{}}
	if spec.noBodyOnError && status != ESME_ROK {
		if int(cmdLen) != pduHeaderSize {
			return nil, corruptErrf(ESME_RINVCMDLEN, "non-success response carries an unexpected body")
		}
		return p, nil
	}
	cur := newCursor(data[pduHeaderSize:])
	for _, ps := range spec.params {
		v, err := ps.codec.decode(cur)
		if err != nil {
			return nil, err
		}
		p.Params[ps.name] = v
	}
	if cur.remaining() > 0 {
		if len(spec.optionalParams) == 0 {
			return nil, corruptErrf(ESME_RINVCMDLEN,
				"command_length %d leaves %d unexpected trailing bytes", cmdLen, cur.remaining())
		}
		opts, err := decodeOptions(cur, cur.remaining(), spec.optionalParams)
		if err != nil {
			return nil, err
		}
		for k, v := range opts {
			p.Params[k] = v
		}
	}
	return p, nil
}
