package udh

import (
	"errors"
	"fmt"
)

// ErrShortHeader is returned when fewer bytes remain than the header's
// own length prefix promises.
var ErrShortHeader = errors.New("udh: header shorter than its declared length")

// ErrElementLength is returned when an Information Element's declared
// length does not match the number of bytes its data decoder consumed.
var ErrElementLength = errors.New("udh: information element length mismatch")

// Encode serializes h as a length-prefixed run of Information Elements:
// one byte giving the total length of what follows, then each element
// as identifier + one-byte length + data. Elements that collide under
// the non-repeatable/exclusion rules are rejected outright — Encode
// never silently drops data the way Decode's last-wins resolution does,
// since a caller constructing a header controls its own elements.
func Encode(h UserDataHeader) ([]byte, error) {
	seen := make(map[InformationElementIdentifier]bool, len(h))
	var body []byte
	for _, ie := range h {
		rule, ok := identifierRules[ie.Identifier]
		if !ok {
			return nil, fmt.Errorf("udh: unknown information element identifier 0x%02X", uint8(ie.Identifier))
		}
		if !rule.repeatable {
			if seen[ie.Identifier] {
				return nil, errors.New("udh: " + rule.name + " cannot repeat")
			}
			for _, excluded := range rule.excludes {
				if seen[excluded] {
					return nil, errors.New("udh: " + rule.name + " and " + excluded.String() + " are mutually exclusive")
				}
			}
			seen[ie.Identifier] = true
		}
		data, err := encodeElementData(ie)
		if err != nil {
			return nil, err
		}
		if len(data) > 0xFF {
			return nil, errors.New("udh: information element data exceeds 255 bytes")
		}
		body = append(body, byte(ie.Identifier), byte(len(data)))
		body = append(body, data...)
	}
	if len(body) > 0xFF {
		return nil, errors.New("udh: header exceeds 255 bytes")
	}
	return append([]byte{byte(len(body))}, body...), nil
}

func encodeElementData(ie InformationElement) ([]byte, error) {
	switch ie.Identifier {
	case ConcatenatedSM8BitRefNum, ConcatenatedSM16BitRefNum:
		cms, ok := ie.Data.(ConcatenatedSM)
		if !ok {
			return nil, errors.New("udh: " + ie.Identifier.String() + " data must be a ConcatenatedSM")
		}
		return encodeConcatenatedSM(ie.Identifier, cms), nil
	default:
		data, ok := ie.Data.([]byte)
		if !ok {
			return nil, errors.New("udh: " + ie.Identifier.String() + " data must be []byte")
		}
		return data, nil
	}
}

func encodeConcatenatedSM(id InformationElementIdentifier, cms ConcatenatedSM) []byte {
	var out []byte
	if id == ConcatenatedSM16BitRefNum {
		out = append(out, byte(cms.ReferenceNum>>8), byte(cms.ReferenceNum))
	} else {
		out = append(out, byte(cms.ReferenceNum))
	}
	return append(out, cms.MaximumNum, cms.SequenceNum)
}

// Decode parses the User Data Header occupying the start of data,
// resolving repeats per 3GPP TS 23.040 (non-repeatable/mutually
// exclusive identifiers keep only their last occurrence, in header
// order, after every repeatable occurrence). An element with an
// identifier outside the TS 23.040 registry is skipped: its length byte
// and data are still consumed, but nothing is returned for it. Decode
// returns the decoded header and the number of bytes consumed from
// data — 1 (the length prefix) plus the declared header length — so
// the caller can slice the remaining short_message bytes.
func Decode(data []byte) (UserDataHeader, int, error) {
	if len(data) < 1 {
		return nil, 0, ErrShortHeader
	}
	headerLen := int(data[0])
	if len(data) < 1+headerLen {
		return nil, 0, ErrShortHeader
	}
	body := data[1 : 1+headerLen]

	var repeatable []InformationElement
	// nonRepeatable plus order emulate an insertion-ordered map: a
	// repeated identifier keeps its original slot, but one excluded out
	// of the map and seen again re-enters at the end, so the returned
	// order reflects each survivor's final occurrence.
	nonRepeatable := make(map[InformationElementIdentifier]InformationElement)
	var order []InformationElementIdentifier

	pos := 0
	for pos < len(body) {
		if pos+2 > len(body) {
			return nil, 0, ErrElementLength
		}
		id := InformationElementIdentifier(body[pos])
		length := int(body[pos+1])
		if pos+2+length > len(body) {
			return nil, 0, ErrElementLength
		}
		elementData := body[pos+2 : pos+2+length]
		pos += 2 + length

		rule, known := identifierRules[id]
		if !known {
			continue
		}
		value, consumed, err := decodeElementData(id, elementData)
		if err != nil {
			return nil, 0, err
		}
		if consumed != length {
			return nil, 0, ErrElementLength
		}
		ie := InformationElement{Identifier: id, Data: value}
		if rule.repeatable {
			repeatable = append(repeatable, ie)
			continue
		}
		if _, exists := nonRepeatable[id]; !exists {
			order = append(order, id)
		}
		nonRepeatable[id] = ie
		for _, excluded := range rule.excludes {
			if _, ok := nonRepeatable[excluded]; ok {
				delete(nonRepeatable, excluded)
				order = removeIdentifier(order, excluded)
			}
		}
	}

	out := append([]InformationElement(nil), repeatable...)
	for _, id := range order {
		out = append(out, nonRepeatable[id])
	}
	return UserDataHeader(out), 1 + headerLen, nil
}

func removeIdentifier(order []InformationElementIdentifier, id InformationElementIdentifier) []InformationElementIdentifier {
	for i, candidate := range order {
		if candidate == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func decodeElementData(id InformationElementIdentifier, data []byte) (any, int, error) {
	switch id {
	case ConcatenatedSM8BitRefNum:
		if len(data) < 3 {
			return nil, 0, ErrElementLength
		}
		return ConcatenatedSM{ReferenceNum: uint16(data[0]), MaximumNum: data[1], SequenceNum: data[2]}, 3, nil
	case ConcatenatedSM16BitRefNum:
		if len(data) < 4 {
			return nil, 0, ErrElementLength
		}
		ref := uint16(data[0])<<8 | uint16(data[1])
		return ConcatenatedSM{ReferenceNum: ref, MaximumNum: data[2], SequenceNum: data[3]}, 4, nil
	default:
		return append([]byte(nil), data...), len(data), nil
	}
}
