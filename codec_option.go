package smpp

import (
	"encoding/binary"
	"fmt"
)

// optionSpec is the per-tag TLV value codec. decode receives tlvLen —
// the value-length field already read off the wire — as an explicit
// parameter rather than through shared mutable state, so one Codec may
// serve concurrent decoders. Fixed-size and NUL-terminated values
// ignore tlvLen and read their natural width; decodeOptions verifies
// afterwards that what was consumed matches what was declared.
type optionSpec struct {
	encode func(any) ([]byte, error)
	decode func(cur *cursor, tlvLen int) (any, error)
}

func fixedSpec(c fieldCodec) optionSpec {
	return optionSpec{
		encode: c.encode,
		decode: func(cur *cursor, _ int) (any, error) { return c.decode(cur) },
	}
}

func variableSpec(c interface {
	encode(any) ([]byte, error)
	decodeOption(*cursor, int) (any, error)
}) optionSpec {
	return optionSpec{encode: c.encode, decode: c.decodeOption}
}

// varOctetsCodec carries an opaque byte run whose length is exactly the
// enclosing TLV's declared length. Used for message_payload and
// sms_signal.
type varOctetsCodec struct{}

func (varOctetsCodec) encode(v any) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("smpp: expected []byte, got %T", v)
	}
	return append([]byte(nil), b...), nil
}

func (varOctetsCodec) decodeOption(cur *cursor, tlvLen int) (any, error) {
	if tlvLen == 0 {
		return []byte{}, nil
	}
	raw, err := cur.read(tlvLen)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), raw...), nil
}

// optionDispatch maps every implemented tag to its wire codec. The ten
// v3.4 tags this package deliberately leaves unimplemented have named
// constants but no entry here, so a TLV carrying one decodes to
// ESME_ROPTPARNOTALLWD.
var optionDispatch = map[Tag]optionSpec{
	TagDestAddrSubunit:          fixedSpec(addrSubunitEnum()),
	TagDestNetworkType:          fixedSpec(networkTypeEnum()),
	TagDestBearerType:           fixedSpec(bearerTypeEnum()),
	TagDestTelematicsID:         fixedSpec(newIntCodec(2)),
	TagSourceAddrSubunit:        fixedSpec(addrSubunitEnum()),
	TagSourceNetworkType:        fixedSpec(networkTypeEnum()),
	TagSourceBearerType:         fixedSpec(bearerTypeEnum()),
	TagSourceTelematicsID:       fixedSpec(newIntCodec(2)),
	TagQosTimeToLive:            fixedSpec(newIntCodec(4)),
	TagPayloadType:              fixedSpec(payloadTypeCodec()),
	TagAdditionalStatusInfoText: fixedSpec(newCOctetStringCodec(256)),
	TagReceiptedMessageID:       fixedSpec(newCOctetStringCodec(65)),
	TagPrivacyIndicator:         fixedSpec(privacyIndicatorCodec()),
	TagSourceSubaddress:         variableSpec(subaddressCodec{}),
	TagDestSubaddress:           variableSpec(subaddressCodec{}),
	TagUserMessageReference:     fixedSpec(newIntCodec(2)),
	TagUserResponseCode:         fixedSpec(newIntCodec(1)),
	TagSourcePort:               fixedSpec(newIntCodec(2)),
	TagDestinationPort:          fixedSpec(newIntCodec(2)),
	TagSarMsgRefNum:             fixedSpec(newIntCodec(2)),
	TagLanguageIndicator:        fixedSpec(languageIndicatorCodec()),
	TagSarTotalSegments:         fixedSpec(newIntCodec(1)),
	TagSarSegmentSeqnum:         fixedSpec(newIntCodec(1)),
	TagScInterfaceVersion:       fixedSpec(newIntCodec(1)),
	TagNumberOfMessages:         fixedSpec(newIntCodec(1).withBounds(0, 99)),
	TagCallbackNum:              variableSpec(callbackNumCodec{}),
	TagMsAvailabilityStatus:     fixedSpec(msAvailabilityStatusCodec()),
	TagMessagePayload:           variableSpec(varOctetsCodec{}),
	TagDeliveryFailureReason:    fixedSpec(deliveryFailureReasonCodec()),
	TagMoreMessagesToSend:       fixedSpec(moreMessagesToSendCodec()),
	TagMessageState:             fixedSpec(messageStateCodec()),
	TagDisplayTime:              fixedSpec(displayTimeCodec()),
	TagSmsSignal:                variableSpec(varOctetsCodec{}),
	TagAlertOnMessageDelivery:   fixedSpec(emptyCodec{}),
}

func addrSubunitEnum() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return AddrSubunit(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { a, ok := v.(AddrSubunit); return uint8(a), ok }) },
		0x00, 0x01, 0x02, 0x03, 0x04,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

func networkTypeEnum() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return NetworkType(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { n, ok := v.(NetworkType); return uint8(n), ok }) },
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

func bearerTypeEnum() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return BearerType(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { b, ok := v.(BearerType); return uint8(b), ok }) },
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

func containsTag(tags []Tag, t Tag) bool {
	for _, candidate := range tags {
		if candidate == t {
			return true
		}
	}
	return false
}

// encodeOptions serializes the optional parameters present in values,
// emitting them in the order of the command's optional-parameter list
// so a given PDU always encodes to the same byte sequence.
func encodeOptions(values map[string]any, allowed []Tag) ([]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}
	var out []byte
	emitted := 0
	for _, tag := range allowed {
		value, ok := values[tagNames[tag]]
		if !ok {
			continue
		}
		spec, ok := optionDispatch[tag]
		if !ok {
			return nil, fmt.Errorf("smpp: optional parameter %s has no codec", tag)
		}
		body, err := spec.encode(value)
		if err != nil {
			return nil, err
		}
		header := make([]byte, 4)
		binary.BigEndian.PutUint16(header[0:2], uint16(tag))
		binary.BigEndian.PutUint16(header[2:4], uint16(len(body)))
		out = append(out, header...)
		out = append(out, body...)
		emitted++
	}
	if emitted != len(values) {
		for name := range values {
			tag, ok := tagByName[name]
			if !ok {
				return nil, fmt.Errorf("smpp: unrecognized optional parameter %q", name)
			}
			if !containsTag(allowed, tag) {
				return nil, fmt.Errorf("smpp: optional parameter %q is not allowed on this command", name)
			}
		}
	}
	return out, nil
}

// decodeOptions consumes the rest of cur (exactly `remaining` bytes,
// the body length left over after mandatory parameters) as a run of
// TLVs. A tag outside the SMPP v3.4 set fails with
// ESME_RINVOPTPARSTREAM; a known tag this command does not accept (or
// one of the ten undispatched tags) with ESME_ROPTPARNOTALLWD. After
// each value decode the bytes consumed must equal the declared TLV
// length or the option fails with ESME_RINVPARLEN; parse errors raised
// inside a value codec are re-stamped with ESME_RINVOPTPARAMVAL.
func decodeOptions(cur *cursor, remaining int, allowed []Tag) (map[string]any, error) {
	out := make(map[string]any)
	end := cur.tell() + remaining
	for cur.tell() < end {
		rawTag, err := cur.read(2)
		if err != nil {
			return nil, err
		}
		rawLen, err := cur.read(2)
		if err != nil {
			return nil, err
		}
		tag := Tag(binary.BigEndian.Uint16(rawTag))
		tlvLen := int(binary.BigEndian.Uint16(rawLen))
		if cur.tell()+tlvLen > end {
			return nil, corruptErrf(ESME_RINVCMDLEN, "optional parameter 0x%04x overruns the PDU body", uint16(tag))
		}
		name, known := tagNames[tag]
		if !known {
			return nil, parseErrf(ESME_RINVOPTPARSTREAM, "unknown optional parameter tag 0x%04x", uint16(tag))
		}
		spec, ok := optionDispatch[tag]
		if !ok || !containsTag(allowed, tag) {
			return nil, parseErrf(ESME_ROPTPARNOTALLWD, "optional parameter %s is not allowed on this command", tag)
		}
		start := cur.tell()
		value, err := spec.decode(cur, tlvLen)
		if err != nil {
			return nil, restampParseError(err, ESME_RINVOPTPARAMVAL)
		}
		if consumed := cur.tell() - start; consumed != tlvLen {
			return nil, parseErrf(ESME_RINVPARLEN,
				"invalid option length: labeled %d but parsed %d", tlvLen, consumed)
		}
		out[name] = value
	}
	return out, nil
}
