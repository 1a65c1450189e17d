package smpp

import "fmt"

// enumCodec wraps a single-byte integer codec with a closed set of
// valid values. toValue/fromValue convert between the wire uint32 and
// the field's named Go type so PDU.Params holds e.g. AddrTon rather
// than a bare integer.
type enumCodec struct {
	nullable
	valid     map[uint32]bool
	toValue   func(uint32) any
	fromValue func(any) (uint32, error)
}

func newEnumCodec(toValue func(uint32) any, fromValue func(any) (uint32, error), values ...uint32) *enumCodec {
	valid := make(map[uint32]bool, len(values))
	for _, v := range values {
		valid[v] = true
	}
	return &enumCodec{
		nullable:  nullable{allowNull: true, nullBytes: []byte{0x00}},
		valid:     valid,
		toValue:   toValue,
		fromValue: fromValue,
	}
}

func (c *enumCodec) withStatus(status CommandStatus) *enumCodec {
	cp := *c
	cp.decodeStatus = status
	return &cp
}

func (c *enumCodec) withNullable(allowNull, decodeNull, requireNull bool) *enumCodec {
	cp := *c
	cp.allowNull, cp.decodeNull, cp.requireNull = allowNull, decodeNull, requireNull
	cp.validate()
	return &cp
}

func (c *enumCodec) encode(v any) ([]byte, error) {
	return c.encodeWith(v, func(v any) ([]byte, error) {
		n, err := c.fromValue(v)
		if err != nil {
			return nil, err
		}
		if !c.valid[n] {
			return nil, fmt.Errorf("smpp: value %d is not a recognized enumerant", n)
		}
		return []byte{byte(n)}, nil
	})
}

func (c *enumCodec) decode(cur *cursor) (any, error) {
	raw, err := cur.read(1)
	if err != nil {
		return nil, err
	}
	return c.decodeWith(raw, func(raw []byte) (any, error) {
		n := uint32(raw[0])
		if !c.valid[n] {
			return nil, parseErrf(c.errStatus(), "value %d is not a recognized enumerant", n)
		}
		return c.toValue(n), nil
	})
}

// The concrete enum codecs below are thin instantiations of enumCodec,
// one per named type in types.go. Each lists every valid value from its
// constant block so an out-of-range byte on the wire becomes a
// ParseError rather than silently passing through as an untyped int.

// addrTonCodec and addrNpiCodec are parameterized by the command_status
// to raise on an unrecognized value: the bind PDUs' bare addr_ton and
// addr_npi report ESME_RUNKNOWNERR, while source_addr_ton/
// source_addr_npi report ESME_RINVSRCTON/ESME_RINVSRCNPI and
// dest_addr_ton/dest_addr_npi report ESME_RINVDSTTON/ESME_RINVDSTNPI.
func addrTonCodec(status CommandStatus) *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return AddrTon(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { t, ok := v.(AddrTon); return uint8(t), ok }) },
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
	).withStatus(status)
}

func addrNpiCodec(status CommandStatus) *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return AddrNpi(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { n, ok := v.(AddrNpi); return uint8(n), ok }) },
		0x00, 0x01, 0x03, 0x04, 0x06, 0x08, 0x09, 0x0A, 0x0E, 0x12,
	).withStatus(status)
}

func priorityFlagCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return PriorityFlag(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { p, ok := v.(PriorityFlag); return uint8(p), ok }) },
		0x00, 0x01, 0x02, 0x03,
	).withStatus(ESME_RINVPRTFLG)
}

func replaceIfPresentFlagCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return ReplaceIfPresentFlag(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { r, ok := v.(ReplaceIfPresentFlag); return uint8(r), ok })
		},
		0x00, 0x01,
	)
}

func messageStateCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return MessageState(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { s, ok := v.(MessageState); return uint8(s), ok }) },
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	).withNullable(false, false, false)
}

func dataCodingDefaultCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return DataCodingDefault(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { d, ok := v.(DataCodingDefault); return uint8(d), ok })
		},
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0D, 0x0E,
	)
}

func payloadTypeCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return PayloadType(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { p, ok := v.(PayloadType); return uint8(p), ok }) },
		0x00, 0x01,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

func privacyIndicatorCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return PrivacyIndicator(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { p, ok := v.(PrivacyIndicator); return uint8(p), ok })
		},
		0x00, 0x01, 0x02, 0x03,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

func languageIndicatorCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return LanguageIndicator(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { l, ok := v.(LanguageIndicator); return uint8(l), ok })
		},
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

func displayTimeCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return DisplayTime(n) },
		func(v any) (uint32, error) { return asEnumUint32(v, func(v any) (uint8, bool) { d, ok := v.(DisplayTime); return uint8(d), ok }) },
		0x00, 0x01, 0x02,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

func msAvailabilityStatusCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return MsAvailabilityStatus(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { m, ok := v.(MsAvailabilityStatus); return uint8(m), ok })
		},
		0x00, 0x01, 0x02,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

func deliveryFailureReasonCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return DeliveryFailureReason(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { d, ok := v.(DeliveryFailureReason); return uint8(d), ok })
		},
		0x00, 0x01, 0x02, 0x03,
	)
}

func moreMessagesToSendCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return MoreMessagesToSend(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { m, ok := v.(MoreMessagesToSend); return uint8(m), ok })
		},
		0x00, 0x01,
	).withStatus(ESME_RINVOPTPARAMVAL)
}

// asEnumUint32 accepts either the codec's own named type (via the
// supplied type-assertion helper) or a bare integer, matching the
// source's tolerance for passing either an enum member or its raw int.
func asEnumUint32(v any, assertNamed func(any) (uint8, bool)) (uint32, error) {
	if n, ok := assertNamed(v); ok {
		return uint32(n), nil
	}
	return asUint32(v)
}
