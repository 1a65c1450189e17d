package smpp

import (
	"fmt"
)

// callbackNumDMICodec validates the digit-mode-indicator byte leading a
// callback_num value.
func callbackNumDMICodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return CallbackNumDigitModeIndicator(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { d, ok := v.(CallbackNumDigitModeIndicator); return uint8(d), ok })
		},
		0x00, 0x01,
	).withNullable(false, false, false).withStatus(ESME_RINVOPTPARAMVAL)
}

// callbackNumCodec decodes the callback_num optional parameter: a
// digit-mode indicator byte, a TON byte, an NPI byte, and a trailing
// digit string that fills out the rest of the TLV's declared length.
type callbackNumCodec struct{}

func (callbackNumCodec) encode(v any) ([]byte, error) {
	c, ok := v.(CallbackNum)
	if !ok {
		return nil, fmt.Errorf("smpp: expected CallbackNum, got %T", v)
	}
	var out []byte
	for _, part := range []struct {
		codec *enumCodec
		value any
	}{
		{callbackNumDMICodec(), c.DigitModeIndicator},
		{addrTonCodec(ESME_RINVOPTPARAMVAL), c.TON},
		{addrNpiCodec(ESME_RINVOPTPARAMVAL), c.NPI},
	} {
		b, err := part.codec.encode(part.value)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return append(out, c.Digits...), nil
}

// decodeOption reads a callback_num from exactly tlvLen bytes of the
// optional-parameter stream. tlvLen must be at least 3 (the three fixed
// header bytes); anything shorter is malformed.
func (callbackNumCodec) decodeOption(cur *cursor, tlvLen int) (any, error) {
	if tlvLen < 3 {
		return nil, parseErrf(ESME_RINVOPTPARAMVAL, "callback_num shorter than 3 bytes")
	}
	raw, err := cur.read(tlvLen)
	if err != nil {
		return nil, err
	}
	dmi, err := callbackNumDMICodec().decode(newCursor(raw[0:1]))
	if err != nil {
		return nil, err
	}
	ton, err := addrTonCodec(ESME_RINVOPTPARAMVAL).decode(newCursor(raw[1:2]))
	if err != nil {
		return nil, err
	}
	npi, err := addrNpiCodec(ESME_RINVOPTPARAMVAL).decode(newCursor(raw[2:3]))
	if err != nil {
		return nil, err
	}
	return CallbackNum{
		DigitModeIndicator: dmi.(CallbackNumDigitModeIndicator),
		TON:                ton.(AddrTon),
		NPI:                npi.(AddrNpi),
		Digits:             append([]byte(nil), raw[3:]...),
	}, nil
}

func subaddressTypeTagCodec() *enumCodec {
	return newEnumCodec(
		func(n uint32) any { return SubaddressTypeTag(n) },
		func(v any) (uint32, error) {
			return asEnumUint32(v, func(v any) (uint8, bool) { t, ok := v.(SubaddressTypeTag); return uint8(t), ok })
		},
		uint32(SubaddressNSAPEven), uint32(SubaddressNSAPOdd), uint32(SubaddressUserSpecified),
	).withNullable(false, false, false).withStatus(ESME_RINVOPTPARAMVAL)
}

// subaddressCodec decodes the source/dest_subaddress optional
// parameters: a one-byte type tag followed by the rest of the TLV's
// declared length.
type subaddressCodec struct{}

func (subaddressCodec) encode(v any) ([]byte, error) {
	s, ok := v.(Subaddress)
	if !ok {
		return nil, fmt.Errorf("smpp: expected Subaddress, got %T", v)
	}
	tag, err := subaddressTypeTagCodec().encode(s.TypeTag)
	if err != nil {
		return nil, err
	}
	return append(tag, s.Value...), nil
}

func (subaddressCodec) decodeOption(cur *cursor, tlvLen int) (any, error) {
	if tlvLen < 2 {
		return nil, parseErrf(ESME_RINVOPTPARAMVAL, "subaddress shorter than 2 bytes")
	}
	raw, err := cur.read(tlvLen)
	if err != nil {
		return nil, err
	}
	tag, err := subaddressTypeTagCodec().decode(newCursor(raw[0:1]))
	if err != nil {
		return nil, err
	}
	return Subaddress{
		TypeTag: tag.(SubaddressTypeTag),
		Value:   append([]byte(nil), raw[1:]...),
	}, nil
}

// ScheduleTime is the decoded form of schedule_delivery_time and
// validity_period: the absolute-time/relative-time grammar of SMPP v3.4
// section 7.1.1 (YYMMDDhhmmsstnnp), where p is '+', '-' for an absolute
// UTC offset in quarter hours, or 'R' for a relative (not clock-based)
// interval.
type ScheduleTime struct {
	Relative              bool
	Year, Month, Day      int
	Hour, Minute, Second  int
	Tenths                int
	UTCOffsetQuarterHours int
	UTCOffsetSign         byte // '+' or '-'; meaningless when Relative
}

// timeCodec encodes/decodes a nullable ScheduleTime through the 17-byte
// (16 digits/letters + NUL) C-octet string convention shared by
// schedule_delivery_time, validity_period and final_date. The
// invalidStatus supplied at construction lets the same codec report
// ESME_RINVSCHED for one field and ESME_RINVEXPIRY for another.
type timeCodec struct {
	nullable
	invalidStatus CommandStatus
}

func newTimeCodec(invalidStatus CommandStatus) *timeCodec {
	return &timeCodec{
		nullable:      nullable{allowNull: true, decodeNull: true, nullBytes: []byte{0x00}, decodeStatus: invalidStatus},
		invalidStatus: invalidStatus,
	}
}

func (c *timeCodec) encode(v any) ([]byte, error) {
	return c.encodeWith(v, func(v any) ([]byte, error) {
		t, ok := v.(ScheduleTime)
		if !ok {
			return nil, fmt.Errorf("smpp: expected ScheduleTime, got %T", v)
		}
		s, err := formatScheduleTime(t)
		if err != nil {
			return nil, err
		}
		return append([]byte(s), 0x00), nil
	})
}

func (c *timeCodec) decode(cur *cursor) (any, error) {
	raw, err := readCStringBytes(cur)
	if err != nil {
		return nil, err
	}
	return c.decodeWith(raw, func(raw []byte) (any, error) {
		return parseScheduleTime(string(raw[:len(raw)-1]), c.invalidStatus)
	})
}

func formatScheduleTime(t ScheduleTime) (string, error) {
	if t.Year > 99 || t.Month > 12 || t.Day > 31 || t.Hour > 23 || t.Minute > 59 || t.Second > 59 || t.Tenths > 9 {
		return "", fmt.Errorf("smpp: time field out of range: %+v", t)
	}
	sign := byte('R')
	offset := 0
	if !t.Relative {
		if t.UTCOffsetQuarterHours > 48 {
			return "", fmt.Errorf("smpp: utc offset %d exceeds 48 quarter-hours", t.UTCOffsetQuarterHours)
		}
		if t.UTCOffsetSign != '+' && t.UTCOffsetSign != '-' {
			return "", fmt.Errorf("smpp: utc offset sign must be '+' or '-'")
		}
		sign = t.UTCOffsetSign
		offset = t.UTCOffsetQuarterHours
	}
	return fmt.Sprintf("%02d%02d%02d%02d%02d%02d%01d%02d%c",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Tenths, offset, sign), nil
}

func parseScheduleTime(s string, status CommandStatus) (ScheduleTime, error) {
	if len(s) != 16 {
		return ScheduleTime{}, parseErrf(status, "time string must be 16 characters, got %d", len(s))
	}
	var t ScheduleTime
	fields := []*int{&t.Year, &t.Month, &t.Day, &t.Hour, &t.Minute, &t.Second, &t.Tenths}
	widths := []int{2, 2, 2, 2, 2, 2, 1}
	pos := 0
	for i, w := range widths {
		n, err := parseFixedDigits(s[pos:pos+w], status)
		if err != nil {
			return ScheduleTime{}, err
		}
		*fields[i] = n
		pos += w
	}
	offset, err := parseFixedDigits(s[pos:pos+2], status)
	if err != nil {
		return ScheduleTime{}, err
	}
	pos += 2
	switch s[pos] {
	case 'R':
		t.Relative = true
	case '+', '-':
		t.UTCOffsetSign = s[pos]
		t.UTCOffsetQuarterHours = offset
	default:
		return ScheduleTime{}, parseErrf(status, "time string has invalid sign character %q", s[pos])
	}
	return t, nil
}

func parseFixedDigits(s string, status CommandStatus) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, parseErrf(status, "time string contains a non-digit %q", r)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
