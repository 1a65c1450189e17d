package smpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smpp-go/smpp34/util"
)

func TestBindTransmitterRoundTrip(t *testing.T) {
	p := &PDU{
		CommandID:      BindTransmitterID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 1,
		Params: map[string]any{
			"system_id":         "smppclient1",
			"password":          "secret08",
			"system_type":       "",
			"interface_version": uint32(0x34),
			"addr_ton":          TonUnknown,
			"addr_npi":          NpiUnknown,
			"address_range":     "",
		},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, p.CommandID, got.CommandID)
	assert.Equal(t, p.SequenceNumber, got.SequenceNumber)
	assert.Equal(t, "smppclient1", got.Params["system_id"])
	assert.Equal(t, "secret08", got.Params["password"])
	assert.Equal(t, TonUnknown, got.Params["addr_ton"])
}

func TestBindTransmitterTotalLength(t *testing.T) {
	p := &PDU{
		CommandID:      BindTransmitterID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 1,
		Params: map[string]any{
			"system_id":         "smppclient",
			"password":          "pass",
			"system_type":       "",
			"interface_version": uint32(0x34),
			"addr_ton":          TonUnknown,
			"addr_npi":          NpiUnknown,
			"address_range":     "",
		},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	// 16-byte header + "smppclient\0" + "pass\0" + "\0" + 1 + 1 + 1 + "\0"
	require.Len(t, raw, 37)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 37}, raw[0:4])

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, p.Params["system_id"], got.Params["system_id"])

	again, err := Encode(got)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestBindTransmitterRespNoBodyOnError(t *testing.T) {
	p := &PDU{
		CommandID:      BindTransmitterRespID,
		CommandStatus:  ESME_RINVPASWD,
		SequenceNumber: 1,
		Params:         map[string]any{"system_id": "smppclient1"},
	}
	raw, err := Encode(p)
	require.NoError(t, err)
	assert.Len(t, raw, pduHeaderSize)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Empty(t, got.Params)
	assert.Equal(t, ESME_RINVPASWD, got.CommandStatus)
}

func TestBindTransmitterRespWithBody(t *testing.T) {
	p := &PDU{
		CommandID:      BindTransmitterRespID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 1,
		Params:         map[string]any{"system_id": "smscsim"},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "smscsim", got.Params["system_id"])
}

func TestBindRespScInterfaceVersionTLV(t *testing.T) {
	p := &PDU{
		CommandID:      BindTransceiverRespID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 2,
		Params: map[string]any{
			"system_id":            "smscsim",
			"sc_interface_version": uint32(0x34),
		},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x34), got.Params["sc_interface_version"])
}

func submitSmPDU(shortMessage []byte) *PDU {
	return &PDU{
		CommandID:      SubmitSmID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 7,
		Params: map[string]any{
			"service_type":            "",
			"source_addr_ton":         TonInternational,
			"source_addr_npi":         NpiISDN,
			"source_addr":             "15555550100",
			"dest_addr_ton":           TonInternational,
			"dest_addr_npi":           NpiISDN,
			"destination_addr":        "15555550199",
			"esm_class":               EsmClass{Mode: ModeDefault, Type: TypeDefault, GSMFeatures: GSMFeatureNone},
			"protocol_id":             uint32(0),
			"priority_flag":           PriorityLevel0,
			"schedule_delivery_time":  nil,
			"validity_period":         nil,
			"registered_delivery":     RegisteredDelivery{Receipt: NoReceipt},
			"replace_if_present_flag": DoNotReplace,
			"data_coding":             DataCoding{Scheme: DataCodingSchemeDefault, SchemeData: DataCodingDefaultSMSC},
			"sm_default_msg_id":       nil,
			"short_message":           shortMessage,
		},
	}
}

func TestSubmitSmShortMessageRoundTrip(t *testing.T) {
	p := submitSmPDU([]byte("hello world"))
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), got.Params["short_message"])
	assert.Nil(t, got.Params["schedule_delivery_time"])
	assert.Nil(t, got.Params["sm_default_msg_id"])
	assert.Equal(t, "15555550100", got.Params["source_addr"])
}

func TestSubmitSmShortMessageWireFormat(t *testing.T) {
	p := submitSmPDU([]byte("Hello"))
	raw, err := Encode(p)
	require.NoError(t, err)

	// short_message is the last mandatory parameter and there are no
	// optional parameters, so the PDU ends with sm_length + body.
	assert.Equal(t, []byte{0x05, 'H', 'e', 'l', 'l', 'o'}, raw[len(raw)-6:])
}

func TestSubmitSmRespWithAndWithoutBody(t *testing.T) {
	withBody := &PDU{
		CommandID: SubmitSmRespID, CommandStatus: ESME_ROK, SequenceNumber: 2,
		Params: map[string]any{"message_id": "MSG0001"},
	}
	raw, err := Encode(withBody)
	require.NoError(t, err)
	// 16-byte header + "MSG0001" + terminator.
	assert.Len(t, raw, 24)
	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "MSG0001", got.Params["message_id"])

	withoutBody := &PDU{
		CommandID: SubmitSmRespID, CommandStatus: ESME_RTHROTTLED, SequenceNumber: 2,
		Params: map[string]any{"message_id": "MSG0001"},
	}
	raw2, err := Encode(withoutBody)
	require.NoError(t, err)
	assert.Len(t, raw2, pduHeaderSize)
	got2, err := Decode(raw2)
	require.NoError(t, err)
	assert.Empty(t, got2.Params)
}

func TestEncodeMissingMandatoryParam(t *testing.T) {
	p := submitSmPDU(nil)
	delete(p.Params, "destination_addr")
	_, err := Encode(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination_addr")
}

func TestDataCodingRawRoundTrip(t *testing.T) {
	// 0x3F's high nibble names no scheme and the whole byte is no default
	// value, so it decodes back as RAW. A byte such as 0xF5 would not:
	// decode reads its 0xF high nibble as the GSM message class scheme.
	c := dataCodingCodec{}
	raw, err := c.encode(DataCoding{Scheme: DataCodingSchemeRAW, SchemeData: 0x3F})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x3F}, raw)

	got, err := c.decode(newCursor(raw))
	require.NoError(t, err)
	assert.Equal(t, DataCoding{Scheme: DataCodingSchemeRAW, SchemeData: 0x3F}, got)
}

func TestMessagePayloadTLVRoundTrip(t *testing.T) {
	p := submitSmPDU([]byte{})
	p.SequenceNumber = 3
	p.Params["message_payload"] = []byte{0x01, 0x02, 0x03, 0x04}

	raw, err := Encode(p)
	require.NoError(t, err)
	// tag 0x0424, length 4, then the payload bytes.
	assert.Equal(t, util.MustBytes("0424000401020304"), raw[len(raw)-8:])

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, got.Params["message_payload"])
}

func TestOptionalParamsEncodeInDeclaredOrder(t *testing.T) {
	p := submitSmPDU([]byte{})
	p.Params["sar_total_segments"] = uint32(2)
	p.Params["source_port"] = uint32(9200)
	p.Params["sar_msg_ref_num"] = uint32(7)

	first, err := Encode(p)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		again, err := Encode(p)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	// source_port (0x020A) precedes sar_msg_ref_num (0x020C) which
	// precedes sar_total_segments (0x020E), per the declared order.
	tail := first[len(first)-17:]
	assert.Equal(t, []byte{0x02, 0x0A}, tail[0:2])
	assert.Equal(t, []byte{0x02, 0x0C}, tail[6:8])
	assert.Equal(t, []byte{0x02, 0x0E}, tail[12:14])
}

func TestDeliverSmRoundTrip(t *testing.T) {
	p := &PDU{
		CommandID:      DeliverSmID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 9,
		Params: map[string]any{
			"service_type":            "",
			"source_addr_ton":         TonInternational,
			"source_addr_npi":         NpiISDN,
			"source_addr":             "15555550199",
			"dest_addr_ton":           TonInternational,
			"dest_addr_npi":           NpiISDN,
			"destination_addr":        "15555550100",
			"esm_class":               EsmClass{Mode: ModeDefault, Type: TypeSMSCDeliveryReceipt},
			"protocol_id":             uint32(0),
			"priority_flag":           PriorityLevel0,
			"schedule_delivery_time":  nil,
			"validity_period":         nil,
			"registered_delivery":     RegisteredDelivery{Receipt: NoReceipt},
			"replace_if_present_flag": DoNotReplace,
			"data_coding":             DataCoding{Scheme: DataCodingSchemeDefault, SchemeData: DataCodingDefaultSMSC},
			"sm_default_msg_id":       nil,
			"short_message":           []byte("delivered"),
		},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("delivered"), got.Params["short_message"])
	assert.Nil(t, got.Params["schedule_delivery_time"])
	assert.Equal(t, DoNotReplace, got.Params["replace_if_present_flag"])
	assert.Nil(t, got.Params["sm_default_msg_id"])
}

func TestDeliverSmRejectsNonNullScheduleTime(t *testing.T) {
	p := &PDU{
		CommandID:      DeliverSmID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 9,
		Params: map[string]any{
			"service_type":            "",
			"source_addr_ton":         TonInternational,
			"source_addr_npi":         NpiISDN,
			"source_addr":             "15555550199",
			"dest_addr_ton":           TonInternational,
			"dest_addr_npi":           NpiISDN,
			"destination_addr":        "15555550100",
			"esm_class":               EsmClass{Mode: ModeDefault, Type: TypeSMSCDeliveryReceipt},
			"protocol_id":             uint32(0),
			"priority_flag":           PriorityLevel0,
			"schedule_delivery_time":  ScheduleTime{Relative: true, Day: 1},
			"validity_period":         nil,
			"registered_delivery":     RegisteredDelivery{Receipt: NoReceipt},
			"replace_if_present_flag": DoNotReplace,
			"data_coding":             DataCoding{Scheme: DataCodingSchemeDefault, SchemeData: DataCodingDefaultSMSC},
			"sm_default_msg_id":       nil,
			"short_message":           []byte("delivered"),
		},
	}
	_, err := Encode(p)
	require.Error(t, err)

	// The same PDU shaped as submit_sm encodes fine; rewriting its
	// command_id to deliver_sm must then fail decode with the
	// schedule_delivery_time status.
	p.CommandID = SubmitSmID
	raw, err := Encode(p)
	require.NoError(t, err)
	raw[7] = byte(DeliverSmID)
	_, err = Decode(raw)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVSCHED, perr.Status)
}

func TestDeliverSmRespRequiresNullMessageID(t *testing.T) {
	p := &PDU{
		CommandID:      DeliverSmRespID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 3,
		Params:         map[string]any{"message_id": nil},
	}
	raw, err := Encode(p)
	require.NoError(t, err)
	assert.Len(t, raw, pduHeaderSize+1)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Nil(t, got.Params["message_id"])

	p.Params["message_id"] = "MSG0001"
	_, err = Encode(p)
	require.Error(t, err)

	bad := append(raw[:pduHeaderSize:pduHeaderSize], []byte("MSG0001\x00")...)
	putLen := uint32(len(bad))
	bad[0], bad[1], bad[2], bad[3] = byte(putLen>>24), byte(putLen>>16), byte(putLen>>8), byte(putLen)
	_, err = Decode(bad)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVMSGID, perr.Status)
}

func TestDataSmRoundTrip(t *testing.T) {
	p := &PDU{
		CommandID:      DataSmID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 4,
		Params: map[string]any{
			"service_type":        "",
			"source_addr_ton":     TonInternational,
			"source_addr_npi":     NpiISDN,
			"source_addr":         "15555550100",
			"dest_addr_ton":       TonInternational,
			"dest_addr_npi":       NpiISDN,
			"destination_addr":    "15555550199",
			"esm_class":           EsmClass{Mode: ModeDefault, Type: TypeDefault},
			"registered_delivery": RegisteredDelivery{Receipt: NoReceipt},
			"data_coding":         DataCoding{Scheme: DataCodingSchemeDefault, SchemeData: DataCodingDefaultSMSC},
		},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "15555550100", got.Params["source_addr"])
}

func TestDataSmSourceAddrAllows64Chars(t *testing.T) {
	longAddr := ""
	for i := 0; i < 64; i++ {
		longAddr += "5"
	}
	p := &PDU{
		CommandID:      DataSmID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 5,
		Params: map[string]any{
			"service_type":        "",
			"source_addr_ton":     TonInternational,
			"source_addr_npi":     NpiISDN,
			"source_addr":         longAddr,
			"dest_addr_ton":       TonInternational,
			"dest_addr_npi":       NpiISDN,
			"destination_addr":    longAddr,
			"esm_class":           EsmClass{Mode: ModeDefault, Type: TypeDefault},
			"registered_delivery": RegisteredDelivery{Receipt: NoReceipt},
			"data_coding":         DataCoding{Scheme: DataCodingSchemeDefault, SchemeData: DataCodingDefaultSMSC},
		},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, longAddr, got.Params["source_addr"])
}

func TestQuerySmRespRoundTrip(t *testing.T) {
	p := &PDU{
		CommandID:      QuerySmRespID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 5,
		Params: map[string]any{
			"message_id":    "1234567890",
			"final_date":    nil,
			"message_state": MessageStateDelivered,
			"error_code":    nil,
		},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", got.Params["message_id"])
	assert.Equal(t, MessageStateDelivered, got.Params["message_state"])
	assert.Nil(t, got.Params["error_code"])
}

func TestAlertNotificationRoundTrip(t *testing.T) {
	p := &PDU{
		CommandID:      AlertNotificationID,
		CommandStatus:  ESME_ROK,
		SequenceNumber: 6,
		Params: map[string]any{
			"source_addr_ton": TonInternational,
			"source_addr_npi": NpiISDN,
			"source_addr":     "15555550100",
			"esme_addr_ton":   TonInternational,
			"esme_addr_npi":   NpiISDN,
			"esme_addr":       "15555550199",
		},
	}
	raw, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "15555550199", got.Params["esme_addr"])
}

func TestDecodeRejectsShortCommandLength(t *testing.T) {
	_, err := Decode([]byte{0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	require.Error(t, err)
	var cerr *CorruptError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ESME_RINVCMDLEN, cerr.Status)
}

func TestEncodeRejectsSequenceNumberZero(t *testing.T) {
	p := &PDU{CommandID: EnquireLinkID, CommandStatus: ESME_ROK, SequenceNumber: 0, Params: map[string]any{}}
	_, err := Encode(p)
	require.Error(t, err)
}

func TestDecodeRejectsSequenceNumberZero(t *testing.T) {
	raw := []byte{0, 0, 0, 16, 0, 0, 0, 0x15, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := Decode(raw)
	require.Error(t, err)
}

func TestUnknownTagFailsOptionStream(t *testing.T) {
	cur := newCursor(util.MustBytes("99990001AB"))
	_, err := decodeOptions(cur, 5, commandSpecs[SubmitSmID].optionalParams)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVOPTPARSTREAM, perr.Status)
}

func TestUndispatchedTagIsNotAllowed(t *testing.T) {
	// ms_validity is a real v3.4 tag with no codec in the dispatch
	// table, so it gets ESME_ROPTPARNOTALLWD rather than the unknown-tag
	// stream error.
	cur := newCursor(util.MustBytes("1204000100"))
	_, err := decodeOptions(cur, 5, commandSpecs[SubmitSmID].optionalParams)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_ROPTPARNOTALLWD, perr.Status)
}

func TestOptionLengthMismatchIsRejected(t *testing.T) {
	// source_port (tag 0x020A) is a fixed 2-byte field; a declared
	// length of 3 is well-formed TLV framing, but the value codec only
	// consumes 2 of the 3 bytes.
	cur := newCursor(util.MustBytes("020A0003000100"))
	_, err := decodeOptions(cur, 7, commandSpecs[SubmitSmID].optionalParams)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVPARLEN, perr.Status)
}

func TestOptionInnerParseErrorIsRestamped(t *testing.T) {
	// payload_type only accepts 0x00 and 0x01; 0x7F inside the TLV is a
	// field-level parse failure, surfaced as ESME_RINVOPTPARAMVAL.
	cur := newCursor(util.MustBytes("001900017F"))
	_, err := decodeOptions(cur, 5, commandSpecs[SubmitSmID].optionalParams)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVOPTPARAMVAL, perr.Status)
}

func TestTLVOverrunningBodyIsRejected(t *testing.T) {
	cur := newCursor(util.MustBytes("020A00090001"))
	_, err := decodeOptions(cur, 6, commandSpecs[SubmitSmID].optionalParams)
	require.Error(t, err)
	var cerr *CorruptError
	require.ErrorAs(t, err, &cerr)
}

func TestCommandWithNoOptionalTagsRejectsAnyTLV(t *testing.T) {
	// unbind's commandSpec declares no optional parameters, so any TLV
	// in its body is rejected.
	spec := commandSpecs[UnbindID]
	cur := newCursor(util.MustBytes("020A00020001"))
	_, err := decodeOptions(cur, 6, spec.optionalParams)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_ROPTPARNOTALLWD, perr.Status)

	_, err = encodeOptions(map[string]any{"source_port": uint32(1)}, spec.optionalParams)
	require.Error(t, err)
}

func TestAddrTonStatusDiffersByField(t *testing.T) {
	// addr_ton (bind PDUs) reports ESME_RUNKNOWNERR; dest_addr_ton
	// reports ESME_RINVDSTTON; source_addr_ton reports ESME_RINVSRCTON.
	// All three must stay distinguishable per field, not collapse to a
	// single hardcoded status.
	badByte := []byte{0xFF}

	_, err := addrTonCodec(ESME_RUNKNOWNERR).decode(newCursor(badByte))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RUNKNOWNERR, perr.Status)

	_, err = addrTonCodec(ESME_RINVDSTTON).decode(newCursor(badByte))
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVDSTTON, perr.Status)

	_, err = addrTonCodec(ESME_RINVSRCTON).decode(newCursor(badByte))
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVSRCTON, perr.Status)
}

func TestSourceAddrOverflowStatus(t *testing.T) {
	c := newCOctetStringCodec(21).withStatus(ESME_RINVSRCADR)
	raw := append([]byte("123456789012345678901"), 0x00) // 22 bytes with terminator
	_, err := c.decode(newCursor(raw))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVSRCADR, perr.Status)
}

func TestAdditionalStatusInfoTextTerminatorRoundTrip(t *testing.T) {
	spec := optionDispatch[TagAdditionalStatusInfoText]
	raw, err := spec.encode("system error")
	require.NoError(t, err)
	assert.Equal(t, append([]byte("system error"), 0x00), raw)

	got, err := spec.decode(newCursor(raw), len(raw))
	require.NoError(t, err)
	assert.Equal(t, "system error", got)
}
