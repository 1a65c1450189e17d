package smpp

// commandSpecs is the full per-CommandID table driving Codec.Encode and
// Codec.Decode: the ordered mandatory parameters SMPP v3.4 defines for
// each PDU body, the optional tags that command may carry (in the order
// the encoder emits them), and whether a non-success response carries
// no body at all. submit_multi and submit_multi_resp are intentionally
// absent — see DESIGN.md.
var commandSpecs = map[CommandID]commandSpec{
	BindReceiverID:        bindSpec(),
	BindTransmitterID:     bindSpec(),
	BindTransceiverID:     bindSpec(),
	BindReceiverRespID:    bindRespSpec(),
	BindTransmitterRespID: bindRespSpec(),
	BindTransceiverRespID: bindRespSpec(),
	OutbindID: {
		params: []paramSpec{
			{"system_id", systemIDCodec()},
			{"password", passwordCodec()},
		},
	},
	UnbindID:          {},
	UnbindRespID:      {},
	GenericNackID:     {},
	EnquireLinkID:     {},
	EnquireLinkRespID: {},
	SubmitSmID: {
		params: submitLikeParams(false),
		optionalParams: []Tag{
			TagUserMessageReference, TagSourcePort, TagSourceAddrSubunit,
			TagDestinationPort, TagDestAddrSubunit, TagSarMsgRefNum,
			TagSarTotalSegments, TagSarSegmentSeqnum, TagMoreMessagesToSend,
			TagPayloadType, TagMessagePayload, TagPrivacyIndicator,
			TagCallbackNum, TagSourceSubaddress, TagDestSubaddress,
			TagUserResponseCode, TagDisplayTime, TagSmsSignal,
			TagNumberOfMessages, TagAlertOnMessageDelivery, TagLanguageIndicator,
		},
	},
	SubmitSmRespID: {
		params:        []paramSpec{{"message_id", messageIDCodec()}},
		noBodyOnError: true,
	},
	DeliverSmID: {
		params: submitLikeParams(true),
		optionalParams: []Tag{
			TagUserMessageReference, TagSourcePort, TagDestinationPort,
			TagSarMsgRefNum, TagSarTotalSegments, TagSarSegmentSeqnum,
			TagUserResponseCode, TagPrivacyIndicator, TagPayloadType,
			TagMessagePayload, TagCallbackNum, TagSourceSubaddress,
			TagDestSubaddress, TagLanguageIndicator, TagMessageState,
			TagReceiptedMessageID,
		},
	},
	DeliverSmRespID: {
		params: []paramSpec{
			{"message_id", newCOctetStringCodec(0).withNullable(true, true, true).withStatus(ESME_RINVMSGID)},
		},
		noBodyOnError: true,
	},
	DataSmID: {
		params: []paramSpec{
			{"service_type", serviceTypeCodec()},
			{"source_addr_ton", addrTonCodec(ESME_RINVSRCTON)},
			{"source_addr_npi", addrNpiCodec(ESME_RINVSRCNPI)},
			{"source_addr", newCOctetStringCodec(65).withStatus(ESME_RINVSRCADR)},
			{"dest_addr_ton", addrTonCodec(ESME_RINVDSTTON)},
			{"dest_addr_npi", addrNpiCodec(ESME_RINVDSTNPI)},
			{"destination_addr", newCOctetStringCodec(65).withStatus(ESME_RINVDSTADR)},
			{"esm_class", esmClassCodec{}},
			{"registered_delivery", registeredDeliveryCodec{}},
			{"data_coding", dataCodingCodec{}},
		},
		optionalParams: []Tag{
			TagSourcePort, TagSourceAddrSubunit, TagSourceNetworkType,
			TagSourceBearerType, TagSourceTelematicsID, TagDestinationPort,
			TagDestAddrSubunit, TagDestNetworkType, TagDestBearerType,
			TagDestTelematicsID, TagSarMsgRefNum, TagSarTotalSegments,
			TagSarSegmentSeqnum, TagMoreMessagesToSend, TagQosTimeToLive,
			TagPayloadType, TagMessagePayload, TagReceiptedMessageID,
			TagMessageState, TagUserMessageReference, TagPrivacyIndicator,
			TagCallbackNum, TagSourceSubaddress, TagDestSubaddress,
			TagUserResponseCode, TagDisplayTime, TagSmsSignal,
			TagNumberOfMessages, TagAlertOnMessageDelivery, TagLanguageIndicator,
		},
	},
	DataSmRespID: {
		params: []paramSpec{{"message_id", messageIDCodec()}},
		optionalParams: []Tag{
			TagDeliveryFailureReason, TagAdditionalStatusInfoText,
		},
	},
	QuerySmID: {
		params: []paramSpec{
			{"message_id", messageIDCodec()},
			{"source_addr_ton", addrTonCodec(ESME_RINVSRCTON)},
			{"source_addr_npi", addrNpiCodec(ESME_RINVSRCNPI)},
			{"source_addr", newCOctetStringCodec(21).withStatus(ESME_RINVSRCADR)},
		},
	},
	QuerySmRespID: {
		params: []paramSpec{
			{"message_id", messageIDCodec()},
			{"final_date", newTimeCodec(ESME_RUNKNOWNERR)},
			{"message_state", messageStateCodec()},
			{"error_code", newIntCodec(1).withNullable(true, true, false)},
		},
	},
	CancelSmID: {
		params: []paramSpec{
			{"service_type", serviceTypeCodec()},
			{"message_id", messageIDCodec()},
			{"source_addr_ton", addrTonCodec(ESME_RINVSRCTON)},
			{"source_addr_npi", addrNpiCodec(ESME_RINVSRCNPI)},
			{"source_addr", newCOctetStringCodec(21).withStatus(ESME_RINVSRCADR)},
			{"dest_addr_ton", addrTonCodec(ESME_RINVDSTTON)},
			{"dest_addr_npi", addrNpiCodec(ESME_RINVDSTNPI)},
			{"destination_addr", newCOctetStringCodec(21).withStatus(ESME_RINVDSTADR)},
		},
	},
	CancelSmRespID: {},
	ReplaceSmID: {
		params: []paramSpec{
			{"message_id", messageIDCodec()},
			{"source_addr_ton", addrTonCodec(ESME_RINVSRCTON)},
			{"source_addr_npi", addrNpiCodec(ESME_RINVSRCNPI)},
			{"source_addr", newCOctetStringCodec(21).withStatus(ESME_RINVSRCADR)},
			{"schedule_delivery_time", newTimeCodec(ESME_RINVSCHED)},
			{"validity_period", newTimeCodec(ESME_RINVEXPIRY)},
			{"registered_delivery", registeredDeliveryCodec{}},
			{"sm_default_msg_id", smDefaultMsgIDCodec()},
			{"short_message", shortMessageCodec{}},
		},
	},
	ReplaceSmRespID: {},
	AlertNotificationID: {
		params: []paramSpec{
			{"source_addr_ton", addrTonCodec(ESME_RINVSRCTON)},
			{"source_addr_npi", addrNpiCodec(ESME_RINVSRCNPI)},
			{"source_addr", newCOctetStringCodec(65).withStatus(ESME_RINVSRCADR)},
			{"esme_addr_ton", addrTonCodec(ESME_RUNKNOWNERR)},
			{"esme_addr_npi", addrNpiCodec(ESME_RUNKNOWNERR)},
			{"esme_addr", newCOctetStringCodec(65)},
		},
		optionalParams: []Tag{TagMsAvailabilityStatus},
	},
}

func systemIDCodec() *cOctetStringCodec {
	return newCOctetStringCodec(16).withStatus(ESME_RINVSYSID)
}

func passwordCodec() *cOctetStringCodec {
	return newCOctetStringCodec(9).withStatus(ESME_RINVPASWD)
}

func serviceTypeCodec() *cOctetStringCodec {
	return newCOctetStringCodec(6).withStatus(ESME_RINVSERTYP)
}

func messageIDCodec() *cOctetStringCodec {
	return newCOctetStringCodec(65).withStatus(ESME_RINVMSGID)
}

// smDefaultMsgIDCodec bounds sm_default_msg_id to 1..254; since the
// legal range excludes zero, the all-zero byte decodes as null.
func smDefaultMsgIDCodec() *intCodec {
	return newIntCodec(1).withBounds(1, 254).withStatus(ESME_RINVDFTMSGID)
}

func bindSpec() commandSpec {
	return commandSpec{
		params: []paramSpec{
			{"system_id", systemIDCodec()},
			{"password", passwordCodec()},
			{"system_type", newCOctetStringCodec(13)},
			{"interface_version", newIntCodec(1)},
			{"addr_ton", addrTonCodec(ESME_RUNKNOWNERR)},
			{"addr_npi", addrNpiCodec(ESME_RUNKNOWNERR)},
			{"address_range", newCOctetStringCodec(41)},
		},
	}
}

func bindRespSpec() commandSpec {
	return commandSpec{
		params:         []paramSpec{{"system_id", systemIDCodec()}},
		optionalParams: []Tag{TagScInterfaceVersion},
		noBodyOnError:  true,
	}
}

// submitLikeParams builds the submit_sm/deliver_sm mandatory parameter
// list. deliver_sm shares submit_sm's shape exactly, but an SMSC always
// nulls out schedule_delivery_time and validity_period on delivery, so
// the deliver variant swaps in require-null codecs for those two fields
// rather than relaxing validation.
func submitLikeParams(deliverVariant bool) []paramSpec {
	scheduleTime := newTimeCodec(ESME_RINVSCHED)
	validity := newTimeCodec(ESME_RINVEXPIRY)
	if deliverVariant {
		scheduleTime = requireAlwaysNullTime(scheduleTime)
		validity = requireAlwaysNullTime(validity)
	}
	return []paramSpec{
		{"service_type", serviceTypeCodec()},
		{"source_addr_ton", addrTonCodec(ESME_RINVSRCTON)},
		{"source_addr_npi", addrNpiCodec(ESME_RINVSRCNPI)},
		{"source_addr", newCOctetStringCodec(21).withStatus(ESME_RINVSRCADR)},
		{"dest_addr_ton", addrTonCodec(ESME_RINVDSTTON)},
		{"dest_addr_npi", addrNpiCodec(ESME_RINVDSTNPI)},
		{"destination_addr", newCOctetStringCodec(21).withStatus(ESME_RINVDSTADR)},
		{"esm_class", esmClassCodec{}},
		{"protocol_id", newIntCodec(1)},
		{"priority_flag", priorityFlagCodec()},
		{"schedule_delivery_time", scheduleTime},
		{"validity_period", validity},
		{"registered_delivery", registeredDeliveryCodec{}},
		{"replace_if_present_flag", replaceIfPresentFlagCodec()},
		{"data_coding", dataCodingCodec{}},
		{"sm_default_msg_id", smDefaultMsgIDCodec()},
		{"short_message", shortMessageCodec{}},
	}
}

func requireAlwaysNullTime(c *timeCodec) *timeCodec {
	cp := *c
	cp.allowNull, cp.decodeNull, cp.requireNull = true, true, true
	return &cp
}
