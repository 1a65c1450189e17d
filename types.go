// Package smpp implements the encoder and decoder for SMPP v3.4 Protocol
// Data Units: a 16-byte header, an ordered set of mandatory parameters
// whose shape depends on the command, and a trailing run of
// self-describing TLV optional parameters.
//
// The package is a pure codec. It owns no socket, no session state
// machine, and no retry/windowing logic — callers wire Encode/Decode
// into their own transport.
package smpp

import "fmt"

// CommandID identifies the kind of operation or response a PDU carries.
type CommandID uint32

// SMPP v3.4 command set (section 5.1.2.1).
const (
	GenericNackID         CommandID = 0x80000000
	BindReceiverID        CommandID = 0x00000001
	BindReceiverRespID    CommandID = 0x80000001
	BindTransmitterID     CommandID = 0x00000002
	BindTransmitterRespID CommandID = 0x80000002
	QuerySmID             CommandID = 0x00000003
	QuerySmRespID         CommandID = 0x80000003
	SubmitSmID            CommandID = 0x00000004
	SubmitSmRespID        CommandID = 0x80000004
	DeliverSmID           CommandID = 0x00000005
	DeliverSmRespID       CommandID = 0x80000005
	UnbindID              CommandID = 0x00000006
	UnbindRespID          CommandID = 0x80000006
	ReplaceSmID           CommandID = 0x00000007
	ReplaceSmRespID       CommandID = 0x80000007
	CancelSmID            CommandID = 0x00000008
	CancelSmRespID        CommandID = 0x80000008
	BindTransceiverID     CommandID = 0x00000009
	BindTransceiverRespID CommandID = 0x80000009
	OutbindID             CommandID = 0x0000000B
	EnquireLinkID         CommandID = 0x00000015
	EnquireLinkRespID     CommandID = 0x80000015
	AlertNotificationID   CommandID = 0x00000102
	DataSmID              CommandID = 0x00000103
	DataSmRespID          CommandID = 0x80000103
)

func (c CommandID) String() string {
	if name, ok := commandIDNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CommandID(0x%08X)", uint32(c))
}

// CommandStatus is the 4-byte result code carried in every PDU header.
type CommandStatus uint32

// SMPP v3.4 command_status set (section 5.1.3).
const (
	ESME_ROK              CommandStatus = 0x00000000
	ESME_RINVMSGLEN       CommandStatus = 0x00000001
	ESME_RINVCMDLEN       CommandStatus = 0x00000002
	ESME_RINVCMDID        CommandStatus = 0x00000003
	ESME_RINVBNDSTS       CommandStatus = 0x00000004
	ESME_RALYBND          CommandStatus = 0x00000005
	ESME_RINVPRTFLG       CommandStatus = 0x00000006
	ESME_RINVREGDLVFLG    CommandStatus = 0x00000007
	ESME_RSYSERR          CommandStatus = 0x00000008
	ESME_RINVSRCADR       CommandStatus = 0x0000000A
	ESME_RINVDSTADR       CommandStatus = 0x0000000B
	ESME_RINVMSGID        CommandStatus = 0x0000000C
	ESME_RBINDFAIL        CommandStatus = 0x0000000D
	ESME_RINVPASWD        CommandStatus = 0x0000000E
	ESME_RINVSYSID        CommandStatus = 0x0000000F
	ESME_RCANCELFAIL      CommandStatus = 0x00000011
	ESME_RREPLACEFAIL     CommandStatus = 0x00000013
	ESME_RMSGQFUL         CommandStatus = 0x00000014
	ESME_RINVSERTYP       CommandStatus = 0x00000015
	ESME_RINVNUMDESTS     CommandStatus = 0x00000033
	ESME_RINVDLNAME       CommandStatus = 0x00000034
	ESME_RINVDESTFLAG     CommandStatus = 0x00000040
	ESME_RINVSUBREP       CommandStatus = 0x00000042
	ESME_RINVESMCLASS     CommandStatus = 0x00000043
	ESME_RCNTSUBDL        CommandStatus = 0x00000044
	ESME_RSUBMITFAIL      CommandStatus = 0x00000045
	ESME_RINVSRCTON       CommandStatus = 0x00000048
	ESME_RINVSRCNPI       CommandStatus = 0x00000049
	ESME_RINVDSTTON       CommandStatus = 0x00000050
	ESME_RINVDSTNPI       CommandStatus = 0x00000051
	ESME_RINVSYSTYP       CommandStatus = 0x00000053
	ESME_RINVREPFLAG      CommandStatus = 0x00000054
	ESME_RINVNUMMSGS      CommandStatus = 0x00000055
	ESME_RTHROTTLED       CommandStatus = 0x00000058
	ESME_RINVSCHED        CommandStatus = 0x00000061
	ESME_RINVEXPIRY       CommandStatus = 0x00000062
	ESME_RINVDFTMSGID     CommandStatus = 0x00000063
	ESME_RX_T_APPN        CommandStatus = 0x00000064
	ESME_RX_P_APPN        CommandStatus = 0x00000065
	ESME_RX_R_APPN        CommandStatus = 0x00000066
	ESME_RQUERYFAIL       CommandStatus = 0x00000067
	ESME_RINVOPTPARSTREAM CommandStatus = 0x000000C0
	ESME_ROPTPARNOTALLWD  CommandStatus = 0x000000C1
	ESME_RINVPARLEN       CommandStatus = 0x000000C2
	ESME_RMISSINGOPTPARAM CommandStatus = 0x000000C3
	ESME_RINVOPTPARAMVAL  CommandStatus = 0x000000C4
	ESME_RDELIVERYFAILURE CommandStatus = 0x000000FE
	ESME_RUNKNOWNERR      CommandStatus = 0x000000FF
)

func (s CommandStatus) String() string {
	if name, ok := commandStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("CommandStatus(0x%08X)", uint32(s))
}

// Tag identifies an SMPP v3.4 optional (TLV) parameter.
type Tag uint16

// SMPP v3.4 optional-parameter tag set actually dispatched by this
// codec (section 5.3.2).
const (
	TagDestAddrSubunit          Tag = 0x0005
	TagDestNetworkType          Tag = 0x0006
	TagDestBearerType           Tag = 0x0007
	TagDestTelematicsID         Tag = 0x0008
	TagSourceAddrSubunit        Tag = 0x000D
	TagSourceNetworkType        Tag = 0x000E
	TagSourceBearerType         Tag = 0x000F
	TagSourceTelematicsID       Tag = 0x0010
	TagQosTimeToLive            Tag = 0x0017
	TagPayloadType              Tag = 0x0019
	TagAdditionalStatusInfoText Tag = 0x001D
	TagReceiptedMessageID       Tag = 0x001E
	TagPrivacyIndicator         Tag = 0x0201
	TagSourceSubaddress         Tag = 0x0202
	TagDestSubaddress           Tag = 0x0203
	TagUserMessageReference     Tag = 0x0204
	TagUserResponseCode         Tag = 0x0205
	TagSourcePort               Tag = 0x020A
	TagDestinationPort          Tag = 0x020B
	TagSarMsgRefNum             Tag = 0x020C
	TagLanguageIndicator        Tag = 0x020D
	TagSarTotalSegments         Tag = 0x020E
	TagSarSegmentSeqnum         Tag = 0x020F
	TagScInterfaceVersion       Tag = 0x0210
	TagNumberOfMessages         Tag = 0x0304
	TagCallbackNum              Tag = 0x0381
	TagMsAvailabilityStatus     Tag = 0x0422
	TagMessagePayload           Tag = 0x0424
	TagDeliveryFailureReason    Tag = 0x0425
	TagMoreMessagesToSend       Tag = 0x0426
	TagMessageState             Tag = 0x0427
	TagDisplayTime              Tag = 0x1201
	TagSmsSignal                Tag = 0x1203
	TagAlertOnMessageDelivery   Tag = 0x130C
)

// Tags SMPP v3.4 defines but this codec does not dispatch; a TLV
// carrying one of these decodes to ESME_ROPTPARNOTALLWD rather than the
// ESME_RINVOPTPARSTREAM reserved for tags outside the v3.4 set.
const (
	TagMsMsgWaitFacilities Tag = 0x0030
	TagCallbackNumPresInd  Tag = 0x0302
	TagCallbackNumAtag     Tag = 0x0303
	TagDpfResult           Tag = 0x0420
	TagSetDpf              Tag = 0x0421
	TagNetworkErrorCode    Tag = 0x0423
	TagUssdServiceOp       Tag = 0x0501
	TagMsValidity          Tag = 0x1204
	TagItsReplyType        Tag = 0x1380
	TagItsSessionInfo      Tag = 0x1383
)

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(0x%04X)", uint16(t))
}

// AddrTon is the type-of-number sub-field shared by every address in a PDU.
type AddrTon uint8

const (
	TonUnknown          AddrTon = 0x00
	TonInternational    AddrTon = 0x01
	TonNational         AddrTon = 0x02
	TonNetworkSpecific  AddrTon = 0x03
	TonSubscriberNumber AddrTon = 0x04
	TonAlphanumeric     AddrTon = 0x05
	TonAbbreviated      AddrTon = 0x06
)

// AddrNpi is the numbering-plan-indicator sub-field shared by every
// address in a PDU.
type AddrNpi uint8

const (
	NpiUnknown     AddrNpi = 0x00
	NpiISDN        AddrNpi = 0x01
	NpiData        AddrNpi = 0x03
	NpiTelex       AddrNpi = 0x04
	NpiLandMobile  AddrNpi = 0x06
	NpiNational    AddrNpi = 0x08
	NpiPrivate     AddrNpi = 0x09
	NpiERMES       AddrNpi = 0x0A
	NpiInternet    AddrNpi = 0x0E
	NpiWAPClientID AddrNpi = 0x12
)

// PriorityFlag is the submission priority requested for a short message.
type PriorityFlag uint8

const (
	PriorityLevel0 PriorityFlag = 0x00
	PriorityLevel1 PriorityFlag = 0x01
	PriorityLevel2 PriorityFlag = 0x02
	PriorityLevel3 PriorityFlag = 0x03
)

// ReplaceIfPresentFlag requests that a prior message with the same
// identity be replaced.
type ReplaceIfPresentFlag uint8

const (
	DoNotReplace ReplaceIfPresentFlag = 0x00
	Replace      ReplaceIfPresentFlag = 0x01
)

// MessageState reports the lifecycle state of a previously submitted
// message (used in delivery receipts and query_sm_resp).
type MessageState uint8

const (
	MessageStateEnroute       MessageState = 0x01
	MessageStateDelivered     MessageState = 0x02
	MessageStateExpired       MessageState = 0x03
	MessageStateDeleted       MessageState = 0x04
	MessageStateUndeliverable MessageState = 0x05
	MessageStateAccepted      MessageState = 0x06
	MessageStateUnknown       MessageState = 0x07
	MessageStateRejected      MessageState = 0x08
)

// CallbackNumDigitModeIndicator selects the digit encoding of a
// callback_num optional parameter.
type CallbackNumDigitModeIndicator uint8

const (
	CallbackNumDigitModeTBCD  CallbackNumDigitModeIndicator = 0x00
	CallbackNumDigitModeASCII CallbackNumDigitModeIndicator = 0x01
)

// SubaddressTypeTag identifies the kind of value carried by a Subaddress.
type SubaddressTypeTag uint8

const (
	SubaddressNSAPEven      SubaddressTypeTag = 0x80
	SubaddressNSAPOdd       SubaddressTypeTag = 0x88
	SubaddressUserSpecified SubaddressTypeTag = 0xA0
)

// AddrSubunit identifies the originating/destination sub-unit of a
// mobile station.
type AddrSubunit uint8

const (
	SubunitUnknown         AddrSubunit = 0x00
	SubunitMSDisplay       AddrSubunit = 0x01
	SubunitMobileEquipment AddrSubunit = 0x02
	SubunitSmartCard       AddrSubunit = 0x03
	SubunitExternalUnit    AddrSubunit = 0x04
)

// NetworkType identifies the originating/destination network.
type NetworkType uint8

const (
	NetworkUnknown       NetworkType = 0x00
	NetworkGSM           NetworkType = 0x01
	NetworkANSI136       NetworkType = 0x02
	NetworkIS95          NetworkType = 0x03
	NetworkPDC           NetworkType = 0x04
	NetworkPHS           NetworkType = 0x05
	NetworkIDEN          NetworkType = 0x06
	NetworkAMPS          NetworkType = 0x07
	NetworkPagingNetwork NetworkType = 0x08
)

// BearerType identifies the underlying bearer used to reach a mobile station.
type BearerType uint8

const (
	BearerUnknown       BearerType = 0x00
	BearerSMS           BearerType = 0x01
	BearerCSD           BearerType = 0x02
	BearerPacketData    BearerType = 0x03
	BearerUSSD          BearerType = 0x04
	BearerCDPD          BearerType = 0x05
	BearerDataTAC       BearerType = 0x06
	BearerFlexReFlex    BearerType = 0x07
	BearerCellDigiPkt   BearerType = 0x08
	BearerGPRSGSM       BearerType = 0x09
)

// PayloadType identifies the higher-layer protocol of message_payload.
type PayloadType uint8

const (
	PayloadDefault PayloadType = 0x00
	PayloadWDPWCMP PayloadType = 0x01
)

// PrivacyIndicator classifies the confidentiality level of a message.
type PrivacyIndicator uint8

const (
	PrivacyNotRestricted PrivacyIndicator = 0x00
	PrivacyRestricted    PrivacyIndicator = 0x01
	PrivacyConfidential  PrivacyIndicator = 0x02
	PrivacySecret        PrivacyIndicator = 0x03
)

// LanguageIndicator hints at the human language of a message's text.
type LanguageIndicator uint8

const (
	LanguageUnspecified LanguageIndicator = 0x00
	LanguageEnglish     LanguageIndicator = 0x01
	LanguageFrench      LanguageIndicator = 0x02
	LanguageSpanish     LanguageIndicator = 0x03
	LanguageGerman      LanguageIndicator = 0x04
	LanguagePortuguese  LanguageIndicator = 0x05
)

// DisplayTime requests when a message should be displayed on the handset.
type DisplayTime uint8

const (
	DisplayTimeTemporary DisplayTime = 0x00
	DisplayTimeDefault   DisplayTime = 0x01
	DisplayTimeInvoke    DisplayTime = 0x02
)

// MsAvailabilityStatus reports whether a mobile station can receive messages.
type MsAvailabilityStatus uint8

const (
	MsAvailable   MsAvailabilityStatus = 0x00
	MsDenied      MsAvailabilityStatus = 0x01
	MsUnavailable MsAvailabilityStatus = 0x02
)

// DeliveryFailureReason explains a data_sm delivery failure.
type DeliveryFailureReason uint8

const (
	FailureDestUnavailable     DeliveryFailureReason = 0x00
	FailureDestAddressInvalid  DeliveryFailureReason = 0x01
	FailurePermanentNetworkErr DeliveryFailureReason = 0x02
	FailureTemporaryNetworkErr DeliveryFailureReason = 0x03
)

// MoreMessagesToSend signals whether the SMSC should expect more
// messages from the ESME for the same destination.
type MoreMessagesToSend uint8

const (
	NoMoreMessages MoreMessagesToSend = 0x00
	MoreMessages   MoreMessagesToSend = 0x01
)

// EsmClassMode is the messaging-mode sub-field of esm_class (bits 0-1).
type EsmClassMode uint8

const (
	ModeDefault         EsmClassMode = 0x00
	ModeDatagram        EsmClassMode = 0x01
	ModeForward         EsmClassMode = 0x02
	ModeStoreAndForward EsmClassMode = 0x03
)

// EsmClassType is the message-type sub-field of esm_class (bits 2-5).
type EsmClassType uint8

const (
	TypeDefault                   EsmClassType = 0x00
	TypeSMSCDeliveryReceipt       EsmClassType = 0x04
	TypeIntermediateDeliveryNotif EsmClassType = 0x08
	TypeConversationAbort         EsmClassType = 0x18
	TypeSMEDeliveryAck            EsmClassType = 0x10
	TypeSMEManualUserAck          EsmClassType = 0x20
)

// EsmClassGSMFeatures is the bitmask of GSM network feature flags packed
// into bits 6-7 of esm_class. Unlike Mode and Type it is a set, not an
// enumerant, so it is represented as a mask rather than a slice of
// symbolic values.
type EsmClassGSMFeatures uint8

const (
	GSMFeatureNone         EsmClassGSMFeatures = 0x00
	GSMFeatureUDHI         EsmClassGSMFeatures = 0x40
	GSMFeatureSetReplyPath EsmClassGSMFeatures = 0x80
)

// EsmClass packs the messaging mode, message type, and GSM feature flags
// of a short message into a single wire byte.
type EsmClass struct {
	Mode        EsmClassMode
	Type        EsmClassType
	GSMFeatures EsmClassGSMFeatures
}

// RegisteredDeliveryReceipt is the delivery-receipt request sub-field of
// registered_delivery (bits 0-1).
type RegisteredDeliveryReceipt uint8

const (
	NoReceipt                 RegisteredDeliveryReceipt = 0x00
	ReceiptOnSuccessOrFailure RegisteredDeliveryReceipt = 0x01
	ReceiptOnFailure          RegisteredDeliveryReceipt = 0x02
)

// RegisteredDeliverySMEAcks is the bitmask of SME-originated
// acknowledgement flags packed into bits 2-3 of registered_delivery.
type RegisteredDeliverySMEAcks uint8

const (
	NoSMEAck         RegisteredDeliverySMEAcks = 0x00
	SMEDeliveryAck   RegisteredDeliverySMEAcks = 0x04
	SMEManualUserAck RegisteredDeliverySMEAcks = 0x08
)

// RegisteredDelivery controls what kind of delivery receipt and
// acknowledgements a submitted message should generate.
type RegisteredDelivery struct {
	Receipt                  RegisteredDeliveryReceipt
	SMEOriginatedAcks        RegisteredDeliverySMEAcks
	IntermediateNotification bool
}

// DataCodingScheme is the high-level encoding family of data_coding.
type DataCodingScheme uint8

const (
	DataCodingSchemeRAW              DataCodingScheme = iota
	DataCodingSchemeDefault
	DataCodingSchemeGSMMessageClass
	DataCodingSchemeMWIDiscard
	DataCodingSchemeMWIStoreGSM
	DataCodingSchemeMWIStoreUCS2
)

// DataCodingDefault enumerates the whole-byte "SMSC default" coding
// values (GSM 03.38 section 4).
type DataCodingDefault uint8

const (
	DataCodingDefaultSMSC          DataCodingDefault = 0x00
	DataCodingDefaultIA5ASCII      DataCodingDefault = 0x01
	DataCodingDefaultOctetUnspec   DataCodingDefault = 0x02
	DataCodingDefaultLatin1        DataCodingDefault = 0x03
	DataCodingDefaultOctetUnspec2  DataCodingDefault = 0x04
	DataCodingDefaultJIS           DataCodingDefault = 0x05
	DataCodingDefaultCyrillic      DataCodingDefault = 0x06
	DataCodingDefaultLatinHebrew   DataCodingDefault = 0x07
	DataCodingDefaultUCS2          DataCodingDefault = 0x08
	DataCodingDefaultPictogram     DataCodingDefault = 0x09
	DataCodingDefaultISO2022JP     DataCodingDefault = 0x0A
	DataCodingDefaultExtKanjiJIS   DataCodingDefault = 0x0D
	DataCodingDefaultKSC5601       DataCodingDefault = 0x0E
)

// DataCodingGsmMsgCoding is the alphabet sub-field (bit 2) of the GSM
// message class coding group.
type DataCodingGsmMsgCoding uint8

const (
	GsmMsgCodingDefaultAlphabet DataCodingGsmMsgCoding = 0x00
	GsmMsgCodingData8Bit        DataCodingGsmMsgCoding = 0x04
)

// DataCodingGsmMsgClass is the message-class sub-field (bits 0-1) of the
// GSM message class coding group.
type DataCodingGsmMsgClass uint8

const (
	GsmMsgClass0 DataCodingGsmMsgClass = 0x00
	GsmMsgClass1 DataCodingGsmMsgClass = 0x01
	GsmMsgClass2 DataCodingGsmMsgClass = 0x02
	GsmMsgClass3 DataCodingGsmMsgClass = 0x03
)

// DataCodingGsmMsg is the scheme_data value when DataCoding.Scheme is
// DataCodingSchemeGSMMessageClass.
type DataCodingGsmMsg struct {
	MsgCoding DataCodingGsmMsgCoding
	MsgClass  DataCodingGsmMsgClass
}

// DataCoding packs a coding scheme and its scheme-specific data into a
// single wire byte. SchemeData holds:
//   - an int (0-255) when Scheme is RAW,
//   - a DataCodingDefault when Scheme is Default,
//   - a DataCodingGsmMsg when Scheme is GSMMessageClass,
//   - nil for the parameter-less MWI schemes.
type DataCoding struct {
	Scheme     DataCodingScheme
	SchemeData any
}

// CallbackNum is the callback_num optional parameter value: a digit-mode
// indicator, a TON/NPI pair, and the trailing opaque digit string whose
// length is bounded only by the enclosing TLV.
type CallbackNum struct {
	DigitModeIndicator CallbackNumDigitModeIndicator
	TON                AddrTon
	NPI                AddrNpi
	Digits             []byte
}

// Subaddress is the source/dest_subaddress optional parameter value.
type Subaddress struct {
	TypeTag SubaddressTypeTag
	Value   []byte
}

// Option is a single decoded optional (TLV) parameter.
type Option struct {
	Tag   Tag
	Value any
}

// PDU is a single SMPP v3.4 Protocol Data Unit: the 16-byte header plus
// whatever mandatory and optional parameters its CommandID defines.
// Params is keyed by parameter name (e.g. "system_id", "short_message")
// exactly as named in SMPP v3.4 section 4; optional-parameter keys use
// the tag's canonical name (e.g. "message_payload").
type PDU struct {
	CommandID      CommandID
	CommandStatus  CommandStatus
	SequenceNumber uint32
	Params         map[string]any
}
