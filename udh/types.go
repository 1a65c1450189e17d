// Package udh implements the 3GPP TS 23.040 User Data Header: the
// length-prefixed run of Information Elements packed into the start of
// a short message's user data when the esm_class GSM feature bit
// UDHI (User Data Header Indicator) is set.
package udh

import "fmt"

// InformationElementIdentifier names the kind of data an Information
// Element carries.
type InformationElementIdentifier uint8

// TS 23.040 section 9.2.3.24 identifier set.
const (
	ConcatenatedSM8BitRefNum         InformationElementIdentifier = 0x00
	SpecialSMSMessageIndication      InformationElementIdentifier = 0x01
	ApplicationPortAddressing8Bit    InformationElementIdentifier = 0x04
	ApplicationPortAddressing16Bit   InformationElementIdentifier = 0x05
	SMSCControlParameters            InformationElementIdentifier = 0x06
	UDHSourceIndicator               InformationElementIdentifier = 0x07
	ConcatenatedSM16BitRefNum        InformationElementIdentifier = 0x08
	WirelessControlMessageProtocol   InformationElementIdentifier = 0x09
	TextFormatting                   InformationElementIdentifier = 0x0A
	PredefinedSound                  InformationElementIdentifier = 0x0B
	UserDefinedSound                 InformationElementIdentifier = 0x0C
	PredefinedAnimation              InformationElementIdentifier = 0x0D
	LargeAnimation                   InformationElementIdentifier = 0x0E
	SmallAnimation                   InformationElementIdentifier = 0x0F
	LargePicture                     InformationElementIdentifier = 0x10
	SmallPicture                     InformationElementIdentifier = 0x11
	VariablePicture                  InformationElementIdentifier = 0x12
	UserPromptIndicator              InformationElementIdentifier = 0x13
	ExtendedObject                   InformationElementIdentifier = 0x14
	ReusedExtendedObject             InformationElementIdentifier = 0x15
	CompressionControl               InformationElementIdentifier = 0x16
	ObjectDistributionIndicator      InformationElementIdentifier = 0x17
	StandardWVGObject                InformationElementIdentifier = 0x18
	CharacterSizeWVGObject           InformationElementIdentifier = 0x19
	ExtendedObjectDataRequestCommand InformationElementIdentifier = 0x1A
	RFC822EmailHeader                InformationElementIdentifier = 0x20
	HyperlinkFormatElement           InformationElementIdentifier = 0x21
	ReplyAddressElement              InformationElementIdentifier = 0x22
	EnhancedVoiceMailInformation     InformationElementIdentifier = 0x23
	NationalLanguageSingleShift      InformationElementIdentifier = 0x24
	NationalLanguageLockingShift     InformationElementIdentifier = 0x25
)

func (id InformationElementIdentifier) String() string {
	if r, ok := identifierRules[id]; ok {
		return r.name
	}
	return fmt.Sprintf("InformationElementIdentifier(0x%02X)", uint8(id))
}

// identifierRule records an identifier's name, whether its Information
// Element may legally repeat within one header, and which other
// identifiers it cannot appear alongside. Per 3GPP TS 23.040 section
// 9.2.3.24, a non-repeatable identifier seen more than once — or
// appearing together with a mutually exclusive one — resolves to its
// last occurrence on decode.
type identifierRule struct {
	name       string
	repeatable bool
	excludes   []InformationElementIdentifier
}

var identifierRules = map[InformationElementIdentifier]identifierRule{
	ConcatenatedSM8BitRefNum:         {name: "CONCATENATED_SM_8BIT_REF_NUM", excludes: []InformationElementIdentifier{ConcatenatedSM16BitRefNum}},
	SpecialSMSMessageIndication:      {name: "SPECIAL_SMS_MESSAGE_INDICATION", repeatable: true},
	ApplicationPortAddressing8Bit:    {name: "APPLICATION_PORT_ADDRESSING_8BIT", excludes: []InformationElementIdentifier{ApplicationPortAddressing16Bit}},
	ApplicationPortAddressing16Bit:   {name: "APPLICATION_PORT_ADDRESSING_16BIT", excludes: []InformationElementIdentifier{ApplicationPortAddressing8Bit}},
	SMSCControlParameters:            {name: "SMSC_CONTROL_PARAMETERS"},
	UDHSourceIndicator:               {name: "UDH_SOURCE_INDICATOR", repeatable: true},
	ConcatenatedSM16BitRefNum:        {name: "CONCATENATED_SM_16BIT_REF_NUM", excludes: []InformationElementIdentifier{ConcatenatedSM8BitRefNum}},
	WirelessControlMessageProtocol:   {name: "WIRELESS_CONTROL_MESSAGE_PROTOCOL"},
	TextFormatting:                   {name: "TEXT_FORMATTING", repeatable: true},
	PredefinedSound:                  {name: "PREDEFINED_SOUND", repeatable: true},
	UserDefinedSound:                 {name: "USER_DEFINED_SOUND", repeatable: true},
	PredefinedAnimation:              {name: "PREDEFINED_ANIMATION", repeatable: true},
	LargeAnimation:                   {name: "LARGE_ANIMATION", repeatable: true},
	SmallAnimation:                   {name: "SMALL_ANIMATION", repeatable: true},
	LargePicture:                     {name: "LARGE_PICTURE", repeatable: true},
	SmallPicture:                     {name: "SMALL_PICTURE", repeatable: true},
	VariablePicture:                  {name: "VARIABLE_PICTURE", repeatable: true},
	UserPromptIndicator:              {name: "USER_PROMPT_INDICATOR", repeatable: true},
	ExtendedObject:                   {name: "EXTENDED_OBJECT", repeatable: true},
	ReusedExtendedObject:             {name: "REUSED_EXTENDED_OBJECT", repeatable: true},
	CompressionControl:               {name: "COMPRESSION_CONTROL"},
	ObjectDistributionIndicator:      {name: "OBJECT_DISTRIBUTION_INDICATOR", repeatable: true},
	StandardWVGObject:                {name: "STANDARD_WVG_OBJECT", repeatable: true},
	CharacterSizeWVGObject:           {name: "CHARACTER_SIZE_WVG_OBJECT", repeatable: true},
	ExtendedObjectDataRequestCommand: {name: "EXTENDED_OBJECT_DATA_REQUEST_COMMAND"},
	RFC822EmailHeader:                {name: "RFC822_EMAIL_HEADER"},
	HyperlinkFormatElement:           {name: "HYPERLINK_FORMAT_ELEMENT", repeatable: true},
	ReplyAddressElement:              {name: "REPLY_ADDRESS_ELEMENT"},
	EnhancedVoiceMailInformation:     {name: "ENHANCED_VOICE_MAIL_INFORMATION"},
	NationalLanguageSingleShift:      {name: "NATIONAL_LANGUAGE_SINGLE_SHIFT"},
	NationalLanguageLockingShift:     {name: "NATIONAL_LANGUAGE_LOCKING_SHIFT"},
}

// ConcatenatedSM is the decoded data of a concatenated-short-message
// Information Element: which reference number this segment belongs to,
// how many segments make up the whole message, and this segment's
// 1-based position.
type ConcatenatedSM struct {
	ReferenceNum uint16
	MaximumNum   uint8
	SequenceNum  uint8
}

// InformationElement is a single decoded entry of a User Data Header.
// Data holds a ConcatenatedSM when Identifier is one of the
// concatenation identifiers, or the raw element bytes otherwise.
type InformationElement struct {
	Identifier InformationElementIdentifier
	Data       any
}

// UserDataHeader is the ordered, already-resolved set of Information
// Elements carried by a short message: repeatable elements in the order
// decoded, followed by the last occurrence of every non-repeatable one.
type UserDataHeader []InformationElement
