package smpp

import "fmt"

// esmClassCodec packs/unpacks the three esm_class sub-fields into a
// single byte: mode in bits 0-1 (mask 0x03), type in bits 2-5 (mask
// 0x3c), GSM network features in bits 6-7 (mask 0xc0).
type esmClassCodec struct{}

const (
	esmModeMask = 0x03
	esmTypeMask = 0x3c
	esmGSMMask  = 0xc0
)

var validEsmModes = map[EsmClassMode]bool{
	ModeDefault: true, ModeDatagram: true, ModeForward: true, ModeStoreAndForward: true,
}

var validEsmTypes = map[EsmClassType]bool{
	TypeDefault: true, TypeSMSCDeliveryReceipt: true, TypeIntermediateDeliveryNotif: true,
	TypeSMEDeliveryAck: true, TypeSMEManualUserAck: true, TypeConversationAbort: true,
}

func (esmClassCodec) encode(v any) ([]byte, error) {
	if v == nil {
		return []byte{0x00}, nil
	}
	e, ok := v.(EsmClass)
	if !ok {
		return nil, fmt.Errorf("smpp: expected EsmClass, got %T", v)
	}
	if !validEsmModes[e.Mode] {
		return nil, fmt.Errorf("smpp: esm_class mode 0x%02x is not recognized", byte(e.Mode))
	}
	if !validEsmTypes[e.Type] {
		return nil, fmt.Errorf("smpp: esm_class type 0x%02x is not recognized", byte(e.Type))
	}
	b := byte(e.Mode)&esmModeMask | byte(e.Type)&esmTypeMask | byte(e.GSMFeatures)&esmGSMMask
	return []byte{b}, nil
}

func (esmClassCodec) decode(cur *cursor) (any, error) {
	raw, err := cur.readByte()
	if err != nil {
		return nil, err
	}
	mode := EsmClassMode(raw & esmModeMask)
	typ := EsmClassType(raw & esmTypeMask)
	gsm := EsmClassGSMFeatures(raw & esmGSMMask)
	if !validEsmModes[mode] {
		return nil, parseErrf(ESME_RINVESMCLASS, "esm_class mode 0x%02x is not recognized", byte(mode))
	}
	if !validEsmTypes[typ] {
		return nil, parseErrf(ESME_RINVESMCLASS, "esm_class type 0x%02x is not recognized", byte(typ))
	}
	return EsmClass{Mode: mode, Type: typ, GSMFeatures: gsm}, nil
}

// registeredDeliveryCodec packs/unpacks the registered_delivery byte:
// receipt request in bits 0-1 (mask 0x03), SME-originated ack request in
// bits 2-3 (mask 0x0c), intermediate notification request in bit 4
// (mask 0x10, boolean).
type registeredDeliveryCodec struct{}

const (
	regDlvReceiptMask = 0x03
	regDlvAcksMask    = 0x0c
	regDlvInterMask   = 0x10
)

var validRegDlvReceipts = map[RegisteredDeliveryReceipt]bool{
	NoReceipt: true, ReceiptOnSuccessOrFailure: true, ReceiptOnFailure: true,
}

var validRegDlvAcks = map[RegisteredDeliverySMEAcks]bool{
	NoSMEAck: true, SMEDeliveryAck: true, SMEManualUserAck: true,
}

func (registeredDeliveryCodec) encode(v any) ([]byte, error) {
	if v == nil {
		return []byte{0x00}, nil
	}
	r, ok := v.(RegisteredDelivery)
	if !ok {
		return nil, fmt.Errorf("smpp: expected RegisteredDelivery, got %T", v)
	}
	if !validRegDlvReceipts[r.Receipt] {
		return nil, fmt.Errorf("smpp: registered_delivery receipt 0x%02x is not recognized", byte(r.Receipt))
	}
	if !validRegDlvAcks[r.SMEOriginatedAcks] {
		return nil, fmt.Errorf("smpp: registered_delivery SME ack 0x%02x is not recognized", byte(r.SMEOriginatedAcks))
	}
	b := byte(r.Receipt) & regDlvReceiptMask
	b |= byte(r.SMEOriginatedAcks) & regDlvAcksMask
	if r.IntermediateNotification {
		b |= regDlvInterMask
	}
	return []byte{b}, nil
}

func (registeredDeliveryCodec) decode(cur *cursor) (any, error) {
	raw, err := cur.readByte()
	if err != nil {
		return nil, err
	}
	receipt := RegisteredDeliveryReceipt(raw & regDlvReceiptMask)
	acks := RegisteredDeliverySMEAcks(raw & regDlvAcksMask)
	if !validRegDlvReceipts[receipt] {
		return nil, parseErrf(ESME_RINVREGDLVFLG, "registered_delivery receipt 0x%02x is not recognized", byte(receipt))
	}
	if !validRegDlvAcks[acks] {
		return nil, parseErrf(ESME_RINVREGDLVFLG, "registered_delivery SME ack 0x%02x is not recognized", byte(acks))
	}
	return RegisteredDelivery{
		Receipt:                   receipt,
		SMEOriginatedAcks:         acks,
		IntermediateNotification: raw&regDlvInterMask != 0,
	}, nil
}

// dataCodingCodec packs/unpacks data_coding. The high nibble selects
// the scheme group; the low nibble (or the whole byte, for "raw" and
// the default alphabet) carries scheme-specific data. Decode checks the
// scheme nibbles first (GSM message class 0xF, then the parameter-less
// MWI groups), then falls back to a recognized whole-byte default
// value, and finally to raw passthrough of the whole byte.
type dataCodingCodec struct{}

var validDataCodingDefaults = map[DataCodingDefault]bool{
	DataCodingDefaultSMSC: true, DataCodingDefaultIA5ASCII: true, DataCodingDefaultOctetUnspec: true,
	DataCodingDefaultLatin1: true, DataCodingDefaultOctetUnspec2: true, DataCodingDefaultJIS: true,
	DataCodingDefaultCyrillic: true, DataCodingDefaultLatinHebrew: true, DataCodingDefaultUCS2: true,
	DataCodingDefaultPictogram: true, DataCodingDefaultISO2022JP: true, DataCodingDefaultExtKanjiJIS: true,
	DataCodingDefaultKSC5601: true,
}

func (dataCodingCodec) encode(v any) ([]byte, error) {
	if v == nil {
		return []byte{0x00}, nil
	}
	d, ok := v.(DataCoding)
	if !ok {
		return nil, fmt.Errorf("smpp: expected DataCoding, got %T", v)
	}
	switch d.Scheme {
	case DataCodingSchemeGSMMessageClass:
		msg, ok := d.SchemeData.(DataCodingGsmMsg)
		if !ok {
			return nil, fmt.Errorf("smpp: GSMMessageClass scheme_data must be DataCodingGsmMsg, got %T", d.SchemeData)
		}
		b := byte(0xF0) | byte(msg.MsgCoding) | byte(msg.MsgClass)
		return []byte{b}, nil
	case DataCodingSchemeMWIDiscard:
		return []byte{0xC0}, nil
	case DataCodingSchemeMWIStoreGSM:
		return []byte{0xD0}, nil
	case DataCodingSchemeMWIStoreUCS2:
		return []byte{0xE0}, nil
	case DataCodingSchemeDefault:
		def, ok := d.SchemeData.(DataCodingDefault)
		if !ok || !validDataCodingDefaults[def] {
			return nil, fmt.Errorf("smpp: Default scheme_data is not a recognized DataCodingDefault")
		}
		return []byte{byte(def)}, nil
	case DataCodingSchemeRAW:
		n, err := asUint32(d.SchemeData)
		if err != nil || n > 0xFF {
			return nil, fmt.Errorf("smpp: RAW scheme_data must be a byte value")
		}
		return []byte{byte(n)}, nil
	default:
		return nil, fmt.Errorf("smpp: unrecognized data_coding scheme %v", d.Scheme)
	}
}

func (dataCodingCodec) decode(cur *cursor) (any, error) {
	raw, err := cur.readByte()
	if err != nil {
		return nil, err
	}
	switch raw & 0xF0 {
	case 0xF0:
		return DataCoding{
			Scheme: DataCodingSchemeGSMMessageClass,
			SchemeData: DataCodingGsmMsg{
				MsgCoding: DataCodingGsmMsgCoding(raw & 0x04),
				MsgClass:  DataCodingGsmMsgClass(raw & 0x03),
			},
		}, nil
	case 0xC0:
		return DataCoding{Scheme: DataCodingSchemeMWIDiscard}, nil
	case 0xD0:
		return DataCoding{Scheme: DataCodingSchemeMWIStoreGSM}, nil
	case 0xE0:
		return DataCoding{Scheme: DataCodingSchemeMWIStoreUCS2}, nil
	}
	if validDataCodingDefaults[DataCodingDefault(raw)] {
		return DataCoding{Scheme: DataCodingSchemeDefault, SchemeData: DataCodingDefault(raw)}, nil
	}
	return DataCoding{Scheme: DataCodingSchemeRAW, SchemeData: int(raw)}, nil
}
