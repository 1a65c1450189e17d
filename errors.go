package smpp

import "fmt"

// CorruptError signals that the byte stream is malformed at the
// structural level: a bad command_length, a bad command_id, a short
// read. It cannot be attributed to a single field.
type CorruptError struct {
	Msg    string
	Status CommandStatus
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("smpp: corrupt pdu: %s (%s)", e.Msg, e.Status)
}

// ParseError signals that the byte stream is structurally valid but a
// field's value is invalid or internally inconsistent. It carries the
// field-specific command status configured on the codec that raised it
// (e.g. source_addr overflow -> ESME_RINVSRCADR).
type ParseError struct {
	Msg    string
	Status CommandStatus
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("smpp: parse error: %s (%s)", e.Msg, e.Status)
}

func parseErrf(status CommandStatus, format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Status: status}
}

func corruptErrf(status CommandStatus, format string, args ...any) error {
	return &CorruptError{Msg: fmt.Sprintf(format, args...), Status: status}
}

// restampParseError re-raises err with status if it is a *ParseError.
// The TLV layer uses it to surface any inner field failure as
// ESME_RINVOPTPARAMVAL.
func restampParseError(err error, status CommandStatus) error {
	if pe, ok := err.(*ParseError); ok {
		return &ParseError{Msg: pe.Msg, Status: status}
	}
	return err
}
