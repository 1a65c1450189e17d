package smpp

// Encode is a package-level convenience around Codec.Encode using the
// zero-value Codec, which carries no state of its own.
func Encode(p *PDU) ([]byte, error) { return Codec{}.Encode(p) }

// Decode is a package-level convenience around Codec.Decode.
func Decode(data []byte) (*PDU, error) { return Codec{}.Decode(data) }
