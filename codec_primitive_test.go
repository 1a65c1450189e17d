package smpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCOctetStringMaxSizeBoundary(t *testing.T) {
	c := newCOctetStringCodec(5)

	// len(s)+1 == maxSize is allowed.
	_, err := c.encode("abcd")
	require.NoError(t, err)

	// len(s)+1 > maxSize is not.
	_, err = c.encode("abcde")
	require.Error(t, err)

	// Same boundary on decode, with the codec's configured status.
	_, err = c.withStatus(ESME_RINVSYSID).decode(newCursor([]byte{'a', 'b', 'c', 'd', 'e', 0x00}))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ESME_RINVSYSID, perr.Status)

	got, err := c.decode(newCursor([]byte{'a', 'b', 'c', 'd', 0x00}))
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)
}

func TestCOctetStringDecodeRoundTrip(t *testing.T) {
	c := newCOctetStringCodec(16)
	raw, err := c.encode("smppclient1")
	require.NoError(t, err)

	got, err := c.decode(newCursor(raw))
	require.NoError(t, err)
	assert.Equal(t, "smppclient1", got)
}

func TestIntCodecBoundsInclusive(t *testing.T) {
	c := newIntCodec(1).withBounds(1, 3)

	_, err := c.encode(uint32(1))
	assert.NoError(t, err)
	_, err = c.encode(uint32(3))
	assert.NoError(t, err)
	_, err = c.encode(uint32(0))
	assert.Error(t, err)
	_, err = c.encode(uint32(4))
	assert.Error(t, err)
}

func TestIntCodecNullSentinel(t *testing.T) {
	c := newIntCodec(2).withNullable(true, true, false)

	raw, err := c.encode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00}, raw)

	got, err := c.decode(newCursor(raw))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNullableContractPanicsOnInvalidCombination(t *testing.T) {
	assert.Panics(t, func() {
		newIntCodec(1).withNullable(false, true, false)
	})
	assert.Panics(t, func() {
		newIntCodec(1).withNullable(true, false, true)
	})
}

func TestEmptyCodecRoundTrip(t *testing.T) {
	c := emptyCodec{}
	raw, err := c.encode(nil)
	require.NoError(t, err)
	assert.Empty(t, raw)

	got, err := c.decode(newCursor(nil))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEsmClassRejectsUnknownSubfields(t *testing.T) {
	c := esmClassCodec{}
	_, err := c.encode(EsmClass{Mode: EsmClassMode(0x03), Type: EsmClassType(0x3c)})
	require.Error(t, err)

	_, err = c.decode(newCursor([]byte{0xFF}))
	require.Error(t, err)
}

func TestRegisteredDeliveryBitPacking(t *testing.T) {
	c := registeredDeliveryCodec{}
	r := RegisteredDelivery{Receipt: ReceiptOnFailure, SMEOriginatedAcks: SMEManualUserAck, IntermediateNotification: true}
	raw, err := c.encode(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1A}, raw)

	got, err := c.decode(newCursor(raw))
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestDataCodingDecodeOrder(t *testing.T) {
	c := dataCodingCodec{}

	gsm, err := c.decode(newCursor([]byte{0xF5}))
	require.NoError(t, err)
	assert.Equal(t, DataCodingSchemeGSMMessageClass, gsm.(DataCoding).Scheme)

	def, err := c.decode(newCursor([]byte{0x08}))
	require.NoError(t, err)
	assert.Equal(t, DataCoding{Scheme: DataCodingSchemeDefault, SchemeData: DataCodingDefaultUCS2}, def)

	mwi, err := c.decode(newCursor([]byte{0xC0}))
	require.NoError(t, err)
	assert.Equal(t, DataCoding{Scheme: DataCodingSchemeMWIDiscard}, mwi)

	raw, err := c.decode(newCursor([]byte{0x50}))
	require.NoError(t, err)
	assert.Equal(t, DataCoding{Scheme: DataCodingSchemeRAW, SchemeData: 0x50}, raw)
}

func TestScheduleTimeAbsoluteRoundTrip(t *testing.T) {
	c := newTimeCodec(ESME_RINVSCHED)
	st := ScheduleTime{Year: 26, Month: 7, Day: 31, Hour: 12, Minute: 0, Second: 0, Tenths: 0, UTCOffsetQuarterHours: 8, UTCOffsetSign: '+'}
	raw, err := c.encode(st)
	require.NoError(t, err)
	assert.Equal(t, "260731120000008+\x00", string(raw))

	got, err := c.decode(newCursor(raw))
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestScheduleTimeRelativeRoundTrip(t *testing.T) {
	c := newTimeCodec(ESME_RINVEXPIRY)
	st := ScheduleTime{Relative: true, Day: 1, Hour: 0, Minute: 0, Second: 0}
	raw, err := c.encode(st)
	require.NoError(t, err)

	got, err := c.decode(newCursor(raw))
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestScheduleTimeNullRoundTrip(t *testing.T) {
	c := newTimeCodec(ESME_RINVSCHED)
	raw, err := c.encode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, raw)

	got, err := c.decode(newCursor(raw))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCursorShortReadIsCorrupt(t *testing.T) {
	cur := newCursor([]byte{0x01})
	_, err := cur.read(4)
	require.Error(t, err)
	var cerr *CorruptError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ESME_RINVMSGLEN, cerr.Status)
}
