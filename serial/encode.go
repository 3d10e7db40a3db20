package serial

import (
	"github.com/monokrome/bl4-sub000/ds"
	"github.com/monokrome/bl4-sub000/serial/sbase85"
	"github.com/monokrome/bl4-sub000/serial/sbits"
	"github.com/monokrome/bl4-sub000/serial/stoken"
)

// Encode returns the serial text of the model. Decoding keeps the
// original text and every mutation goes through a full rebuild, so
// this is always the exact string the model was made from.
func Encode(model *ItemModel) string {
	return model.Raw
}

// EncodeTokens rebuilds the serial text from the token stream alone:
// magic header, tokens, zero padding to a byte boundary, mirror, then
// the 85-symbol alphabet. For an unmodified model the result matches
// the decoded input byte for byte.
func EncodeTokens(model *ItemModel) string {
	return encodeTokens(model.Tokens)
}

func encodeTokens(tokens []stoken.Token) string {
	writer := sbits.NewWriter()
	writer.WriteBits(Magic, MagicBits)
	stoken.WriteStream(writer, tokens)
	padded := ds.NearestDivisibleByM(writer.BitLength(), 8)
	writer.WriteBits(0, padded-writer.BitLength())
	return PrefixMarker + sbase85.Encode(sbase85.MirrorBytes(writer.Finish()))
}
