package source

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// decodeText returns the payload as UTF-8 text. Payloads that are not valid UTF-8
// are decoded as ISO-8859-1, the usual encoding of spreadsheet exports on Windows.
func decodeText(payload []byte) (string, bool, error) {
	payload = bytes.TrimPrefix(payload, byteOrderMark)
	if utf8.Valid(payload) {
		return string(payload), false, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(payload)
	if err != nil {
		return "", false, err
	}
	return string(decoded), true, nil
}
