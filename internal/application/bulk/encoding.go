package bulk

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeCSV deja el archivo en UTF-8 sin BOM. Excel suele exportar CSV en
// Windows-1252; si el contenido no es UTF-8 válido se decodifica con charmap.
func normalizeCSV(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("decodificar archivo: %w", err)
		}
		data = decoded
	}
	return bytes.NewReader(data), nil
}
