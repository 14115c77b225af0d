package vanilla

import "bytes"

// Fuzz exercises ReadChrRacesTable against arbitrary input. A malformed
// header or truncated record must return an error, never panic.
func Fuzz(data []byte) int {
	t, err := ReadChrRacesTable(data)
	if err != nil {
		return 0
	}

	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return 0
	}
	return 1
}
