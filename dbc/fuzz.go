package dbc

// Fuzz exercises ParseHeader against arbitrary input, independent of
// any table schema. A short or non-magic buffer must return an error,
// never panic; any input long enough to carry a magic number must
// round-trip through Marshal back to the same header fields.
func Fuzz(data []byte) int {
	if len(data) < HeaderSize {
		return 0
	}

	header, err := ParseHeader(data[:HeaderSize])
	if err != nil {
		return 0
	}

	marshaled := header.Marshal()
	roundTripped, err := ParseHeader(marshaled[:])
	if err != nil {
		panic("dbc: header failed to round-trip through Marshal: " + err.Error())
	}
	if roundTripped != header {
		panic("dbc: header round-trip through Marshal changed field values")
	}

	return 1
}
