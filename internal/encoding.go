// Package internal holds helpers shared by the container
// implementations that are not part of the public API.
package internal

import (
	"bytes"
	"encoding/json"
	"iter"
	"strings"
)

// IgnoreNewLinesBuffer is a buffer that trims leading and trailing
// whitespace from every write, which removes the newline that
// json.Encoder appends to each value.
type IgnoreNewLinesBuffer struct {
	bytes.Buffer
}

func (b *IgnoreNewLinesBuffer) Write(in []byte) (int, error) {
	_, _ = b.Buffer.Write(bytes.TrimSpace(in))
	return len(in), nil
}

func (b *IgnoreNewLinesBuffer) WriteString(in string) (int, error) {
	_, _ = b.Buffer.WriteString(strings.TrimSpace(in))
	return len(in), nil
}

// MarshalJSONArray encodes the values of the sequence, in order, as a
// JSON array. An empty sequence produces "[]".
func MarshalJSONArray[T any](seq iter.Seq[T]) ([]byte, error) {
	buf := &IgnoreNewLinesBuffer{}
	enc := json.NewEncoder(buf)

	_ = buf.WriteByte('[')

	first := true
	for value := range seq {
		if !first {
			_ = buf.WriteByte(',')
		}
		first = false

		if err := enc.Encode(value); err != nil {
			return nil, err
		}
	}

	_ = buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSONArray decodes a JSON array and passes each value, in
// order, to the handler. The whole document is decoded before the
// handler is called, so a malformed document never produces a partial
// result.
func UnmarshalJSONArray[T any](in []byte, handler func(T)) error {
	var values []T
	if err := json.Unmarshal(in, &values); err != nil {
		return err
	}

	for idx := range values {
		handler(values[idx])
	}

	return nil
}
