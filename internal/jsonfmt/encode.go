// Package jsonfmt encodes values as single-line JSON in the layout the real
// smb-zfs tool prints: ", " between elements, ": " after keys and every
// non-ASCII character escaped.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf16"
)

const hexDigits = "0123456789abcdef"

// frame tracks one open array or object while re-emitting tokens.
type frame struct {
	object bool
	n      int
}

// Marshal returns the single-line encoding of v without a trailing newline.
// Struct fields keep their declaration order, map keys are sorted and
// json.Marshaler output keeps its own key order.
func Marshal(v any) ([]byte, error) {
	var compact bytes.Buffer

	enc := json.NewEncoder(&compact)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}

	dec := json.NewDecoder(&compact)
	dec.UseNumber()

	var (
		out   bytes.Buffer
		stack []frame
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to re-read encoded value: %w", err)
		}

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			out.WriteByte(byte(d))

			continue
		}

		if len(stack) > 0 {
			top := &stack[len(stack)-1]

			switch {
			case top.object && top.n%2 == 1:
				out.WriteString(": ")
			case top.n > 0:
				out.WriteString(", ")
			}

			top.n++
		}

		switch t := tok.(type) {
		case json.Delim:
			out.WriteByte(byte(t))
			stack = append(stack, frame{object: t == '{'})
		case string:
			writeString(&out, t)
		case json.Number:
			out.WriteString(t.String())
		case bool:
			out.WriteString(strconv.FormatBool(t))
		case nil:
			out.WriteString("null")
		default:
			return nil, fmt.Errorf("unexpected token %T", tok)
		}
	}

	return out.Bytes(), nil
}

// Fprintln writes the encoding of v followed by a newline.
func Fprintln(w io.Writer, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}

	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')

	for _, r := range s {
		switch {
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\\':
			buf.WriteString(`\\`)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r == '\t':
			buf.WriteString(`\t`)
		case r == '\b':
			buf.WriteString(`\b`)
		case r == '\f':
			buf.WriteString(`\f`)
		case r >= ' ' && r <= '~':
			buf.WriteRune(r)
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			writeUnicodeEscape(buf, hi)
			writeUnicodeEscape(buf, lo)
		default:
			writeUnicodeEscape(buf, r)
		}
	}

	buf.WriteByte('"')
}

func writeUnicodeEscape(buf *bytes.Buffer, r rune) {
	buf.WriteString(`\u`)
	buf.WriteByte(hexDigits[r>>12&0xf])
	buf.WriteByte(hexDigits[r>>8&0xf])
	buf.WriteByte(hexDigits[r>>4&0xf])
	buf.WriteByte(hexDigits[r&0xf])
}
