package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// EncodeJSON marshals v without HTML escaping, so non-ASCII text and
// characters like '<' and '&' are written literally.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ReencodeBody renders a response body as a single-line JSON document.
// JSON bodies are re-encoded with key order kept and strings written
// literally, so "\u4e0d" from the server comes out as "不". Anything else is
// encoded as a JSON string. An empty body becomes null.
func ReencodeBody(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "null"
	}
	if json.Valid(trimmed) {
		if out, err := reencodeJSON(trimmed); err == nil {
			return out
		}
	}
	encoded, err := EncodeJSON(string(raw))
	if err != nil {
		return "null"
	}
	return string(encoded)
}

// level tracks one open object or array while re-encoding.
type level struct {
	object bool
	tokens int
}

// reencodeJSON walks the document token by token instead of decoding into
// maps, which would sort object keys.
func reencodeJSON(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var buf bytes.Buffer
	var stack []level
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if delim, ok := tok.(json.Delim); ok && (delim == '}' || delim == ']') {
			stack = stack[:len(stack)-1]
			buf.WriteRune(rune(delim))
			continue
		}

		if n := len(stack); n > 0 {
			top := &stack[n-1]
			switch {
			case top.object && top.tokens%2 == 1:
				buf.WriteByte(':')
			case top.tokens > 0:
				buf.WriteByte(',')
			}
			top.tokens++
		}

		switch v := tok.(type) {
		case json.Delim:
			buf.WriteRune(rune(v))
			stack = append(stack, level{object: v == '{'})
		case string:
			encoded, err := EncodeJSON(v)
			if err != nil {
				return "", err
			}
			buf.Write(encoded)
		case json.Number:
			buf.WriteString(v.String())
		case bool:
			buf.WriteString(strconv.FormatBool(v))
		case nil:
			buf.WriteString("null")
		default:
			return "", fmt.Errorf("unexpected json token %T", tok)
		}
	}
	return buf.String(), nil
}

// DecodeValidate decodes a JSON body into body and checks its validate tags.
func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return fmt.Errorf("body is invalid json: %w", err)
	}
	if err := validate.Struct(body); err != nil {
		return fmt.Errorf("required fields missing: %w", err)
	}
	return nil
}
