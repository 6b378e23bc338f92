package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSON(t *testing.T) {
	t.Run("non ascii stays literal", func(t *testing.T) {
		out, err := EncodeJSON(map[string]string{"title": "サポート窓口"})
		require.NoError(t, err)
		assert.Equal(t, `{"title":"サポート窓口"}`, string(out))
	})

	t.Run("html characters are not escaped", func(t *testing.T) {
		out, err := EncodeJSON("a<b & c>d")
		require.NoError(t, err)
		assert.Equal(t, `"a<b & c>d"`, string(out))
	})

	t.Run("no trailing newline", func(t *testing.T) {
		out, err := EncodeJSON(1)
		require.NoError(t, err)
		assert.Equal(t, "1", string(out))
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := EncodeJSON(make(chan int))
		assert.Error(t, err)
	})
}

func TestReencodeBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "compact json", raw: `{"error":"Bad request"}`, want: `{"error":"Bad request"}`},
		{name: "whitespace removed", raw: "{\n  \"error\": \"Bad request\",\n  \"code\": 40\n}\n", want: `{"error":"Bad request","code":40}`},
		{name: "key order kept", raw: `{"z":1,"a":2}`, want: `{"z":1,"a":2}`},
		{name: "unicode literal", raw: `{"error":"タイトルが不正です"}`, want: `{"error":"タイトルが不正です"}`},
		{name: "escaped unicode decoded", raw: `{"error":"\u4e0d\u6b63"}`, want: `{"error":"不正"}`},
		{name: "escaped html decoded", raw: `{"msg":"a \u003c b \u0026 c"}`, want: `{"msg":"a < b & c"}`},
		{name: "quotes stay escaped", raw: `{"msg":"say \"hi\"\n"}`, want: `{"msg":"say \"hi\"\n"}`},
		{name: "nested values", raw: `{"errors":[{"field":"title","codes":[1, 2.50, -3e2]},{"ok":false,"v":null}],"n":{}}`, want: `{"errors":[{"field":"title","codes":[1,2.50,-3e2]},{"ok":false,"v":null}],"n":{}}`},
		{name: "empty containers", raw: `[ [], {} ]`, want: `[[],{}]`},
		{name: "top level scalar", raw: ` "\u3042" `, want: `"あ"`},
		{name: "plain text", raw: "Bad Gateway", want: `"Bad Gateway"`},
		{name: "html page", raw: "<html>oops</html>", want: `"<html>oops</html>"`},
		{name: "empty", raw: "", want: "null"},
		{name: "only whitespace", raw: "  \n", want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReencodeBody([]byte(tt.raw)))
		})
	}
}

func TestDecodeValidate(t *testing.T) {
	type TestStruct struct {
		Field1 string `json:"field1" validate:"required"`
		Field2 int    `json:"field2"`
	}

	t.Run("valid", func(t *testing.T) {
		var got TestStruct
		err := DecodeValidate(strings.NewReader(`{"field1":"value","extra":true}`), &got)
		require.NoError(t, err)
		assert.Equal(t, "value", got.Field1)
	})

	t.Run("invalid json", func(t *testing.T) {
		var got TestStruct
		err := DecodeValidate(strings.NewReader(`{"field1":`), &got)
		assert.ErrorContains(t, err, "body is invalid json")
	})

	t.Run("missing required field", func(t *testing.T) {
		var got TestStruct
		err := DecodeValidate(strings.NewReader(`{"field2":1}`), &got)
		assert.ErrorContains(t, err, "required fields missing")
	})
}
