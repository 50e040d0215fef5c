package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode 输出 UTF-8 原始字节的 JSON：不转义 <>& 与非 ASCII 字符，末尾不带换行
func Encode(res Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
