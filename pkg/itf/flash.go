package itf

import (
	"encoding/base64"
	"encoding/json"
)

func decodeFlash(value string) (map[string]string, error) {
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	return m, json.Unmarshal(raw, &m)
}
