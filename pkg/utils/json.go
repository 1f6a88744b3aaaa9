package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonIndent is two spaces; jsoniter rejects any indent that is not spaces.
const jsonIndent = "  "

// PrettyJson renders in as indented JSON. Raw []byte input is re-indented.
func PrettyJson(in any) (string, error) {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return "", err
		}
		in = decoded
	}

	out, err := json.MarshalIndent(in, "", jsonIndent)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
