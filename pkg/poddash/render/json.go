package render

import (
	"github.com/bytedance/sonic"
)

// ToJSON serializes v, optionally indented.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return sonic.ConfigStd.MarshalIndent(v, "", "  ")
	}
	return sonic.ConfigStd.Marshal(v)
}
