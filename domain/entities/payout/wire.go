package payout

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cast"
)

// FlexString is a wire field the gateway sends as text, but which it has
// been seen to send as a bare JSON number too.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if n, ok := raw.(json.Number); ok {
		*s = FlexString(n.String())
		return nil
	}
	str, err := cast.ToStringE(raw)
	if err != nil {
		return err
	}
	*s = FlexString(str)
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
