package transport

import (
	"encoding/json"

	"github.com/agentstation/pushull/pkg/errors"
)

// DecodeJSON decodes a JSON body into target.
func DecodeJSON(body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}
	return nil
}
