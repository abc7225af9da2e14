package api

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeFirst decodes a provider document into out using mapstructure tags. When the document
// is an array, its first element is used.
func DecodeFirst(raw []byte, out any) error {
	body, err := DecodeBody(raw)
	if err != nil {
		return fmt.Errorf("invalid body format: %w", err)
	}

	var object JSON
	switch t := body.(type) {
	case JSON:
		object = t
	case Array:
		if len(t) == 0 {
			return errors.New("empty array body")
		}
		object = t[0]
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(object)
}
