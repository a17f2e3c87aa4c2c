package lint

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// OptionValidator is implemented by option structs whose fields accept a
// restricted set of values. DecodeOptions calls Validate after decoding.
type OptionValidator interface {
	Validate() error
}

// DecodeOptions decodes a raw option map into target, a pointer to an
// option struct already holding the rule's defaults. Keys absent from raw
// keep their default. Unknown keys and values that cannot be converted to
// the field type are errors. On error target is left unchanged.
func DecodeOptions(raw map[string]any, target any) error {
	if len(raw) == 0 {
		return nil
	}

	dst := reflect.ValueOf(target)
	if dst.Kind() != reflect.Pointer || dst.IsNil() {
		return errors.New("decode options: target must be a non-nil pointer")
	}
	staged := reflect.New(dst.Elem().Type())
	staged.Elem().Set(dst.Elem())

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           staged.Interface(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		ZeroFields:       false,
	})
	if err != nil {
		return fmt.Errorf("create option decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}

	if v, ok := staged.Interface().(OptionValidator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	dst.Elem().Set(staged.Elem())
	return nil
}

// OptionsMap flattens an option struct into the map form used in
// configuration files.
func OptionsMap(opts any) (map[string]any, error) {
	if opts == nil {
		return nil, nil
	}

	var result map[string]any
	if err := mapstructure.Decode(opts, &result); err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	return result, nil
}
