package impl

import (
	"reflect"

	"bdgaraj/internal/errors"

	"github.com/go-viper/mapstructure/v2"
)

// patchFields returns the fields present in patch keyed by their json names.
// Nil pointer fields are absent; set pointers are dereferenced.
//
// Patch json tags must not carry omitempty: mapstructure unwraps slice
// pointers before the emptiness check, so {"images": []} would be dropped.
func patchFields(patch any) (map[string]any, error) {
	fields := make(map[string]any)
	if patch == nil || reflect.ValueOf(patch).IsNil() {
		return fields, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &fields,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build patch decoder")
	}
	if err := decoder.Decode(patch); err != nil {
		return nil, errors.Wrap(err, "failed to decode patch")
	}

	for key, value := range fields {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Pointer {
			continue
		}
		if rv.IsNil() {
			delete(fields, key)

			continue
		}
		fields[key] = rv.Elem().Interface()
	}

	return fields, nil
}
