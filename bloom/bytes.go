package bloom

import (
	"encoding"
	"fmt"
	"reflect"
)

// ElementBytes returns the canonical encoding of elem used by Add and
// MightContain:
//
//   - []byte as is
//   - string as its UTF-8 bytes
//   - encoding.TextMarshaler via MarshalText
//   - fmt.Stringer via String
//   - anything else via fmt.Sprint
//
// A TextMarshaler that fails falls back to fmt.Sprint, as does a nil pointer
// (encoded "<nil>") since its methods may not be callable.
func ElementBytes(elem any) []byte {
	if rv := reflect.ValueOf(elem); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return []byte(fmt.Sprint(elem))
	}
	switch v := elem.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	case encoding.TextMarshaler:
		if b, err := v.MarshalText(); err == nil {
			return b
		}
	case fmt.Stringer:
		return []byte(v.String())
	}
	return []byte(fmt.Sprint(elem))
}
