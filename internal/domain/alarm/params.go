package alarm

import (
	"slices"

	"github.com/spf13/cast"
)

// Getter exposes a partial configuration that is not a plain map.
type Getter interface {
	Get(key string) (any, bool)
}

// lookup reads key from params. Missing keys, nil values, unsupported inputs
// and panics raised by the input all report absent.
func lookup(params any, key string) (value any, ok bool) {
	defer func() {
		if recover() != nil {
			value, ok = nil, false
		}
	}()

	switch p := params.(type) {
	case nil:
		return nil, false
	case Params:
		value, ok = p[key]
	case Record:
		value, ok = p[key]
	case map[string]any:
		value, ok = p[key]
	case *Alarm:
		value, ok = p.ToRecord()[key]
	case Alarm:
		value, ok = p.ToRecord()[key]
	case Getter:
		value, ok = p.Get(key)
	default:
		return nil, false
	}

	if !ok || value == nil {
		return nil, false
	}

	return value, true
}

func stringField(params any, key string, fallback func() string) string {
	if v, ok := lookup(params, key); ok {
		if s, err := cast.ToStringE(v); err == nil {
			return s
		}
	}

	return fallback()
}

func boolField(params any, key string, fallback bool) bool {
	if v, ok := lookup(params, key); ok {
		if b, err := cast.ToBoolE(v); err == nil {
			return b
		}
	}

	return fallback
}

func intField(params any, key string, fallback int) int {
	if v, ok := lookup(params, key); ok {
		if n, err := cast.ToIntE(v); err == nil {
			return n
		}
	}

	return fallback
}

func daysField(params any, key string, fallback []int) []int {
	if v, ok := lookup(params, key); ok {
		if days, err := cast.ToIntSliceE(v); err == nil {
			return slices.Clone(days)
		}
	}

	return fallback
}
