package convert

// ABOUTME: Built-in converters for primitives, durations, timestamps and JSON composites
// ABOUTME: Adapted text-to-value coercions with exact target typing via reflect.Convert

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// StringConverter handles textual targets. The raw text is the value.
type StringConverter struct{}

func (c *StringConverter) Name() string  { return "StringConverter" }
func (c *StringConverter) Priority() int { return 100 }

func (c *StringConverter) CanConvert(target reflect.Type) bool {
	return target.Kind() == reflect.String
}

func (c *StringConverter) Convert(text string, target reflect.Type) (any, error) {
	return reflect.ValueOf(text).Convert(target).Interface(), nil
}

// IntConverter handles signed and unsigned integer targets.
type IntConverter struct{}

func (c *IntConverter) Name() string  { return "IntConverter" }
func (c *IntConverter) Priority() int { return 90 }

func (c *IntConverter) CanConvert(target reflect.Type) bool {
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func (c *IntConverter) Convert(text string, target reflect.Type) (any, error) {
	switch target.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 10, target.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(u).Convert(target).Interface(), nil
	default:
		i, err := strconv.ParseInt(text, 10, target.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(i).Convert(target).Interface(), nil
	}
}

// FloatConverter handles floating-point targets.
type FloatConverter struct{}

func (c *FloatConverter) Name() string  { return "FloatConverter" }
func (c *FloatConverter) Priority() int { return 90 }

func (c *FloatConverter) CanConvert(target reflect.Type) bool {
	return target.Kind() == reflect.Float32 || target.Kind() == reflect.Float64
}

func (c *FloatConverter) Convert(text string, target reflect.Type) (any, error) {
	f, err := strconv.ParseFloat(text, target.Bits())
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(f).Convert(target).Interface(), nil
}

// BoolConverter handles boolean targets.
type BoolConverter struct{}

func (c *BoolConverter) Name() string  { return "BoolConverter" }
func (c *BoolConverter) Priority() int { return 90 }

func (c *BoolConverter) CanConvert(target reflect.Type) bool {
	return target.Kind() == reflect.Bool
}

func (c *BoolConverter) Convert(text string, target reflect.Type) (any, error) {
	b, err := strconv.ParseBool(text)
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(b).Convert(target).Interface(), nil
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

// TimeConverter handles time.Duration ("30s") and time.Time (RFC 3339).
// It outranks the numeric converters so durations are not parsed as bare
// integers.
type TimeConverter struct{}

func (c *TimeConverter) Name() string  { return "TimeConverter" }
func (c *TimeConverter) Priority() int { return 95 }

func (c *TimeConverter) CanConvert(target reflect.Type) bool {
	return target == durationType || target == timeType
}

func (c *TimeConverter) Convert(text string, target reflect.Type) (any, error) {
	if target == durationType {
		d, err := time.ParseDuration(text)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// JSONConverter is the low-priority fallback for composite targets:
// slices, maps, structs and empty interfaces deserialize from JSON text.
type JSONConverter struct{}

func (c *JSONConverter) Name() string  { return "JSONConverter" }
func (c *JSONConverter) Priority() int { return 10 }

func (c *JSONConverter) CanConvert(target reflect.Type) bool {
	switch target.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return true
	case reflect.Interface:
		return target.NumMethod() == 0
	}
	return false
}

func (c *JSONConverter) Convert(text string, target reflect.Type) (any, error) {
	pv := reflect.New(target)
	if err := json.Unmarshal([]byte(text), pv.Interface()); err != nil {
		return nil, fmt.Errorf("parsing JSON for %v: %w", target, err)
	}
	return pv.Elem().Interface(), nil
}
