package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/viewkit/pkg/datefmt"
)

// DefaultTimePattern is the datefmt display pattern used for time.Time fields
// without an explicit `pattern` tag.
const DefaultTimePattern = "YYYY-MM-DD"

var timeType = reflect.TypeOf(time.Time{})

// bindToStruct binds values to a struct using reflection. tagName selects the
// struct tag ("query", "form"); bindErr is the sentinel wrapped into binding
// failures.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		paramName, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		fieldValues, exists := values[paramName]
		if !exists || len(fieldValues) == 0 {
			// No value provided, leave as zero value.
			continue
		}

		pattern := fieldType.Tag.Get("pattern")
		if pattern == "" {
			pattern = DefaultTimePattern
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues, pattern); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, fieldType.Name, err)
		}
	}

	return nil
}

// parseFieldTag returns the parameter name for a field and whether to skip it.
// An absent tag falls back to the lowercased field name; "-" skips.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	// Drop tag options such as ",omitempty".
	tagParts := strings.Split(tag, ",")
	return tagParts[0], false
}

// setFieldValue sets one field from its string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string, pattern string) error {
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values, pattern)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values, pattern)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	if fieldType == timeType {
		t, err := datefmt.Parse(pattern, value)
		if err != nil {
			return fmt.Errorf("invalid date value %q for pattern %q", value, pattern)
		}
		field.Set(reflect.ValueOf(t))
		return nil
	}

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Checkboxes and toggles send friendlier spellings.
			switch strings.ToLower(value) {
			case "on", "yes", "1":
				b = true
			case "off", "no", "0", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// setSliceValue sets slice fields, accepting both repeated parameters and
// comma-separated values.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string, pattern string) error {
	elemType := fieldType.Elem()

	var allValues []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			allValues = append(allValues, strings.Split(v, ",")...)
		} else {
			allValues = append(allValues, v)
		}
	}

	slice := reflect.MakeSlice(fieldType, len(allValues), len(allValues))

	for i, value := range allValues {
		elem := slice.Index(i)
		if err := setFieldValue(elem, elemType, []string{strings.TrimSpace(value)}, pattern); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}
