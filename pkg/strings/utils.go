package strings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type SupportedValueParsingTypes interface {
	bool | int | uint | float64 | string | time.Time | time.Duration | uuid.UUID
}

func ParseTypedValue[T SupportedValueParsingTypes](value string) (T, error) {
	var result T
	var v any
	var err error
	switch any(result).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case int:
		v, err = strconv.Atoi(value)
	case uint:
		var u uint64
		u, err = strconv.ParseUint(value, 10, 0)
		v = uint(u)
	case float64:
		v, err = strconv.ParseFloat(value, 64)
	case string:
		v = value
	case time.Time:
		v, err = parseTime(value)
	case time.Duration:
		v, err = time.ParseDuration(value)
	case uuid.UUID:
		v, err = uuid.Parse(value)
	}
	if err != nil {
		return result, fmt.Errorf("convert %q to type %T: %w", value, result, err)
	}

	return v.(T), nil
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	unixTime, unixErr := strconv.ParseInt(value, 10, 64)
	if unixErr != nil || unixTime < 0 {
		return time.Time{}, err
	}

	return time.Unix(unixTime, 0), nil
}
