package request

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// fieldError carries the message shown for a value that could not be
// decoded into one of the types below.
type fieldError string

func (e fieldError) Error() string        { return string(e) }
func (e fieldError) FieldMessage() string { return string(e) }

const (
	msgDurationFormat  = "Duration has wrong format. Use one of these formats instead: [DD] [HH:[MM:]]ss[.uuuuuu]."
	msgDurationTooLong = "Ensure this value is less than or equal to 24855 03:14:07."
	msgDateFormat      = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgInvalidNumber   = "A valid number is required."
)

// durationPattern accepts "[DD] [HH:[MM:]]ss[.uuuuuu]" and the "D days, HH:MM:SS"
// form produced when durations are printed.
var durationPattern = regexp.MustCompile(
	`^(?:(\d+) (?:days?, )?)?(?:(\d+):)??(?:(\d+):)?(\d+)(?:[.,](\d{1,6})\d{0,6})?$`,
)

// MaxDurationSeconds is the longest duration the INTEGER seconds column holds.
const MaxDurationSeconds = math.MaxInt32

// Duration is a non-negative length of time. JSON numbers are seconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fieldError(msgDurationFormat)
		}
		raw = n.String()
	}

	parsed, err := ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// ParseDuration reads durations such as "01:50:00", "110:00", "6600" or "1 02:00:00".
func ParseDuration(raw string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, fieldError(msgDurationFormat)
	}

	// the lazy hours group leaves "MM:ss" to minutes
	var parts [4]int64
	for i, group := range m[1:5] {
		n, err := atoi(group)
		if err != nil || n > MaxDurationSeconds {
			return 0, fieldError(msgDurationTooLong)
		}
		parts[i] = n
	}
	days, hours, minutes, seconds := parts[0], parts[1], parts[2], parts[3]

	var micros int64
	if m[5] != "" {
		micros, _ = atoi(m[5] + strings.Repeat("0", 6-len(m[5])))
	}

	// each part is bounded above, so this cannot overflow int64
	totalSeconds := days*86400 + hours*3600 + minutes*60 + seconds
	if totalSeconds > MaxDurationSeconds {
		return 0, fieldError(msgDurationTooLong)
	}

	return time.Duration(totalSeconds)*time.Second + time.Duration(micros)*time.Microsecond, nil
}

// atoi parses a matched digit group; the pattern guarantees digits only.
func atoi(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// Date is a calendar date written as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fieldError(msgDateFormat)
	}

	parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return fieldError(msgDateFormat)
	}
	d.Time = parsed
	return nil
}

// Amount limits, matching NUMERIC(12,2).
const (
	AmountMaxDigits     = 12
	AmountDecimalPlaces = 2
)

// Amount is a money value given as a JSON string or number.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fieldError(msgInvalidNumber)
		}
		raw = n.String()
	}

	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return fieldError(msgInvalidNumber)
	}
	if err := checkPrecision(value, AmountMaxDigits, AmountDecimalPlaces); err != nil {
		return err
	}

	a.Decimal = value
	return nil
}

// checkPrecision counts digits the way they were written, so "1.50" has
// two decimal places and three digits.
func checkPrecision(value decimal.Decimal, maxDigits, decimalPlaces int) error {
	coefficient := value.Coefficient()
	digits := len(coefficient.Abs(coefficient).String())
	exponent := int(value.Exponent())

	var total, decimals int
	switch {
	case exponent >= 0:
		total, decimals = digits+exponent, 0
	case -exponent > digits:
		total, decimals = -exponent, -exponent
	default:
		total, decimals = digits, -exponent
	}
	whole := total - decimals

	switch {
	case total > maxDigits:
		return fieldError(fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits))
	case decimals > decimalPlaces:
		return fieldError(fmt.Sprintf("Ensure that there are no more than %d decimal places.", decimalPlaces))
	case whole > maxDigits-decimalPlaces:
		return fieldError(fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-decimalPlaces))
	}
	return nil
}
