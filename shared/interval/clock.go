package interval

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	secondsPerDay  = 24 * 60 * 60
	clockLayout    = "15:04"
	clockLayoutSec = "15:04:05"
)

// Clock is a time of day stored as seconds since midnight.
type Clock int

func NewClock(hour, minute int) Clock {
	return Clock(hour*3600 + minute*60)
}

func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

func ParseClock(value string) (Clock, error) {
	value = strings.TrimSpace(value)

	for _, layout := range []string{clockLayoutSec, clockLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return ClockOf(t), nil
		}
	}

	return 0, errors.Errorf("invalid time of day %q", value)
}

func (c Clock) Hour() int {
	return int(c) / 3600
}

func (c Clock) Minute() int {
	return int(c) % 3600 / 60
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String()) //nolint:wrapcheck
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.Wrap(err, "clock must be a string")
	}

	parsed, err := ParseClock(value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// Scan reads postgres TIME values, which lib/pq delivers as text.
func (c *Clock) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return c.scanString(string(value))
	case string:
		return c.scanString(value)
	case time.Time:
		*c = ClockOf(value)

		return nil
	default:
		return errors.Errorf("cannot scan %T into Clock", src)
	}
}

func (c *Clock) scanString(value string) error {
	// drop fractional seconds
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		value = value[:idx]
	}

	parsed, err := ParseClock(value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

func (c Clock) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), int(c)%60), nil
}

// InWindow reports whether moment falls within [from, to]. A window whose from is after to wraps
// past midnight. A nil bound leaves that side open.
func InWindow(moment Clock, from, to *Clock) bool {
	switch {
	case from == nil && to == nil:
		return true
	case from == nil:
		return moment <= *to
	case to == nil:
		return moment >= *from
	case *from <= *to:
		return moment >= *from && moment <= *to
	default:
		return moment >= *from || moment <= *to
	}
}

// Valid reports whether c is inside a single day.
func (c Clock) Valid() bool {
	return c >= 0 && c < secondsPerDay
}
