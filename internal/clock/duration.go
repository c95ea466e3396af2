package clock

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidCountdown is returned for countdown arguments that do not form
// a positive duration.
var ErrInvalidCountdown = errors.New("invalid countdown duration")

// ParseCountdown accepts the flexible countdown argument forms:
//
//	"90"        90 seconds
//	"1 10"      1 minute 10 seconds
//	"1 0 1"     1 hour 0 minutes 1 second
//	"2:15:00"   2 hours 15 minutes
//
// Separators may be spaces, colons or commas, mixed freely.
func ParseCountdown(args []string) (time.Duration, error) {
	fields := strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
		return r == ' ' || r == ':' || r == ','
	})
	if len(fields) == 0 || len(fields) > 3 {
		return 0, ErrInvalidCountdown
	}

	parts := make([]int, 0, 3)
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return 0, ErrInvalidCountdown
		}
		parts = append(parts, v)
	}

	var d time.Duration
	switch len(parts) {
	case 1:
		d = time.Duration(parts[0]) * time.Second
	case 2:
		d = time.Duration(parts[0])*time.Minute + time.Duration(parts[1])*time.Second
	case 3:
		d = time.Duration(parts[0])*time.Hour +
			time.Duration(parts[1])*time.Minute +
			time.Duration(parts[2])*time.Second
	}
	if d <= 0 {
		return 0, ErrInvalidCountdown
	}
	return d, nil
}

// formatHMS formats a duration as HH:MM:SS, rounding down to whole seconds.
func formatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := total / 60 % 60
	s := total % 60
	return pad2(h) + ":" + pad2(m) + ":" + pad2(s)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
