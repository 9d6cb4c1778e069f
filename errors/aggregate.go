package errors

import (
	"strings"
)

// Aggregate of errors into one.
type aggregate []error

// Error returns the string representation of the aggregated errors.
func (a aggregate) Error() string {
	b := strings.Builder{}
	for _, err := range a {
		b.WriteString(err.Error())
		b.WriteRune('\n')
	}
	return b.String()
}

// Aggregate errors into one error. Nil errors are skipped and nil is
// returned when no errors remain.
func Aggregate(ee ...error) error {
	agr := make(aggregate, 0, len(ee))
	for _, err := range ee {
		if err == nil {
			continue
		}
		agr = append(agr, err)
	}
	if len(agr) == 0 {
		return nil
	}
	return agr
}
