package util

import (
	"fmt"
)

var units = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB"}

// Bytes formats as a human readable size, with three significant digits.
type Bytes int64

func (b Bytes) String() string {
	if b < 0 {
		return "-" + Bytes(-b).String()
	}
	v := float64(b)
	unit := 0
	for v >= 1024 && unit < len(units)-1 {
		v /= 1024
		unit++
	}

	prec := 0
	switch {
	case unit == 0:
	case v < 10:
		prec = 2
	case v < 100:
		prec = 1
	}
	return fmt.Sprintf("%.*f %s", prec, v, units[unit])
}
