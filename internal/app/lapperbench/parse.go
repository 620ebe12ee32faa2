package lapperbench

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	ErrInvalidCountString = errors.New("invalid count string")
	ErrInvalidSizeString  = errors.New("invalid size string")

	suffixPattern = regexp.MustCompile("^([1-9][0-9]*)([KMGTP])?$")

	countMultipliers = map[string]uint64{
		"K": 1000,
		"M": 1000 * 1000,
		"G": 1000 * 1000 * 1000,
	}
	sizeMultipliers = map[string]uint64{
		"K": 1 << 10,
		"M": 1 << 20,
		"G": 1 << 30,
		"T": 1 << 40,
		"P": 1 << 50,
	}
)

func parseSuffixed(str string, multipliers map[string]uint64, errInvalid error) (uint64, error) {
	// Special case "0" to simplify the regexp.
	if str == "0" {
		return 0, nil
	}

	parts := suffixPattern.FindStringSubmatch(str)
	if len(parts) < 2 {
		return 0, errInvalid
	}

	v, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, errInvalid
	}
	if len(parts) == 3 && parts[2] != "" {
		m, ok := multipliers[parts[2]]
		if !ok {
			return 0, errInvalid
		}
		if v > (1<<64-1)/m {
			return 0, errInvalid
		}
		v *= m
	}
	return v, nil
}

// ParseCount parses a decimal count with an optional K, M or G suffix, so
// "200K" is 200000.
func ParseCount(str string) (int, error) {
	v, err := parseSuffixed(str, countMultipliers, ErrInvalidCountString)
	if err != nil {
		return 0, err
	}
	if v > uint64(int(^uint(0)>>1)) {
		return 0, ErrInvalidCountString
	}
	return int(v), nil
}

// ParseSize parses a byte size with an optional binary K, M, G, T or P
// suffix, so "8G" is 8 * 2^30.
func ParseSize(str string) (uint64, error) {
	return parseSuffixed(str, sizeMultipliers, ErrInvalidSizeString)
}
