package lapperbench

import (
	"testing"
)

const (
	kilobyte = 1024
	megabyte = 1024 * kilobyte
	gigabyte = 1024 * megabyte
	terabyte = 1024 * gigabyte
	petabyte = 1024 * terabyte
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		str    string
		expInt int
		expErr bool
	}{
		{"0", 0, false},
		{"1", 1, false},
		{"200000", 200000, false},
		{"200K", 200000, false},
		{"3M", 3000000, false},
		{"2G", 2000000000, false},
		{"1T", 0, true},
		{"12a3", 0, true},
		{"01", 0, true},
		{"0K", 0, true},
		{"1 K", 0, true},
		{"1k", 0, true},
		{"-5", 0, true},
		{"", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tc := range tests {
		i, err := ParseCount(tc.str)
		if i != tc.expInt {
			t.Errorf("ParseCount(%s) %d != %d", tc.str, i, tc.expInt)
		}
		if tc.expErr {
			if err == nil {
				t.Errorf("ParseCount(%s) unexpected nil error", tc.str)
			}
		} else {
			if err != nil {
				t.Errorf("ParseCount(%s) unexpected error %v", tc.str, err)
			}
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		str    string
		expInt uint64
		expErr bool
	}{
		{"0", 0, false},
		{"123456", 123456, false},
		{"4K", 4 * kilobyte, false},
		{"12M", 12 * megabyte, false},
		{"8G", 8 * gigabyte, false},
		{"345T", 345 * terabyte, false},
		{"3P", 3 * petabyte, false},
		{"20000P", 0, true},
		{"1Gb", 0, true},
		{"1E", 0, true},
		{" 1G", 0, true},
	}
	for _, tc := range tests {
		i, err := ParseSize(tc.str)
		if i != tc.expInt {
			t.Errorf("ParseSize(%s) %d != %d", tc.str, i, tc.expInt)
		}
		if tc.expErr {
			if err == nil {
				t.Errorf("ParseSize(%s) unexpected nil error", tc.str)
			}
		} else {
			if err != nil {
				t.Errorf("ParseSize(%s) unexpected error %v", tc.str, err)
			}
		}
	}
}
