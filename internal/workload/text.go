package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	iou "github.com/akmistry/go-util/io"

	"github.com/akmistry/lapper"
)

const (
	writeBufferSize = 64 * 1024
)

var (
	ErrMalformedLine = errors.New("workload: malformed line")
)

// Load reads intervals written one per line as "start stop [val]", separated
// by whitespace. Blank lines and lines starting with '#' are skipped. A
// missing val is 0.
func Load(r io.Reader) ([]lapper.Interval[int], error) {
	var ivs []lapper.Interval[int]
	s := bufio.NewScanner(r)
	lineNum := 0
	for s.Scan() {
		lineNum++
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		iv, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("workload.Load: line %d: %w", lineNum, err)
		}
		ivs = append(ivs, iv)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("workload.Load: %w", err)
	}
	return ivs, nil
}

func parseLine(line string) (iv lapper.Interval[int], err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return iv, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	vals := make([]int, 3)
	for i, f := range fields {
		vals[i], err = strconv.Atoi(f)
		if err != nil {
			return iv, fmt.Errorf("%w: %q: %w", ErrMalformedLine, line, err)
		}
	}
	iv.Start, iv.Stop, iv.Val = vals[0], vals[1], vals[2]
	return iv, nil
}

// Dump writes intervals in the format read by Load.
func Dump(w io.Writer, ivs []lapper.Interval[int]) error {
	bw := bufio.NewWriterSize(w, writeBufferSize)

	var numBuf [64]byte
	tab := []byte{'\t'}
	newline := []byte{'\n'}
	for _, iv := range ivs {
		b := strconv.AppendInt(numBuf[:0], int64(iv.Start), 10)
		startEnd := len(b)
		b = strconv.AppendInt(b, int64(iv.Stop), 10)
		stopEnd := len(b)
		b = strconv.AppendInt(b, int64(iv.Val), 10)

		_, err := iou.WriteMany(bw, b[:startEnd], tab, b[startEnd:stopEnd], tab, b[stopEnd:], newline)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
