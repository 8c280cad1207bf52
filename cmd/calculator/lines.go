package main

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"unicode/utf8"
)

// newLineScanner creates a scanner over the lines of in which never fails on
// long lines. A line too long to be an expression of at most maxLength runes
// is cut short and the rest of it is dropped, so that compiling it still
// reports the length limit. A maxLength of zero means lines are unbounded.
func newLineScanner(in io.Reader, maxLength int) *bufio.Scanner {
	scan := bufio.NewScanner(in)
	if maxLength <= 0 {
		scan.Buffer(make([]byte, 0, 4096), math.MaxInt)
		return scan
	}
	// Any cut line of this many bytes has more than maxLength runes.
	limit := maxLength*utf8.UTFMax + 1
	scan.Buffer(make([]byte, 0, 4096), limit+2)
	scan.Split(cutLines(limit))
	return scan
}

// cutLines is bufio.ScanLines with lines longer than limit bytes truncated.
func cutLines(limit int) bufio.SplitFunc {
	skipping := false
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if skipping {
			if i := bytes.IndexByte(data, '\n'); i >= 0 {
				skipping = false
				return i + 1, nil, nil
			}
			return len(data), nil, nil
		}
		if len(data) > limit && bytes.IndexByte(data[:limit+1], '\n') < 0 {
			skipping = true
			return limit, data[:limit], nil
		}
		return bufio.ScanLines(data, atEOF)
	}
}
