package main

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineScanner(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want []string
	}{
		{"short", "1+2\r\n3\n\n4", 10, []string{"1+2", "3", "", "4"}},
		{"cut", "1234567\nab\n", 1, []string{"12345", "ab"}},
		{"exact", "12345\nab", 1, []string{"12345", "ab"}},
		{"cutlast", "123456789", 1, []string{"12345"}},
		{"unlimited", strings.Repeat("7", 10000) + "\nx\n", 0, []string{strings.Repeat("7", 10000), "x"}},
	}
	readers := map[string]func(string) io.Reader{
		"whole":   func(s string) io.Reader { return strings.NewReader(s) },
		"onebyte": func(s string) io.Reader { return iotest.OneByteReader(strings.NewReader(s)) },
	}
	for _, c := range cases {
		for rn, r := range readers {
			t.Run(c.name+"/"+rn, func(t *testing.T) {
				scan := newLineScanner(r(c.in), c.max)
				var got []string
				for scan.Scan() {
					got = append(got, scan.Text())
				}
				require.NoError(t, scan.Err())
				assert.Equal(t, c.want, got)
			})
		}
	}
}

func TestReadLinesSkipsBlank(t *testing.T) {
	got, err := readLines(strings.NewReader("1\n\n  \n2\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got)
}
