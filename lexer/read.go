package lexer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/regraph/alloc"
	"github.com/katalvlaran/regraph/container"
)

// ReadLines splits r into lines. A trailing '\r' is dropped from each line
// and every line shares one byte pool.
func ReadLines(r io.Reader) ([]*Line, error) {
	pool := alloc.New[byte]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), pool.MaxSize())

	var lines []*Line
	for sc.Scan() {
		l, err := NewLine(bytes.TrimSuffix(sc.Bytes(), []byte{'\r'}), container.WithPool(pool))
		if err != nil {
			return nil, fmt.Errorf("lexer: line %d: %w", len(lines)+1, err)
		}
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexer: read: %w", err)
	}

	return lines, nil
}

// ReadFile reads the named file with ReadLines.
func ReadFile(path string) ([]*Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexer: %w", err)
	}
	defer f.Close()

	return ReadLines(f)
}
