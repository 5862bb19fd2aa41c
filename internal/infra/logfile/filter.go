// Package logfile reads the application log and stores generated extracts.
package logfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// FilterLines returns every line of r that contains match, in order.
// Lines have no length limit and a final line without a newline is still read.
func FilterLines(r io.Reader, match string) ([]string, error) {
	reader := bufio.NewReaderSize(r, 64*1024)

	lines := make([]string, 0)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to read log")
		}

		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			if strings.Contains(line, match) {
				lines = append(lines, line)
			}
		}

		if err != nil {
			return lines, nil
		}
	}
}
