// Package util holds small formatting helpers shared by the command line tools.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Checksum returns the hex SHA256 of everything read from r and the number of bytes read.
func Checksum(r io.Reader) (string, int64, error) {
	hash := sha256.New()

	n, err := io.Copy(hash, r)
	if err != nil {
		return "", n, errors.Wrap(err, "failed to calculate checksum")
	}

	return hex.EncodeToString(hash.Sum(nil)), n, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration rounds to milliseconds below one second and to seconds above it.
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return duration.Round(time.Millisecond).String()
	}

	return duration.Round(time.Second).String()
}
