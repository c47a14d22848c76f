// Package scorefile appends saved scores to a plain text file, one decimal
// integer per line.
package scorefile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrNoPath is returned when no file name was given.
var ErrNoPath = errors.New("scorefile: no file name")

// Append writes score and a newline to the end of the file at path,
// creating the file if it does not exist.
func Append(path string, score int) (err error) {
	if path == "" {
		return ErrNoPath
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open score file %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close score file %q: %w", path, cerr)
		}
	}()

	if _, err := f.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		return fmt.Errorf("write score file %q: %w", path, err)
	}
	return nil
}
