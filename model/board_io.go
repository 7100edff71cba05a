package model

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	cellAlive = '#'
	cellDead  = '-'
)

// appendText appends the board in the wire format: one line per row,
// '#' for alive and '-' for dead, each row newline-terminated. No header,
// the size is supplied externally.
func (b *Board) appendText(buf []byte) []byte {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[b.index(row, col)] {
				buf = append(buf, cellAlive)
			} else {
				buf = append(buf, cellDead)
			}
		}
		buf = append(buf, '\n')
	}
	return buf
}

// String renders the board in the same text as the board file.
func (b *Board) String() string {
	return string(b.appendText(nil))
}

// WriteTo writes the board in the wire format.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.appendText(nil))
	return int64(n), errors.Wrap(err, "[WriteTo]")
}

// ReadFrom replaces the board contents with a grid parsed from r. The
// input must hold exactly size rows of size cells each; any dimension or
// character mismatch fails before the board is touched.
func (b *Board) ReadFrom(r io.Reader) (int64, error) {
	var (
		read    int64
		cells   = make([]bool, b.size*b.size)
		scanner = bufio.NewScanner(r)
		row     = 0
	)

	for scanner.Scan() {
		line := scanner.Text()
		read += int64(len(line)) + 1

		if row >= b.size {
			return read, errors.Errorf("[ReadFrom] more than %d rows in input", b.size)
		}
		if len(line) != b.size {
			return read, errors.Errorf("[ReadFrom] row %d has %d cells, want %d", row, len(line), b.size)
		}

		for col := 0; col < b.size; col++ {
			switch line[col] {
			case cellAlive:
				cells[row*b.size+col] = true
			case cellDead:
				// zero value, already dead
			default:
				return read, errors.Errorf("[ReadFrom] invalid cell %q at (%d,%d)", line[col], row, col)
			}
		}
		row++
	}

	if err := scanner.Err(); err != nil {
		return read, errors.Wrap(err, "[ReadFrom] scan")
	}
	if row != b.size {
		return read, errors.Errorf("[ReadFrom] input has %d rows, want %d", row, b.size)
	}

	copy(b.cells, cells)
	return read, nil
}

// WriteFile persists the board to path, overwriting any previous contents.
func (b *Board) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to open file for writing: %+v", path)
	}

	if _, err = b.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "[WriteFile] failed to write file: %+v", path)
	}

	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to close file: %+v", path)
	}
	return nil
}

// LoadFile reads the board state from path.
func (b *Board) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to open file for reading: %+v", path)
	}
	defer f.Close()

	if _, err = b.ReadFrom(f); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	return nil
}
