package matio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/coclust/coclust/internal/coclust"
)

// LoadMatrix reads the dense binary matrix format: an int64 numRows,
// an int64 numCols, both little-endian, followed by numRows*numCols
// little-endian float32 values in row-major (C-contiguous) order.
func LoadMatrix(path string) (*coclust.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matio: LoadMatrix: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var numRows, numCols int64
	if err := binary.Read(r, binary.LittleEndian, &numRows); err != nil {
		return nil, wrapTruncated("matio: LoadMatrix: header", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &numCols); err != nil {
		return nil, wrapTruncated("matio: LoadMatrix: header", err)
	}
	if numRows <= 0 || numCols <= 0 {
		return nil, fmt.Errorf("matio: LoadMatrix: %w: got %dx%d", coclust.ErrInvalidDimensions, numRows, numCols)
	}

	data := make([]float32, numRows*numCols)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, wrapTruncated("matio: LoadMatrix: body", err)
	}

	return coclust.NewMatrixFromData(int(numRows), int(numCols), data)
}

// LoadLabels parses the three-line whitespace-separated text format:
// "numRows numCols", then "R C", then numRows+numCols integers giving
// the initial row labels followed by the initial column labels. Line
// boundaries are not significant — only whitespace-separated token order.
func LoadLabels(path string) (numRows, numCols, r, c int, rl, cl coclust.Labels, err error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		return 0, 0, 0, 0, nil, nil, fmt.Errorf("matio: LoadLabels: %w", openErr)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)

	nextInt := func() (int, error) {
		if !scanner.Scan() {
			if scanErr := scanner.Err(); scanErr != nil {
				return 0, fmt.Errorf("matio: LoadLabels: %w", scanErr)
			}

			return 0, fmt.Errorf("matio: LoadLabels: %w", ErrTruncatedFile)
		}

		v, convErr := strconv.Atoi(scanner.Text())
		if convErr != nil {
			return 0, fmt.Errorf("matio: LoadLabels: %w: %v", ErrMalformedLabels, convErr)
		}

		return v, nil
	}

	if numRows, err = nextInt(); err != nil {
		return 0, 0, 0, 0, nil, nil, err
	}
	if numCols, err = nextInt(); err != nil {
		return 0, 0, 0, 0, nil, nil, err
	}
	if r, err = nextInt(); err != nil {
		return 0, 0, 0, 0, nil, nil, err
	}
	if c, err = nextInt(); err != nil {
		return 0, 0, 0, 0, nil, nil, err
	}

	rl = make(coclust.Labels, numRows)
	for i := range rl {
		v, ierr := nextInt()
		if ierr != nil {
			return 0, 0, 0, 0, nil, nil, ierr
		}
		rl[i] = int32(v)
	}

	cl = make(coclust.Labels, numCols)
	for j := range cl {
		v, ierr := nextInt()
		if ierr != nil {
			return 0, 0, 0, 0, nil, nil, ierr
		}
		cl[j] = int32(v)
	}

	return numRows, numCols, r, c, rl, cl, nil
}

// WriteLabels writes numRows row labels followed by numCols column
// labels, one integer per line, with no header. The caller is
// responsible for only invoking this on rank 0.
func WriteLabels(path string, rl, cl coclust.Labels) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matio: WriteLabels: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range rl {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("matio: WriteLabels: %w", err)
		}
	}
	for _, v := range cl {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("matio: WriteLabels: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("matio: WriteLabels: %w", err)
	}

	return nil
}

func wrapTruncated(context string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%s: %w", context, ErrTruncatedFile)
	}

	return fmt.Errorf("%s: %w", context, err)
}
