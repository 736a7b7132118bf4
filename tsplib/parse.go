// Package tsplib - line-oriented parser.
//
// Design:
//   - One pass over the input with bufio.Scanner; no whole-file buffering.
//   - Header lines are "KEY : value" or "KEY: value"; unknown keys are ignored.
//   - Coordinates are read from NODE_COORD_SECTION until EOF or the next
//     "*_SECTION" keyword.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gatsp/city"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Parse reads one TSPLIB instance from r.
//
// Errors: ErrUnsupportedEdgeWeight, ErrNoCoordinates, ErrDimensionMismatch,
// or the underlying read error.
func Parse(r io.Reader) (*Instance, error) {
	var (
		inst     = &Instance{}
		sc       = bufio.NewScanner(r)
		inCoords bool
		line     string
		x, y     float64
		ok       bool
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == endOfFile {
			break
		}
		if strings.HasSuffix(line, sectionSuffix) {
			inCoords = line == sectionCoords
			continue
		}
		if inCoords {
			if x, y, ok = parseCoord(line); ok {
				inst.Cities = append(inst.Cities, city.New(x, y, city.DefaultLabel(len(inst.Cities))))
			}
			continue
		}
		if err := inst.setHeader(line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}

	if len(inst.Cities) == 0 {
		return nil, ErrNoCoordinates
	}
	if inst.Dimension > 0 && inst.Dimension != len(inst.Cities) {
		return nil, fmt.Errorf("%w: DIMENSION %d, %d coordinates", ErrDimensionMismatch, inst.Dimension, len(inst.Cities))
	}

	return inst, nil
}

// ReadFile opens path and parses it.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

// setHeader records a "KEY : value" line. Lines without a colon are ignored.
func (inst *Instance) setHeader(line string) error {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return nil
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case keyName:
		inst.Name = value
	case keyComment:
		inst.Comment = value
	case keyType:
		inst.Type = value
	case keyDimension:
		d, err := strconv.Atoi(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: DIMENSION %q", ErrDimensionMismatch, value)
		}
		inst.Dimension = d
	case keyEdgeWeightType:
		v := strings.ToUpper(value)
		if _, ok := supportedEdgeWeights[v]; !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedEdgeWeight, value)
		}
		inst.EdgeWeightType = v
	}
	return nil
}

// parseCoord reads "<id> <x> <y>" and reports whether the line was usable.
func parseCoord(line string) (float64, float64, bool) {
	var fields = strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(fields[1], 64)
	y, errY := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}
