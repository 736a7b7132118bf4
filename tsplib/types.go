// Package tsplib - types and sentinel errors.
package tsplib

import (
	"errors"

	"github.com/katalvlaran/gatsp/city"
)

var (
	// ErrNoCoordinates indicates that the input had no usable NODE_COORD_SECTION line.
	ErrNoCoordinates = errors.New("tsplib: no node coordinates")

	// ErrDimensionMismatch indicates that DIMENSION disagrees with the number of coordinates read.
	ErrDimensionMismatch = errors.New("tsplib: dimension mismatch")

	// ErrUnsupportedEdgeWeight indicates an EDGE_WEIGHT_TYPE that is not coordinate based.
	ErrUnsupportedEdgeWeight = errors.New("tsplib: unsupported edge weight type")
)

// Instance is a parsed TSPLIB file.
type Instance struct {
	Name           string
	Comment        string
	Type           string
	Dimension      int // 0 when the header omits it
	EdgeWeightType string
	Cities         []city.City
}

// Section and header keywords.
const (
	keyName           = "NAME"
	keyComment        = "COMMENT"
	keyType           = "TYPE"
	keyDimension      = "DIMENSION"
	keyEdgeWeightType = "EDGE_WEIGHT_TYPE"

	sectionCoords = "NODE_COORD_SECTION"
	sectionSuffix = "_SECTION"
	endOfFile     = "EOF"
)

// supportedEdgeWeights lists the coordinate-based types; empty means unspecified.
var supportedEdgeWeights = map[string]struct{}{
	"":        {},
	"EUC_2D":  {},
	"ATT":     {},
	"GEO":     {},
	"CEIL_2D": {},
}
