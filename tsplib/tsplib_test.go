package tsplib_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/tsplib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_Square(t *testing.T) {
	inst, err := tsplib.ReadFile(filepath.Join("testdata", "square4.tsp"))
	require.NoError(t, err)

	assert.Equal(t, "square4", inst.Name)
	assert.Equal(t, "Corners of a 10x10 square", inst.Comment)
	assert.Equal(t, "TSP", inst.Type)
	assert.Equal(t, 4, inst.Dimension)
	assert.Equal(t, "EUC_2D", inst.EdgeWeightType)
	assert.Equal(t, []city.City{
		city.New(0, 0, "City-1"),
		city.New(0, 10, "City-2"),
		city.New(10, 10, "City-3"),
		city.New(10, 0, "City-4"),
	}, inst.Cities)
}

func TestReadFile_Burma14(t *testing.T) {
	inst, err := tsplib.ReadFile(filepath.Join("testdata", "burma14.tsp"))
	require.NoError(t, err)
	require.Len(t, inst.Cities, 14)
	assert.Equal(t, "GEO", inst.EdgeWeightType)
	assert.Equal(t, city.New(16.47, 96.10, "City-1"), inst.Cities[0])
	assert.Equal(t, city.New(20.09, 94.55, "City-14"), inst.Cities[13])
	require.NoError(t, city.Validate(inst.Cities))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := tsplib.ReadFile(filepath.Join("testdata", "absent.tsp"))
	require.Error(t, err)
}

// TestParse_SkipsMalformedLines keeps numbering dense over the usable lines.
func TestParse_SkipsMalformedLines(t *testing.T) {
	src := strings.Join([]string{
		"NAME: damaged",
		"NODE_COORD_SECTION",
		"1 1.5 2.5",
		"2 x 3",
		"3 4",
		"",
		"4 1e1 -2E0",
		"EOF",
		"5 99 99",
	}, "\n")
	inst, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []city.City{
		city.New(1.5, 2.5, "City-1"),
		city.New(10, -2, "City-2"),
	}, inst.Cities)
}

// TestParse_StopsAtNextSection ignores data after another *_SECTION keyword.
func TestParse_StopsAtNextSection(t *testing.T) {
	src := "NODE_COORD_SECTION\n1 0 0\n2 3 4\n3 6 8\nDISPLAY_DATA_SECTION\n1 7 7\nEOF\n"
	inst, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, inst.Cities, 3)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", tsplib.ErrNoCoordinates},
		{"header only", "NAME: x\nDIMENSION: 3\nEOF\n", tsplib.ErrNoCoordinates},
		{"explicit weights", "EDGE_WEIGHT_TYPE: EXPLICIT\nNODE_COORD_SECTION\n1 0 0\n", tsplib.ErrUnsupportedEdgeWeight},
		{"dimension disagrees", "DIMENSION: 5\nNODE_COORD_SECTION\n1 0 0\n2 1 1\n3 2 2\nEOF\n", tsplib.ErrDimensionMismatch},
		{"dimension not a number", "DIMENSION: many\nNODE_COORD_SECTION\n1 0 0\n", tsplib.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_HeaderCaseAndSpacing(t *testing.T) {
	src := "name:   spaced  \nedge_weight_type : ceil_2d\nNODE_COORD_SECTION\n1 0 0\n2 0 1\n3 1 1\n"
	inst, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "spaced", inst.Name)
	assert.Equal(t, "CEIL_2D", inst.EdgeWeightType)
	assert.Zero(t, inst.Dimension)
}
