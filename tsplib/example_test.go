package tsplib_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gatsp/tsplib"
)

func ExampleParse() {
	src := strings.Join([]string{
		"NAME : tri",
		"TYPE : TSP",
		"DIMENSION : 3",
		"EDGE_WEIGHT_TYPE : EUC_2D",
		"NODE_COORD_SECTION",
		"1 0 0",
		"2 3 0",
		"3 3 4",
		"EOF",
	}, "\n")

	inst, err := tsplib.Parse(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(inst.Name, len(inst.Cities))
	for _, c := range inst.Cities {
		fmt.Println(c)
	}
	// Output:
	// tri 3
	// City-1(0,0)
	// City-2(3,0)
	// City-3(3,4)
}
