// Package tsplib reads symmetric TSP instances in the TSPLIB text format.
//
// Only node coordinates are consumed: the header keys NAME, COMMENT, TYPE,
// DIMENSION and EDGE_WEIGHT_TYPE are recorded, then every NODE_COORD_SECTION
// line "<id> <x> <y>" becomes a city.City labeled "City-<k>" in file order.
// Coordinates are always treated as points in the plane; distances are
// computed by the city package, not by the TSPLIB rounding rules.
//
// Malformed coordinate lines are skipped rather than rejected, so slightly
// damaged files from the public library still load.
package tsplib
