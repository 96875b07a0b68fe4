package tsp

import "unsafe"

// Coarse sizes for the memory estimate. Slice headers and the visited
// array are counted once; elements are counted by capacity, which is what
// the runtime actually holds.
const (
	sizeofBool  = int64(unsafe.Sizeof(false))
	sizeofInt   = int64(unsafe.Sizeof(int(0)))
	sizeofSlice = int64(unsafe.Sizeof([]int(nil)))

	// dfsFrameBytes approximates one recursion frame of dfsWalker.visit:
	// receiver, index argument, loop variables and return address.
	dfsFrameBytes = 6 * sizeofInt
)

// sliceBytes estimates the footprint of an []int with capacity c.
func sliceBytes(c int) int64 { return sizeofSlice + int64(c)*sizeofInt }

// visitedBytes estimates the footprint of an n-entry visited marker.
func visitedBytes(n int) int64 { return sizeofSlice + int64(n)*sizeofBool }
