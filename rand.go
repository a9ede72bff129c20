// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import "math/rand"

// ListOfRandomInts returns count pseudo-random integers in [0, maxInclusive].
// The sequence depends only on the seed, so a sketch reproduces exactly
// across runs. A negative maxInclusive is treated as 0, a non-positive count
// yields an empty slice.
func ListOfRandomInts(count, maxInclusive int, seed int64) []int {
	if count <= 0 {
		return nil
	}
	if maxInclusive < 0 {
		maxInclusive = 0
	}
	r := rand.New(rand.NewSource(seed))
	out := make([]int, count)
	for i := range out {
		out[i] = r.Intn(maxInclusive + 1)
	}
	return out
}
