// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package workload

// pcgSource is the 64-bit permuted congruential generator PCG RXS M XS 64
// from
//
//	PCG: A Family of Simple Fast Space-Efficient Statistically Good
//	Algorithms for Random Number Generation
//	Melissa E. O'Neill, Harvey Mudd College
//	http://www.pcg-random.org/pdf/toms-oneill-pcg-family-v1.02.pdf
//
// Its whole state is one word, so a workload is reproduced exactly from its
// seed.
type pcgSource struct {
	state uint64
}

func (pcg *pcgSource) seed(seed uint64) {
	pcg.state = seed
}

const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
	permuter   = 12605985483714917081
)

func (pcg *pcgSource) uint64() uint64 {
	oldstate := pcg.state
	pcg.state = pcg.state*multiplier + increment
	word := ((oldstate >> ((oldstate >> 59) + 5)) ^ oldstate) * permuter
	return (word >> 43) ^ word
}

// below returns a value in [0, n). n must be positive.
func (pcg *pcgSource) below(n uint64) uint64 {
	// Reject the top partial range so every result is equally likely.
	limit := -n % n
	for {
		if v := pcg.uint64(); v >= limit {
			return v % n
		}
	}
}
