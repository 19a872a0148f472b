// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "math"

// chooseMode runs the ISO/IEC 16022 Annex O look-ahead cost model
// starting at input[pos:], returning the mode that packs the upcoming
// bytes most efficiently given the encoder is currently in mode
// current. It never returns Base256 as a switch target from within an
// active C40/Text/X12/EDIFACT run except through the same rules that
// apply from ASCII, matching the informative algorithm's fixed point
// at end of input.
func chooseMode(input []byte, pos int, current Mode) Mode {
	if pos >= len(input) {
		return current
	}

	var costs [6]float64
	if current == ModeAscii {
		costs = [6]float64{0, 1, 1, 1, 1, 1.25}
	} else {
		costs = [6]float64{1, 2, 2, 2, 2, 2.25}
		costs[current] = 0
	}

	processed := 0
	for {
		if pos+processed == len(input) {
			mins, counts := minimums(costs)
			minCount := minimumCount(mins)

			if counts[ModeAscii] == minOf(counts[:]) {
				return ModeAscii
			}
			if minCount == 1 {
				switch {
				case mins[ModeBase256]:
					return ModeBase256
				case mins[ModeEdifact]:
					return ModeEdifact
				case mins[ModeText]:
					return ModeText
				case mins[ModeX12]:
					return ModeX12
				}
			}
			return ModeC40
		}

		c := input[pos+processed]
		processed++

		switch {
		case isDigit(c):
			costs[ModeAscii] += 0.5
		case isExtendedASCII(c):
			costs[ModeAscii] = math.Ceil(costs[ModeAscii]) + 2.0
		default:
			costs[ModeAscii] = math.Ceil(costs[ModeAscii]) + 1.0
		}

		switch {
		case isNativeC40(c):
			costs[ModeC40] += 2.0 / 3.0
		case isExtendedASCII(c):
			costs[ModeC40] += 8.0 / 3.0
		default:
			costs[ModeC40] += 4.0 / 3.0
		}

		switch {
		case isNativeText(c):
			costs[ModeText] += 2.0 / 3.0
		case isExtendedASCII(c):
			costs[ModeText] += 8.0 / 3.0
		default:
			costs[ModeText] += 4.0 / 3.0
		}

		switch {
		case isNativeX12(c):
			costs[ModeX12] += 2.0 / 3.0
		case isExtendedASCII(c):
			costs[ModeX12] += 13.0 / 3.0
		default:
			costs[ModeX12] += 10.0 / 3.0
		}

		switch {
		case isNativeEdifact(c):
			costs[ModeEdifact] += 3.0 / 4.0
		case isExtendedASCII(c):
			costs[ModeEdifact] += 17.0 / 4.0
		default:
			costs[ModeEdifact] += 13.0 / 4.0
		}

		costs[ModeBase256] += 1.0

		if processed < 4 {
			continue
		}

		_, counts := minimums(costs)

		if counts[ModeAscii] < minExcept(counts, ModeAscii) {
			return ModeAscii
		}
		if counts[ModeBase256] < counts[ModeAscii] ||
			counts[ModeBase256]+1 < minExcept(counts, ModeBase256, ModeAscii) {
			return ModeBase256
		}
		if counts[ModeEdifact]+1 < minExcept(counts, ModeEdifact, ModeBase256) {
			return ModeEdifact
		}
		if counts[ModeText]+1 < minExcept(counts, ModeText, ModeBase256, ModeEdifact) {
			return ModeText
		}
		if counts[ModeX12]+1 < minExcept(counts, ModeX12, ModeBase256, ModeEdifact, ModeText) {
			return ModeX12
		}
		if counts[ModeC40]+1 < minExcept(counts, ModeC40, ModeX12) {
			if counts[ModeC40] < counts[ModeX12] {
				return ModeC40
			}
			if counts[ModeC40] == counts[ModeX12] {
				return x12TieBreak(input, pos+processed+1)
			}
		}
	}
}

// x12TieBreak resolves a C40/X12 cost tie by scanning ahead for an X12
// terminator (CR, `*` or `>`) before the run of X12-native bytes ends;
// finding one favors X12, per ISO/IEC 16022 Annex O.
func x12TieBreak(input []byte, from int) Mode {
	for p := from; p < len(input); p++ {
		c := input[p]
		if c == 13 || c == '*' || c == '>' {
			return ModeX12
		}
		if !isNativeX12(c) {
			break
		}
	}
	return ModeC40
}

// minimums returns, for each mode, whether its rounded cost equals the
// smallest rounded cost across all modes, and the rounded costs
// themselves.
func minimums(costs [6]float64) (mins [6]bool, counts [6]int) {
	for i, c := range costs {
		counts[i] = int(math.Ceil(c))
	}
	min := counts[0]
	for _, v := range counts[1:] {
		if v < min {
			min = v
		}
	}
	for i, v := range counts {
		mins[i] = v == min
	}
	return mins, counts
}

func minimumCount(mins [6]bool) int {
	n := 0
	for _, v := range mins {
		if v {
			n++
		}
	}
	return n
}

func minOf(counts []int) int {
	min := counts[0]
	for _, v := range counts[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// minExcept returns the minimum of counts, excluding the named modes.
func minExcept(counts [6]int, exclude ...Mode) int {
	skip := func(m Mode) bool {
		for _, e := range exclude {
			if e == m {
				return true
			}
		}
		return false
	}
	min := math.MaxInt32
	for i, v := range counts {
		if skip(Mode(i)) {
			continue
		}
		if v < min {
			min = v
		}
	}
	return min
}
