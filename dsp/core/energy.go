package core

import "math"

// RMS returns the root-mean-square of data. Returns 0 for empty input.
//
// Accumulation happens in the element type, so float32 inputs accumulate in
// float32; callers needing more headroom should supply float64 data.
func RMS[F Float](data []F) F {
	if len(data) == 0 {
		return 0
	}

	var sumSq F
	for _, x := range data {
		sumSq += x * x
	}

	return F(math.Sqrt(float64(sumSq / F(len(data)))))
}

// RMSChannels returns the combined RMS across multiple independent channels,
// e.g. a single level for multichannel audio. For stereo:
//
//	rms = sqrt((ms_l + ms_r) / 2)
//
// where ms is the per-channel mean square. The per-channel means are averaged
// first and a single square root is taken last; this is not equivalent to
// averaging per-channel RMS values. An empty channel contributes 0 to the
// average. Returns 0 for an empty outer slice.
func RMSChannels[F Float](channels [][]F) F {
	if len(channels) == 0 {
		return 0
	}

	var sum F
	for _, channel := range channels {
		sum += meanSquare(channel)
	}

	return F(math.Sqrt(float64(sum / F(len(channels)))))
}

func meanSquare[F Float](data []F) F {
	if len(data) == 0 {
		return 0
	}

	var sumSq F
	for _, x := range data {
		sumSq += x * x
	}

	return sumSq / F(len(data))
}

// Peak returns the maximum absolute value in data. Returns 0 for empty input.
func Peak[F Float](data []F) F {
	var peak F
	for _, x := range data {
		if x < 0 {
			x = -x
		}
		if x > peak {
			peak = x
		}
	}

	return peak
}
