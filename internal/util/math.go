package util

// SampleRange returns count evenly spaced integers from start to stop (inclusive).
// start may be larger than stop.
func SampleRange(start int, stop int, count int) []int {
	if count <= 1 || start == stop {
		return []int{start}
	}
	result := make([]int, 0, count)
	span := float64(stop - start)
	last := start - 1
	if stop < start {
		last = start + 1
	}
	for i := 0; i < count; i++ {
		value := start + int(span*float64(i)/float64(count-1))
		if value == last {
			continue
		}
		result = append(result, value)
		last = value
	}
	return result
}
