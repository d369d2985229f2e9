package utils

// CreateRankList creates a slice of ranks based on position.
// The rank starts at 1 for the first item and increments for subsequent items.
// Counts beyond the uint16 range saturate at the largest rank.
func CreateRankList(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	ranks := make([]uint16, count)
	for i := range ranks {
		if i >= 65535 {
			ranks[i] = 65535
			continue
		}
		ranks[i] = uint16(i + 1)
	}
	return ranks
}
