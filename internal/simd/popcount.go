package simd

// popcountTable[i] is the number of set bits in i. It sizes the output growth
// of a lane group in one step.
var popcountTable [256]uint8

func init() {
	for i := range popcountTable {
		popcountTable[i] = countOnes(uint8(i))
	}
}

func countOnes(n uint8) uint8 {
	var count uint8
	for n != 0 {
		count += n & 1
		n >>= 1
	}
	return count
}

// Popcount returns the number of set bits in mask.
func Popcount(mask uint8) int {
	return int(popcountTable[mask])
}

// Popcount16 returns the number of set bits in a 16-lane mask.
func Popcount16(mask uint16) int {
	return int(popcountTable[mask&0xFF]) + int(popcountTable[mask>>8])
}
