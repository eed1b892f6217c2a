package hash

// SumHashAlgorithm - The internally used bucket selection algorithm. The hash value is the plain sum of all bytes
// in the key, with no seed and no mixing. Keys that are permutations of each other always collide.
type SumHashAlgorithm struct{}

// NewSumHashAlgorithm - Returns a pointer to a new SumHashAlgorithm instance
func NewSumHashAlgorithm() *SumHashAlgorithm {
	return &SumHashAlgorithm{}
}

// HashFunc1 - Given key it returns the sum of its bytes
func (S *SumHashAlgorithm) HashFunc1(key string) uint64 {
	var sum uint64
	for i := 0; i < len(key); i++ {
		sum += uint64(key[i])
	}
	return sum
}
