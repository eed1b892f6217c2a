//go:build unit || stress

package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/internal/chain"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// budgetChain - Chain that fails appends once a shared budget of appends is spent
type budgetChain struct {
	*chain.List
	budget *int
}

func (B *budgetChain) Append(entry *model.Entry) error {
	if *B.budget <= 0 {
		return chain.Full{}
	}
	*B.budget--
	return B.List.Append(entry)
}

// newBudgetChainFunc - Returns a chain factory whose chains together accept at most appends entries
func newBudgetChainFunc(appends int) func() (Chain, error) {
	budget := appends
	return func() (Chain, error) {
		return &budgetChain{List: chain.NewList(), budget: &budget}, nil
	}
}

// newLimitedChainFunc - Returns a chain factory that fails after creating chains number of chains
func newLimitedChainFunc(chains int) func() (Chain, error) {
	created := 0
	return func() (Chain, error) {
		if created >= chains {
			return nil, chain.Full{}
		}
		created++
		return chain.NewList(), nil
	}
}

// bucketSizeSum - Returns the sum of all bucket sizes
func bucketSizeSum(C *ChainHashMap) (sum int64) {
	for _, bucket := range C.buckets {
		sum += int64(bucket.Size())
	}
	return
}

// constantHashAlgorithm - Sends every key to the same bucket
type constantHashAlgorithm struct{}

func (c constantHashAlgorithm) HashFunc1(key string) uint64 {
	return 0
}
