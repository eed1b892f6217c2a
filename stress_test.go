//go:build stress

package chainhashmap

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func TestChainHashMap_Stress(t *testing.T) {
	algorithms := map[string]func() (*ChainHashMap, error){
		HashSum:    func() (*ChainHashMap, error) { return NewChainHashMap(3, NewSumHashAlgorithm()) },
		HashXXHash: func() (*ChainHashMap, error) { return NewChainHashMap(3, NewXXHashAlgorithm()) },
		HashCRC32:  func() (*ChainHashMap, error) { return NewChainHashMap(3, NewCRC32HashAlgorithm()) },
	}

	for name, newMap := range algorithms {
		t.Run(fmt.Sprintf("random operations agree with a go map for %s", name), func(t *testing.T) {
			// Prepare
			chm, err := newMap()
			assert.NoError(t, err, "create new hash map")
			reference := make(map[string]int)
			r := rand.New(rand.NewSource(1))

			// Execute
			for i := 0; i < 200000; i++ {
				k := fmt.Sprintf("key-%d", r.Intn(20000))
				switch r.Intn(4) {
				case 0, 1:
					prev, err := chm.Insert(k, i)
					assert.NoError(t, err, "insert record")
					if old, ok := reference[k]; ok {
						assert.Equal(t, old, prev, "previous value reported")
					} else {
						assert.Nil(t, prev, "no previous value")
					}
					reference[k] = i
				case 2:
					v, found := chm.Remove(k)
					old, ok := reference[k]
					assert.Equal(t, ok, found, "remove agrees")
					if ok {
						assert.Equal(t, old, v, "removed value")
						delete(reference, k)
					}
				case 3:
					v, found := chm.Get(k)
					old, ok := reference[k]
					assert.Equal(t, ok, found, "get agrees")
					if ok {
						assert.Equal(t, old, v, "value agrees")
					}
				}
			}

			// Check
			assert.Equal(t, int64(len(reference)), chm.Count(), "count agrees")
			assert.Equal(t, chm.Count(), bucketSizeSum(chm), "count matches buckets")
			visited := chm.ForEach(func(key string, value any) bool {
				assert.Equal(t, reference[key], value, "pair agrees")
				return true
			})
			assert.Equal(t, chm.Count(), visited, "every record visited")

			stat := chm.Stat(false)
			t.Logf("%s: capacity %d, longest chain %d, empty buckets %d", name, stat.Capacity, stat.LongestChain, stat.EmptyBuckets)

			chm.Destroy()
		})
	}
}
