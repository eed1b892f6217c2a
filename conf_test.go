//go:build unit

package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHashAlgorithmByName(t *testing.T) {
	t.Run("returns internal algorithms by name", func(t *testing.T) {
		// Prepare
		tests := []struct {
			name string
			want any
		}{
			{name: "sum", want: &hash.SumHashAlgorithm{}},
			{name: "", want: &hash.SumHashAlgorithm{}},
			{name: "xxhash", want: &hash.XXHashAlgorithm{}},
			{name: " XXHash ", want: &hash.XXHashAlgorithm{}},
			{name: "crc32", want: &hash.CRC32HashAlgorithm{}},
		}

		for _, test := range tests {
			// Execute
			ha, err := HashAlgorithmByName(test.name)

			// Check
			assert.NoError(t, err, "known algorithm")
			assert.IsType(t, test.want, ha, "correct algorithm")
		}
	})

	t.Run("fails on unknown name", func(t *testing.T) {
		// Execute
		ha, err := HashAlgorithmByName("md5")

		// Check
		assert.ErrorIs(t, err, InvalidArgument{}, "get correct error")
		assert.Nil(t, ha, "no algorithm")
	})
}

func TestNewConf(t *testing.T) {
	t.Run("builds conf from raw settings", func(t *testing.T) {
		// Execute
		c, err := newConf(64, "xxhash", 8)

		// Check
		assert.NoError(t, err, "valid settings")
		assert.Equal(t, int64(64), c.InitialCapacity, "initial capacity")
		assert.Equal(t, int64(8), c.MaxChainLength, "max chain length")
		assert.IsType(t, &hash.XXHashAlgorithm{}, c.HashAlgorithm, "hash algorithm")
	})

	t.Run("clamps capacity and ignores negative chain length", func(t *testing.T) {
		// Execute
		c, err := newConf(1, "sum", -4)

		// Check
		assert.NoError(t, err, "valid settings")
		assert.Equal(t, int64(3), c.InitialCapacity, "initial capacity clamped")
		assert.Zero(t, c.MaxChainLength, "unbounded chains")
	})

	t.Run("fails on unknown hash algorithm", func(t *testing.T) {
		// Execute
		_, err := newConf(10, "nope", 0)

		// Check
		assert.ErrorIs(t, err, InvalidArgument{}, "get correct error")
	})
}

func TestConfFromEnv(t *testing.T) {
	t.Run("gives a usable conf", func(t *testing.T) {
		// Execute
		c, err := ConfFromEnv()

		// Check
		assert.NoError(t, err, "conf from environment")
		assert.GreaterOrEqual(t, c.InitialCapacity, int64(3), "valid capacity")
		assert.NotNil(t, c.HashAlgorithm, "hash algorithm assigned")

		chm, err := NewFromConf(c)
		assert.NoError(t, err, "create new hash map")
		_, err = chm.Insert("k", 1)
		assert.NoError(t, err, "insert record")
	})
}
