package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/xyproto/env/v2"
	"strings"
)

// Names of the internal hash algorithms, as accepted by HashAlgorithmByName
const (
	HashSum    = "sum"
	HashXXHash = "xxhash"
	HashCRC32  = "crc32"
)

// Conf - Is a struct to be passed in the call to NewFromConf.
//   - InitialCapacity is the number of buckets to start with, anything lower than 3 gives 3
//   - HashAlgorithm is an optional custom hash algorithm, nil selects the internal sum of bytes algorithm
//   - MaxChainLength is the max number of records a single bucket may hold, 0 (zero) means no limit
type Conf struct {
	InitialCapacity int64
	HashAlgorithm   hashfunc.HashAlgorithm
	MaxChainLength  int64
}

// ConfFromEnv - Returns a Conf populated from the environment:
//   - CHAINHASHMAP_INITIAL_CAPACITY, defaults to 3
//   - CHAINHASHMAP_HASH_ALGORITHM, one of sum, xxhash or crc32, defaults to sum
//   - CHAINHASHMAP_MAX_CHAIN_LENGTH, defaults to 0 (zero) which is no limit
//
// It returns:
//   - c is the populated Conf
//   - err is of type InvalidArgument if the hash algorithm name is not recognized
func ConfFromEnv() (c Conf, err error) {
	return newConf(
		env.Int(conf.EnvInitialCapacity, int(conf.MinCapacity)),
		env.Str(conf.EnvHashAlgorithm, HashSum),
		env.Int(conf.EnvMaxChainLength, 0),
	)
}

// newConf - Returns a Conf given raw settings
func newConf(initialCapacity int, hashAlgorithmName string, maxChainLength int) (c Conf, err error) {
	c.HashAlgorithm, err = HashAlgorithmByName(hashAlgorithmName)
	if err != nil {
		return
	}

	c.InitialCapacity = int64(initialCapacity)
	if c.InitialCapacity < conf.MinCapacity {
		c.InitialCapacity = conf.MinCapacity
	}
	if maxChainLength > 0 {
		c.MaxChainLength = int64(maxChainLength)
	}

	return
}

// HashAlgorithmByName - Returns one of the internal hash algorithms given its name (case insensitive).
// An empty name gives the sum of bytes algorithm.
func HashAlgorithmByName(name string) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case HashSum, "":
		hashAlgorithm = hash.NewSumHashAlgorithm()
	case HashXXHash:
		hashAlgorithm = hash.NewXXHashAlgorithm()
	case HashCRC32:
		hashAlgorithm = hash.NewCRC32HashAlgorithm()
	default:
		err = InvalidArgument{msg: fmt.Sprintf("unknown hash algorithm %q", name)}
	}

	return
}

// NewSumHashAlgorithm - Returns the internal default algorithm, selecting bucket by the sum of the key bytes
func NewSumHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewSumHashAlgorithm()
}

// NewXXHashAlgorithm - Returns an algorithm selecting bucket by the xxHash digest of the key
func NewXXHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewXXHashAlgorithm()
}

// NewCRC32HashAlgorithm - Returns an algorithm selecting bucket by the IEEE crc32 checksum of the key
func NewCRC32HashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewCRC32HashAlgorithm()
}
