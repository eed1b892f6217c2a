package conf

// MinCapacity - Smallest number of buckets a hash map is ever created with
const MinCapacity int64 = 3

// MaxLoadFactor - Load factor (records / buckets) above which the next insert first doubles the capacity
const MaxLoadFactor float64 = 0.70

// GrowthFactor - Multiplier applied to the capacity when growing
const GrowthFactor int64 = 2

// EnvInitialCapacity - Environment variable holding the initial capacity
const EnvInitialCapacity = "CHAINHASHMAP_INITIAL_CAPACITY"

// EnvHashAlgorithm - Environment variable holding the name of the hash algorithm (sum, xxhash or crc32)
const EnvHashAlgorithm = "CHAINHASHMAP_HASH_ALGORITHM"

// EnvMaxChainLength - Environment variable holding the max number of records per bucket, 0 is unbounded
const EnvMaxChainLength = "CHAINHASHMAP_MAX_CHAIN_LENGTH"
