package hash

import "hash/crc32"

// CRC32HashAlgorithm - Bucket selection using crc32.ChecksumIEEE over the key
type CRC32HashAlgorithm struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm() *CRC32HashAlgorithm {
	return &CRC32HashAlgorithm{}
}

// HashFunc1 - Given key it returns its IEEE crc32 checksum
func (C *CRC32HashAlgorithm) HashFunc1(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}
