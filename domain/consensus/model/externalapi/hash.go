package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// DomainHashSize of array used to store hashes.
const DomainHashSize = 32

// DomainHash is the domain representation of a 256-bit hash. The bytes are
// held in little-endian order, so hashArray[31] is the most significant byte
// when the hash is read as a number.
type DomainHash struct {
	hashArray [DomainHashSize]byte
}

// NewDomainHashFromByteArray returns a DomainHash holding a copy of hashBytes.
func NewDomainHashFromByteArray(hashBytes *[DomainHashSize]byte) *DomainHash {
	return &DomainHash{
		hashArray: *hashBytes,
	}
}

// NewDomainHashFromByteSlice returns a DomainHash holding a copy of
// hashBytes, which must be exactly DomainHashSize long.
func NewDomainHashFromByteSlice(hashBytes []byte) (*DomainHash, error) {
	if len(hashBytes) != DomainHashSize {
		return nil, errors.Errorf("invalid hash size. Want: %d, got: %d",
			DomainHashSize, len(hashBytes))
	}
	domainHash := DomainHash{}
	copy(domainHash.hashArray[:], hashBytes)
	return &domainHash, nil
}

// NewDomainHashFromString parses the byte-reversed hex form returned by
// String.
func NewDomainHashFromString(hashString string) (*DomainHash, error) {
	expectedLength := DomainHashSize * 2
	if len(hashString) != expectedLength {
		return nil, errors.Errorf("hash string length is %d, while it should be be %d",
			len(hashString), expectedLength)
	}

	hashBytes, err := hex.DecodeString(hashString)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	reverse(hashBytes)

	return NewDomainHashFromByteSlice(hashBytes)
}

// String returns the hash as a big-endian hexadecimal string, which is the
// order in which hashes are compared against targets.
func (hash DomainHash) String() string {
	bigEndian := hash.BigEndianBytes()
	return hex.EncodeToString(bigEndian[:])
}

// ByteArray returns a copy of the little-endian hash bytes.
func (hash *DomainHash) ByteArray() *[DomainHashSize]byte {
	arrayClone := hash.hashArray
	return &arrayClone
}

// BigEndianBytes returns a copy of the hash bytes with the most significant
// byte first.
func (hash *DomainHash) BigEndianBytes() [DomainHashSize]byte {
	bigEndian := hash.hashArray
	reverse(bigEndian[:])
	return bigEndian
}

// Equal returns whether hash equals to other
func (hash *DomainHash) Equal(other *DomainHash) bool {
	if hash == nil || other == nil {
		return hash == other
	}

	return hash.hashArray == other.hashArray
}

func reverse(bytes []byte) {
	for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
		bytes[i], bytes[j] = bytes[j], bytes[i]
	}
}
