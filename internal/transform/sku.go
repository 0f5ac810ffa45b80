package transform

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

const skuLength = 5

// NewSKU derives a short SKU from the SHA-256 digest of a random UUID.
// SKUs are not checked for uniqueness.
func NewSKU() string {
	token := uuid.New()
	sum := sha256.Sum256([]byte(hex.EncodeToString(token[:])))
	return hex.EncodeToString(sum[:])[:skuLength]
}
