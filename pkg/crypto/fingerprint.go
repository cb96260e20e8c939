package crypto

import (
	"encoding/hex"

	"github.com/gtank/cryptopasta"
)

// statementTag keeps statement hashes apart from any other use of the same bytes.
const statementTag = "spendmap.statement"

// Fingerprint returns a stable hex identifier for a statement's raw bytes.
// Two exports of the same statement produce the same fingerprint.
func Fingerprint(data []byte) string {
	return hex.EncodeToString(cryptopasta.Hash(statementTag, data))
}
