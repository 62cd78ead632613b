package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pystandards"
)

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// hashStandard fingerprints everything stored for a standard, including its
// category identifier, which the JSON encoding omits.
func hashStandard(s *pystandards.Standard) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return hashContent(string(s.Category) + "\x00" + string(data)), nil
}
