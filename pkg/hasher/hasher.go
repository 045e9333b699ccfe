package hasher

import (
  "crypto/sha256"
  "encoding/hex"
)

// SHA256 returns the hex encoded digest of the value. Notification texts
// are keyed by their digest to suppress duplicate alerts.
func SHA256(value string) string {
  sum := sha256.Sum256([]byte(value))

  return hex.EncodeToString(sum[:])
}
