package extension

import (
  "strings"

  set "github.com/deckarep/golang-set/v2"
)

var extImage = set.NewSet("jpg", "jpeg", "png", "svg", "webp")

// IsImage reports whether the URL path looks like an image file. Query
// strings are trimmed first since capsule URLs carry cache busters.
func IsImage(filename string) bool {
  filename, _, _ = strings.Cut(filename, "?")

  parts := strings.Split(filename, ".")

  if len(parts) < 2 {
    return false
  }
  ext := parts[len(parts)-1]

  return extImage.ContainsOne(strings.ToLower(ext))
}
