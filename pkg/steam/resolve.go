package steam

import (
  "strconv"

  "github.com/spf13/cast"
)

// resolveEntry extracts the per-id result object from an id-keyed details
// payload. An entry counts as found only when its key is present, its
// success marker is true and its data payload is a JSON object. A scalar
// data value carries nothing decodable and counts as not found.
func resolveEntry(payload map[string]any, id int64) (map[string]any, bool) {
  value, ok := payload[strconv.FormatInt(id, 10)]
  if !ok {
    return nil, false
  }

  entry := cast.ToStringMap(value)

  if !cast.ToBool(entry["success"]) {
    return nil, false
  }

  data, ok := entry["data"].(map[string]any)
  if !ok {
    return nil, false
  }

  return data, true
}
