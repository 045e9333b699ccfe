package stringer

import (
  "html"
  "regexp"
  "strings"

  "github.com/microcosm-cc/bluemonday"
)

var (
  policy         = bluemonday.StrictPolicy()
  RegexRepeatSep = regexp.MustCompile(`\s{2,}`)
)

// StripTags drops HTML markup and unescapes entities. Storefront
// description fields arrive with embedded markup.
func StripTags(s string) string {
  s = policy.Sanitize(s)
  s = html.UnescapeString(s)

  return strings.TrimSpace(s)
}

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

func TrimRepeatSeparators(s string, repl string) string {
  return RegexRepeatSep.ReplaceAllString(Strip(s), repl)
}
