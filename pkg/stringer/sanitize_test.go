package stringer

import "testing"

func TestStripTags(t *testing.T) {
  testCases := []struct {
    input    string
    expected string
  }{
    {input: "<strong>English</strong><br>, French", expected: "English, French"},
    {input: "plain text", expected: "plain text"},
    {input: "  <p> padded </p>  ", expected: "padded"},
    {input: "Dungeons &amp; Dragons", expected: "Dungeons & Dragons"},
    {input: "", expected: ""},
  }

  for _, tc := range testCases {
    if got := StripTags(tc.input); got != tc.expected {
      t.Errorf("StripTags(%q): expected %q, got %q", tc.input, tc.expected, got)
    }
  }
}

func TestIsEmptyStr(t *testing.T) {
  if !IsEmptyStr("   ") {
    t.Error("Expected whitespace-only string to be empty")
  }
  if IsEmptyStr(" x ") {
    t.Error("Expected non-blank string to be non-empty")
  }
}

func TestTrimRepeatSeparators(t *testing.T) {
  got := TrimRepeatSeparators("  A hero   shooter.\n\nFree to play.  ", " ")
  expected := "A hero shooter. Free to play."

  if got != expected {
    t.Errorf("Expected %q, got %q", expected, got)
  }
}
