package money

import "testing"

func TestString(t *testing.T) {
  testCases := []struct {
    cents    int64
    expected string
  }{
    {cents: 0, expected: "0.00"},
    {cents: 199, expected: "1.99"},
    {cents: 10050, expected: "100.50"},
    {cents: 5, expected: "0.05"},
    {cents: 1999, expected: "19.99"},
    {cents: 100000, expected: "1000.00"},
    {cents: 123456789, expected: "1234567.89"},
    {cents: -50, expected: "-0.50"},
  }

  for _, tc := range testCases {
    if got := String(tc.cents); got != tc.expected {
      t.Errorf("String(%d): expected %s, got %s", tc.cents, tc.expected, got)
    }
  }
}
