package telegram

import "testing"

func TestParseTrackArgs(t *testing.T) {
  testCases := []struct {
    name    string
    text    string
    appId   int64
    country string
    wantErr bool
  }{
    {
      name:  "id only",
      text:  "/track 460810",
      appId: 460810,
    },
    {
      name:    "id with country",
      text:    "/track 460810 us",
      appId:   460810,
      country: "US",
    },
    {
      name:    "extra whitespace",
      text:    "/track   570   jp ",
      appId:   570,
      country: "JP",
    },
    {
      name:    "missing id",
      text:    "/track",
      wantErr: true,
    },
    {
      name:    "non-numeric id",
      text:    "/track dota",
      wantErr: true,
    },
    {
      name:    "negative id",
      text:    "/track -1",
      wantErr: true,
    },
  }

  for _, tc := range testCases {
    t.Run(tc.name, func(t *testing.T) {
      appId, country, err := parseTrackArgs(tc.text)

      if tc.wantErr {
        if err == nil {
          t.Fatalf("Expected error for %q, got app id %d", tc.text, appId)
        }
        return
      }

      if err != nil {
        t.Fatalf("parseTrackArgs(%q) failed: %v", tc.text, err)
      }
      if appId != tc.appId {
        t.Errorf("Expected app id %d, got %d", tc.appId, appId)
      }
      if country != tc.country {
        t.Errorf("Expected country %q, got %q", tc.country, country)
      }
    })
  }
}
