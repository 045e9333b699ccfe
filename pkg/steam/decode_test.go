package steam

import (
  "encoding/json"
  "reflect"
  "testing"
)

func decodePayload(t *testing.T, raw string) map[string]any {
  t.Helper()

  payload := map[string]any{}

  if err := json.Unmarshal([]byte(raw), &payload); err != nil {
    t.Fatalf("Failed to decode payload: %v", err)
  }
  return payload
}

func TestMakeApp_Defaults(t *testing.T) {
  app := makeApp(map[string]any{})

  if app.Id != 0 || app.Name != "" || app.IsFree {
    t.Errorf("Expected zero scalar fields, got %+v", app)
  }
  if app.Website != nil {
    t.Errorf("Expected nil website, got %v", *app.Website)
  }
  if app.PriceOverview != nil {
    t.Errorf("Expected nil price overview, got %+v", *app.PriceOverview)
  }
  if len(app.Packages) != 0 || len(app.Screenshots) != 0 || len(app.Movies) != 0 {
    t.Errorf("Expected empty lists, got %+v", app)
  }
  if len(app.Platforms) != 0 || len(app.SupportInfo) != 0 {
    t.Errorf("Expected empty maps, got %+v", app)
  }
}

func TestMakeApp_MistypedFields(t *testing.T) {
  payload := decodePayload(t, `{
    "steam_appid": "garbage",
    "name": 42,
    "is_free": "nope",
    "packages": "not a list",
    "platforms": ["windows"],
    "price_overview": "free"
  }`)

  app := makeApp(payload)

  if app.Id != 0 {
    t.Errorf("Expected zero id for mistyped steam_appid, got %d", app.Id)
  }
  if app.Name != "42" {
    t.Errorf("Expected numeric name coerced to string, got '%s'", app.Name)
  }
  if app.IsFree {
    t.Error("Expected false for mistyped is_free")
  }
  if len(app.Packages) != 0 {
    t.Errorf("Expected empty packages for mistyped list, got %v", app.Packages)
  }
  if len(app.Platforms) != 0 {
    t.Errorf("Expected empty platforms for mistyped map, got %v", app.Platforms)
  }
  // Key present but not an object: decodes to a zero PriceInfo, not nil.
  if app.PriceOverview == nil || app.PriceOverview.Final != 0 {
    t.Errorf("Unexpected price overview: %+v", app.PriceOverview)
  }
}

func TestMakeApp_NullOptionalFields(t *testing.T) {
  payload := decodePayload(t, `{"website": null, "price_overview": null}`)

  app := makeApp(payload)

  if app.Website != nil {
    t.Errorf("Expected nil website for null value, got %v", *app.Website)
  }
  if app.PriceOverview != nil {
    t.Errorf("Expected nil price overview for null value, got %+v", *app.PriceOverview)
  }
}

func TestMakeApp_MalformedListItems(t *testing.T) {
  payload := decodePayload(t, `{
    "screenshots": [
      "garbage",
      {"id": 1, "path_thumbnail": "thumb.jpg", "path_full": "full.jpg"}
    ],
    "categories": [42, {"id": 2, "description": "Co-op"}]
  }`)

  app := makeApp(payload)

  // Malformed items decode as near-empty records and are kept in place.
  if len(app.Screenshots) != 2 {
    t.Fatalf("Expected 2 screenshots, got %d", len(app.Screenshots))
  }
  if app.Screenshots[0].PathFull != "" {
    t.Errorf("Expected empty first screenshot, got %+v", app.Screenshots[0])
  }
  if app.Screenshots[1].PathFull != "full.jpg" {
    t.Errorf("Expected second screenshot decoded, got %+v", app.Screenshots[1])
  }
  if len(app.Categories) != 2 || app.Categories[1].Description != "Co-op" {
    t.Errorf("Unexpected categories: %+v", app.Categories)
  }
}

func TestMakeApp_Idempotence(t *testing.T) {
  payload := decodePayload(t, `{
    "steam_appid": 570,
    "name": "Dota 2",
    "website": "https://dota2.com",
    "price_overview": {"currency": "USD", "initial": 0, "final": 0},
    "packages": [197846],
    "genres": [{"id": "1", "description": "Action"}]
  }`)

  first := makeApp(payload)
  second := makeApp(payload)

  if !reflect.DeepEqual(first, second) {
    t.Errorf("Expected identical apps across decodes:\n%+v\n%+v", first, second)
  }
}

func TestMakePackage_Defaults(t *testing.T) {
  pack := makePackage(map[string]any{})

  if pack.Name != "" || pack.Price != nil {
    t.Errorf("Expected zero package, got %+v", pack)
  }
  if len(pack.Apps) != 0 {
    t.Errorf("Expected empty apps, got %v", pack.Apps)
  }
}

func TestMakeFeaturedApp_OriginalPrice(t *testing.T) {
  withPrice := makeFeaturedApp(decodePayload(t, `{"original_price": 1999}`))
  if withPrice.OriginalPrice == nil || *withPrice.OriginalPrice != 1999 {
    t.Errorf("Unexpected original price: %v", withPrice.OriginalPrice)
  }

  withNull := makeFeaturedApp(decodePayload(t, `{"original_price": null}`))
  if withNull.OriginalPrice != nil {
    t.Errorf("Expected nil original price for null, got %v", *withNull.OriginalPrice)
  }

  absent := makeFeaturedApp(map[string]any{})
  if absent.OriginalPrice != nil {
    t.Errorf("Expected nil original price when absent, got %v", *absent.OriginalPrice)
  }
}

func TestResolveEntry(t *testing.T) {
  testCases := []struct {
    name    string
    payload string
    id      int64
    found   bool
  }{
    {
      name:    "success with data",
      payload: `{"570": {"success": true, "data": {"name": "Dota 2"}}}`,
      id:      570,
      found:   true,
    },
    {
      name:    "success false",
      payload: `{"570": {"success": false}}`,
      id:      570,
      found:   false,
    },
    {
      name:    "id absent",
      payload: `{"730": {"success": true, "data": {}}}`,
      id:      570,
      found:   false,
    },
    {
      name:    "success absent",
      payload: `{"570": {"data": {"name": "Dota 2"}}}`,
      id:      570,
      found:   false,
    },
    {
      name:    "data absent",
      payload: `{"570": {"success": true}}`,
      id:      570,
      found:   false,
    },
    {
      name:    "data null",
      payload: `{"570": {"success": true, "data": null}}`,
      id:      570,
      found:   false,
    },
    {
      name:    "data scalar",
      payload: `{"570": {"success": true, "data": "unexpected"}}`,
      id:      570,
      found:   false,
    },
  }

  for _, tc := range testCases {
    t.Run(tc.name, func(t *testing.T) {
      _, found := resolveEntry(decodePayload(t, tc.payload), tc.id)

      if found != tc.found {
        t.Errorf("Expected found=%v, got %v", tc.found, found)
      }
    })
  }
}
