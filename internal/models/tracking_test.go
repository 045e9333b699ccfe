package models

import (
  "testing"

  "github.com/samber/lo"
  "github.com/ushakovn/steamfront/pkg/steam"
)

func TestNewAppSnapshot(t *testing.T) {
  app := &steam.App{
    Id:               570,
    Name:             " Dota 2 ",
    ShortDescription: "<strong>Dota</strong> is a   deep game.",
    HeaderImage:      "https://cdn.example.com/header.jpg",
    IsFree:           false,
    PriceOverview: lo.ToPtr(steam.PriceInfo{
      Currency:        "USD",
      Initial:         1999,
      Final:           999,
      DiscountPercent: 50,
    }),
  }

  snapshot := NewAppSnapshot(app)

  if snapshot.AppId != 570 {
    t.Errorf("Expected app id 570, got %d", snapshot.AppId)
  }
  if snapshot.Name != "Dota 2" {
    t.Errorf("Expected stripped name, got %q", snapshot.Name)
  }
  if snapshot.Description != "Dota is a deep game." {
    t.Errorf("Unexpected description: %q", snapshot.Description)
  }
  if snapshot.StoreURL != "https://store.steampowered.com/app/570" {
    t.Errorf("Unexpected store url: %s", snapshot.StoreURL)
  }
  if snapshot.Currency != "USD" || snapshot.DiscountPercent != 50 {
    t.Errorf("Unexpected price info: %+v", snapshot)
  }
  if snapshot.Initial.IntValue != 1999 || snapshot.Initial.StringValue != "19.99" {
    t.Errorf("Unexpected initial price: %+v", snapshot.Initial)
  }
  if snapshot.Final.IntValue != 999 || snapshot.Final.StringValue != "9.99" {
    t.Errorf("Unexpected final price: %+v", snapshot.Final)
  }
}

func TestNewAppSnapshot_FreeApp(t *testing.T) {
  snapshot := NewAppSnapshot(&steam.App{
    Id:     730,
    Name:   "Counter-Strike 2",
    IsFree: true,
  })

  if !snapshot.IsFree {
    t.Error("Expected free app snapshot")
  }
  if snapshot.Currency != "" || snapshot.Final.IntValue != 0 {
    t.Errorf("Expected zero price info for free app, got %+v", snapshot)
  }
}

func TestNewPriceDiff(t *testing.T) {
  stored := AppSnapshot{
    Final:           NewPriceValue(1999),
    DiscountPercent: 0,
  }
  fresh := AppSnapshot{
    Final:           NewPriceValue(999),
    DiscountPercent: 50,
  }

  diff := NewPriceDiff(stored, fresh)

  if !diff.IsLower || diff.IsHigher {
    t.Errorf("Expected lower price diff, got %+v", diff)
  }
  if !diff.IsDiscountStarted {
    t.Error("Expected discount started flag")
  }
  if diff.Old != "19.99" || diff.New != "9.99" || diff.Diff != "10.00" {
    t.Errorf("Unexpected formatted values: %+v", diff)
  }
  if diff.DiscountPercent != 50 {
    t.Errorf("Expected discount percent 50, got %d", diff.DiscountPercent)
  }
}

func TestNewPriceDiff_Higher(t *testing.T) {
  diff := NewPriceDiff(
    AppSnapshot{Final: NewPriceValue(999), DiscountPercent: 50},
    AppSnapshot{Final: NewPriceValue(1999), DiscountPercent: 0},
  )

  if diff.IsLower || !diff.IsHigher {
    t.Errorf("Expected higher price diff, got %+v", diff)
  }
  if diff.IsDiscountStarted {
    t.Error("Expected no discount started flag when discount ends")
  }
  if diff.Diff != "10.00" {
    t.Errorf("Expected absolute difference 10.00, got %s", diff.Diff)
  }
}

func TestNewPriceDiff_Unchanged(t *testing.T) {
  diff := NewPriceDiff(
    AppSnapshot{Final: NewPriceValue(999)},
    AppSnapshot{Final: NewPriceValue(999)},
  )

  if diff.IsLower || diff.IsHigher || diff.IsDiscountStarted {
    t.Errorf("Expected no-op diff, got %+v", diff)
  }
  if diff.Diff != "0.00" {
    t.Errorf("Expected zero difference, got %s", diff.Diff)
  }
}
