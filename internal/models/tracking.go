package models

import (
  "fmt"
  "math"
  "time"

  "github.com/samber/lo"
  "github.com/ushakovn/steamfront/pkg/money"
  "github.com/ushakovn/steamfront/pkg/steam"
  "github.com/ushakovn/steamfront/pkg/stringer"
)

const storePageURL = "https://store.steampowered.com/app/%d"

// Tracking binds a telegram chat to a storefront app whose price the
// watcher keeps an eye on.
type Tracking struct {
  ChatId     int64              `bson:"chat_id" json:"chat_id"`
  AppId      int64              `bson:"app_id" json:"app_id"`
  Country    string             `bson:"country" json:"country"`
  Snapshot   AppSnapshot        `bson:"snapshot" json:"snapshot"`
  Timestamps TrackingTimestamps `bson:"timestamps" json:"timestamps"`
}

type TrackingTimestamps struct {
  CreatedAt time.Time  `bson:"created_at" json:"created_at"`
  CheckedAt *time.Time `bson:"checked_at" json:"checked_at"`
}

func (t *Tracking) SetCheckedAt() {
  t.Timestamps.CheckedAt = lo.ToPtr(time.Now())
}

// AppSnapshot is the stored view of an app at the moment it was last
// fetched. Prices are kept both as minor units and preformatted strings.
type AppSnapshot struct {
  AppId           int64      `bson:"app_id" json:"app_id"`
  Name            string     `bson:"name" json:"name"`
  Description     string     `bson:"description" json:"description"`
  HeaderImage     string     `bson:"header_image" json:"header_image"`
  StoreURL        string     `bson:"store_url" json:"store_url"`
  IsFree          bool       `bson:"is_free" json:"is_free"`
  Currency        string     `bson:"currency" json:"currency"`
  Initial         PriceValue `bson:"initial" json:"initial"`
  Final           PriceValue `bson:"final" json:"final"`
  DiscountPercent int64      `bson:"discount_percent" json:"discount_percent"`
}

type PriceValue struct {
  IntValue    int64  `bson:"int_value" json:"int_value"`
  StringValue string `bson:"string_value" json:"string_value"`
}

func NewPriceValue(cents int64) PriceValue {
  return PriceValue{
    IntValue:    cents,
    StringValue: money.String(cents),
  }
}

func NewAppSnapshot(app *steam.App) AppSnapshot {
  snapshot := AppSnapshot{
    AppId:       app.Id,
    Name:        stringer.Strip(app.Name),
    Description: stringer.TrimRepeatSeparators(stringer.StripTags(app.ShortDescription), " "),
    HeaderImage: app.HeaderImage,
    StoreURL:    fmt.Sprintf(storePageURL, app.Id),
    IsFree:      app.IsFree,
  }

  if price := app.PriceOverview; price != nil {
    snapshot.Currency = price.Currency
    snapshot.Initial = NewPriceValue(price.Initial)
    snapshot.Final = NewPriceValue(price.Final)
    snapshot.DiscountPercent = price.DiscountPercent
  }

  return snapshot
}

type PriceDiff struct {
  IsLower           bool   `bson:"is_lower" json:"is_lower"`
  IsHigher          bool   `bson:"is_higher" json:"is_higher"`
  IsDiscountStarted bool   `bson:"is_discount_started" json:"is_discount_started"`
  Old               string `bson:"old" json:"old"`
  New               string `bson:"new" json:"new"`
  Diff              string `bson:"diff" json:"diff"`
  DiscountPercent   int64  `bson:"discount_percent" json:"discount_percent"`
}

func NewPriceDiff(stored, fresh AppSnapshot) *PriceDiff {
  delta := int64(math.Abs(float64(fresh.Final.IntValue - stored.Final.IntValue)))

  return &PriceDiff{
    IsLower:           fresh.Final.IntValue < stored.Final.IntValue,
    IsHigher:          fresh.Final.IntValue > stored.Final.IntValue,
    IsDiscountStarted: fresh.DiscountPercent > 0 && stored.DiscountPercent == 0,
    Old:               stored.Final.StringValue,
    New:               fresh.Final.StringValue,
    Diff:              money.String(delta),
    DiscountPercent:   fresh.DiscountPercent,
  }
}
