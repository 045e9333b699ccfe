package models

import (
  "fmt"
  "strings"
  "time"

  "github.com/google/uuid"
  "github.com/samber/lo"
  "github.com/ushakovn/steamfront/pkg/hasher"
)

type SendableType string

const (
  TrackingSendableType  SendableType = "tracking"
  PriceDiffSendableType SendableType = "price_diff"
)

type SendableMessage struct {
  UUID      string       `bson:"uuid" json:"uuid"`
  ChatId    int64        `bson:"chat_id" json:"chat_id"`
  Type      SendableType `bson:"type" json:"type"`
  Text      SendableText `bson:"text" json:"text"`
  Snapshot  AppSnapshot  `bson:"snapshot" json:"snapshot"`
  PriceDiff *PriceDiff   `bson:"price_diff" json:"price_diff"`
  SentId    *int         `bson:"sent_id" json:"sent_id"`
  SentAt    *time.Time   `bson:"sent_at" json:"sent_at"`
}

type SendableText struct {
  Value  string `bson:"value" json:"value"`
  SHA256 string `bson:"sha256" json:"sha256"`
}

func (s *SendableMessage) SetAsSent(id int) {
  s.SentId = lo.ToPtr(id)
  s.SentAt = lo.ToPtr(time.Now())
}

type BuildResult struct {
  Message SendableMessage
  IsValid bool
}

type Builder struct {
  chatId   int64
  snapshot AppSnapshot
  diff     PriceDiff
}

func Sendable(chatId int64) Builder {
  return Builder{chatId: chatId}
}

func (b Builder) SetSnapshot(snapshot AppSnapshot) Builder {
  b.snapshot = snapshot
  return b
}

func (b Builder) SetPriceDiff(diff PriceDiff) Builder {
  b.diff = diff
  return b
}

func (b Builder) SetPriceDiffPtr(diff *PriceDiff) Builder {
  b.diff = lo.FromPtr(diff)
  return b
}

// BuildTrackingMessage is the confirmation sent right after a tracking
// is created.
func (b Builder) BuildTrackingMessage() BuildResult {
  text := fmt.Sprintf(`Now tracking 📦:
%s
(Link: %s)

`, b.snapshot.Name, b.snapshot.StoreURL)

  if b.snapshot.Description != "" {
    text += b.snapshot.Description + "\n\n"
  }

  text += b.priceLine()

  return b.makeResult(TrackingSendableType, text, true)
}

// BuildPriceDiffMessage is sendable only when the price went down or a
// discount just started.
func (b Builder) BuildPriceDiffMessage() BuildResult {
  isSendable := b.diff.IsLower || b.diff.IsDiscountStarted

  text := fmt.Sprintf(`Price alert 📦:
%s
(Link: %s)

`, b.snapshot.Name, b.snapshot.StoreURL)

  if b.diff.IsLower {
    text += fmt.Sprintf(`The price was lowered!
New price with all discounts: %s.
(Old price: %s. Difference: %s)

`, b.withCurrency(b.diff.New), b.withCurrency(b.diff.Old), b.withCurrency(b.diff.Diff))
  } else {
    text += fmt.Sprintf(`Price with all discounts: %s.

`, b.withCurrency(b.diff.New))
  }

  if b.diff.DiscountPercent > 0 {
    text += fmt.Sprintf("Discount: -%d%%!", b.diff.DiscountPercent)
  }

  return b.makeResult(PriceDiffSendableType, text, isSendable)
}

func (b Builder) priceLine() string {
  if b.snapshot.IsFree {
    return "The app is free to play."
  }

  line := fmt.Sprintf("Current price: %s.", b.withCurrency(b.snapshot.Final.StringValue))

  if b.snapshot.DiscountPercent > 0 {
    line += fmt.Sprintf(" Discount: -%d%%.", b.snapshot.DiscountPercent)
  }

  return line
}

func (b Builder) withCurrency(value string) string {
  if b.snapshot.Currency == "" {
    return value
  }
  return fmt.Sprintf("%s %s", value, b.snapshot.Currency)
}

func (b Builder) makeResult(typ SendableType, text string, isValid bool) BuildResult {
  text = strings.TrimSpace(text)

  message := SendableMessage{
    UUID:     uuid.NewString(),
    ChatId:   b.chatId,
    Type:     typ,
    Snapshot: b.snapshot,
    Text: SendableText{
      Value:  text,
      SHA256: hasher.SHA256(text),
    },
  }

  if typ == PriceDiffSendableType {
    message.PriceDiff = lo.ToPtr(b.diff)
  }

  return BuildResult{
    Message: message,
    IsValid: isValid,
  }
}
