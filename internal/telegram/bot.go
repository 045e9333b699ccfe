package telegram

import (
  "context"

  tgbot "github.com/go-telegram/bot"
  "github.com/ushakovn/steamfront/internal/deps/storage/mongodb"
  "github.com/ushakovn/steamfront/pkg/steam"
)

const trackingsCollection = "trackings"

type Bot struct {
  deps Dependencies
}

type Dependencies struct {
  Telegram *tgbot.Bot
  Mongodb  *mongodb.Client
  Steam    *steam.Client
}

func NewBot(deps Dependencies) *Bot {
  return &Bot{deps: deps}
}

func (b *Bot) Start(ctx context.Context) {
  b.registerHandlers()

  go b.deps.Telegram.Start(ctx)
}

func (b *Bot) registerHandlers() {
  b.deps.Telegram.RegisterHandler(tgbot.HandlerTypeMessageText, "/start",
    tgbot.MatchTypeExact, b.handleStartMenu)

  b.deps.Telegram.RegisterHandler(tgbot.HandlerTypeMessageText, "/track",
    tgbot.MatchTypePrefix, b.handleTrackMenu)

  b.deps.Telegram.RegisterHandler(tgbot.HandlerTypeMessageText, "/untrack",
    tgbot.MatchTypePrefix, b.handleUntrackMenu)

  b.deps.Telegram.RegisterHandler(tgbot.HandlerTypeMessageText, "/list",
    tgbot.MatchTypeExact, b.handleListMenu)
}
