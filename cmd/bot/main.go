package main

import (
  "context"
  "errors"
  "net/http"
  "os"
  "os/signal"
  "syscall"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/spf13/cast"
  "github.com/ushakovn/steamfront/internal/app/watcher"
  "github.com/ushakovn/steamfront/internal/deps/storage/mongodb"
  tgdeps "github.com/ushakovn/steamfront/internal/deps/telegram"
  "github.com/ushakovn/steamfront/internal/telegram"
  "github.com/ushakovn/steamfront/pkg/env"
  "github.com/ushakovn/steamfront/pkg/logger"
  "github.com/ushakovn/steamfront/pkg/steam"
)

func main() {
  logger.Init()

  ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
  defer cancel()

  mongoClient, err := mongodb.NewClient(ctx,
    mongodb.Config{
      Host:     env.Get("MONGO_HOST", "localhost"),
      Port:     env.Get("MONGO_PORT", "27017"),
      Database: env.Get("MONGO_DATABASE", "steamfront"),
      Authentication: &mongodb.Authentication{
        User:     env.Get("MONGO_USER", "steamfront"),
        Password: os.Getenv("MONGO_PASSWORD"),
      },
    },
    mongodb.Dependencies{
      Client: http.DefaultClient,
    })
  if err != nil {
    log.Fatalf("mongodb.NewClient: %v", err)
  }

  steamClient, err := steam.NewClient(steam.Config{},
    steam.Dependencies{
      Client: resty.New(),
    })
  if err != nil {
    log.Fatalf("steam.NewClient: %v", err)
  }

  telegramClient, err := tgdeps.NewBotClient(tgdeps.Config{
    Token: os.Getenv("TELEGRAM_BOT_TOKEN"),
  })
  if err != nil {
    log.Fatalf("tgdeps.NewBotClient: %v", err)
  }

  telegramBot := telegram.NewBot(telegram.Dependencies{
    Telegram: telegramClient,
    Mongodb:  mongoClient,
    Steam:    steamClient,
  })
  telegramBot.Start(ctx)

  watcherApp := watcher.NewWatcher(
    watcher.Config{
      Interval: cast.ToDuration(env.Get("WATCH_INTERVAL", "1h")),
    },
    watcher.Dependencies{
      Steam:    steamClient,
      Mongodb:  mongoClient,
      Telegram: telegramClient,
    })

  if err = watcherApp.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
    log.Fatalf("watcherApp.Start: %v", err)
  }
}
