package telegram

import (
  "context"
  "errors"
  "fmt"
  "strings"
  "time"

  tgbot "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
  "github.com/spf13/cast"
  "github.com/ushakovn/steamfront/internal/deps/storage/mongodb"
  "github.com/ushakovn/steamfront/internal/models"
  "github.com/ushakovn/steamfront/pkg/steam"
)

func (b *Bot) handleStartMenu(ctx context.Context, _ *tgbot.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.Warnf("telegram.handleStartMenu: findChatIdInUpdate: chat not found")
    return
  }

  text := `This bot watches Steam store prices for you.

You get a notification when:
1. The price of a tracked app goes down.
2. A discount on a tracked app starts.

Commands:
/track <app_id> [country] - start watching an app
/untrack <app_id> - stop watching an app
/list - show your tracked apps`

  if err := b.sendMessage(ctx, chatId, text); err != nil {
    log.Errorf("telegram.handleStartMenu: b.sendMessage: %v", err)
  }
}

func (b *Bot) handleTrackMenu(ctx context.Context, _ *tgbot.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.Warnf("telegram.handleTrackMenu: findChatIdInUpdate: chat not found")
    return
  }

  appId, country, err := parseTrackArgs(update.Message.Text)
  if err != nil {
    b.replyOrLog(ctx, chatId, "Usage: /track <app_id> [country]. Example: /track 460810 US")
    return
  }

  app, err := b.deps.Steam.AppDetails(ctx, steam.AppDetailsParams{
    AppId:   appId,
    Country: country,
  })
  if err != nil {
    if errors.Is(err, steam.ErrNotFound) {
      b.replyOrLog(ctx, chatId, fmt.Sprintf("App with id %d was not found in the store.", appId))
      return
    }

    log.Errorf("telegram.handleTrackMenu: steam.AppDetails: %v", err)
    b.replyOrLog(ctx, chatId, "The store did not respond. Try again later.")

    return
  }

  snapshot := models.NewAppSnapshot(app)

  tracking := models.Tracking{
    ChatId:   chatId,
    AppId:    appId,
    Country:  country,
    Snapshot: snapshot,
    Timestamps: models.TrackingTimestamps{
      CreatedAt: time.Now(),
    },
  }

  _, err = b.deps.Mongodb.Upsert(ctx, mongodb.UpdateParams{
    GetParams: mongodb.GetParams{
      CommonParams: mongodb.CommonParams{
        Collection: trackingsCollection,
        StructType: models.Tracking{},
      },
      Filters: map[string]any{
        "chat_id": chatId,
        "app_id":  appId,
      },
    },
    Document: tracking,
  })
  if err != nil {
    log.Errorf("telegram.handleTrackMenu: b.deps.Mongodb.Upsert: %v", err)
    b.replyOrLog(ctx, chatId, "Failed to save the tracking. Try again later.")

    return
  }

  result := models.Sendable(chatId).
    SetSnapshot(snapshot).
    BuildTrackingMessage()

  if err = b.sendMessage(ctx, chatId, result.Message.Text.Value); err != nil {
    log.Errorf("telegram.handleTrackMenu: b.sendMessage: %v", err)
  }
}

func (b *Bot) handleUntrackMenu(ctx context.Context, _ *tgbot.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.Warnf("telegram.handleUntrackMenu: findChatIdInUpdate: chat not found")
    return
  }

  appId, _, err := parseTrackArgs(update.Message.Text)
  if err != nil {
    b.replyOrLog(ctx, chatId, "Usage: /untrack <app_id>")
    return
  }

  count, err := b.deps.Mongodb.Delete(ctx, mongodb.DeleteParams{
    CommonParams: mongodb.CommonParams{
      Collection: trackingsCollection,
    },
    Filters: map[string]any{
      "chat_id": chatId,
      "app_id":  appId,
    },
  })
  if err != nil {
    log.Errorf("telegram.handleUntrackMenu: b.deps.Mongodb.Delete: %v", err)
    b.replyOrLog(ctx, chatId, "Failed to delete the tracking. Try again later.")

    return
  }

  if count == 0 {
    b.replyOrLog(ctx, chatId, fmt.Sprintf("You are not tracking app %d.", appId))
    return
  }

  b.replyOrLog(ctx, chatId, fmt.Sprintf("Stopped tracking app %d.", appId))
}

func (b *Bot) handleListMenu(ctx context.Context, _ *tgbot.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.Warnf("telegram.handleListMenu: findChatIdInUpdate: chat not found")
    return
  }

  out, err := b.deps.Mongodb.Find(ctx, mongodb.FindParams{
    CommonParams: mongodb.CommonParams{
      Collection: trackingsCollection,
      StructType: models.Tracking{},
    },
    Filters: map[string]any{
      "chat_id": chatId,
    },
  })
  if err != nil {
    log.Errorf("telegram.handleListMenu: b.deps.Mongodb.Find: %v", err)
    b.replyOrLog(ctx, chatId, "Failed to load your trackings. Try again later.")

    return
  }

  if len(out) == 0 {
    b.replyOrLog(ctx, chatId, "You are not tracking any apps yet. Use /track <app_id> to start.")
    return
  }

  text := "Your tracked apps 📋:\n"

  for index, value := range out {
    tracking, ok := value.(*models.Tracking)
    if !ok {
      log.Errorf("telegram.handleListMenu: cast %v with type: %[1]T to: %T failed", value, new(models.Tracking))
      continue
    }

    line := fmt.Sprintf("%d. %s", index+1, tracking.Snapshot.Name)

    if !tracking.Snapshot.IsFree {
      line += fmt.Sprintf(" - %s %s", tracking.Snapshot.Final.StringValue, tracking.Snapshot.Currency)
    }

    text += line + "\n"
  }

  b.replyOrLog(ctx, chatId, strings.TrimSpace(text))
}

func parseTrackArgs(text string) (appId int64, country string, err error) {
  args := strings.Fields(text)

  if len(args) < 2 {
    return 0, "", fmt.Errorf("app id argument is missing")
  }

  appId, err = cast.ToInt64E(args[1])
  if err != nil || appId <= 0 {
    return 0, "", fmt.Errorf("app id argument invalid: %s", args[1])
  }

  if len(args) > 2 {
    country = strings.ToUpper(strings.TrimSpace(args[2]))
  }

  return appId, country, nil
}
