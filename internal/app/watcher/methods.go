package watcher

import (
  "context"
  "fmt"
  "strings"

  tgbot "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/steamfront/internal/deps/storage/mongodb"
  "github.com/ushakovn/steamfront/internal/models"
  "github.com/ushakovn/steamfront/pkg/extension"
)

func (w *Watcher) handleSendableMessage(ctx context.Context, message *models.SendableMessage) error {
  if _, err := w.deps.Mongodb.Insert(ctx, mongodb.InsertParams{
    CommonParams: mongodb.CommonParams{
      Collection: messagesCollection,
    },
    Document: message,
  }); err != nil {
    return fmt.Errorf("w.deps.Mongodb.Insert: %w", err)
  }

  sentId, err := w.sendNotification(ctx, message)
  if err != nil {
    return fmt.Errorf("w.sendNotification: %w", err)
  }

  message.SetAsSent(sentId)

  if _, err = w.deps.Mongodb.Update(ctx, mongodb.UpdateParams{
    GetParams: mongodb.GetParams{
      CommonParams: mongodb.CommonParams{
        Collection: messagesCollection,
        StructType: models.SendableMessage{},
      },
      Filters: map[string]any{
        "uuid": message.UUID,
      },
    },
    Document: message,
  }); err != nil {
    return fmt.Errorf("w.deps.Mongodb.Update: %w", err)
  }

  log.
    WithFields(log.Fields{
      "message.uuid":    message.UUID,
      "message.chat_id": message.ChatId,
      "message.app_id":  message.Snapshot.AppId,
      "message.sent_id": sentId,
    }).
    Info("watcher: notification sent to telegram chat")

  return nil
}

func (w *Watcher) sendNotification(ctx context.Context, message *models.SendableMessage) (int, error) {
  text := strings.TrimSpace(message.Text.Value)

  if extension.IsImage(message.Snapshot.HeaderImage) {
    sent, err := w.deps.Telegram.SendPhoto(ctx, &tgbot.SendPhotoParams{
      ChatID:  message.ChatId,
      Photo:   &tgmodels.InputFileString{Data: message.Snapshot.HeaderImage},
      Caption: text,
    })
    if err == nil {
      return sent.ID, nil
    }

    log.
      WithFields(log.Fields{
        "message.uuid":    message.UUID,
        "message.chat_id": message.ChatId,
      }).
      Warnf("watcher: photo notification failed, falling back to text: %v", err)
  }

  sent, err := w.deps.Telegram.SendMessage(ctx, &tgbot.SendMessageParams{
    ChatID: message.ChatId,
    Text:   text,
  })
  if err != nil {
    return 0, fmt.Errorf("w.deps.Telegram.SendMessage: %w", err)
  }

  return sent.ID, nil
}
