package telegram

import (
  "context"
  "fmt"
  "strings"

  tgbot "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
  "github.com/samber/lo"
)

func findChatIdInUpdate(update *tgmodels.Update) (int64, bool) {
  if update == nil || update.Message == nil {
    return 0, false
  }
  return update.Message.Chat.ID, true
}

func (b *Bot) sendMessage(ctx context.Context, chatId int64, text string) error {
  _, err := b.deps.Telegram.SendMessage(ctx, &tgbot.SendMessageParams{
    ChatID: chatId,
    Text:   strings.TrimSpace(text),
    LinkPreviewOptions: &tgmodels.LinkPreviewOptions{
      IsDisabled: lo.ToPtr(true),
    },
  })
  if err != nil {
    return fmt.Errorf("b.deps.Telegram.SendMessage: %w", err)
  }

  return nil
}

func (b *Bot) replyOrLog(ctx context.Context, chatId int64, text string) {
  if err := b.sendMessage(ctx, chatId, text); err != nil {
    log.Errorf("telegram.replyOrLog: b.sendMessage: %v", err)
  }
}
