package watcher

import (
  "context"
  "errors"
  "fmt"
  "time"

  set "github.com/deckarep/golang-set/v2"
  tgbot "github.com/go-telegram/bot"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/steamfront/internal/deps/storage/mongodb"
  "github.com/ushakovn/steamfront/internal/models"
  "github.com/ushakovn/steamfront/pkg/cache"
  "github.com/ushakovn/steamfront/pkg/steam"
  "github.com/ushakovn/steamfront/pkg/worker"
)

const (
  trackingsCollection = "trackings"
  messagesCollection  = "messages"

  defaultInterval = time.Hour
)

// Watcher periodically re-fetches every tracked app and notifies chats
// about price drops and started discounts.
type Watcher struct {
  config Config
  deps   Dependencies

  // Last notification text hash per chat and app, to not send the
  // same alert twice between snapshot updates.
  sent *cache.Cache[int64, int64, string]
}

type Config struct {
  Interval     time.Duration
  WorkersCount uint8
}

type Dependencies struct {
  Steam    *steam.Client
  Mongodb  *mongodb.Client
  Telegram *tgbot.Bot
}

func NewWatcher(config Config, deps Dependencies) *Watcher {
  if config.Interval == 0 {
    config.Interval = defaultInterval
  }
  if config.WorkersCount == 0 {
    config.WorkersCount = worker.DefaultCount
  }

  return &Watcher{
    config: config,
    deps:   deps,
    sent:   cache.NewCache[int64, int64, string](),
  }
}

func (w *Watcher) Start(ctx context.Context) error {
  ticker := time.NewTicker(w.config.Interval)
  defer ticker.Stop()

  for {
    if err := w.sweep(ctx); err != nil {
      log.Errorf("watcher: sweep failed: %v", err)
    }

    select {
    case <-ctx.Done():
      return ctx.Err()

    case <-ticker.C:
    }
  }
}

type appKey struct {
  AppId   int64
  Country string
}

func (w *Watcher) sweep(ctx context.Context) error {
  log.Info("watcher: sweep started")

  trackings := make([]*models.Tracking, 0)

  err := w.deps.Mongodb.Scan(ctx, mongodb.ScanParams{
    CommonParams: mongodb.CommonParams{
      Collection: trackingsCollection,
      StructType: models.Tracking{},
    },
    Callback: func(_ context.Context, value any) error {
      tracking, ok := value.(*models.Tracking)
      if !ok {
        return fmt.Errorf("cast %v with type: %[1]T to: %T failed", value, new(models.Tracking))
      }

      trackings = append(trackings, tracking)

      return nil
    },
  })
  if err != nil {
    return fmt.Errorf("w.deps.Mongodb.Scan: %w", err)
  }

  // One storefront call per unique app and country pair, regardless of
  // how many chats track it.
  keys := set.NewSet[appKey]()
  byKey := make(map[appKey][]*models.Tracking)

  for _, tracking := range trackings {
    key := appKey{
      AppId:   tracking.AppId,
      Country: tracking.Country,
    }

    keys.Add(key)
    byKey[key] = append(byKey[key], tracking)
  }

  pool := worker.NewPool(ctx, w.config.WorkersCount)

  for _, key := range keys.ToSlice() {
    key := key

    pool.Push(func(ctx context.Context) error {
      return w.handleApp(ctx, key, byKey[key])
    })
  }

  pool.StopWait()

  log.
    WithFields(log.Fields{
      "trackings.count": len(trackings),
      "apps.count":      keys.Cardinality(),
    }).
    Info("watcher: sweep completed")

  return nil
}

func (w *Watcher) handleApp(ctx context.Context, key appKey, trackings []*models.Tracking) error {
  app, err := w.deps.Steam.AppDetails(ctx, steam.AppDetailsParams{
    AppId:   key.AppId,
    Country: key.Country,
  })
  if err != nil {
    if errors.Is(err, steam.ErrNotFound) {
      log.
        WithFields(log.Fields{
          "app.id":      key.AppId,
          "app.country": key.Country,
        }).
        Warn("watcher: tracked app not found in store: skipped")

      return nil
    }

    return fmt.Errorf("w.deps.Steam.AppDetails: %w", err)
  }

  fresh := models.NewAppSnapshot(app)

  for _, tracking := range trackings {
    if err = w.handleTracking(ctx, tracking, fresh); err != nil {
      log.
        WithFields(log.Fields{
          "tracking.chat_id": tracking.ChatId,
          "tracking.app_id":  tracking.AppId,
        }).
        Errorf("watcher: tracking handle failed: %v", err)
    }
  }

  return nil
}

func (w *Watcher) handleTracking(ctx context.Context, tracking *models.Tracking, fresh models.AppSnapshot) error {
  diff := models.NewPriceDiff(tracking.Snapshot, fresh)

  result := models.Sendable(tracking.ChatId).
    SetSnapshot(fresh).
    SetPriceDiffPtr(diff).
    BuildPriceDiffMessage()

  if result.IsValid && !w.isAlreadySent(tracking.ChatId, fresh.AppId, result.Message.Text.SHA256) {
    if err := w.handleSendableMessage(ctx, &result.Message); err != nil {
      return fmt.Errorf("w.handleSendableMessage: %w", err)
    }

    w.sent.Set(cache.Key[int64, int64]{P: tracking.ChatId, S: fresh.AppId}, result.Message.Text.SHA256)
  }

  tracking.Snapshot = fresh
  tracking.SetCheckedAt()

  _, err := w.deps.Mongodb.Update(ctx, mongodb.UpdateParams{
    GetParams: mongodb.GetParams{
      CommonParams: mongodb.CommonParams{
        Collection: trackingsCollection,
        StructType: models.Tracking{},
      },
      Filters: map[string]any{
        "chat_id": tracking.ChatId,
        "app_id":  tracking.AppId,
      },
    },
    Document: tracking,
  })
  if err != nil {
    return fmt.Errorf("w.deps.Mongodb.Update: %w", err)
  }

  return nil
}

func (w *Watcher) isAlreadySent(chatId, appId int64, sha256 string) bool {
  value, ok := w.sent.Get(cache.Key[int64, int64]{P: chatId, S: appId})

  return ok && value == sha256
}
