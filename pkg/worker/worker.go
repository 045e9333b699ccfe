package worker

import (
  "context"
  "sync"

  log "github.com/sirupsen/logrus"
)

// DefaultCount bounds concurrent storefront requests during a watcher sweep.
const DefaultCount = 5

type Call func(ctx context.Context) error

// Pool runs pushed calls on a fixed number of goroutines. The watcher
// fans one call per tracked app out over it, so a slow storefront
// response stalls at most one worker.
type Pool struct {
  count   uint8
  calls   chan Call
  done    chan struct{}
  stopped bool
}

func NewPool(ctx context.Context, count uint8) Pool {
  pool := Pool{
    count: count,
    calls: make(chan Call),
    done:  make(chan struct{}),
  }
  pool.start(ctx)

  return pool
}

func (p *Pool) start(ctx context.Context) {
  var wg sync.WaitGroup

  wg.Add(int(p.count))

  for index := 0; index < int(p.count); index++ {
    go func() {
      defer wg.Done()

      for {
        select {
        case <-ctx.Done():
          log.Warn("worker.pool: context cancelled: worker stopped")
          return

        case call, ok := <-p.calls:
          if !ok {
            return
          }
          if err := call(ctx); err != nil {
            log.Errorf("worker.pool: worker call failed: %v", err)
          }
        }
      }
    }()
  }

  go func() {
    wg.Wait()

    p.done <- struct{}{}
  }()
}

// Push blocks until a worker picks the call up.
func (p *Pool) Push(call Call) {
  p.calls <- call
}

// StopWait closes the queue and blocks until the in-flight calls drain.
func (p *Pool) StopWait() {
  if p.stopped {
    return
  }
  close(p.calls)

  <-p.done

  p.stopped = true
}
