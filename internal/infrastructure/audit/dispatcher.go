package audit

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 10 * time.Second
)

// Dispatcher writes login audit entries asynchronously so auth requests never
// wait on the audit trail. Entries are sharded over a fixed set of workers by
// owner, keeping per-user log ordering. A full shard drops the entry with an
// error log rather than blocking the login path.
type Dispatcher struct {
	workers []chan domain.LoginLog
	logs    ports.LoginLogRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, logs ports.LoginLogRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.LoginLog, numWorkers),
		logs:    logs,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.LoginLog, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues one audit entry. It implements service.AuditRecorder and
// never blocks the caller.
func (d *Dispatcher) Record(entry domain.LoginLog) {
	if entry.LoginTime.IsZero() {
		entry.LoginTime = time.Now().UTC()
	}
	select {
	case d.workers[d.shardIndex(entry)] <- entry:
	default:
		d.log.Error().
			Str("login_type", entry.LoginType).
			Msg("audit queue full, login log entry dropped")
	}
}

// shardIndex maps an entry deterministically to a worker index. Guest entries
// share one shard key since they carry no user id.
func (d *Dispatcher) shardIndex(entry domain.LoginLog) int {
	key := "guest"
	if entry.UserID != nil {
		key = strconv.FormatInt(*entry.UserID, 10)
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.LoginLog) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := d.logs.Insert(writeCtx, &entry)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("login_type", entry.LoginType).
					Int("worker_id", id).
					Msg("login log write failed")
			}
		}
	}
}
