package concurrent

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"jobboard/pkg/logger"
)

// StatusNotification is emitted when an application moves out of pending.
type StatusNotification struct {
	ApplicationID int64
	UserID        int64
	JobID         int64
	Status        string
}

type NotificationProcessor = func(notification *StatusNotification) error

// NotifierPool delivers status notifications off the request path. The queue
// is bounded; a full queue drops the notification rather than block the
// status update that produced it.
type NotifierPool struct {
	numWorkers int
	queue      chan *StatusNotification
	processor  NotificationProcessor
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	logger     logger.Logger
	started    bool
	mutex      sync.Mutex

	submitted int64
	completed int64
	failed    int64
	dropped   int64
}

func NewNotifierPool(numWorkers int, queueSize int, processor NotificationProcessor, logger logger.Logger) *NotifierPool {
	ctx, cancel := context.WithCancel(context.Background())

	return &NotifierPool{
		numWorkers: numWorkers,
		queue:      make(chan *StatusNotification, queueSize),
		processor:  processor,
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger,
	}
}

func (np *NotifierPool) Start() {
	np.mutex.Lock()
	defer np.mutex.Unlock()

	if np.started {
		return
	}

	np.logger.Info("Bildirim havuzu başlatılıyor", map[string]interface{}{
		"num_workers": np.numWorkers,
		"queue_size":  cap(np.queue),
	})

	for i := 0; i < np.numWorkers; i++ {
		np.wg.Add(1)
		workerID := i
		go func() {
			defer np.wg.Done()
			np.worker(workerID)
		}()
	}

	np.started = true
}

func (np *NotifierPool) Stop() {
	np.mutex.Lock()
	if !np.started {
		np.mutex.Unlock()
		return
	}
	np.started = false
	np.cancel()
	// Closing under the mutex keeps Submit from sending on a closed channel.
	close(np.queue)
	np.mutex.Unlock()

	np.logger.Info("Bildirim havuzu durduruluyor", map[string]interface{}{})
	np.wg.Wait()
}

func (np *NotifierPool) Submit(notification *StatusNotification) bool {
	np.mutex.Lock()
	defer np.mutex.Unlock()

	if !np.started {
		return false
	}

	// Non-blocking send
	select {
	case np.queue <- notification:
		atomic.AddInt64(&np.submitted, 1)
		return true
	default:
		atomic.AddInt64(&np.dropped, 1)
		np.logger.Warn("Bildirim kuyruğu dolu, bildirim atıldı", map[string]interface{}{
			"application_id": notification.ApplicationID,
		})
		return false
	}
}

func (np *NotifierPool) worker(id int) {
	np.logger.Debug("Bildirim işçisi başlatıldı", map[string]interface{}{"worker_id": id})

	for {
		select {
		case <-np.ctx.Done():
			return
		case notification, ok := <-np.queue:
			if !ok {
				return
			}

			startTime := time.Now()
			err := np.processor(notification)

			if err != nil {
				atomic.AddInt64(&np.failed, 1)
				np.logger.Error("Bildirim işlenemedi", map[string]interface{}{
					"worker_id":      id,
					"application_id": notification.ApplicationID,
					"error":          err.Error(),
				})
				continue
			}

			atomic.AddInt64(&np.completed, 1)
			np.logger.Debug("Bildirim işlendi", map[string]interface{}{
				"worker_id":       id,
				"application_id":  notification.ApplicationID,
				"status":          notification.Status,
				"processing_time": time.Since(startTime).String(),
			})
		}
	}
}

type Stats struct {
	Submitted int64
	Completed int64
	Failed    int64
	Dropped   int64
}

func (np *NotifierPool) GetStats() Stats {
	return Stats{
		Submitted: atomic.LoadInt64(&np.submitted),
		Completed: atomic.LoadInt64(&np.completed),
		Failed:    atomic.LoadInt64(&np.failed),
		Dropped:   atomic.LoadInt64(&np.dropped),
	}
}

func (np *NotifierPool) QueueLength() int {
	return len(np.queue)
}
