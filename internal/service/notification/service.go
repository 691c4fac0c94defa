package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/notification"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/sse"
)

// Config holds notification service configuration
type Config struct {
	BatchSize     int           // default: 50
	FlushInterval time.Duration // default: 2 seconds
	QueueSize     int           // default: 500
}

type service struct {
	repo   notification.Repository
	hub    *sse.Hub
	config Config

	queue  chan notification.CreateNotificationRequest
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService starts a background worker that batch-inserts
// queued notifications and pushes them to open SSE streams. The lifecycle
// manager enqueues on terminal approve/reject transitions only.
func NewNotificationService(repo notification.Repository, hub *sse.Hub, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 50
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 2 * time.Second
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 500
	}

	s := &service{
		repo:   repo,
		hub:    hub,
		config: cfg,
		queue:  make(chan notification.CreateNotificationRequest, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

// Notify enqueues a notification without blocking the caller. When the queue
// is full the notification is dropped with a log line rather than stalling a
// request transition.
func (s *service) Notify(req notification.CreateNotificationRequest) {
	select {
	case s.queue <- req:
	default:
		slog.Warn("notification queue full, dropping", "recipient_id", req.RecipientID, "type", string(req.Type))
	}
}

// Stop flushes the queue and stops the worker.
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func (s *service) worker() {
	defer s.wg.Done()

	batch := make([]notification.CreateNotificationRequest, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifications := make([]*notification.Notification, len(batch))
		for i, req := range batch {
			notifications[i] = &notification.Notification{
				ID:          uuid.New().String(),
				RecipientID: req.RecipientID,
				Type:        req.Type,
				Title:       req.Title,
				Message:     req.Message,
				Data:        req.Data,
				IsRead:      false,
				CreatedAt:   time.Now(),
			}
		}

		if err := s.repo.CreateBatch(ctx, notifications); err != nil {
			slog.Error("failed to batch insert notifications", "error", err, "count", len(notifications))
		} else {
			for _, n := range notifications {
				s.hub.Publish(n.RecipientID, sse.Event{
					EmployeeID: n.RecipientID,
					Event:      "notification",
					Data:       n,
				})
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain anything still queued before the final flush.
			for {
				select {
				case req := <-s.queue:
					batch = append(batch, req)
				default:
					flush()
					return
				}
			}
		}
	}
}
