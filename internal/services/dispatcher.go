package services

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Dispatcher is the outbound event queue. Transitions publish into it and
// return immediately; a pool of workers delivers to the registered sinks.
type Dispatcher interface {
	Start(ctx context.Context)
	Stop()
	Publish(event Event)
}

type dispatcher struct {
	sinks   []Sink
	queue   chan Event
	workers int

	group    *errgroup.Group
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewDispatcher(workers, queueSize int, sinks ...Sink) Dispatcher {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 512
	}
	return &dispatcher{
		sinks:    sinks,
		queue:    make(chan Event, queueSize),
		workers:  workers,
		stopChan: make(chan struct{}),
	}
}

func (d *dispatcher) Start(ctx context.Context) {
	d.group, ctx = errgroup.WithContext(ctx)

	log.Printf("🚀 Starting event dispatcher with %d workers\n", d.workers)

	for i := 0; i < d.workers; i++ {
		workerID := i + 1
		d.group.Go(func() error {
			return d.deliverLoop(ctx, workerID)
		})
	}
}

func (d *dispatcher) Stop() {
	d.stopOnce.Do(func() {
		log.Println("🛑 Stopping event dispatcher...")
		close(d.stopChan)
		if d.group != nil {
			if err := d.group.Wait(); err != nil {
				log.Printf("⚠️  Dispatcher stopped with error: %v\n", err)
			}
		}
		log.Println("✅ Event dispatcher stopped")
	})
}

// Publish never blocks the publishing command. When the queue is full the
// event is dropped and logged; delivery is best-effort.
func (d *dispatcher) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	select {
	case <-d.stopChan:
		log.Printf("⚠️  Dispatcher stopped, dropping %s for %s\n", event.Type, event.EntityID)
	case d.queue <- event:
	default:
		log.Printf("⚠️  Event queue full, dropping %s for %s\n", event.Type, event.EntityID)
	}
}

func (d *dispatcher) deliverLoop(ctx context.Context, workerID int) error {
	for {
		select {
		case <-d.stopChan:
			// Drain the queue so a graceful shutdown keeps its audit trail.
			for {
				select {
				case event := <-d.queue:
					d.deliver(ctx, event)
				default:
					log.Printf("📭 Dispatcher worker #%d stopped\n", workerID)
					return nil
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		case event := <-d.queue:
			d.deliver(ctx, event)
		}
	}
}

func (d *dispatcher) deliver(ctx context.Context, event Event) {
	for _, sink := range d.sinks {
		if err := sink.Deliver(ctx, event); err != nil {
			log.Printf("⚠️  Sink %s failed to deliver %s for %s: %v\n",
				sink.Name(), event.Type, event.EntityID, err)
		}
	}
}
