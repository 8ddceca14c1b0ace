package outbox

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"github.com/addismart/catalog-service/internal/metrics"
	"github.com/addismart/catalog-service/internal/models/m_outbox"
)

const defaultBatchSize = 100

// Relay moves pending outbox rows to the broker. Rows are marked
// published only after the broker acknowledges, so a crash between the
// two steps re-delivers rather than drops; consumers dedupe on event_id.
type Relay struct {
	client    *spanner.Client
	publisher Publisher
	topic     string

	pollInterval time.Duration
	batchSize    int64

	metrics *metrics.CatalogMetrics
	logger  *log.Entry
}

func NewRelay(client *spanner.Client, publisher Publisher, topic string, pollInterval time.Duration, m *metrics.CatalogMetrics) *Relay {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Relay{
		client:       client,
		publisher:    publisher,
		topic:        topic,
		pollInterval: pollInterval,
		batchSize:    defaultBatchSize,
		metrics:      m,
		logger:       log.WithField("component", "outbox-relay"),
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	r.logger.WithField("poll_interval", r.pollInterval).Info("relay started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("relay stopped")
			return
		case <-ticker.C:
			if err := r.drainOnce(ctx); err != nil {
				r.logger.WithError(err).Error("drain outbox")
			}
		}
	}
}

type pendingRow struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
}

func (r *Relay) drainOnce(ctx context.Context) error {
	rows, err := r.fetchPending(ctx)
	if err != nil {
		return err
	}
	if r.metrics != nil {
		r.metrics.SetOutboxPending(len(rows))
	}

	for _, row := range rows {
		if err := r.publisher.Publish(r.topic, row.AggregateID, []byte(row.Payload)); err != nil {
			if r.metrics != nil {
				r.metrics.RecordOutboxPublishFailed()
			}
			// Stop the batch; the row stays pending and is retried
			// on the next poll.
			return err
		}

		mut := m_outbox.MarkPublishedMutation(row.EventID, time.Now().UTC())
		if _, err := r.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
			return err
		}
		if r.metrics != nil {
			r.metrics.RecordOutboxPublished()
		}
		r.logger.WithFields(log.Fields{
			"event_id":   row.EventID,
			"event_type": row.EventType,
		}).Debug("event published")
	}
	return nil
}

func (r *Relay) fetchPending(ctx context.Context) ([]pendingRow, error) {
	stmt := spanner.Statement{
		SQL: "SELECT event_id, event_type, aggregate_id, payload FROM " + m_outbox.TableName +
			" WHERE status = @status ORDER BY created_at ASC LIMIT @limit",
		Params: map[string]interface{}{
			"status": m_outbox.StatusPending,
			"limit":  r.batchSize,
		},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []pendingRow
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var p pendingRow
		if err := row.Columns(&p.EventID, &p.EventType, &p.AggregateID, &p.Payload); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}
