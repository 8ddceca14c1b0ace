package shared

import (
	"time"

	"github.com/google/uuid"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/models/m_outbox"
	"github.com/addismart/catalog-service/internal/pkg/committer"
)

// AddOutboxMuts drains domain events into pending outbox insert mutations
// on the plan. Every write usecase calls this before committing.
func AddOutboxMuts(plan *committer.Plan, outboxRepo contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outboxRepo.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       m_outbox.StatusPending,
			CreatedAtUTC: now,
		}))
	}
	return nil
}
