package shared

import (
	"encoding/json"
	"fmt"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload
// suitable for the outbox.
//
// The domain layer intentionally avoids serialization concerns; this adapter
// extracts primitives (Money as cents plus currency) to keep payloads useful.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		return marshal(map[string]interface{}{
			"product_id":     e.ProductID,
			"name":           e.Name,
			"sku":            e.Sku,
			"category":       e.Category,
			"price":          moneyPayload(e.Price),
			"stock_quantity": e.StockQuantity,
			"created_at":     e.CreatedAt,
		})

	case *domain.StockReducedEvent:
		return marshal(map[string]interface{}{
			"product_id": e.ProductID,
			"quantity":   e.Quantity,
			"remaining":  e.Remaining,
			"reduced_at": e.ReducedAt,
		})

	case *domain.StockIncreasedEvent:
		return marshal(map[string]interface{}{
			"product_id":   e.ProductID,
			"quantity":     e.Quantity,
			"remaining":    e.Remaining,
			"increased_at": e.IncreasedAt,
		})

	case *domain.PriceChangedEvent:
		return marshal(map[string]interface{}{
			"product_id": e.ProductID,
			"old_price":  moneyPayload(e.OldPrice),
			"new_price":  moneyPayload(e.NewPrice),
			"changed_at": e.ChangedAt,
		})

	case *domain.ProductRatedEvent:
		return marshal(map[string]interface{}{
			"product_id":     e.ProductID,
			"rating":         e.Rating,
			"average_rating": e.AverageRating,
			"review_count":   e.ReviewCount,
			"rated_at":       e.RatedAt,
		})

	case *domain.DiscountAppliedEvent:
		return marshal(map[string]interface{}{
			"product_id":     e.ProductID,
			"percentage":     e.Percentage,
			"discount_price": moneyPayload(e.DiscountPrice),
			"applied_at":     e.AppliedAt,
		})

	case *domain.DiscountRemovedEvent:
		return marshal(map[string]interface{}{
			"product_id": e.ProductID,
			"removed_at": e.RemovedAt,
		})

	case *domain.ProductDeletedEvent:
		return marshal(map[string]interface{}{
			"product_id": e.ProductID,
			"deleted_by": e.DeletedBy,
			"deleted_at": e.DeletedAt,
		})

	case *domain.ProductRestoredEvent:
		return marshal(map[string]interface{}{
			"product_id":  e.ProductID,
			"restored_at": e.RestoredAt,
		})

	case *domain.ProductActivatedEvent:
		return marshal(map[string]interface{}{
			"product_id":   e.ProductID,
			"activated_at": e.ActivatedAt,
		})

	case *domain.ProductDeactivatedEvent:
		return marshal(map[string]interface{}{
			"product_id":     e.ProductID,
			"deactivated_at": e.DeactivatedAt,
		})

	case *domain.InventoryAdjustedEvent:
		return marshal(map[string]interface{}{
			"product_id":  e.ProductID,
			"kind":        e.Kind,
			"quantity":    e.Quantity,
			"available":   e.Available,
			"reserved":    e.Reserved,
			"adjusted_at": e.AdjustedAt,
		})
	}

	// Fallback: try to marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}

func marshal(payload map[string]interface{}) (string, error) {
	b, err := json.Marshal(payload)
	return string(b), err
}

func moneyPayload(m *domain.Money) map[string]interface{} {
	if m == nil {
		return nil
	}
	return map[string]interface{}{
		"cents":    m.Cents(),
		"currency": m.Currency(),
	}
}
