package contracts

import (
	"context"

	"github.com/addismart/catalog-service/internal/pkg/committer"
)

// Committer is a small abstraction the usecases call to apply a collection
// of mutations atomically. This keeps usecases independent of the Spanner
// driver details.
type Committer interface {
	// Apply atomically applies the provided mutation plan.
	Apply(ctx context.Context, plan *committer.Plan) error
}
