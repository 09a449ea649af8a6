package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// rowTimestampLayout is the human-readable form operators see in the sheet.
const rowTimestampLayout = "2006-01-02 15:04:05"

// Gateway performs the idempotent append of a completed order. The ledger
// itself has no unique-key constraint, so the duplicate guard lives here:
// existing phone numbers are read before every write. That read-then-write
// is best effort — two concurrent appends for the same phone can both pass
// the check before either row is visible. Accepted limitation.
type Gateway struct {
	ledger  Ledger
	timeout time.Duration
	log     *zap.Logger
}

func NewGateway(l Ledger, timeout time.Duration, log *zap.Logger) *Gateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Gateway{ledger: l, timeout: timeout, log: log.Named("ledger")}
}

// Append writes the order unless its phone number is already recorded.
// One retry on a failed write; after that the error is surfaced so the
// caller can keep the conversation open instead of falsely completing it.
func (g *Gateway) Append(ctx context.Context, o Order) Result {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	phones, err := g.ledger.ListPhones(ctx)
	if err != nil {
		g.log.Warn("phone listing failed", zap.Error(err))
		return Result{Status: StatusError, Detail: "phone listing failed: " + err.Error()}
	}
	if _, seen := phones[o.Phone]; seen {
		g.log.Info("duplicate order skipped", zap.String("phone", o.Phone))
		return Result{Status: StatusDuplicate, Detail: "phone already recorded"}
	}

	row := Row{
		Name:      o.Name,
		City:      o.City,
		Address:   o.Address,
		Phone:     o.Phone,
		Product:   o.Product,
		Price:     o.Price,
		Timestamp: o.SubmittedAt.Format(rowTimestampLayout),
	}

	if err := g.ledger.AppendRow(ctx, row); err != nil {
		g.log.Warn("append failed, retrying once", zap.Error(err))
		if err = g.ledger.AppendRow(ctx, row); err != nil {
			g.log.Error("append failed after retry", zap.Error(err), zap.String("phone", o.Phone))
			return Result{Status: StatusError, Detail: err.Error()}
		}
	}

	g.log.Info("order recorded",
		zap.String("phone", o.Phone),
		zap.String("city", o.City),
		zap.String("product", o.Product))
	return Result{Status: StatusOK}
}
