package ledger

import (
	"context"
	"time"
)

// Status of one append attempt.
type Status string

const (
	StatusOK        Status = "ok"
	StatusDuplicate Status = "duplicate"
	StatusError     Status = "error"
)

// Order is the completed order handed to the gateway. The only construct
// this package accepts from the conversation side.
type Order struct {
	Name        string
	City        string
	Address     string
	Phone       string
	Product     string
	Price       string
	SubmittedAt time.Time
}

// Row is the exact shape written to the ledger. The ledger is schema-less
// text storage, so field order and presence must stay stable.
type Row struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Product   string `json:"product"`
	Price     string `json:"price"`
	Timestamp string `json:"timestamp"`
}

// Ledger is the external append-only store of completed orders.
type Ledger interface {
	AppendRow(ctx context.Context, row Row) error
	ListPhones(ctx context.Context) (map[string]struct{}, error)
}

// Result of a gateway append.
type Result struct {
	Status Status
	Detail string
}
