package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLedger struct {
	rows       []Row
	appendErrs []error
	listErr    error
	listCalls  int
}

func (f *fakeLedger) AppendRow(_ context.Context, row Row) error {
	if len(f.appendErrs) > 0 {
		err := f.appendErrs[0]
		f.appendErrs = f.appendErrs[1:]
		if err != nil {
			return err
		}
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeLedger) ListPhones(_ context.Context) (map[string]struct{}, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make(map[string]struct{}, len(f.rows))
	for _, r := range f.rows {
		out[r.Phone] = struct{}{}
	}
	return out, nil
}

func testOrder() Order {
	return Order{
		Name:        "Ahmed",
		City:        "Casablanca",
		Address:     "rue 10 hay salam",
		Phone:       "+212661234567",
		Product:     "Smart Watch X1",
		Price:       "299 MAD",
		SubmittedAt: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
	}
}

func TestGateway_IdempotentAppend(t *testing.T) {
	l := &fakeLedger{}
	g := NewGateway(l, time.Second, zap.NewNop())

	first := g.Append(context.Background(), testOrder())
	require.Equal(t, StatusOK, first.Status)
	require.Len(t, l.rows, 1)

	second := g.Append(context.Background(), testOrder())
	require.Equal(t, StatusDuplicate, second.Status)
	// exactly one row, the second call never wrote
	require.Len(t, l.rows, 1)
}

func TestGateway_RowShape(t *testing.T) {
	l := &fakeLedger{}
	g := NewGateway(l, time.Second, zap.NewNop())

	g.Append(context.Background(), testOrder())

	require.Equal(t, Row{
		Name:      "Ahmed",
		City:      "Casablanca",
		Address:   "rue 10 hay salam",
		Phone:     "+212661234567",
		Product:   "Smart Watch X1",
		Price:     "299 MAD",
		Timestamp: "2025-06-01 14:30:00",
	}, l.rows[0])
}

func TestGateway_RetriesOnceOnWriteFailure(t *testing.T) {
	l := &fakeLedger{appendErrs: []error{errors.New("transient")}}
	g := NewGateway(l, time.Second, zap.NewNop())

	res := g.Append(context.Background(), testOrder())
	require.Equal(t, StatusOK, res.Status)
	require.Len(t, l.rows, 1)
}

func TestGateway_ErrorAfterRetry(t *testing.T) {
	l := &fakeLedger{appendErrs: []error{errors.New("down"), errors.New("still down")}}
	g := NewGateway(l, time.Second, zap.NewNop())

	res := g.Append(context.Background(), testOrder())
	require.Equal(t, StatusError, res.Status)
	require.Contains(t, res.Detail, "still down")
	require.Empty(t, l.rows)
}

func TestGateway_ListFailureIsError(t *testing.T) {
	l := &fakeLedger{listErr: errors.New("unreachable")}
	g := NewGateway(l, time.Second, zap.NewNop())

	res := g.Append(context.Background(), testOrder())
	require.Equal(t, StatusError, res.Status)
	require.Equal(t, 1, l.listCalls)
	// nothing may be written blind
	require.Empty(t, l.rows)
}
