package convo

import (
	"context"
	"time"

	"github.com/ysbenali/wasales-bridge/internal/extract"
	"github.com/ysbenali/wasales-bridge/internal/ledger"
)

// State of one conversation. Transitions only follow the table implemented
// in service.go.
type State string

const (
	StateGreeting          State = "GREETING"
	StateProductInquiry    State = "PRODUCT_INQUIRY"
	StateInfoCollection    State = "INFO_COLLECTION"
	StatePhoneConfirmation State = "PHONE_CONFIRMATION"
	StateOrderConfirmation State = "ORDER_CONFIRMATION"
	StateCompleted         State = "COMPLETED"
	StateIdle              State = "IDLE"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is one entry of the bounded in-conversation log.
type Message struct {
	Role Role
	Text string
	At   time.Time
}

// MaxMessages bounds the per-conversation log; the oldest entries are
// dropped on overflow.
const MaxMessages = 20

// FieldSlot keeps a collected value together with the confidence it was
// stored at, so a weaker later candidate cannot silently replace it.
type FieldSlot struct {
	Value      string
	Confidence extract.Confidence
}

// Fields accumulated over a conversation.
type Fields struct {
	Name    FieldSlot
	City    FieldSlot
	Address FieldSlot
	Phone   FieldSlot
}

// Complete reports whether the mandatory trio (name, city, phone) is
// present. Address stays optional.
func (f Fields) Complete() bool {
	return f.Name.Value != "" && f.City.Value != "" && f.Phone.Value != ""
}

// Conversation is the evolving record of one customer's chat session,
// keyed by their phone-number-shaped transport id.
type Conversation struct {
	ID             string
	State          State
	Fields         Fields
	Messages       []Message
	CreatedAt      time.Time
	LastActivityAt time.Time
	MessageCount   int
	Language       string
	// UnclearCount tracks consecutive ambiguous replies inside a
	// confirmation state; at the escalation bound a human-handoff message
	// is sent.
	UnclearCount int
}

// AppendMessage adds to the bounded log.
func (c *Conversation) AppendMessage(role Role, text string, at time.Time) {
	c.Messages = append(c.Messages, Message{Role: role, Text: text, At: at})
	if len(c.Messages) > MaxMessages {
		c.Messages = c.Messages[len(c.Messages)-MaxMessages:]
	}
}

// Repo is the conversation repository. Pure cache semantics: in-memory,
// no durability; a lost conversation is rebuilt from the next inbound
// message. Get hands out a copy and Upsert replaces the whole record, so
// concurrent handlers for one id resolve as last-writer-wins (documented
// race, see store.go).
type Repo interface {
	Get(id string) (Conversation, bool)
	Upsert(conv Conversation)
	EvictOlderThan(cutoff time.Time) int
}

// Outbound delivers text back through the chat transport.
type Outbound interface {
	SendText(ctx context.Context, conversationID, text string) error
}

// Extractor is the field extraction collaborator.
type Extractor interface {
	Extract(ctx context.Context, text string) extract.Result
}

// OrderGateway records a completed order exactly once per phone number.
type OrderGateway interface {
	Append(ctx context.Context, o ledger.Order) ledger.Result
}

// Service is the conversation orchestrator.
type Service interface {
	HandleIncoming(ctx context.Context, conversationID, text string) error
	Reset(conversationID string) bool
}
