package convo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ysbenali/wasales-bridge/internal/extract"
	"github.com/ysbenali/wasales-bridge/internal/ledger"
)

// maxUnclearReplies bounds consecutive ambiguous replies in a confirmation
// state before the conversation is handed off to a human.
const maxUnclearReplies = 3

// Config carries the sales parameters and mode flags.
type Config struct {
	Product     string
	Price       string
	NaturalMode bool
}

type service struct {
	repo      Repo
	extractor Extractor
	advisor   Advisor
	gateway   OrderGateway
	outbound  Outbound
	cfg       Config
	log       *zap.Logger

	now func() time.Time
}

func NewService(repo Repo, extractor Extractor, gateway OrderGateway, outbound Outbound, cfg Config, log *zap.Logger) Service {
	return &service{
		repo:      repo,
		extractor: extractor,
		gateway:   gateway,
		outbound:  outbound,
		cfg:       cfg,
		log:       log.Named("convo"),
		now:       time.Now,
	}
}

// HandleIncoming drives one inbound message through the machine: read the
// conversation, extract, decide, persist the order when confirmed, write
// the conversation back as a full replace and push the reply out.
func (s *service) HandleIncoming(ctx context.Context, id, text string) error {
	now := s.now()

	conv, ok := s.repo.Get(id)
	if !ok {
		conv = Conversation{ID: id, State: StateGreeting, CreatedAt: now}
		s.log.Info("conversation started", zap.String("id", id))
	}

	res := s.extractor.Extract(ctx, text)
	if conv.Language == "" || res.Language != "en" {
		conv.Language = res.Language
	}

	conv.AppendMessage(RoleUser, text, now)
	conv.MessageCount++
	conv.LastActivityAt = now

	d := s.decide(&conv, text, res)

	replyText := d.reply
	if d.submit {
		replyText = s.submitOrder(ctx, &conv, now)
	}

	conv.AppendMessage(RoleAgent, replyText, now)
	s.repo.Upsert(conv)

	s.log.Info("handled message",
		zap.String("id", id),
		zap.String("state", string(conv.State)),
		zap.String("language", conv.Language))

	if err := s.outbound.SendText(ctx, id, replyText); err != nil {
		s.log.Warn("outbound send failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

type decision struct {
	reply  string
	submit bool
}

// decide is the transition table. Pure over (conversation, message,
// extraction): the same inputs always give the same next state and reply.
// The one side effect the machine needs, the ledger append, is returned as
// a submit intent and performed by the caller.
func (s *service) decide(conv *Conversation, text string, res extract.Result) decision {
	lang := conv.Language

	switch conv.State {
	case StateGreeting, StateIdle:
		mergeFields(&conv.Fields, res)
		if s.cfg.NaturalMode {
			if adv := s.advisor.Advise(*conv, text, res); adv.ShouldAdvance {
				return s.collect(conv, res)
			}
		}
		conv.State = StateProductInquiry
		return decision{reply: reply(replyWelcome, lang, s.cfg.Product, s.cfg.Price)}

	case StateProductInquiry:
		advance := res.Any() || hasPurchaseIntent(text)
		if !advance && s.cfg.NaturalMode {
			advance = s.advisor.Advise(*conv, text, res).ShouldAdvance
		}
		if !advance {
			return decision{reply: reply(replyPitch, lang, s.cfg.Product, s.cfg.Price)}
		}
		mergeFields(&conv.Fields, res)
		return s.collect(conv, res)

	case StateInfoCollection:
		mergeFields(&conv.Fields, res)
		return s.collect(conv, res)

	case StatePhoneConfirmation:
		if res.Phone.Confidence != extract.ConfidenceNone {
			// the reply itself contains a valid number: adopt it
			conv.Fields.Phone = FieldSlot{Value: res.Phone.Value, Confidence: extract.ConfidenceHigh}
			conv.UnclearCount = 0
			conv.State = StateOrderConfirmation
			return decision{reply: s.summary(conv)}
		}
		switch Classify(text, lang) {
		case VerdictAffirmative:
			conv.UnclearCount = 0
			conv.State = StateOrderConfirmation
			return decision{reply: s.summary(conv)}
		case VerdictNegative:
			conv.UnclearCount = 0
			return decision{reply: reply(replyAskOtherPhone, lang)}
		default:
			return decision{reply: s.unclear(conv, reply(replyConfirmPhone, lang, conv.Fields.Phone.Value))}
		}

	case StateOrderConfirmation:
		switch Classify(text, lang) {
		case VerdictAffirmative:
			conv.UnclearCount = 0
			return decision{submit: true}
		case VerdictNegative:
			conv.UnclearCount = 0
			conv.State = StateInfoCollection
			return decision{reply: reply(replyCorrection, lang)}
		default:
			return decision{reply: s.unclear(conv, s.summary(conv))}
		}

	case StateCompleted:
		return decision{reply: reply(replyCompletedAck, lang)}
	}

	// unknown state, restart the script
	conv.State = StateProductInquiry
	return decision{reply: reply(replyWelcome, lang, s.cfg.Product, s.cfg.Price)}
}

// collect is the INFO_COLLECTION loop body: stay and prompt for the single
// most relevant missing field, or pass the completeness gate. When the
// phone arrived in the message just handled there is nothing to confirm,
// so the machine goes straight to the order summary.
func (s *service) collect(conv *Conversation, res extract.Result) decision {
	if !conv.Fields.Complete() {
		conv.State = StateInfoCollection
		if res.FollowUp != "" {
			return decision{reply: res.FollowUp}
		}
		return decision{reply: askMissing(conv.Fields, conv.Language)}
	}
	if res.Phone.Confidence != extract.ConfidenceNone && res.Phone.Value == conv.Fields.Phone.Value {
		conv.State = StateOrderConfirmation
		return decision{reply: s.summary(conv)}
	}
	conv.State = StatePhoneConfirmation
	return decision{reply: reply(replyConfirmPhone, conv.Language, conv.Fields.Phone.Value)}
}

// unclear counts an ambiguous confirmation reply and either re-asks or,
// at the bound, escalates with the human-handoff message.
func (s *service) unclear(conv *Conversation, reask string) string {
	conv.UnclearCount++
	if conv.UnclearCount >= maxUnclearReplies {
		conv.UnclearCount = 0
		s.log.Info("escalating after repeated unclear replies", zap.String("id", conv.ID))
		return reply(replyHandoff, conv.Language)
	}
	return reask
}

// submitOrder appends to the ledger and advances the state only when the
// append did not fail. A write failure keeps ORDER_CONFIRMATION so the
// customer can retry; completing without a ledger row would be a lie.
func (s *service) submitOrder(ctx context.Context, conv *Conversation, now time.Time) string {
	result := s.gateway.Append(ctx, ledger.Order{
		Name:        conv.Fields.Name.Value,
		City:        conv.Fields.City.Value,
		Address:     conv.Fields.Address.Value,
		Phone:       conv.Fields.Phone.Value,
		Product:     s.cfg.Product,
		Price:       s.cfg.Price,
		SubmittedAt: now,
	})

	switch result.Status {
	case ledger.StatusOK:
		conv.State = StateCompleted
		return reply(replyThanks, conv.Language)
	case ledger.StatusDuplicate:
		conv.State = StateCompleted
		return reply(replyAlreadyRecorded, conv.Language)
	default:
		s.log.Error("ledger append failed",
			zap.String("id", conv.ID),
			zap.String("detail", result.Detail))
		return reply(replyLedgerRetry, conv.Language)
	}
}

// Reset moves a COMPLETED conversation to IDLE and clears its fields; the
// next message greets like a fresh customer.
func (s *service) Reset(id string) bool {
	conv, ok := s.repo.Get(id)
	if !ok || conv.State != StateCompleted {
		return false
	}
	conv.State = StateIdle
	conv.Fields = Fields{}
	conv.UnclearCount = 0
	s.repo.Upsert(conv)
	s.log.Info("conversation reset", zap.String("id", id))
	return true
}

func (s *service) summary(conv *Conversation) string {
	addr := conv.Fields.Address.Value
	if addr == "" {
		addr = "-"
	}
	return reply(replySummary, conv.Language,
		conv.Fields.Name.Value,
		conv.Fields.City.Value,
		addr,
		conv.Fields.Phone.Value,
		s.cfg.Product,
		s.cfg.Price)
}

func askMissing(f Fields, lang string) string {
	switch {
	case f.Name.Value == "":
		return reply(replyAskName, lang)
	case f.City.Value == "":
		return reply(replyAskCity, lang)
	case f.Phone.Value == "":
		return reply(replyAskPhone, lang)
	default:
		return reply(replyAskAddress, lang)
	}
}

// mergeFields folds one extraction into the accumulated fields. A slot is
// replaced only when the candidate's confidence is at least the stored
// one, so a confirmed value is never lost to a weaker guess.
func mergeFields(f *Fields, res extract.Result) {
	mergeSlot(&f.Name, res.Name)
	mergeSlot(&f.City, res.City)
	mergeSlot(&f.Address, res.Address)
	mergeSlot(&f.Phone, res.Phone)
}

func mergeSlot(slot *FieldSlot, c extract.Candidate) {
	if c.Confidence == extract.ConfidenceNone || c.Value == "" {
		return
	}
	if c.Confidence >= slot.Confidence {
		*slot = FieldSlot{Value: c.Value, Confidence: c.Confidence}
	}
}
