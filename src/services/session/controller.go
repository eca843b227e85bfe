// Package session owns the active conversation, the archive of past
// conversations, and the free-tier quota gate. It is a single-actor state
// machine: nothing here is safe for concurrent use, matching the single
// UI goroutine that drives it.
package session

import (
	"strings"
	"time"

	"hexchat/src/models"
	"hexchat/src/services/knowledge"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seed welcome texts. The first session greets in full; sessions started with
// "new chat" use the shorter re-welcome.
const (
	welcomeFirst = "💪 What's good, future tech mogul! Welcome to the HEX HUSTLER AI - your personal coding mentor and motivation machine! 🚀\n\nI'm HEX AI, packed with 4+ years of full-stack development wisdom, BCAD degree knowledge, and that relentless HUSTLER SPIRIT! Whether you need:\n\n🔥 Technical guidance on Java, C#, React Native, or any dev stack\n💡 Career advice from someone who's been grinding since high school\n⚡ Motivation to keep pushing when the code gets tough\n🎯 Real talk about building your own tech empire\n\nI'm here to help you LEVEL UP! What's your first move, hustler? 💎"

	welcomeAgain = "💪 Ready for another round, tech warrior? Let's keep building your empire! What's your next challenge? 🚀"
)

// State is the controller's position in the submit/reply cycle.
type State int

const (
	// Idle means the controller is ready for a submission.
	Idle State = iota
	// AwaitingResponse spans the gap between a user message being appended
	// and its bot reply being delivered.
	AwaitingResponse
)

// Outcome classifies the result of a Submit call.
type Outcome int

const (
	// Accepted: the user message was appended and a reply is pending.
	Accepted Outcome = iota
	// RejectedEmpty: the submission was empty after trimming; nothing changed.
	RejectedEmpty
	// RejectedBusy: a reply is still pending; nothing changed.
	RejectedBusy
	// UpgradeRequired: the free quota is spent; nothing was appended and the
	// caller should surface the paywall. This is control flow, not an error.
	UpgradeRequired
)

// PendingReply is the deferred bot reply for an accepted submission. It is
// tagged with the session it was issued against so a stale delivery (after
// the user switched or restarted chats) can be detected and discarded.
type PendingReply struct {
	SessionID string
	Question  string
	Delay     time.Duration
}

// SubmitResult is what Submit hands back to the presentation layer.
type SubmitResult struct {
	Outcome Outcome
	Reply   *PendingReply // non-nil only when Outcome == Accepted
}

// Config carries the tunable knobs of the controller. Nothing is persisted,
// so the quota naturally resets on restart.
type Config struct {
	FreeLimit   int           // accepted submissions per free epoch
	ReplyDelay  time.Duration // simulated thinking time before the bot reply
	MaxInputLen int           // submissions are truncated to this many runes
}

// DefaultConfig is 5 free questions, a 2 second reply delay, and a 500
// character input cap.
func DefaultConfig() Config {
	return Config{
		FreeLimit:   5,
		ReplyDelay:  2 * time.Second,
		MaxInputLen: 500,
	}
}

// Matcher produces a canned answer for a user question.
type Matcher func(question string) knowledge.Answer

// Hooks are the controller's transition-point callbacks. All are optional.
type Hooks struct {
	// UpgradeRequired fires when a submission is blocked by the quota gate.
	UpgradeRequired func()
	// PremiumActivated fires when GrantPremium succeeds.
	PremiumActivated func()
}

// Controller is the session/quota state machine. One instance owns all chat
// state for the process; hand it around by pointer.
type Controller struct {
	cfg   Config
	match Matcher
	hooks Hooks
	log   *zap.Logger
	now   func() time.Time

	state         State
	active        *models.ChatSession
	archive       []*models.ChatSession
	questionCount int
	premium       bool
}

// Option customizes a Controller at construction time.
type Option func(*Controller)

// WithHooks installs transition-point callbacks.
func WithHooks(h Hooks) Option {
	return func(c *Controller) { c.hooks = h }
}

// WithLogger replaces the no-op default logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithClock injects the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New builds a controller with a freshly seeded first session.
func New(cfg Config, match Matcher, opts ...Option) *Controller {
	c := &Controller{
		cfg:   cfg,
		match: match,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.active = c.seedSession(welcomeFirst)
	return c
}

func (c *Controller) seedSession(welcome string) *models.ChatSession {
	now := c.now()
	return &models.ChatSession{
		ID:        uuid.NewString(),
		Title:     models.DefaultTitle,
		CreatedAt: now,
		Messages: []models.Message{{
			ID:        uuid.NewString(),
			Text:      welcome,
			Author:    models.AuthorBot,
			CreatedAt: now,
		}},
	}
}

// Submit runs the quota check and, when it passes, appends the user message
// and returns the pending reply to schedule. Empty input and submissions made
// while a reply is pending are rejected without side effects.
func (c *Controller) Submit(text string) SubmitResult {
	if c.state != Idle {
		return SubmitResult{Outcome: RejectedBusy}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return SubmitResult{Outcome: RejectedEmpty}
	}
	if runes := []rune(trimmed); len(runes) > c.cfg.MaxInputLen {
		trimmed = string(runes[:c.cfg.MaxInputLen])
	}

	if !c.premium && c.questionCount >= c.cfg.FreeLimit {
		c.log.Info("free quota exhausted",
			zap.Int("question_count", c.questionCount),
			zap.Int("free_limit", c.cfg.FreeLimit))
		if c.hooks.UpgradeRequired != nil {
			c.hooks.UpgradeRequired()
		}
		return SubmitResult{Outcome: UpgradeRequired}
	}

	c.active.Append(models.Message{
		ID:        uuid.NewString(),
		Text:      trimmed,
		Author:    models.AuthorUser,
		CreatedAt: c.now(),
	})
	c.questionCount++
	c.state = AwaitingResponse

	return SubmitResult{
		Outcome: Accepted,
		Reply: &PendingReply{
			SessionID: c.active.ID,
			Question:  trimmed,
			Delay:     c.cfg.ReplyDelay,
		},
	}
}

// Deliver completes a pending reply: it matches the question against the
// knowledge base and appends the bot message. A reply whose session is no
// longer active is discarded silently; the session reference was captured at
// submission time and must not be re-resolved to whatever is active now.
func (c *Controller) Deliver(reply PendingReply) bool {
	if c.active.ID != reply.SessionID || c.state != AwaitingResponse {
		c.log.Debug("discarding stale bot reply",
			zap.String("reply_session", reply.SessionID),
			zap.String("active_session", c.active.ID))
		return false
	}

	answer := c.match(reply.Question)
	c.active.Append(models.Message{
		ID:        uuid.NewString(),
		Text:      answer.Text(),
		Author:    models.AuthorBot,
		CreatedAt: c.now(),
	})
	c.state = Idle
	return true
}

// StartNewChat archives the active session (when it holds user messages) and
// replaces it with a freshly seeded one. The free epoch restarts; premium is
// untouched. Any reply still in flight for the old session will be discarded
// by Deliver's session tag check.
func (c *Controller) StartNewChat() {
	if c.active.HasUserMessages() {
		c.active.Title = models.DeriveTitle(c.active.FirstUserMessage())
		c.archive = append([]*models.ChatSession{c.active}, c.archive...)
		c.log.Info("session archived",
			zap.String("session_id", c.active.ID),
			zap.String("title", c.active.Title))
	}
	c.active = c.seedSession(welcomeAgain)
	c.questionCount = 0
	c.state = Idle
}

// GrantPremium lifts the quota gate for the rest of the process lifetime.
// There is no downgrade. The caller is trusted unconditionally; payment
// reconciliation happens outside the app.
func (c *Controller) GrantPremium() {
	c.premium = true
	c.questionCount = 0
	c.log.Info("premium granted")
	if c.hooks.PremiumActivated != nil {
		c.hooks.PremiumActivated()
	}
}

// LoadSession re-activates an archived session. It stays in the archive; the
// quota is recomputed from its user messages so resuming an old chat
// re-applies the questions it already consumed.
func (c *Controller) LoadSession(id string) error {
	for _, s := range c.archive {
		if s.ID == id {
			c.active = s
			c.questionCount = s.UserMessageCount()
			c.state = Idle
			return nil
		}
	}
	return &models.NotFoundError{Message: "no archived session with id " + id}
}

// DeleteArchivedSession removes one archived session. The active session and
// quota are unaffected.
func (c *Controller) DeleteArchivedSession(id string) error {
	for i, s := range c.archive {
		if s.ID == id {
			c.archive = append(c.archive[:i], c.archive[i+1:]...)
			return nil
		}
	}
	return &models.NotFoundError{Message: "no archived session with id " + id}
}

// ClearArchive drops every archived session. The active session survives.
func (c *Controller) ClearArchive() {
	c.archive = nil
}

// Active returns the live session.
func (c *Controller) Active() *models.ChatSession { return c.active }

// Archive returns the archived sessions, newest first.
func (c *Controller) Archive() []*models.ChatSession { return c.archive }

// State returns the controller's current state.
func (c *Controller) State() State { return c.state }

// QuestionCount returns the questions consumed in the current free epoch.
func (c *Controller) QuestionCount() int { return c.questionCount }

// QuestionsLeft returns how many free questions remain, never negative.
func (c *Controller) QuestionsLeft() int {
	left := c.cfg.FreeLimit - c.questionCount
	if left < 0 {
		return 0
	}
	return left
}

// IsPremium reports whether the quota gate is lifted.
func (c *Controller) IsPremium() bool { return c.premium }

// FreeLimit returns the configured free-epoch quota.
func (c *Controller) FreeLimit() int { return c.cfg.FreeLimit }
