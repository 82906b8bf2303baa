package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/couvx/chatbot/config"
	apperrors "github.com/couvx/chatbot/internal/errors"
	"github.com/couvx/chatbot/internal/logger"
	"github.com/couvx/chatbot/model"
)

// Assistant replies.
const (
	FoundMessage      = "Berikut adalah hasil temuan saya:"
	notFoundFormat    = "Maaf, tidak ditemukan data untuk **'%s'**."
	SuggestionsHeader = "Mungkin maksud Anda adalah:"
)

// NotFoundMessage returns the reply for a query without results.
func NotFoundMessage(query string) string {
	return fmt.Sprintf(notFoundFormat, query)
}

// Options configures a Conversation.
type Options struct {
	Routing  string // config.RoutingBoth (default) or config.RoutingIntent
	Greeting string // first assistant turn; empty disables the greeting
	Source   string // analytics label for queries asked through this conversation
	Logger   *zap.Logger
}

// Conversation is a single chat session. Turns are processed one at a time.
type Conversation struct {
	mu     sync.Mutex
	turns  []model.Turn
	lookup *Lookup
	router Router
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

// NewConversation creates a conversation that answers through lookup.
func NewConversation(lookup *Lookup, opts Options) (*Conversation, error) {
	router, err := NewRouter(opts.Routing)
	if err != nil {
		return nil, err
	}
	if opts.Source == "" {
		opts.Source = "chat"
	}

	c := &Conversation{
		turns:  make([]model.Turn, 0),
		lookup: lookup,
		router: router,
		opts:   opts,
		logger: logger.OrNop(opts.Logger),
		now:    time.Now,
	}
	if opts.Greeting != "" {
		c.turns = append(c.turns, c.newTurn(model.RoleAssistant, opts.Greeting))
	}
	return c, nil
}

// NewConversationFromConfig creates a conversation using the chat section of cfg.
func NewConversationFromConfig(lookup *Lookup, cfg config.ChatConfig, source string, l *zap.Logger) (*Conversation, error) {
	return NewConversation(lookup, Options{
		Routing:  cfg.Routing,
		Greeting: cfg.Greeting,
		Source:   source,
		Logger:   l,
	})
}

// Ask records the user's text, answers it and returns the assistant turn.
// A suggestion is accepted by asking its word like any other text.
func (c *Conversation) Ask(ctx context.Context, text string) (model.Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Turn{}, apperrors.NewValidationError("content", "cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	names, query := c.router.Route(text)
	answer, err := c.lookup.Run(ctx, query, c.opts.Source, names...)
	if err != nil {
		return model.Turn{}, err
	}

	c.turns = append(c.turns, c.newTurn(model.RoleUser, text))

	reply := c.newTurn(model.RoleAssistant, FoundMessage)
	if answer.Total() > 0 {
		reply.CodeResults = answer.Results[model.CollectionCodes]
		reply.TypeResults = answer.Results[model.CollectionDocumentTypes]
	} else {
		reply.Content = NotFoundMessage(text)
		reply.Suggestions = answer.Suggestions
	}
	c.turns = append(c.turns, reply)

	c.logger.Debug("turn answered",
		zap.String("turn_id", reply.ID),
		zap.Int("results", answer.Total()),
		zap.Int("suggestions", len(reply.Suggestions)))

	return reply, nil
}

// History returns a copy of every turn, oldest first.
func (c *Conversation) History() []model.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := make([]model.Turn, len(c.turns))
	copy(history, c.turns)
	return history
}

// Clear removes every turn and forgets the routing state.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.turns = make([]model.Turn, 0)
	c.router.Reset()
}

func (c *Conversation) newTurn(role model.Role, content string) model.Turn {
	return model.Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: c.now(),
	}
}
