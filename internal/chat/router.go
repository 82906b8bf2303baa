package chat

import (
	"fmt"
	"strings"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/tokenizer"
	"github.com/couvx/chatbot/model"
)

// Router decides which collections a user message is searched in.
// Implementations may keep state between messages; callers serialize access.
type Router interface {
	// Route returns the collections to search and the query with routing
	// keywords removed.
	Route(text string) ([]model.CollectionName, string)
	// Reset forgets any state kept from earlier messages.
	Reset()
}

// NewRouter returns the router for a routing policy (config.RoutingBoth or config.RoutingIntent).
func NewRouter(policy string) (Router, error) {
	switch policy {
	case "", config.RoutingBoth:
		return bothRouter{}, nil
	case config.RoutingIntent:
		return &intentRouter{}, nil
	default:
		return nil, fmt.Errorf("unknown routing policy %q", policy)
	}
}

// bothRouter searches every collection for every message.
type bothRouter struct{}

func (bothRouter) Route(text string) ([]model.CollectionName, string) {
	return model.CollectionNames, text
}

func (bothRouter) Reset() {}

// intentKeywords maps words that reveal the user's target collection.
var intentKeywords = map[string]model.CollectionName{
	"kode":        model.CollectionCodes,
	"klasifikasi": model.CollectionCodes,
	"jenis":       model.CollectionDocumentTypes,
	"naskah":      model.CollectionDocumentTypes,
}

// intentRouter detects the target collection from keywords in the message.
// The last detected intent sticks for following messages without keywords;
// before any intent is known, or when keywords for both collections appear,
// every collection is searched.
type intentRouter struct {
	last model.CollectionName
}

func (r *intentRouter) Route(text string) ([]model.CollectionName, string) {
	detected := make(map[model.CollectionName]bool)
	remaining := make([]string, 0)

	for _, token := range strings.Fields(text) {
		if name, ok := intentKeywords[strings.Join(tokenizer.Tokenize(token), "")]; ok {
			detected[name] = true
			continue
		}
		remaining = append(remaining, token)
	}

	query := strings.Join(remaining, " ")
	if query == "" {
		// the message was only keywords, search for them literally
		query = text
	}

	switch len(detected) {
	case 1:
		for name := range detected {
			r.last = name
		}
		return []model.CollectionName{r.last}, query
	case 0:
		if r.last != "" {
			return []model.CollectionName{r.last}, query
		}
	}
	return model.CollectionNames, query
}

func (r *intentRouter) Reset() {
	r.last = ""
}
