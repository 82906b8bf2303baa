package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/couvx/chatbot/internal/chat"
	"github.com/couvx/chatbot/model"
)

// AskRequest carries one user message.
type AskRequest struct {
	Content string `json:"content"`
}

// AskResponse carries the assistant reply and the sections a client should display.
type AskResponse struct {
	Reply    model.Turn      `json:"reply"`
	Sections []ResultSection `json:"sections"`
}

// ResultSection is a display-ready slice of one collection's results.
type ResultSection struct {
	Collection model.CollectionName `json:"collection"`
	Title      string               `json:"title"`
	Results    []DisplayResult      `json:"results"`
}

// DisplayResult is a scored record with its relevance label.
type DisplayResult struct {
	model.ScoredResult
	Relevance chat.Relevance `json:"relevance"`
}

// ChatHistoryHandler returns every turn of the conversation.
func (api *API) ChatHistoryHandler(c *gin.Context) {
	history := api.conversation.History()
	c.JSON(http.StatusOK, gin.H{
		"messages": history,
		"total":    len(history),
	})
}

// AskHandler answers one user message.
// Request Body: AskRequest
func (api *API) AskHandler(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	reply, err := api.conversation.Ask(c.Request.Context(), req.Content)
	if err != nil {
		api.sendLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Reply:    reply,
		Sections: api.sections(reply),
	})
}

// ClearChatHandler empties the conversation.
func (api *API) ClearChatHandler(c *gin.Context) {
	api.conversation.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Conversation cleared"})
}

// ExportChatHandler downloads the conversation as CSV.
func (api *API) ExportChatHandler(c *gin.Context) {
	var buf bytes.Buffer
	if err := api.conversation.ExportCSV(&buf); err != nil {
		api.sendLookupError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+chat.ExportFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (api *API) sections(turn model.Turn) []ResultSection {
	settings := api.searcher.Settings()

	sections := make([]ResultSection, 0)
	for _, section := range chat.Sections(turn, settings) {
		results := make([]DisplayResult, len(section.Results))
		for i, r := range section.Results {
			results[i] = DisplayResult{ScoredResult: r, Relevance: chat.RelevanceOf(r.Score, settings)}
		}
		sections = append(sections, ResultSection{
			Collection: section.Collection,
			Title:      section.Title,
			Results:    results,
		})
	}
	return sections
}
