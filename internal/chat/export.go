package chat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/couvx/chatbot/internal/errors"
	"github.com/couvx/chatbot/model"
)

// ExportFileName is the suggested name of an exported chat log.
const ExportFileName = "log_chat.csv"

var exportHeader = []string{"role", "content", "res_kode", "res_jenis"}

// ExportCSV writes the conversation as CSV with a role,content,res_kode,res_jenis
// header. The result columns list "code:score" pairs separated by ';' and are empty
// for turns without results.
// An empty conversation is reported with ErrEmptyConversation.
func (c *Conversation) ExportCSV(w io.Writer) error {
	history := c.History()
	if len(history) == 0 {
		return apperrors.ErrEmptyConversation
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, turn := range history {
		row := []string{
			string(turn.Role),
			turn.Content,
			formatExportResults(turn.CodeResults),
			formatExportResults(turn.TypeResults),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write turn %s: %w", turn.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func formatExportResults(results []model.ScoredResult) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Code + ":" + strconv.Itoa(r.Score)
	}
	return strings.Join(parts, ";")
}
