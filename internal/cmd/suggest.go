package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/metrics"
	"github.com/couvx/chatbot/model"
)

var (
	suggestCollection string
	suggestMinRatio   int
	suggestLimit      int
	suggestJSON       bool
)

var suggestCmd = &cobra.Command{
	Use:     "suggest <word>",
	Short:   "Suggest corrected spellings from the collection vocabulary",
	GroupID: groupCore,
	Long: `Suggest vocabulary words close to a possibly misspelled query.

Words that match the query exactly are never suggested.

Examples:
  klasifikasi suggest kepegawain                 # words from both collections
  klasifikasi suggest kepegawain --limit 3       # at most three words
  klasifikasi suggest surta --min-ratio 60       # looser matching`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestCollection, "collection", "C", allCollections, "vocabulary source: kode, jenis or all")
	suggestCmd.Flags().IntVar(&suggestMinRatio, "min-ratio", config.DefaultSuggestMinRatio, "minimum similarity ratio (0-99)")
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", config.DefaultSuggestLimit, "maximum number of suggestions")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output suggestions as JSON")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	names, err := parseCollectionFlag(suggestCollection)
	if err != nil {
		return err
	}
	if suggestMinRatio < 0 || suggestMinRatio > 99 {
		return fmt.Errorf("--min-ratio must be between 0 and 99, got %d", suggestMinRatio)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cfg, nil)
	if err != nil {
		return err
	}
	defer a.close()

	minRatio, limit := cfg.Scoring.SuggestMinRatio, cfg.Scoring.SuggestLimit
	if cmd.Flags().Changed("min-ratio") {
		minRatio = suggestMinRatio
	}
	if cmd.Flags().Changed("limit") {
		limit = suggestLimit
	}

	pool := make(model.Collection, 0)
	for _, name := range names {
		collection, err := a.records.Collection(name)
		if err != nil {
			return err
		}
		pool = append(pool, collection...)
	}

	suggestions := a.suggester.Suggest(args[0], pool, minRatio, limit)
	metrics.RecordSuggestions(len(suggestions))

	out := cmd.OutOrStdout()
	if suggestJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		return enc.Encode(struct {
			Query       string             `json:"query"`
			Suggestions []model.Suggestion `json:"suggestions"`
		}{args[0], suggestions})
	}

	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No suggestions.")
		return nil
	}
	writeSuggestions(out, suggestions)
	return nil
}
