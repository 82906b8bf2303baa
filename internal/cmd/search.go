package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/chat"
	"github.com/couvx/chatbot/model"
)

const allCollections = "all"

var (
	searchCollection string
	searchThreshold  int
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search classification codes and document types",
	GroupID: groupCore,
	Long: `Search the kode and jenis collections with fuzzy matching.

Results are ranked by score, then by code. When nothing scores above the
threshold, did-you-mean suggestions are printed instead.

Examples:
  klasifikasi search PP.01                       # exact code
  klasifikasi search "surat cuti" -C kode        # one collection
  klasifikasi search kepegawain --json           # machine readable output
  klasifikasi search pegawai --threshold 80      # stricter matching`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCollection, "collection", "C", allCollections, "collection to search: kode, jenis or all")
	searchCmd.Flags().IntVarP(&searchThreshold, "threshold", "t", config.DefaultMatchThreshold, "minimum score (exclusive) for a result")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

type searchResponse struct {
	Query       string                                        `json:"query"`
	Results     map[model.CollectionName][]model.ScoredResult `json:"results"`
	Total       int                                           `json:"total"`
	Suggestions []model.Suggestion                            `json:"suggestions"`
	TookMs      float64                                       `json:"took_ms"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	names, err := parseCollectionFlag(searchCollection)
	if err != nil {
		return err
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

	threshold := cfg.Scoring.MatchThreshold
	if cmd.Flags().Changed("threshold") {
		threshold = searchThreshold
	}

	answer, err := a.lookup.RunWithThreshold(commandContext(cmd), args[0], "cli", threshold, names...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		return writeSearchJSON(out, answer)
	}
	writeSearchText(out, answer, names, cfg.Scoring)
	return nil
}

// parseCollectionFlag turns kode, jenis or all into collection names.
func parseCollectionFlag(value string) ([]model.CollectionName, error) {
	if value == "" || value == allCollections {
		return model.CollectionNames, nil
	}
	name := model.CollectionName(value)
	if !name.Valid() {
		return nil, fmt.Errorf("unknown collection %q: use kode, jenis or all", value)
	}
	return []model.CollectionName{name}, nil
}

func writeSearchJSON(w io.Writer, answer chat.Answer) error {
	resp := searchResponse{
		Query:       answer.Query,
		Results:     answer.Results,
		Total:       answer.Total(),
		Suggestions: answer.Suggestions,
		TookMs:      float64(answer.Took.Microseconds()) / 1000,
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func writeSearchText(w io.Writer, answer chat.Answer, names []model.CollectionName, settings config.ScoringSettings) {
	if answer.Total() == 0 {
		fmt.Fprintln(w, chat.NotFoundMessage(answer.Query))
		writeSuggestions(w, answer.Suggestions)
		return
	}

	for _, name := range names {
		results := answer.Results[name]
		if len(results) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d)\n", name.Title(), len(results))
		for _, r := range results {
			fmt.Fprintln(w, chat.FormatResult(r, settings))
		}
		fmt.Fprintln(w)
	}
}

func writeSuggestions(w io.Writer, suggestions []model.Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, chat.SuggestionsHeader)
	for _, s := range suggestions {
		fmt.Fprintf(w, "  - %s (%d%%)\n", s.Word, s.Ratio)
	}
}
