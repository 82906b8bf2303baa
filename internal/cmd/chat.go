package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/couvx/chatbot/internal/chat"
	"github.com/couvx/chatbot/internal/tui"
)

var chatExportPath string

var chatCmd = &cobra.Command{
	Use:     "chat",
	Short:   "Open the terminal chat window",
	GroupID: groupShell,
	Long: `Open the terminal chat window.

Keys:
  Enter     ask
  Tab       insert the next did-you-mean suggestion
  Ctrl+L    clear the conversation
  Ctrl+E    export the conversation as CSV
  Esc       quit`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatExportPath, "export", "o", chat.ExportFileName, "file written by Ctrl+E")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// the terminal belongs to the chat window, log lines would corrupt it
	a, err := newApp(cfg, zap.NewNop())
	if err != nil {
		return err
	}
	defer a.close()

	conversation, err := a.newConversation("chat")
	if err != nil {
		return err
	}

	return tui.Run(commandContext(cmd), conversation, cfg.Scoring, chatExportPath)
}
