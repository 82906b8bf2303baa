package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/analytics"
	"github.com/couvx/chatbot/internal/chat"
	"github.com/couvx/chatbot/internal/logger"
	"github.com/couvx/chatbot/internal/metrics"
	"github.com/couvx/chatbot/internal/normalize"
	"github.com/couvx/chatbot/internal/search"
	"github.com/couvx/chatbot/internal/suggest"
	"github.com/couvx/chatbot/store"
)

// app wires the lookup components shared by every command.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	records   *store.RecordStore
	searcher  *search.Service
	suggester *suggest.Engine
	analytics *analytics.Service
	lookup    *chat.Lookup
}

// loadConfig reads the --config file and applies the --env override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if envName != "" {
		cfg.Logging.Env = envName
	}
	return cfg, nil
}

// newApp builds the components from cfg. A nil l creates a logger from the
// logging section of cfg.
func newApp(cfg config.Config, l *zap.Logger) (*app, error) {
	if l == nil {
		var err error
		l, err = logger.NewLogger(cfg.Logging.Env, cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	dict := normalize.DefaultDictionary()
	if cfg.Data.DictionaryPath != "" {
		if err := dict.LoadFile(cfg.Data.DictionaryPath); err != nil {
			return nil, fmt.Errorf("failed to load stemmer dictionary: %w", err)
		}
		l.Info("stemmer dictionary loaded",
			zap.String("path", cfg.Data.DictionaryPath),
			zap.Int("words", dict.Len()))
	}

	records := store.NewFileStore(cfg.Data.CodePath, cfg.Data.DocumentTypePath, l)
	records.OnLoad(metrics.SetCollectionSize)

	searcher := search.NewService(normalize.NewStemmer(dict), cfg.Scoring)
	suggester := suggest.NewEngine(cfg.Scoring)
	tracker := analytics.NewService(records)

	return &app{
		cfg:       cfg,
		logger:    l,
		records:   records,
		searcher:  searcher,
		suggester: suggester,
		analytics: tracker,
		lookup:    chat.NewLookup(records, searcher, suggester, tracker, l),
	}, nil
}

func (a *app) newConversation(source string) (*chat.Conversation, error) {
	return chat.NewConversationFromConfig(a.lookup, a.cfg.Chat, source, a.logger)
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// commandContext returns the context of cmd, which is nil when a run function
// is called outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
