package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chapar-rest/wordmark"
	"github.com/chapar-rest/wordmark/buffer"
	"github.com/chapar-rest/wordmark/config"
	"github.com/chapar-rest/wordmark/internal/termui"
	"github.com/chapar-rest/wordmark/memento"
	"github.com/chapar-rest/wordmark/textstyle/decoration"
	"github.com/chapar-rest/wordmark/workbench"
)

type rootOptions struct {
	configPath string
	statePath  string
	trueColor  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wordmark",
		Short: "Persistent word highlighting for text files",
		Long: `wordmark keeps a list of highlighted words and phrases across sessions
and paints every occurrence of them when showing a file.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.statePath, "state", "", "path to the highlight state, overrides storage.path")
	cmd.PersistentFlags().BoolVar(&opts.trueColor, "truecolor", false, "always render 24 bit colors")

	cmd.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newAddCmd(opts),
		newRemoveCmd(opts),
		newClearCmd(opts),
	)
	return cmd
}

// session is one activation of the highlighter over an in-process workbench.
type session struct {
	cfg      config.File
	state    memento.Store
	wb       *workbench.Workbench
	ext      *wordmark.Extension
	renderer *termui.Renderer
}

func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.statePath != "" {
		cfg.Storage.Path = opts.statePath
	}

	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	wordmark.SetLogger(log)
	workbench.SetLogger(log)
	decoration.SetLogger(log)

	state, err := memento.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	wb := workbench.New()
	ui := termui.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
	manager := wordmark.NewManager(
		wordmark.NewStore(state),
		wordmark.NewApplier(wb.Decorator(), wordmark.WithBaseStyle(cfg.DecorationStyle())),
		ui,
		wordmark.WithPalette(cfg.Palette),
		wordmark.WithLogger(log.WithGroup("wordmark")),
	)

	ext, err := wordmark.Activate(wb, manager)
	if err != nil {
		_ = state.Close()
		return nil, err
	}

	renderer := termui.NewRenderer(cmd.OutOrStdout())
	if opts.trueColor {
		renderer.ForceTrueColor()
	}

	log.Debug("session opened", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)
	return &session{cfg: cfg, state: state, wb: wb, ext: ext, renderer: renderer}, nil
}

func (s *session) Close() error {
	s.ext.Deactivate()
	return s.state.Close()
}

func (s *session) store() *wordmark.Store {
	return s.ext.Manager().Store()
}

// open loads the file at path into a new active editor.
func (s *session) open(path string) (*workbench.Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	ed := s.wb.Open(buffer.NewDocument("file://"+filepath.ToSlash(abs), string(data)))
	s.wb.Focus(ed)
	return ed, nil
}

// selectText selects the first occurrence of text in ed.
func selectText(ed *workbench.Editor, text string) error {
	idx := ed.Buffer().Index(text)
	if idx < 0 {
		return fmt.Errorf("%q not found in %s", text, ed.Buffer().URI())
	}
	ed.SetSelection(idx, idx+len([]rune(text)))
	return nil
}
