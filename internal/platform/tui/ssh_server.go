package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/roadrush/roadrush/internal/audio"
	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
	"github.com/roadrush/roadrush/internal/race"
	"github.com/roadrush/roadrush/internal/storage"
)

// SSHServerConfig holds configuration for serving the game over SSH.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is auto-generated at ~/.roadrush/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// HighScorePath is the path to the shared high score file.
	HighScorePath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:       ":23234",
		DBPath:        "~/.roadrush/runs.db",
		HighScorePath: "~/.roadrush/highscore",
		IdleTimeout:   30 * time.Minute,
	}
}

// SSHServer serves the game to remote terminals via Wish. Remote players
// share the run history; audio stays off since there is no remote speaker.
type SSHServer struct {
	config  SSHServerConfig
	game    *config.GameConfig
	server  *ssh.Server
	runs    *storage.Store
	hiscore *storage.FileStore
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, game *config.GameConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrush-ssh",
	})

	runs, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without history
	} else if best, hsErr := runs.HighScore(""); hsErr == nil && best > 0 {
		logger.Info("run history loaded", "best", best)
	}
	hiscore, err := storage.NewFileStore(cfg.HighScorePath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config:  cfg,
		game:    game,
		runs:    runs,
		hiscore: hiscore,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".roadrush", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if runs != nil {
			runs.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.DefaultConfig()
	rt.ScreenW = pty.Window.Width
	rt.ScreenH = pty.Window.Height
	rt.Seed = time.Now().UnixNano()

	machine := race.NewMachine(s.game, s.hiscore,
		race.WithAudio(audio.Null{}),
		race.WithLogger(s.logger.With("user", sshSession.User())),
	)
	model := NewModel(machine, s.game, s.runs, rt, s.logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.runs != nil {
		s.runs.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
