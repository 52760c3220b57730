// glass-oak-server hosts the game over SSH. Every connection plays its own
// single-player game, saved under the SSH user name. Build:
//
//	go build -o glass-oak-server ./cmd/server
//
// Usage:
//
//	./glass-oak-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"

	"glass-oak/internal/config"
	"glass-oak/internal/engine"
	"glass-oak/internal/game"
	"glass-oak/internal/logging"
	"glass-oak/internal/persist"
	internalssh "glass-oak/internal/ssh"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	port := flag.Int("port", cfg.SSHPort, "SSH server port")
	keyFile := flag.String("key", cfg.SSHHostKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	log := logging.NewWriter(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	signer, err := loadOrCreateHostKey(*keyFile, log)
	if err != nil {
		return err
	}
	store, err := persist.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open save store: %w", err)
	}
	defer store.Close()

	h := &host{cfg: cfg, store: store, log: log, active: map[string]bool{}}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; the user name only picks the save slot.
		HostSigners: []gossh.Signer{signer},
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithFields(logrus.Fields{"port": *port, "store": cfg.Store}).Info("glass-oak SSH server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return err
	}
	return nil
}

// host runs one game per SSH session. A save slot is played by at most one
// connection at a time.
type host struct {
	cfg   config.Config
	store persist.Store
	log   logrus.FieldLogger

	mu     sync.Mutex
	active map[string]bool
}

func (h *host) claim(slot string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active[slot] {
		return false
	}
	h.active[slot] = true
	return true
}

func (h *host) release(slot string) {
	h.mu.Lock()
	delete(h.active, slot)
	h.mu.Unlock()
}

// handleSession blocks for the lifetime of the connection.
func (h *host) handleSession(s gossh.Session) {
	slot := internalssh.SlotName(s.User())
	log := h.log.WithFields(logrus.Fields{"slot": slot, "remote": s.RemoteAddr().String()})

	if !h.claim(slot) {
		fmt.Fprintf(s, "A game for %q is already running.\n", slot)
		return
	}
	defer h.release(slot)

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		log.WithError(err).Warn("screen setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	log.Info("session started")
	ui := game.NewUI(screen)
	defer ui.Close()
	eng := engine.New(ui, engine.Options{
		Store:   h.store,
		Slot:    slot,
		DataDir: h.cfg.DataDir,
		Seed:    h.cfg.Seed,
		Log:     log,
	})
	if err := game.Play(s.Context(), ui, eng); err != nil {
		log.WithError(err).Error("session ended with error")
		return
	}
	log.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log logrus.FieldLogger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	log.WithField("path", path).Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "glass-oak server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		log.WithError(err).Warn("host key not persisted")
	}
	return signer, nil
}
