package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkearns79/linkslogic/brand"
	session "github.com/mkearns79/linkslogic/core"
	"github.com/mkearns79/linkslogic/core/audio/miniaudio"
	"github.com/mkearns79/linkslogic/core/audio/portaudio"
	"github.com/mkearns79/linkslogic/core/speechtotext/deepgram"
	"github.com/mkearns79/linkslogic/internal/config"
	"github.com/mkearns79/linkslogic/rules"
	"github.com/mkearns79/linkslogic/tui"
)

var (
	configFile = flag.String("config", "", "Path to configuration file (default: ~/.linkslogic.yaml)")
	brandID    = flag.String("brand", "", "Branded variant to present (generic, columbia)")
	baseURL    = flag.String("api-url", "", "Rules service base URL (overrides config and LINKSLOGIC_API_URL)")
	fastMode   = flag.Bool("fast", false, "Prefer lower-latency answers")
	typedOnly  = flag.Bool("typed-only", false, "Disable voice capture even when available")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadWithFallback(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}
	if *baseURL != "" {
		cfg.Rules.BaseURL = *baseURL
	}
	if *fastMode {
		cfg.Rules.FastMode = true
	}
	if *brandID != "" {
		cfg.Brand = *brandID
	}

	b := brand.Lookup(cfg.Brand)
	if cfg.Rules.ClubID != "" {
		b.ClubID = cfg.Rules.ClubID
	}
	rulesClient := rules.NewClient(cfg.Rules.BaseURL, b.ClubID)

	sessionOptions := []session.SessionOption{
		session.WithRulesClient(rulesClient),
		session.WithFastMode(cfg.Rules.FastMode),
	}
	if quietPeriod := cfg.QuietPeriod(); quietPeriod > 0 {
		sessionOptions = append(sessionOptions, session.WithQuietPeriod(quietPeriod))
	}

	if !*typedOnly && deepgram.Supported() {
		transcriptionClient, err := deepgram.NewTranscriptionClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: voice capture unavailable: %v\n", err)
		} else {
			sessionOptions = append(sessionOptions, session.WithSpeechToTextClient(transcriptionClient))

			audioInput, err := openAudioInput(cfg.Voice.Backend)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: microphone unavailable: %v\n", err)
			} else {
				sessionOptions = append(sessionOptions, session.WithAudioInput(audioInput))
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := session.NewSession(sessionOptions...)
	defer sess.Close()

	if err := tui.Run(ctx, sess, rulesClient, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openAudioInput(backend string) (session.AudioInput, error) {
	switch backend {
	case config.BackendPortaudio:
		client, err := portaudio.NewClient(480)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.BackendMiniaudio, "":
		client, err := miniaudio.NewClient()
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q", backend)
	}
}
