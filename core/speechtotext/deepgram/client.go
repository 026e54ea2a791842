// Package deepgram streams microphone audio to the Deepgram live
// transcription API and surfaces interim and finalized results.
package deepgram

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

const defaultListenURL = "wss://api.deepgram.com/v1/listen"

// Supported reports whether live transcription can be used at all. When
// it returns false the voice input path is disabled and only typed
// questions are available.
func Supported() bool {
	_, ok := os.LookupEnv("DEEPGRAM_API_KEY")
	return ok
}

type TranscriptionClient struct {
	listenURL string

	conn   *websocket.Conn
	connMu sync.Mutex

	// lastMsgTs holds the unix-nano timestamp of the last caller-supplied
	// audio write. The silence generator reads it without the connection
	// lock, hence the atomic.
	lastMsgTs atomic.Int64
}

func NewTranscriptionClient() (*TranscriptionClient, error) {
	if !Supported() {
		return nil, fmt.Errorf("deepgram api key not found")
	}

	return &TranscriptionClient{listenURL: defaultListenURL}, nil
}

func (s *TranscriptionClient) Close(ctx context.Context) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn == nil {
		return nil
	}

	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("failed to close deepgram connection: %w", err)
	}
	s.conn = nil
	return nil
}
