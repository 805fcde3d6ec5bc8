// Package server implements MessagePack IPC for suggestion and catalog
// management requests.
package server

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/bastiangx/toolsuggest/pkg/catalog"
	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Suggester is the subset of *suggest.Engine the server depends on.
type Suggester interface {
	Feed(delta, sessionID string) []catalog.Suggestion
	Submit(text, sessionID string) []catalog.Suggestion
	Reset(sessionID string)
	AddTools(tools []catalog.ToolSpec)
	RemoveTool(name string)
}

// Server handles suggestion requests and catalog management over stdin/stdout.
type Server struct {
	engine     Suggester
	decoder    *msgpack.Decoder
	writeMutex sync.Mutex
}

// NewServer creates a server driving engine over stdin/stdout.
func NewServer(engine Suggester) *Server {
	return &Server{
		engine:  engine,
		decoder: msgpack.NewDecoder(os.Stdin),
	}
}

// Start begins listening for requests until the client disconnects.
func (s *Server) Start() error {
	log.Debug("starting MessagePack suggestion server")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("client disconnected")
				return nil
			}
			log.Debugf("request error: %v", err)
			continue
		}
	}
}

func (s *Server) processRequest() error {
	var req Request
	if err := s.decoder.Decode(&req); err != nil {
		return err
	}
	if req.ID == "" {
		req.ID = ulid.Make().String()
	}

	switch req.Action {
	case "feed":
		return s.handleSuggest(req, s.engine.Feed)
	case "submit":
		return s.handleSuggest(req, s.engine.Submit)
	case "reset":
		s.engine.Reset(req.SessionID)
		return s.sendResponse(&StatusResponse{ID: req.ID, Status: "ok"})
	case "add_tools":
		s.engine.AddTools(req.Tools)
		return s.sendResponse(&StatusResponse{ID: req.ID, Status: "ok"})
	case "remove_tool":
		s.engine.RemoveTool(req.ToolName)
		return s.sendResponse(&StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendResponse(&ErrorResponse{ID: req.ID, Error: fmt.Sprintf("unknown action: %s", req.Action), Code: 400})
	}
}

// handleSuggest runs either Feed or Submit (both share the same request and
// response shape) and times the call.
func (s *Server) handleSuggest(req Request, call func(text, sessionID string) []catalog.Suggestion) error {
	start := time.Now()
	suggestions := call(req.Text, req.SessionID)
	elapsed := time.Since(start)

	payload := make([]SuggestionPayload, len(suggestions))
	for i, sug := range suggestions {
		payload[i] = toPayload(sug)
	}

	return s.sendResponse(&Response{
		ID:          req.ID,
		Suggestions: payload,
		Count:       len(payload),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// sendResponse encodes and writes a response atomically.
func (s *Server) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(response); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
