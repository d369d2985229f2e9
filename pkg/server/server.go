package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/t9serve/internal/logger"
	"github.com/bastiangx/t9serve/internal/utils"
	"github.com/bastiangx/t9serve/pkg/config"
	"github.com/bastiangx/t9serve/pkg/keypad"
	"github.com/bastiangx/t9serve/pkg/t9"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for keypad lookups.
type Server struct {
	dict         t9.Predictor
	config       *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	out          *bufio.Writer
	requestCount int
	log          *log.Logger
}

// NewServer creates a server speaking over stdin and stdout.
func NewServer(dict t9.Predictor, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(dict, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w. An empty configPath disables config reloading.
func NewServerWithIO(dict t9.Predictor, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		dict:       dict,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(bufio.NewReader(r)),
		encoder:    msgpack.NewEncoder(out),
		out:        out,
		log:        logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed, stopping", "requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return fmt.Errorf("read request: %w", err)
		}
		s.handleRaw(raw)
	}
}

// handleRaw decodes one message. A message that is valid msgpack but not a
// request is answered with an error and the stream continues.
func (s *Server) handleRaw(raw msgpack.RawMessage) {
	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		s.log.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "invalid request", 400)
		return
	}
	s.handleRequest(request)
	s.afterRequest()
}

func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "", ActionLookup:
		s.handleLookup(request)
	case ActionLearn:
		s.handleLearn(request)
	case ActionWords:
		s.handleWords(request)
	case ActionStats:
		s.sendResponse(StatsResponse{ID: request.ID, Status: "ok", Stats: s.dict.Stats()})
	case ActionHealth:
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleLookup(request Request) {
	if request.Keys == "" {
		s.sendError(request.ID, "missing 'k' parameter", 400)
		return
	}
	if len(request.Keys) > s.config.Server.MaxKeys {
		s.sendError(request.ID, fmt.Sprintf("keys exceed maximum length of %d", s.config.Server.MaxKeys), 400)
		return
	}
	if !utils.IsKeyString(request.Keys) {
		s.sendError(request.ID, "keys must be digits", 400)
		return
	}
	keys, err := keypad.ParseKeys(request.Keys)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		return
	}

	start := time.Now()
	suggestions := s.dict.Suggest(keys, s.clampLimit(request.Limit))
	elapsed := time.Since(start)

	response := LookupResponse{
		ID:          request.ID,
		Suggestions: make([]LookupSuggestion, len(suggestions)),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
	for i, sg := range suggestions {
		response.Suggestions[i] = LookupSuggestion{Fragment: sg.Fragment, Rank: sg.Rank, Word: sg.Word}
	}
	s.log.Debug("Lookup", "keys", request.Keys, "count", response.Count, "took", elapsed)
	s.sendResponse(response)
}

func (s *Server) handleLearn(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "missing 'w' parameter", 400)
		return
	}
	if err := s.dict.Insert(request.Word); err != nil {
		if errors.Is(err, keypad.ErrUnknownCharacter) {
			s.sendError(request.ID, err.Error(), 400)
			return
		}
		s.log.Errorf("Inserting %q: %v", request.Word, err)
		s.sendError(request.ID, "internal server error", 500)
		return
	}
	s.log.Debug("Learned word", "word", request.Word)
	s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
}

func (s *Server) handleWords(request Request) {
	if request.Prefix == "" {
		s.sendError(request.ID, "missing 'p' parameter", 400)
		return
	}
	words := s.dict.Words(request.Prefix, s.clampLimit(request.Limit))
	if words == nil {
		words = []string{}
	}
	s.sendResponse(WordsResponse{ID: request.ID, Words: words, Count: len(words)})
}

// clampLimit applies the configured default and maximum to a request limit.
func (s *Server) clampLimit(limit int) int {
	if limit < 1 {
		limit = s.config.CLI.DefaultLimit
	}
	if limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}
	return limit
}

// afterRequest counts requests and re-reads the config file periodically.
func (s *Server) afterRequest() {
	s.requestCount++
	every := s.config.Server.ReloadEvery
	if every <= 0 || s.configPath == "" || s.requestCount%every != 0 {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		s.log.Warnf("Config reload failed, keeping current config: %v", err)
		return
	}
	s.config = cfg
	s.log.Debug("Config reloaded", "path", s.configPath, "requests", s.requestCount)
}

// sendResponse encodes response and flushes it to the client.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
