package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for correction and completion requests.
type Server struct {
	corrector *spell.Corrector
	completer *suggest.Completer
	cfg       *config.Config
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(corrector *spell.Corrector, completer *suggest.Completer, cfg *config.Config) *Server {
	return NewServerIO(corrector, completer, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over arbitrary streams, for testing.
func NewServerIO(corrector *spell.Corrector, completer *suggest.Completer, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		corrector: corrector,
		completer: completer,
		cfg:       cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
	}
}

// Start begins the request loop. It signals readiness, then decodes
// one request at a time until the input stream closes.
func (s *Server) Start() error {
	log.Debug("Starting server.")
	s.send(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Client closed the stream, shutting down.")
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "correct":
		s.handleCorrect(request)
	case "complete":
		s.handleComplete(request)
	case "health":
		s.send(HealthResponse{
			ID:        request.ID,
			Status:    "ok",
			WordCount: s.corrector.WordCount(),
		})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// handleCorrect validates a correction request, runs the lookup, and
// sends back the ranked suggestions.
func (s *Server) handleCorrect(request Request) {
	start := time.Now()

	if request.Term == "" {
		s.sendError(request.ID, "Missing 't' parameter", 400)
		return
	}
	if len(request.Term) > s.cfg.Server.MaxInput {
		s.sendError(request.ID, fmt.Sprintf("Term exceeds maximum length of %d characters", s.cfg.Server.MaxInput), 400)
		return
	}

	verbosity := spell.ParseVerbosity(request.Verbosity)
	var opts []spell.LookupOption
	if request.Distance != nil {
		opts = append(opts, spell.EditDistance(*request.Distance))
	}
	if request.IncludeUnknown {
		opts = append(opts, spell.IncludeUnknown())
	}

	results, err := s.corrector.Lookup(request.Term, verbosity, opts...)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		log.Debugf("Lookup for %q failed: %v", request.Term, err)
		return
	}

	suggestions := make([]CorrectionSuggestion, len(results))
	for i, r := range results {
		suggestions[i] = CorrectionSuggestion{Term: r.Term, Distance: r.Distance, Count: r.Count}
	}
	s.send(CorrectionResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

// handleComplete validates a completion request and sends back prefix
// matches ranked by frequency.
func (s *Server) handleComplete(request Request) {
	start := time.Now()

	if request.Prefix == "" {
		s.sendError(request.ID, "Missing 'p' parameter", 400)
		return
	}
	if len(request.Prefix) > s.cfg.Server.MaxInput {
		s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxInput), 400)
		return
	}
	if !utils.IsValidInput(request.Prefix) {
		s.sendError(request.ID, "Prefix is not a completable word", 400)
		return
	}

	limit := request.Limit
	if limit <= 0 {
		limit = s.cfg.Server.DefaultLimit
	}

	results := s.completer.Complete(request.Prefix, limit)
	suggestions := make([]CompletionSuggestion, len(results))
	for i, r := range results {
		suggestions[i] = CompletionSuggestion{Word: r.Word, Count: r.Count}
	}
	s.send(CompletionResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
