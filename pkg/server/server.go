package server

import (
	"io"
	"os"
	"time"

	"github.com/bastiangx/elemspell/internal/utils"
	"github.com/bastiangx/elemspell/pkg/config"
	"github.com/bastiangx/elemspell/pkg/periodic"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for element spelling
type Server struct {
	speller      periodic.ISpeller
	config       *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a new spell server using stdin/stdout for IPC
func NewServer(speller periodic.ISpeller, cfg *config.Config, configPath string) *Server {
	return &Server{
		speller:    speller,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(os.Stdin),
		encoder:    msgpack.NewEncoder(os.Stdout),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	for {
		var raw map[string]any
		if err := s.decoder.Decode(&raw); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request from stdin: %v", err)
			return err
		}
		s.handleRequest(raw)
	}
}

// handleRequest dispatches a decoded message based on its fields.
// Messages with an "action" field are alphabet or config ops, everything
// else is treated as a spell request.
func (s *Server) handleRequest(raw map[string]any) {
	s.requestCount++
	if s.requestCount%50 == 0 {
		s.reloadConfig()
	}

	id := asString(raw["id"])

	if action := asString(raw["action"]); action != "" {
		if action == "set_limits" {
			s.handleConfigUpdate(ConfigRequest{
				ID:         id,
				Action:     action,
				MaxWordLen: asIntField(raw, "max_word_len"),
				MaxResults: asIntField(raw, "max_results"),
			})
			return
		}
		s.handleAlphabet(AlphabetRequest{ID: id, Action: action})
		return
	}

	request := SpellRequest{
		ID:    id,
		Word:  asString(raw["w"]),
		Limit: asInt(raw["l"]),
	}
	s.handleSpell(request)
}

// handleSpell processes a spell request. It validates the word length
// against config, runs the speller and sends either the exact spellings
// with rank info or the closest matches with missing-letter details.
func (s *Server) handleSpell(request SpellRequest) {
	word := request.Word

	if word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in request")
		return
	}

	maxLen := s.config.Speller.MaxWordLen
	if maxLen > 0 && len(word) > maxLen {
		s.sendError(request.ID, "Word exceeds maximum length", 400)
		log.Debugf("Word of length %d is too long in request", len(word))
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.config.Speller.MaxResults
	}

	start := time.Now()
	result := s.speller.Spell(word)
	elapsed := time.Since(start)

	response := SpellResponse{
		ID:        request.ID,
		CanSpell:  result.CanSpell,
		TimeTaken: elapsed.Microseconds(),
	}

	if result.CanSpell {
		exact := result.Exact
		if limit > 0 && len(exact) > limit {
			exact = exact[:limit]
		}
		ranks := utils.CreateRankList(len(exact))
		response.Spellings = make([]Spelling, len(exact))
		for i, tiling := range exact {
			response.Spellings[i] = Spelling{Symbols: tiling, Rank: ranks[i]}
		}
		response.Count = len(response.Spellings)
	} else {
		closest := result.Closest
		if limit > 0 && len(closest) > limit {
			closest = closest[:limit]
		}
		response.Closest = make([]ClosestEntry, len(closest))
		for i, match := range closest {
			response.Closest[i] = ClosestEntry{
				Symbols:      match.Tiling,
				MissingCount: match.MissingCount,
				Missing:      match.Missing,
			}
		}
		response.Count = len(response.Closest)
	}

	s.sendResponse(response)
}

// handleAlphabet serves symbol set info ops
func (s *Server) handleAlphabet(request AlphabetRequest) {
	alphabet := s.speller.Alphabet()

	switch request.Action {
	case "get_info":
		s.sendResponse(AlphabetResponse{
			ID:          request.ID,
			Status:      "ok",
			SymbolCount: alphabet.Len(),
		})
	case "get_symbols":
		s.sendResponse(AlphabetResponse{
			ID:          request.ID,
			Status:      "ok",
			SymbolCount: alphabet.Len(),
			Symbols:     alphabet.Symbols(),
		})
	default:
		s.sendResponse(AlphabetResponse{
			ID:     request.ID,
			Status: "error",
			Error:  "Unknown action: " + request.Action,
		})
	}
}

// handleConfigUpdate applies new speller limits and persists them to the
// active config file. Omitted fields keep their current values.
func (s *Server) handleConfigUpdate(request ConfigRequest) {
	if request.MaxWordLen == nil && request.MaxResults == nil {
		s.sendResponse(ConfigResponse{
			ID:     request.ID,
			Status: "error",
			Error:  "No limit fields in set_limits request",
		})
		return
	}
	if s.configPath == "" {
		s.sendResponse(ConfigResponse{
			ID:     request.ID,
			Status: "error",
			Error:  "No active config file to update",
		})
		return
	}
	if err := s.config.Update(s.configPath, request.MaxWordLen, request.MaxResults); err != nil {
		log.Errorf("Config update failed: %v", err)
		s.sendResponse(ConfigResponse{
			ID:     request.ID,
			Status: "error",
			Error:  "Failed to save config: " + err.Error(),
		})
		return
	}
	log.Debugf("Config limits updated via IPC: max_word_len=%d max_results=%d",
		s.config.Speller.MaxWordLen, s.config.Speller.MaxResults)
	s.sendResponse(ConfigResponse{
		ID:         request.ID,
		Status:     "ok",
		MaxWordLen: s.config.Speller.MaxWordLen,
		MaxResults: s.config.Speller.MaxResults,
	})
}

// reloadConfig picks up config edits without a restart
func (s *Server) reloadConfig() {
	if s.configPath == "" {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("Config reload failed, keeping current: %v", err)
		return
	}
	s.config = cfg
	log.Debugf("Config reloaded from %s", s.configPath)
}

// sendResponse encodes the given response as msgpack onto stdout
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(SpellError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asIntField distinguishes an absent key from an explicit zero
func asIntField(raw map[string]any, key string) *int {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	n := asInt(v)
	return &n
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
