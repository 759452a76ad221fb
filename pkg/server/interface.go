/*
Package server implements msgpack IPC for element spelling services.

The server package provides a minimal interface for word decomposition using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports spell requests and alphabet info ops.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.

Spell requests use mainly this structure:

	{"id": "req_001", "w": "cobalt", "l": 24}

The server responds with tilings in traversal order:

	{"id": "req_001", "ok": false, "cm": [{"sym": ["C", "O", "B", "Al"], "n": 1, "m": ["T"]}], "c": 1, "t": 145}

Alphabet info requests report the loaded symbol set:

	{"id": "alpha_001", "action": "get_info"}

Config updates adjust the speller limits at runtime and persist them:

	{"id": "cfg_001", "action": "set_limits", "max_word_len": 80}

Response structures include status information and error details when an op fails.

# Message Types

SpellRequest and SpellResponse handle the main decomposition flow.
Requests include a word and an optional limit on how many tilings come back.
Responses contain either exact spellings with rank information, or closest
matches with missing-letter details, plus timing data in microseconds.

AlphabetRequest and AlphabetResponse expose the symbol set for clients that
want to render or validate locally.

ConfigRequest and ConfigResponse manage runtime limit updates. Supported
fields are max_word_len and max_results; omitted fields keep their current
values, and accepted updates are written back to the active config file.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.
*/
package server

// SpellRequest - minimal spell request
type SpellRequest struct {
	ID    string `msgpack:"id"`
	Word  string `msgpack:"w"`
	Limit int    `msgpack:"l,omitempty"`
}

// Spelling - one exact tiling with its traversal rank
type Spelling struct {
	Symbols []string `msgpack:"sym"`
	Rank    uint16   `msgpack:"r"`
}

// ClosestEntry - one best partial tiling with its missing letters
type ClosestEntry struct {
	Symbols      []string `msgpack:"sym"`
	MissingCount int      `msgpack:"n"`
	Missing      []string `msgpack:"m,omitempty"`
}

// SpellResponse - spell response
type SpellResponse struct {
	ID        string         `msgpack:"id"`
	CanSpell  bool           `msgpack:"ok"`
	Spellings []Spelling     `msgpack:"s,omitempty"`
	Closest   []ClosestEntry `msgpack:"cm,omitempty"`
	Count     int            `msgpack:"c"`
	TimeTaken int64          `msgpack:"t"`
}

// AlphabetRequest - alphabet info request
type AlphabetRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"` // "get_info", "get_symbols"
}

// AlphabetResponse - alphabet operation response
type AlphabetResponse struct {
	ID          string   `msgpack:"id"`
	Status      string   `msgpack:"status"`
	Error       string   `msgpack:"error,omitempty"`
	SymbolCount int      `msgpack:"symbol_count,omitempty"`
	Symbols     []string `msgpack:"symbols,omitempty"`
}

// CONFIG MESSAGES - Settings updates (speller limits only, other configs via TOML)

// ConfigRequest - runtime limit update request
type ConfigRequest struct {
	ID         string `msgpack:"id"`
	Action     string `msgpack:"action"`                 // "set_limits"
	MaxWordLen *int   `msgpack:"max_word_len,omitempty"` // nil keeps current
	MaxResults *int   `msgpack:"max_results,omitempty"`  // nil keeps current
}

// ConfigResponse - config operation response
type ConfigResponse struct {
	ID         string `msgpack:"id"`
	Status     string `msgpack:"status"`
	Error      string `msgpack:"error,omitempty"`
	MaxWordLen int    `msgpack:"max_word_len,omitempty"`
	MaxResults int    `msgpack:"max_results,omitempty"`
}

// SpellError holds basic error information for spell requests
type SpellError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
