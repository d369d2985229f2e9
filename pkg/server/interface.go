/*
Package server implements msgpack IPC for keypad predictions.

Clients write msgpack maps to the server's stdin and read msgpack maps from its
stdout, one response per request, in order. Every message carries an "id" that
is echoed back.

# IPC

A lookup sends the keys typed so far; "action" may be omitted:

	{"id": "r1", "k": "2775", "l": 10}

The response lists the candidates for the deepest known node along those keys,
most recently typed first. "w" marks complete words and "t" is the time taken
in microseconds:

	{"id": "r1", "s": [{"f": "appl", "r": 1, "w": false}], "c": 1, "t": 3}

Keys past the end of every known word do not fail; the response keeps the
candidates of the longest known prefix. Unknown first keys give an empty list.

Other actions:

	{"id": "r2", "action": "learn", "w": "arrow"}
	{"id": "r3", "action": "words", "p": "ar", "l": 5}
	{"id": "r4", "action": "stats"}
	{"id": "r5", "action": "health"}

Failures are reported with an error message and an HTTP-like code:

	{"id": "r6", "e": "keys must be digits", "c": 400}

The server writes {"status": "ready"} once before reading requests and exits
cleanly when stdin is closed.
*/
package server

// Request is any client message. Which fields matter depends on Action.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Keys   string `msgpack:"k,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Request actions.
const (
	ActionLookup = "lookup"
	ActionLearn  = "learn"
	ActionWords  = "words"
	ActionStats  = "stats"
	ActionHealth = "health"
)

// LookupSuggestion - one candidate fragment
type LookupSuggestion struct {
	Fragment string `msgpack:"f"`
	Rank     uint16 `msgpack:"r"`
	Word     bool   `msgpack:"w"`
}

// LookupResponse - lookup response
type LookupResponse struct {
	ID          string             `msgpack:"id"`
	Suggestions []LookupSuggestion `msgpack:"s"`
	Count       int                `msgpack:"c"`
	TimeTaken   int64              `msgpack:"t"`
}

// WordsResponse - vocabulary listing
type WordsResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"words"`
	Count int      `msgpack:"c"`
}

// StatusResponse answers learn and health requests, and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// StatsResponse - dictionary counters
type StatsResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
