package webhook

// Vote is the payload Listcord delivers when a user votes for a bot.
type Vote struct {
	// BotID is the bot that received the vote.
	BotID string `json:"bot"`
	// UserID is the user who cast the vote.
	UserID string `json:"user"`
	// Type distinguishes real votes from dashboard test deliveries.
	Type string `json:"type,omitempty"`
	// Timestamp is the vote time in unix milliseconds.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// IsTest reports whether the delivery was triggered from the Listcord
// dashboard rather than by a real vote.
func (v Vote) IsTest() bool {
	return v.Type == "test"
}

// Response defines the structure for an HTTP response containing a body,
// headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}
