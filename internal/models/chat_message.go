package models

// ChatMessage is one entry in an order's conversation. Messages are
// embedded in their order and immutable once appended. Timestamp is
// unix milliseconds.
type ChatMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp"`
	IsAdmin    bool   `json:"isAdmin"`
}
