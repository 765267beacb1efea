package domain

import "time"

// Event types
const (
	EventTypeAccountOpened = "account.opened"
	EventTypeTradeExecuted = "trade.executed"
)

// Aggregate types
const (
	AggregateTypeAccount = "account"
	AggregateTypeTrade   = "trade"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// AccountOpenedEvent payload
type AccountOpenedEvent struct {
	AccountID string `json:"account_id"`
	Owner     string `json:"owner"`
	Balance   string `json:"balance"`
}

// TradeExecutedEvent payload
type TradeExecutedEvent struct {
	TradeID   string `json:"trade_id"`
	AccountID string `json:"account_id"`
	Symbol    string `json:"symbol"`
	Side      string `json:"side"`
	Quantity  string `json:"quantity"`
	Price     string `json:"price"`
	Balance   string `json:"balance"`
}
