package domain

// EventType classifies a transaction message into a semantic category.
type EventType string

const (
	EventNFTMint               EventType = "NFT_MINT"
	EventTokenTransfer         EventType = "TOKEN_TRANSFER"
	EventContractInteraction   EventType = "CONTRACT_INTERACTION"
	EventCampaignParticipation EventType = "CAMPAIGN_PARTICIPATION"
	EventCollectionCreated     EventType = "COLLECTION_CREATED"
	EventOther                 EventType = "OTHER"
)

// TxStatus is the execution outcome of a transaction.
type TxStatus string

const (
	StatusSuccess TxStatus = "success"
	StatusFailed  TxStatus = "failed"
)

// ClassifiedEvent is one row of the activity log, derived from exactly one
// eligible transaction. Immutable once produced.
type ClassifiedEvent struct {
	ID        string    `json:"id"` // "<hash>-<ordinal>", unique per derivation run
	EventType EventType `json:"eventType"`
	Protocol  string    `json:"protocol"`
	Timestamp string    `json:"timestamp"`
	TxHash    string    `json:"transactionHash"`
	GasUsed   string    `json:"gasUsed"`
	Status    TxStatus  `json:"status"`
	Details   string    `json:"details"` // raw first message type
}
