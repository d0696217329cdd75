package indexer

import (
	"encoding/json"
	"strings"

	"injective-creator-hub/internal/domain"
)

// accountTxsResponse is the explorer accountTxs payload envelope.
type accountTxsResponse struct {
	Paging pagingInfo   `json:"paging"`
	Data   []explorerTx `json:"data"`
}

type pagingInfo struct {
	Total int `json:"total"`
	From  int `json:"from"`
	To    int `json:"to"`
}

// explorerTx is one transaction record as the explorer returns it.
// Fields are loosely shaped on the wire: gas arrives as a string or a
// number depending on the indexer version, code and timestamp may be
// absent. This type is the validated ingestion boundary; nothing past it
// sees untyped data.
type explorerTx struct {
	Hash           string            `json:"hash"`
	BlockTimestamp string            `json:"block_timestamp"`
	GasUsed        gasAmount         `json:"gas_used"`
	Code           *int              `json:"code"`
	Messages       []explorerMessage `json:"messages"`
}

// gasAmount decodes the explorer gas field, which arrives as a number, a
// numeric string, an empty string, or not at all depending on the indexer
// version. A malformed value degrades to empty instead of failing the
// whole payload; the derivation pipeline treats empty gas as "0".
type gasAmount string

func (g *gasAmount) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*g = gasAmount(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*g = gasAmount(strings.TrimSpace(s))
		return nil
	}

	*g = ""
	return nil
}

type explorerMessage struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// toRaw converts an explorer record into the strict RawTransaction shape.
// No validation happens here beyond shaping; eligibility filtering is the
// derivation pipeline's job.
func (e *explorerTx) toRaw() domain.RawTransaction {
	messageTypes := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		messageTypes = append(messageTypes, strings.TrimSpace(m.Type))
	}

	return domain.RawTransaction{
		Hash:           e.Hash,
		BlockTimestamp: e.BlockTimestamp,
		GasUsed:        string(e.GasUsed),
		Code:           e.Code,
		MessageTypes:   messageTypes,
	}
}
