// Package classify maps raw transaction message types to semantic event
// categories and protocol labels. Matching is substring-based on the
// lower-cased type URL with a fixed precedence order; the functions are
// total and never fail, since indexer data is best-effort.
package classify

import (
	"strings"

	"injective-creator-hub/internal/domain"
)

// Protocol labels for the known bridge/contract message families.
const (
	ProtocolCosmWasm = "CosmWasm"
	ProtocolExchange = "Injective Exchange"
	ProtocolPeggy    = "Peggy Bridge"
	ProtocolUnknown  = "Unknown"
)

// EventType classifies a message type string. First match wins:
// NFT mint, token transfer, campaign participation, collection creation,
// then any non-empty type is a contract interaction. Empty types map to
// OTHER.
func EventType(messageType string) domain.EventType {
	mt := strings.ToLower(messageType)
	switch {
	case mt == "":
		return domain.EventOther
	case strings.Contains(mt, "nft") && strings.Contains(mt, "mint"):
		return domain.EventNFTMint
	case strings.Contains(mt, "transfer"):
		return domain.EventTokenTransfer
	case strings.Contains(mt, "campaign"):
		return domain.EventCampaignParticipation
	case strings.Contains(mt, "collection") && strings.Contains(mt, "create"):
		return domain.EventCollectionCreated
	default:
		return domain.EventContractInteraction
	}
}

// Protocol derives a display label for the protocol behind a message type.
// Known families map to fixed labels; anything else falls back to the last
// dot-delimited segment of the type URL.
func Protocol(messageType string) string {
	mt := strings.ToLower(messageType)
	switch {
	case mt == "":
		return ProtocolUnknown
	case strings.Contains(mt, "wasm"):
		return ProtocolCosmWasm
	case strings.Contains(mt, "exchange"):
		return ProtocolExchange
	case strings.Contains(mt, "peggy"):
		return ProtocolPeggy
	}

	parts := strings.Split(messageType, ".")
	last := parts[len(parts)-1]
	if last == "" {
		return ProtocolUnknown
	}
	return last
}

// IsDappInteraction reports whether a message type counts toward dapp
// interaction uniqueness. This is deliberately narrower than EventType:
// only the bridge/contract marker families qualify, so e.g. a bare
// "nft.mint" message does not make its protocol count as a dapp.
func IsDappInteraction(messageType string) bool {
	mt := strings.ToLower(messageType)
	return strings.Contains(mt, "wasm") ||
		strings.Contains(mt, "exchange") ||
		strings.Contains(mt, "peggy")
}
