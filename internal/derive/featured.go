package derive

import (
	"fmt"
	"strings"

	"injective-creator-hub/internal/domain"
)

// maxFeaturedCandidates caps the derived showcase list.
const maxFeaturedCandidates = 10

// explorerTxURL is the external reference target for a featured item.
const explorerTxURL = "https://explorer.injective.network/transaction/%s"

// placeholderImageURL is a deterministic placeholder keyed by item index;
// real artwork resolution would require NFT metadata the indexer does not
// return for plain transaction history.
const placeholderImageURL = "https://static.injective.network/nft/placeholder-%d.png"

// FeaturedWork extracts showcase candidates from NFT-related
// transactions: any transaction whose message types mention "nft", capped
// to the first 10 in input order. Titles and images are synthesized
// placeholders; the list is transient and recomputed each run.
func FeaturedWork(txs []domain.RawTransaction) []domain.FeaturedCandidate {
	var items []domain.FeaturedCandidate

	for i := range txs {
		tx := &txs[i]
		if !tx.Eligible() || !mentionsNFT(tx.MessageTypes) {
			continue
		}

		n := len(items)
		items = append(items, domain.FeaturedCandidate{
			ID:          fmt.Sprintf("%s-nft-%d", tx.Hash, n),
			Kind:        domain.FeaturedNFT,
			Title:       fmt.Sprintf("NFT activity %d", n+1),
			ImageRef:    fmt.Sprintf(placeholderImageURL, n),
			ExternalRef: fmt.Sprintf(explorerTxURL, tx.Hash),
		})
		if len(items) == maxFeaturedCandidates {
			break
		}
	}

	return items
}

func mentionsNFT(messageTypes []string) bool {
	for _, mt := range messageTypes {
		if strings.Contains(strings.ToLower(mt), "nft") {
			return true
		}
	}
	return false
}
