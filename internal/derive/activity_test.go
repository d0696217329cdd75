package derive

import (
	"testing"

	"injective-creator-hub/internal/domain"
)

func TestActivityLog_Scenario(t *testing.T) {
	txs := []domain.RawTransaction{
		{
			Hash:           "0xaaa",
			BlockTimestamp: "2024-01-01T00:00:00Z",
			GasUsed:        "100",
			Code:           intPtr(0),
			MessageTypes:   []string{"injective.nft.mint"},
		},
		{
			Hash:           "0xbbb",
			BlockTimestamp: "2024-01-02T00:00:00Z",
			GasUsed:        "150",
			Code:           intPtr(0),
			MessageTypes:   []string{"injective.collection.create", "injective.campaign.join"},
		},
	}

	log := ActivityLog(txs, 0)
	if len(log) != 2 {
		t.Fatalf("len = %d, want 2", len(log))
	}

	// Newest first: 0xbbb, then 0xaaa.
	if log[0].TxHash != "0xbbb" {
		t.Errorf("first row hash = %s, want 0xbbb", log[0].TxHash)
	}
	if log[1].EventType != domain.EventNFTMint {
		t.Errorf("second row event = %s, want NFT_MINT", log[1].EventType)
	}
	if log[0].EventType != domain.EventCollectionCreated {
		t.Errorf("first row event = %s, want COLLECTION_CREATED (first message only)", log[0].EventType)
	}
	if log[0].Status != domain.StatusSuccess {
		t.Errorf("first row status = %s, want success", log[0].Status)
	}
}

func TestActivityLog_SortedNewestFirst(t *testing.T) {
	txs := []domain.RawTransaction{
		{Hash: "0x1", BlockTimestamp: "2024-01-02T00:00:00Z"},
		{Hash: "0x2", BlockTimestamp: "2024-01-05T00:00:00Z"},
		{Hash: "0x3", BlockTimestamp: "2024-01-01T00:00:00Z"},
		{Hash: "0x4", BlockTimestamp: "2024-01-04T00:00:00Z"},
	}

	log := ActivityLog(txs, 0)
	for i := 1; i < len(log); i++ {
		prev, _ := domain.ParseTimestamp(log[i-1].Timestamp)
		cur, _ := domain.ParseTimestamp(log[i].Timestamp)
		if cur.After(prev) {
			t.Fatalf("log not non-increasing at %d: %s before %s", i, log[i-1].Timestamp, log[i].Timestamp)
		}
	}
	if log[0].TxHash != "0x2" || log[3].TxHash != "0x3" {
		t.Errorf("unexpected order: %s ... %s", log[0].TxHash, log[3].TxHash)
	}
}

func TestActivityLog_TiesKeepInputOrder(t *testing.T) {
	txs := []domain.RawTransaction{
		{Hash: "0xfirst", BlockTimestamp: "2024-01-01T00:00:00Z"},
		{Hash: "0xsecond", BlockTimestamp: "2024-01-01T00:00:00Z"},
	}

	log := ActivityLog(txs, 0)
	if log[0].TxHash != "0xfirst" || log[1].TxHash != "0xsecond" {
		t.Errorf("tie order changed: %s, %s", log[0].TxHash, log[1].TxHash)
	}
}

func TestActivityLog_Defaults(t *testing.T) {
	txs := []domain.RawTransaction{
		// no messages, no gas, no status code
		{Hash: "0x1", BlockTimestamp: "2024-01-01T00:00:00Z"},
	}

	log := ActivityLog(txs, 0)
	if len(log) != 1 {
		t.Fatalf("len = %d, want 1", len(log))
	}
	row := log[0]
	if row.EventType != domain.EventOther {
		t.Errorf("EventType = %s, want OTHER for empty message type", row.EventType)
	}
	if row.GasUsed != "0" {
		t.Errorf("GasUsed = %q, want \"0\"", row.GasUsed)
	}
	if row.Status != domain.StatusFailed {
		t.Errorf("Status = %s, want failed when status code is missing", row.Status)
	}
	if row.Protocol != "Unknown" {
		t.Errorf("Protocol = %q, want Unknown", row.Protocol)
	}
}

func TestActivityLog_NonZeroCodeIsFailed(t *testing.T) {
	txs := []domain.RawTransaction{
		{Hash: "0x1", BlockTimestamp: "2024-01-01T00:00:00Z", Code: intPtr(5)},
	}
	log := ActivityLog(txs, 0)
	if log[0].Status != domain.StatusFailed {
		t.Errorf("Status = %s, want failed for code 5", log[0].Status)
	}
}

func TestActivityLog_IDsUniqueForRepeatedHashes(t *testing.T) {
	txs := []domain.RawTransaction{
		{Hash: "0xdup", BlockTimestamp: "2024-01-01T00:00:00Z"},
		{Hash: "0xdup", BlockTimestamp: "2024-01-02T00:00:00Z"},
	}

	log := ActivityLog(txs, 0)
	if log[0].ID == log[1].ID {
		t.Errorf("duplicate IDs for repeated hash: %s", log[0].ID)
	}
}

func TestActivityLog_OrdinalSkipsIneligible(t *testing.T) {
	txs := []domain.RawTransaction{
		{Hash: "", BlockTimestamp: "2024-01-01T00:00:00Z"},
		{Hash: "0x1", BlockTimestamp: "2024-01-01T00:00:00Z"},
	}

	log := ActivityLog(txs, 0)
	if len(log) != 1 {
		t.Fatalf("len = %d, want 1", len(log))
	}
	// Ordinal counts positions in the filtered list, not the raw input.
	if log[0].ID != "0x1-0" {
		t.Errorf("ID = %s, want 0x1-0", log[0].ID)
	}
}

func TestActivityLog_Limit(t *testing.T) {
	txs := []domain.RawTransaction{
		{Hash: "0x1", BlockTimestamp: "2024-01-01T00:00:00Z"},
		{Hash: "0x2", BlockTimestamp: "2024-01-03T00:00:00Z"},
		{Hash: "0x3", BlockTimestamp: "2024-01-02T00:00:00Z"},
	}

	log := ActivityLog(txs, 2)
	if len(log) != 2 {
		t.Fatalf("len = %d, want 2", len(log))
	}
	// Cap applies after sorting, keeping the newest rows.
	if log[0].TxHash != "0x2" || log[1].TxHash != "0x3" {
		t.Errorf("capped log kept wrong rows: %s, %s", log[0].TxHash, log[1].TxHash)
	}
}
