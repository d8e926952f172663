// Package document encodes the ledger snapshot as the single JSON document
// shared by every storage backend.
package document

import (
	"encoding/json"
	"fmt"
	"time"

	"club-transfer-ledger/internal/entities"
)

// legacyTimeLayout is the naive ISO form written by older deployments; it is read as UTC.
const legacyTimeLayout = "2006-01-02T15:04:05.999999"

type playerRecord struct {
	Discord  string `json:"discord"`
	Roblox   string `json:"roblox"`
	Club     string `json:"club"`
	Contract string `json:"contract"`
}

type loanRecord struct {
	OriginalClub string `json:"original_club"`
	LoanedTo     string `json:"loaned_to"`
	EndDate      string `json:"end_date"`
}

type ledgerDocument struct {
	Players map[string]playerRecord `json:"players"`
	Budgets map[string]int64        `json:"budgets"`
	Loans   map[string]loanRecord   `json:"loans"`
}

// Encode renders the snapshot as a JSON document.
func Encode(s entities.Snapshot) ([]byte, error) {
	doc := ledgerDocument{
		Players: make(map[string]playerRecord, len(s.Players)),
		Budgets: make(map[string]int64, len(s.Budgets)),
		Loans:   make(map[string]loanRecord, len(s.Loans)),
	}
	for id, p := range s.Players {
		doc.Players[id] = playerRecord{
			Discord:  p.DisplayLabel,
			Roblox:   p.ProfileRef,
			Club:     p.Club,
			Contract: p.ContractTerm,
		}
	}
	for club, budget := range s.Budgets {
		doc.Budgets[club] = budget
	}
	for id, l := range s.Loans {
		if l.EndAt.UTC().Year() < 0 || l.EndAt.After(entities.MaxLoanEnd) {
			return nil, fmt.Errorf("encode ledger document: loan %q ends outside the storable range: %s", id, l.EndAt)
		}
		doc.Loans[id] = loanRecord{
			OriginalClub: l.OriginalClub,
			LoanedTo:     l.LoanedTo,
			EndDate:      FormatTime(l.EndAt),
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode ledger document: %w", err)
	}
	return data, nil
}

// Decode parses and validates a JSON document. Any failure wraps entities.ErrCorruptSnapshot.
func Decode(data []byte) (entities.Snapshot, error) {
	var doc ledgerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return entities.Snapshot{}, fmt.Errorf("%w: %w", entities.ErrCorruptSnapshot, err)
	}

	s := entities.NewSnapshot()
	for id, p := range doc.Players {
		s.Players[id] = entities.Player{
			ID:           id,
			DisplayLabel: p.Discord,
			ProfileRef:   p.Roblox,
			Club:         p.Club,
			ContractTerm: p.Contract,
		}
	}
	for club, budget := range doc.Budgets {
		s.Budgets[club] = budget
	}
	for id, l := range doc.Loans {
		end, err := ParseTime(l.EndDate)
		if err != nil {
			return entities.Snapshot{}, fmt.Errorf("%w: loan %q: %w", entities.ErrCorruptSnapshot, id, err)
		}
		s.Loans[id] = entities.Loan{
			PlayerID:     id,
			OriginalClub: l.OriginalClub,
			LoanedTo:     l.LoanedTo,
			EndAt:        end,
		}
	}

	if err := s.Validate(); err != nil {
		return entities.Snapshot{}, err
	}
	return s, nil
}

// FormatTime renders t as sortable RFC 3339 UTC text.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime accepts RFC 3339 text and the legacy naive ISO form.
func ParseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(legacyTimeLayout, v, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse end date %q: %w", v, err)
	}
	return t, nil
}
