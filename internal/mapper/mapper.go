// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/transport/http/dto"
)

// FromRegisterRequest builds an entities.Player from transport DTO.
func FromRegisterRequest(src dto.RegisterPlayerRequest) entities.Player {
	return entities.Player{
		ID:           src.PlayerID,
		DisplayLabel: src.DisplayLabel,
		ProfileRef:   src.ProfileRef,
		Club:         src.Club,
		ContractTerm: src.ContractTerm,
	}
}

// ToPlayer maps entities.Player to transport model.
func ToPlayer(p entities.Player) dto.Player {
	return dto.Player{
		PlayerID:     p.ID,
		DisplayLabel: p.DisplayLabel,
		ProfileRef:   p.ProfileRef,
		Club:         p.Club,
		ContractTerm: p.ContractTerm,
	}
}

// ToPlayerViews maps player views, attaching active loans.
func ToPlayerViews(views []entities.PlayerView) []dto.Player {
	out := make([]dto.Player, 0, len(views))
	for _, v := range views {
		p := ToPlayer(v.Player)
		if v.Loan != nil {
			p.Loan = &dto.Loan{
				OriginalClub: v.Loan.OriginalClub,
				LoanedTo:     v.Loan.LoanedTo,
				EndAt:        v.Loan.EndAt,
			}
		}
		out = append(out, p)
	}
	return out
}

// ToClubs maps clubs with budgets.
func ToClubs(clubs []entities.Club) []dto.Club {
	out := make([]dto.Club, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, dto.Club{Club: c.Name, Budget: c.Budget})
	}
	return out
}

// ToTransferResult maps entities.TransferResult to transport model.
func ToTransferResult(r entities.TransferResult) dto.TransferResult {
	return dto.TransferResult{
		PlayerID:   r.PlayerID,
		FromClub:   r.FromClub,
		ToClub:     r.ToClub,
		Price:      r.Price,
		FromBudget: r.FromBudget,
		ToBudget:   r.ToBudget,
		LoanEnded:  r.LoanEnded,
	}
}

// ToLoanResult maps entities.LoanResult to transport model.
func ToLoanResult(r entities.LoanResult) dto.LoanResult {
	return dto.LoanResult{
		PlayerID:     r.Loan.PlayerID,
		OriginalClub: r.Loan.OriginalClub,
		LoanedTo:     r.Loan.LoanedTo,
		Days:         r.Days,
		EndAt:        r.Loan.EndAt,
		Replaced:     r.Replaced,
	}
}

// ToSweepResult maps entities.SweepResult to transport model.
func ToSweepResult(r entities.SweepResult) dto.SweepResult {
	reversed := make([]dto.LoanReversal, 0, len(r.Reversed))
	for _, rv := range r.Reversed {
		reversed = append(reversed, dto.LoanReversal{
			PlayerID:     rv.PlayerID,
			LoanedTo:     rv.LoanedTo,
			RestoredClub: rv.RestoredClub,
			EndAt:        rv.EndAt,
		})
	}
	return dto.SweepResult{Checked: r.Checked, Reversed: reversed}
}
