// Package domain contains application services orchestrating the ledger rules.
package domain

import (
	"context"
	"fmt"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/ledger"
)

// Register creates a player owned by an existing club. An existing id is never overwritten.
func (u *Usecase) Register(ctx context.Context, player entities.Player) (res *entities.Player, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	defer func() { u.observe("register", err) }()

	if player.ID == "" {
		return nil, fmt.Errorf("%w: player id is required", entities.ErrInvalidArgument)
	}
	err = u.ledger.Update(ctx, func(tx *ledger.Tx) error {
		if !tx.HasClub(player.Club) {
			return fmt.Errorf("%w: %q", entities.ErrUnknownClub, player.Club)
		}
		if _, ok := tx.Player(player.ID); ok {
			return fmt.Errorf("%w: %s", entities.ErrAlreadyRegistered, player.ID)
		}
		return tx.PutPlayer(player)
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("player registered", "player_id", player.ID, "club", player.Club)
	return &player, nil
}

// RemovePlayer deletes a player together with its active loan.
func (u *Usecase) RemovePlayer(ctx context.Context, playerID string) (res *entities.Player, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	defer func() { u.observe("remove_player", err) }()

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", entities.ErrInvalidArgument)
	}
	var removed entities.Player
	err = u.ledger.Update(ctx, func(tx *ledger.Tx) error {
		p, ok := tx.Player(playerID)
		if !ok {
			return fmt.Errorf("%w: %s", entities.ErrPlayerNotFound, playerID)
		}
		removed = p
		tx.DeletePlayer(playerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("player removed", "player_id", playerID, "club", removed.Club)
	return &removed, nil
}
