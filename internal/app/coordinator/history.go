package coordinator

import "github.com/pbf-league/huddle/internal/domains/entities"

// historyCap bounds the rollback log. Oldest entries are evicted first.
const historyCap = 3

// RecordStatus archives a deep copy of the live status, stamped with
// the outbound message id it was waiting on, at the head of the
// rollback log.
func RecordStatus(game *entities.Game, messageId string) {
	snapshot := game.Status.Copy()
	snapshot.MessageId = messageId
	game.PrevStatuses = append([]entities.GameStatus{snapshot}, game.PrevStatuses...)
	if len(game.PrevStatuses) > historyCap {
		game.PrevStatuses = game.PrevStatuses[:historyCap]
	}
}

// RollbackStatus replaces the live status with the archived snapshot at
// index and clears the error flag. This is the operator escape hatch
// for desynchronized games, the only mutation path that bypasses the
// transitioner.
func RollbackStatus(game *entities.Game, index int) error {
	if index < 0 || index >= len(game.PrevStatuses) {
		return ErrBadHistoryIndex
	}
	game.Status = game.PrevStatuses[index].Copy()
	game.Errored = false
	game.Dirty = true
	return nil
}
