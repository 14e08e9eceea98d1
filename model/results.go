package model

// These values must stay in sync with the result enums reported by the game
// harness.

// MoveResult is the outcome of a move check, or of last turn's move.
type MoveResult string

const (
	MoveValid             MoveResult = "move_valid"
	MoveCompleted         MoveResult = "move_completed"
	MoveBlockedByWorld    MoveResult = "blocked_by_world"
	MoveBlockedByEnemy    MoveResult = "blocked_by_enemy"
	MoveBlockedByFriendly MoveResult = "blocked_by_friendly"
	MoveNotAttempted      MoveResult = "no_move_attempted"
)

// ShotResult is the outcome of checking a shot against an enemy.
type ShotResult string

const (
	ShotCanHit         ShotResult = "can_hit_enemy"
	ShotOutOfRange     ShotResult = "target_out_of_range"
	ShotBlockedByWorld ShotResult = "blocked_by_world"
	ShotTargetDead     ShotResult = "target_dead"
)

// ShieldResult is the outcome of checking shield activation.
type ShieldResult string

const (
	ShieldValid         ShieldResult = "shield_activation_valid"
	ShieldNoneAvailable ShieldResult = "no_shields"
	ShieldAlreadyActive ShieldResult = "shield_already_active"
)

// PickupResult is the outcome of checking a pickup on the unit's tile.
type PickupResult string

const (
	PickupValid   PickupResult = "pick_up_valid"
	PickupNothing PickupResult = "nothing_to_pick_up"
)
