// Package score applies round deltas to sessions and undoes the most
// recent entry per player. The pure functions here never inspect whether
// a session has ended; that gate belongs to the calling layer (the
// Controller in this package, for storage-backed callers).
package score

import (
	"github.com/mcoot/cardtally-go/internal/model"
)

// ApplyDeltas appends each nonzero delta to the matching player's
// history and adjusts their total. Players absent from deltas, or mapped
// to zero, are untouched. Returns the input session unchanged and
// changed=false when no delta applies, so callers can skip saving and
// feedback.
func ApplyDeltas(session *model.Session, deltas map[model.PlayerID]int) (*model.Session, bool) {
	changed := false
	for _, p := range session.Players {
		if deltas[p.ID] != 0 {
			changed = true
			break
		}
	}
	if !changed {
		return session, false
	}

	out := session.Clone()
	for i := range out.Players {
		delta := deltas[out.Players[i].ID]
		if delta == 0 {
			continue
		}
		out.Players[i].History = append(out.Players[i].History, delta)
		out.Players[i].Total += delta
	}
	return out, true
}

// UndoLastDelta removes the named player's most recent history entry and
// subtracts it from their total. Returns the removed value. No-op when
// the player is unknown or has no history.
func UndoLastDelta(session *model.Session, playerID model.PlayerID) (*model.Session, int, bool) {
	p := session.Player(playerID)
	if p == nil || len(p.History) == 0 {
		return session, 0, false
	}

	out := session.Clone()
	target := out.Player(playerID)
	last := target.History[len(target.History)-1]
	target.History = target.History[:len(target.History)-1]
	target.Total -= last
	return out, last, true
}
