// Package guard serialises conflicting interactions on spawners.
//
// # Components
//
//   - Sessions: a per-spawner exclusive lock held by the actor with the spawner UI
//     open. Lock never blocks; a false result means "in use" and is a normal outcome.
//   - Cooldown: a short per-actor interval (250ms by default) rejecting rapid
//     repeated interactions. Entries live in a ttlcache and are swept when they expire.
//
// The third guard, the per-spawner mutation lock used by siphon ticks, is part of
// the accumulator itself (loot.Accumulator.TryMoveToSink).
//
// # Usage
//
//	sessions := guard.NewSessions()
//	if !sessions.Lock(spawnerID, playerID) {
//	    return "spawner in use"
//	}
//	defer sessions.Unlock(spawnerID, playerID)
package guard
