package spawner

import "context"

// SaveSpawner persists sp without looking it up in the registry first, the
// way a save that is already underway proceeds.
func (s *Service) SaveSpawner(ctx context.Context, sp *Spawner) error {
	return s.save(ctx, sp)
}
