package spawner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"spawner-loot/core/catalog"
	"spawner-loot/core/guard"
	"spawner-loot/core/loot"
	"spawner-loot/core/metrics"
	"spawner-loot/core/siphon"
	"spawner-loot/core/storage"
	"spawner-loot/feature/economy"
	"spawner-loot/feature/spawner/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SnapshotPrefix is the object prefix of spawner backups.
const SnapshotPrefix = "snapshots/"

// Deps wires a Service. Repository and Storage are optional; the operations
// needing them fail with ErrNoPersistence and ErrNoStorage.
type Deps struct {
	Catalog     *catalog.Service
	Economy     economy.Provider
	Repository  *Repository
	Storage     storage.Client
	Bucket      string
	Sessions    *guard.Sessions
	Cooldown    *guard.Cooldown
	Scheduler   *siphon.Scheduler
	SiphonBatch uint64
	Logger      *zap.Logger
}

// Service owns the spawner lifecycle and every interaction on spawners.
type Service struct {
	registry  *Registry
	catalog   *catalog.Service
	economy   economy.Provider
	repo      *Repository
	client    storage.Client
	bucket    string
	sessions  *guard.Sessions
	cooldown  *guard.Cooldown
	scheduler *siphon.Scheduler
	batch     uint64
	logger    *zap.Logger

	mu      sync.Mutex
	siphons map[siphon.Key]*siphonTask
}

// NewService creates a service. Missing guards and scheduler get defaults.
func NewService(d Deps) *Service {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Catalog == nil {
		d.Catalog = catalog.NewService(catalog.StaticSource(nil), d.Logger)
	}
	if d.Economy == nil {
		d.Economy = economy.NewLog(d.Logger)
	}
	if d.Sessions == nil {
		d.Sessions = guard.NewSessions()
	}
	if d.Cooldown == nil {
		d.Cooldown = guard.NewCooldown(guard.DefaultCooldown)
	}
	if d.Scheduler == nil {
		d.Scheduler = siphon.New(siphon.Config{}, d.Logger)
	}
	if d.SiphonBatch == 0 {
		d.SiphonBatch = loot.DefaultMaxStack
	}
	return &Service{
		registry:  NewRegistry(d.Catalog),
		catalog:   d.Catalog,
		economy:   d.Economy,
		repo:      d.Repository,
		client:    d.Storage,
		bucket:    d.Bucket,
		sessions:  d.Sessions,
		cooldown:  d.Cooldown,
		scheduler: d.Scheduler,
		batch:     d.SiphonBatch,
		logger:    d.Logger,
		siphons:   make(map[siphon.Key]*siphonTask),
	}
}

// Create registers a new spawner. An empty id is generated.
func (s *Service) Create(id, kind string) (*Spawner, error) {
	if id == "" {
		id = uuid.NewString()
	}
	sp, err := s.registry.Create(id, loot.NormalizeKind(kind), time.Now())
	if err != nil {
		return nil, err
	}
	metrics.SetLiveSpawners(s.registry.Len())
	s.logger.Info("Spawner created", zap.String("spawner", id), zap.String("kind", sp.Kind))
	return sp, nil
}

// Get returns a live spawner.
func (s *Service) Get(id string) (*Spawner, error) {
	return s.registry.Get(id)
}

// Destroy removes a spawner: siphons stop, its session is dropped and the
// accumulated loot is discarded, also from the database. A save running
// concurrently finishes before the rows are deleted; later saves are refused.
func (s *Service) Destroy(ctx context.Context, id string) error {
	sp, err := s.registry.Destroy(id)
	if err != nil {
		return err
	}
	metrics.SetLiveSpawners(s.registry.Len())

	sp.persist.Lock()
	defer sp.persist.Unlock()
	sp.destroyed = true

	s.mu.Lock()
	for key := range s.siphons {
		if key.Spawner == id {
			delete(s.siphons, key)
		}
	}
	s.mu.Unlock()
	s.scheduler.CancelSpawner(id)
	s.sessions.Forget(id)

	if s.repo != nil {
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
	}
	s.logger.Info("Spawner destroyed", zap.String("spawner", id))
	return nil
}

// Summary describes a live spawner.
func (s *Service) Summary(id string) (models.Summary, error) {
	sp, err := s.registry.Get(id)
	if err != nil {
		return models.Summary{}, err
	}
	owner, _ := s.sessions.Owner(id)
	return models.Summary{
		ID:         sp.ID,
		Kind:       sp.Kind,
		Entries:    sp.Loot.Len(),
		TotalUnits: sp.Loot.TotalUnits(),
		Stacks:     sp.Loot.TotalStacks(),
		Pages:      sp.Loot.TotalPages(),
		Owner:      owner,
		Siphons:    len(s.Siphons(id)),
	}, nil
}

// List summarises every live spawner.
func (s *Service) List() []models.Summary {
	spawners := s.registry.List()
	out := make([]models.Summary, 0, len(spawners))
	for _, sp := range spawners {
		if sum, err := s.Summary(sp.ID); err == nil {
			out = append(out, sum)
		}
	}
	return out
}

// AddLoot accumulates produced units.
func (s *Service) AddLoot(id string, units []loot.Unit) (models.LootReport, error) {
	sp, err := s.registry.Get(id)
	if err != nil {
		return models.LootReport{}, err
	}
	for _, u := range units {
		if loot.NormalizeKind(u.Kind) == "" || u.Count < 0 {
			return models.LootReport{}, fmt.Errorf("%w: units need a kind and a non-negative count", ErrBadRequest)
		}
	}

	var report models.LootReport
	for _, u := range units {
		added, saturated := sp.Loot.AccumulateUnit(u)
		metrics.Accumulated(added, saturated)
		report.Added += added
		if saturated {
			report.Saturated = true
			s.logger.Warn("Loot counter saturated",
				zap.String("spawner", id),
				zap.String("kind", u.Kind),
				zap.Int("dropped", u.Count-int(added)))
		}
	}
	return report, nil
}

// Page returns page n, clamped into the valid range.
func (s *Service) Page(id string, n int) (loot.Page, error) {
	sp, err := s.registry.Get(id)
	if err != nil {
		return loot.Page{}, err
	}
	// the accumulator may shrink between the count and the read
	for {
		page, ok := sp.Loot.Page(loot.ClampPage(n, sp.Loot.TotalPages()))
		if ok {
			return page, nil
		}
	}
}

// OpenSession locks the spawner for actor. Opening a session the actor does
// not hold yet counts as an interaction for the cooldown.
func (s *Service) OpenSession(id, actor string) error {
	if actor == "" {
		return fmt.Errorf("%w: actor is required", ErrBadRequest)
	}
	if _, err := s.registry.Get(id); err != nil {
		return err
	}
	if !s.sessions.IsOwner(id, actor) && !s.cooldown.Allow(actor) {
		metrics.CooledDown()
		return ErrCooldown
	}
	if !s.sessions.Lock(id, actor) {
		metrics.Contended("session")
		return ErrLocked
	}
	return nil
}

// CloseSession releases the spawner if actor holds it.
func (s *Service) CloseSession(id, actor string) bool {
	return s.sessions.Unlock(id, actor)
}

// EndActor closes every session of actor, e.g. on disconnect.
func (s *Service) EndActor(actor string) []string {
	s.cooldown.Reset(actor)
	return s.sessions.ReleaseActor(actor)
}

// interact checks session ownership and the cooldown of actor on id.
func (s *Service) interact(id, actor string) (*Spawner, error) {
	sp, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	if !s.sessions.IsOwner(id, actor) {
		return nil, ErrNotOwner
	}
	if !s.cooldown.Allow(actor) {
		metrics.CooledDown()
		return nil, ErrCooldown
	}
	return sp, nil
}

// Take moves loot into the inventory in req and returns the updated inventory.
func (s *Service) Take(id string, req models.TakeRequest) (models.TakeReport, error) {
	sp, err := s.interact(id, req.Actor)
	if err != nil {
		return models.TakeReport{}, err
	}

	count := req.Count
	if count == 0 {
		count = math.MaxUint64
	}

	var transfer loot.TransferRequest
	switch {
	case req.Slot != nil:
		if req.Page == 0 {
			req.Page = 1
		}
		vs, ok := sp.Loot.SlotAt(req.Page, *req.Slot)
		if !ok {
			return models.TakeReport{}, fmt.Errorf("%w: empty slot %d on page %d", ErrBadRequest, *req.Slot, req.Page)
		}
		transfer = loot.OnlySignature(vs.Signature, uint64(vs.Units))
	case req.Signature != "":
		sig, err := loot.ParseSignature(req.Signature)
		if err != nil {
			return models.TakeReport{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		transfer = loot.OnlySignature(sig, count)
	default:
		transfer = loot.AllSignatures(count)
	}

	inv := loot.ContainerOf(req.Inventory, 0)
	res := sp.Loot.MoveToSink(inv, transfer)
	metrics.Moved(metrics.ConsumerPlayer, res.Moved)
	return models.TakeReport{Result: res, Inventory: inv.Slots()}, nil
}

// SellAll removes every sellable unit and deposits its value to actor. When
// the deposit fails the units are put back and ErrSettlement is returned.
func (s *Service) SellAll(ctx context.Context, id, actor string) (models.SaleReport, error) {
	sp, err := s.interact(id, actor)
	if err != nil {
		return models.SaleReport{}, err
	}

	report := models.SaleReport{Provider: s.economy.Name()}
	m := sp.Loot.RemoveAll(s.catalog.Appraiser())
	if m.Empty() {
		report.Manifest = m
		return report, nil
	}

	if err := s.economy.Deposit(ctx, actor, m.Value); err != nil {
		sp.Loot.Return(m)
		s.logger.Error("Settlement failed, loot returned",
			zap.String("spawner", id),
			zap.String("actor", actor),
			zap.Uint64("units", m.Units),
			zap.Error(err))
		return models.SaleReport{}, fmt.Errorf("%w: %v", ErrSettlement, err)
	}

	metrics.Sold(m.Units, m.Value)
	report.Manifest = m
	return report, nil
}

// AttachSiphon starts a siphon with slots buffer slots on the spawner.
func (s *Service) AttachSiphon(id, siphonID string, slots int) error {
	sp, err := s.registry.Get(id)
	if err != nil {
		return err
	}
	if siphonID == "" || slots <= 0 {
		return fmt.Errorf("%w: siphon needs an id and at least one slot", ErrBadRequest)
	}

	key := siphon.Key{Spawner: id, Siphon: siphonID}
	task := newSiphonTask(siphonID, sp.Loot, slots, s.batch)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Destroy removes from the registry before it sweeps siphons under mu
	if _, err := s.registry.Get(id); err != nil {
		return err
	}
	if !s.scheduler.Add(key, task) {
		return ErrSiphonExists
	}
	s.siphons[key] = task
	return nil
}

// DetachSiphon stops a siphon. When it returns no cycle of it is running.
// Units already in its buffer are returned.
func (s *Service) DetachSiphon(id, siphonID string) ([]loot.Stack, error) {
	key := siphon.Key{Spawner: id, Siphon: siphonID}
	s.mu.Lock()
	task, ok := s.siphons[key]
	delete(s.siphons, key)
	s.mu.Unlock()
	if !ok {
		return nil, ErrSiphonMissing
	}

	s.scheduler.Cancel(key)
	return task.drain(), nil
}

// DrainSiphon empties a siphon buffer.
func (s *Service) DrainSiphon(id, siphonID string) ([]loot.Stack, error) {
	s.mu.Lock()
	task, ok := s.siphons[siphon.Key{Spawner: id, Siphon: siphonID}]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSiphonMissing
	}
	return task.drain(), nil
}

// Siphons lists the siphons of a spawner.
func (s *Service) Siphons(id string) []models.SiphonInfo {
	s.mu.Lock()
	var tasks []*siphonTask
	for key, task := range s.siphons {
		if key.Spawner == id {
			tasks = append(tasks, task)
		}
	}
	s.mu.Unlock()

	out := make([]models.SiphonInfo, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, models.SiphonInfo{ID: t.id, Slots: t.slots, Units: t.units()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Persist saves one spawner to the database.
func (s *Service) Persist(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNoPersistence
	}
	sp, err := s.registry.Get(id)
	if err != nil {
		return err
	}
	return s.save(ctx, sp)
}

func (s *Service) save(ctx context.Context, sp *Spawner) error {
	sp.persist.Lock()
	defer sp.persist.Unlock()
	if sp.destroyed {
		return fmt.Errorf("%w: %s", ErrNotFound, sp.ID)
	}
	rec := models.SpawnerRecord{ID: sp.ID, Kind: sp.Kind, CreatedAt: sp.CreatedAt}
	return s.repo.Save(ctx, rec, sp.Loot.Entries())
}

// PersistAll saves every live spawner and returns how many were saved.
func (s *Service) PersistAll(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, ErrNoPersistence
	}
	var errs []error
	saved := 0
	for _, sp := range s.registry.List() {
		err := s.save(ctx, sp)
		if errors.Is(err, ErrNotFound) {
			// destroyed since the listing
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		saved++
	}
	return saved, errors.Join(errs...)
}

// Restore loads every persisted spawner not yet live.
func (s *Service) Restore(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, ErrNoPersistence
	}
	recs, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	restored := 0
	for _, rec := range recs {
		_, entries, err := s.repo.Load(ctx, rec.ID)
		if err != nil {
			return restored, err
		}
		sp, err := s.registry.Create(rec.ID, loot.NormalizeKind(rec.Kind), rec.CreatedAt)
		if errors.Is(err, ErrExists) {
			continue
		}
		if err != nil {
			return restored, err
		}
		sp.Loot.Restore(entries)
		restored++
	}
	metrics.SetLiveSpawners(s.registry.Len())
	return restored, nil
}

// Snapshot captures a spawner for backup.
func (s *Service) Snapshot(id string) (models.Snapshot, error) {
	sp, err := s.registry.Get(id)
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.Snapshot{ID: sp.ID, Kind: sp.Kind, TakenAt: time.Now().UTC(), Entries: sp.Loot.Entries()}, nil
}

// Backup writes the snapshot of id to snapshots/<id>.json and returns the object name.
func (s *Service) Backup(ctx context.Context, id string) (string, error) {
	if s.client == nil {
		return "", ErrNoStorage
	}
	snap, err := s.Snapshot(id)
	if err != nil {
		return "", err
	}
	name := SnapshotPrefix + id + ".json"
	if err := storage.PutJSON(ctx, s.client, s.bucket, name, snap); err != nil {
		return "", err
	}
	return name, nil
}

// BackupAll backs up every live spawner.
func (s *Service) BackupAll(ctx context.Context) ([]string, error) {
	var names []string
	var errs []error
	for _, sp := range s.registry.List() {
		name, err := s.Backup(ctx, sp.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		names = append(names, name)
	}
	return names, errors.Join(errs...)
}

// Import recreates a spawner from its snapshot in storage. A live spawner
// with the same id is an error.
func (s *Service) Import(ctx context.Context, id string) (*Spawner, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	var snap models.Snapshot
	if err := storage.GetJSON(ctx, s.client, s.bucket, SnapshotPrefix+id+".json", &snap); err != nil {
		return nil, err
	}
	snap.Kind = loot.NormalizeKind(snap.Kind)
	if snap.ID != id || snap.Kind == "" {
		return nil, fmt.Errorf("%w: snapshot does not describe spawner %s", ErrBadRequest, id)
	}
	for _, e := range snap.Entries {
		if loot.NormalizeKind(e.Signature.Kind) == "" {
			return nil, fmt.Errorf("%w: snapshot entry without kind", ErrBadRequest)
		}
	}

	sp, err := s.registry.Create(snap.ID, snap.Kind, time.Now())
	if err != nil {
		return nil, err
	}
	sp.Loot.Restore(snap.Entries)
	metrics.SetLiveSpawners(s.registry.Len())
	return sp, nil
}

// Autosave persists every spawner each interval until ctx is done, then once more.
func (s *Service) Autosave(ctx context.Context, interval time.Duration) {
	if s.repo == nil || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	save := func(ctx context.Context) {
		if n, err := s.PersistAll(ctx); err != nil {
			s.logger.Warn("Autosave incomplete", zap.Int("saved", n), zap.Error(err))
		}
	}
	for {
		select {
		case <-ctx.Done():
			save(context.Background())
			return
		case <-ticker.C:
			save(ctx)
		}
	}
}

// Catalog returns the catalog the service prices with.
func (s *Service) Catalog() *catalog.Service {
	return s.catalog
}
