package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"spawner-loot/core/loot"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service is the injected catalog lookup used by the engine.
type Service struct {
	source  Source
	logger  *zap.Logger
	current atomic.Pointer[Catalog]
	loaded  atomic.Int64
	sf      singleflight.Group
}

// NewService creates a service serving Empty until the first Reload.
func NewService(source Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{source: source, logger: logger}
	s.current.Store(Empty())
	return s
}

// Reload loads and swaps the catalog. Concurrent calls share one load. On
// failure the previous catalog stays in place.
func (s *Service) Reload(ctx context.Context) (*Catalog, error) {
	v, err, shared := s.sf.Do("reload", func() (interface{}, error) {
		data, err := s.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		c, err := Parse(data)
		if err != nil {
			return nil, err
		}
		s.current.Store(c)
		s.loaded.Store(time.Now().UnixNano())
		return c, nil
	})
	if err != nil {
		s.logger.Warn("Catalog reload failed", zap.String("source", s.source.String()), zap.Error(err))
		return nil, err
	}
	c := v.(*Catalog)
	if !shared {
		s.logger.Info("Catalog loaded", zap.String("source", s.source.String()), zap.Int("kinds", c.Len()))
	}
	return c, nil
}

// Current returns the catalog in use.
func (s *Service) Current() *Catalog { return s.current.Load() }

// Loaded returns the time of the last successful reload, zero if none.
func (s *Service) Loaded() time.Time {
	n := s.loaded.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// MaxStack implements loot.StackSizer.
func (s *Service) MaxStack(kind string) int { return s.Current().MaxStack(kind) }

// Price returns the unit price of kind.
func (s *Service) Price(kind string) (float64, bool) { return s.Current().Price(kind) }

// Known reports whether kind is listed.
func (s *Service) Known(kind string) bool { return s.Current().Known(kind) }

// Lookup returns the entry of kind.
func (s *Service) Lookup(kind string) (Item, error) { return s.Current().Lookup(kind) }

// Appraiser prices against the catalog current at call time.
func (s *Service) Appraiser() loot.Appraiser { return s.Current().Appraiser() }
