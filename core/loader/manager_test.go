package loader_test

import (
	"errors"
	"testing"

	"spawner-loot/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loads   int
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loads++
	return f.err
}

func TestManager(t *testing.T) {
	on := &fakeFeature{name: "spawner", enabled: true}
	off := &fakeFeature{name: "disabled"}

	mgr := loader.NewManager()
	mgr.Register(on)
	mgr.Register(off)
	assert.Panics(t, func() { mgr.Register(&fakeFeature{name: "spawner"}) })

	loaded, err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"spawner"}, loaded)
	assert.Equal(t, 1, on.loads)
	assert.Zero(t, off.loads)
}

func TestManagerLoadError(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "broken", enabled: true, err: errors.New("boom")})

	_, err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "broken")
}
