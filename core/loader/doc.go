// Package loader registers feature modules on the fiber app.
//
// A feature bundles a service and its HTTP handler behind the Feature
// interface; the start command registers spawner and integrity and calls
// LoadAll once after the global middleware is installed.
//
//	mgr := loader.NewManager()
//	mgr.Register(spawner.NewFeature(svc, logg))
//	loaded, err := mgr.LoadAll(app)
package loader
