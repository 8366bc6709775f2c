// Package catalog provides per-kind item data: stack size and sell price.
//
// # Format
//
// The catalog is a YAML document:
//
//	default_max_stack: 64
//	default_price: 0
//	kinds:
//	  BONE:
//	    price: 0.5
//	  ENDER_PEARL:
//	    max_stack: 16
//	    price: 4
//
// Kinds are case-insensitive and stored upper-case. A zero max_stack falls back
// to default_max_stack; a kind without a positive price falls back to
// default_price, and is unsellable when that is zero too.
//
// # Service
//
// Service serves lookups from an immutable Catalog swapped atomically on
// Reload. Concurrent reloads share one load through singleflight, so readers
// never see a half-loaded catalog.
package catalog
