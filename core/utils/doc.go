// Package utils provides common utility functions for the spawner-loot application.
// It includes overflow-safe counter arithmetic and other shared logic that doesn't
// fit into domain-specific packages.
package utils
