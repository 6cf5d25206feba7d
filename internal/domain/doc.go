// Package domain contains the core model for drills.
//
// The domain is storage- and UI-agnostic: it does not depend on YAML parsing,
// terminals, or the filesystem. Infra/adapters map into/from these types.
package domain
