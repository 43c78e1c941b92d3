// Package domain contains the core domain entities and types used by the
// commission engine. These types represent the business concepts (placements,
// payment requests, job commission terms, referrers) and are intentionally free
// of infrastructure concerns so they can be shared across packages.
package domain
