// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (accounts, scans,
// review decisions and webhook events) and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
