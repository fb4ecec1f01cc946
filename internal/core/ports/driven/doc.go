// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentRepository: CRUD access to documents, metadata records and settings
//   - SourceAdapter: Uniform enumerate/get/replace view over one source kind
//   - TermRepository: Persistence of the configured term set
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - Snapshotter: Pre-mutation revision capture. Only the document source
//     implements it; a missing or failing snapshotter never blocks a replace.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
