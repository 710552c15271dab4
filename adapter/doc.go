// Package adapter provides format-specific adapters for decoding documents
// into the value shapes the validator algebra operates on. Each adapter
// subpackage handles a specific data format and may have its own external
// dependencies.
//
// # Architectural Boundary
//
// Adapters live at the outermost tier of the module. This design provides:
//
//   - Dependency hygiene via import granularity: Go modules are granular at
//     the import level. Consumers who import only runtype and result do not
//     transitively depend on tidwall/jsonc. Adapter dependencies are pulled
//     only when adapter/json is imported.
//
//   - Clear library/consumer boundary: The adapter package explicitly imports
//     the library to use it, mirroring how downstream consumers structure
//     their own adapters.
//
//   - Extensibility signal: Users see adapter/json and understand they can
//     create adapter/myformat using the same pattern.
//
// # Dependency Direction
//
// Adapters depend on library packages; library packages never depend on
// adapters:
//
//	adapter/json  ──imports──▶  runtype
//	adapter/json  ──imports──▶  result
//
// # Subpackages
//
//   - [json]: JSON adapter with JSONC support and json.Number fidelity
package adapter
