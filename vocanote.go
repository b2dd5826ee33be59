// Package vocanote provides a local, CLI-based note capture tool.
// Notes are typed or dictated, kept in a single local key-value slot,
// and filtered by case-insensitive substring search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, fs/).
package vocanote
