// Package dashdoc converts locally mirrored HTML documentation into Dash
// docsets. It extracts page metadata, classifies every page into an entry
// type, rewrites links and images against the mirror, and assembles the
// docset search index and manifest.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, etree/).
package dashdoc
