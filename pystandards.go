// Package pystandards provides a reference library of Python coding
// standards: project structure recommendations, OOP guidelines, and worked
// examples. The content is exposed through a lookup and search API, an
// assistant-facing formatter, and a CLI browser.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, glamour/, gemini/).
package pystandards
