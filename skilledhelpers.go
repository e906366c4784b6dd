// Package skilledhelpers provides a local directory of service workers and
// tools with an AI helper that maps a described household problem to the
// kind of professional who can fix it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, bolt/, redis/, gemini/).
package skilledhelpers

// AppName is the product name shown in CLI output.
const AppName = "SkilledHelpers"

// Tagline is shown on the home and about views.
const Tagline = "You Save, They Earn!"
