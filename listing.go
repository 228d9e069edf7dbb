// Package listing extracts gallery listing records from the HTML pages of a
// content index that ships in two layouts, "standard" and "lofi".
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, goquery/, http/).
package listing
