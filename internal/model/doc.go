// Package model defines the core data structures used throughout natscan.
//
// This package contains the following main types:
//   - Article: A gazette article with its raw and normalized text
//   - Tag: A labeled text span (LASTNAME/FIRSTNAME/ADDR/DATE) inside an article
//   - Record: An extracted name/address/date entry with its supporting tags
//   - Table: The tabular output view over a set of records
//
// We separate models into their own package to avoid circular dependencies.
// Multiple packages (extract, pipeline, report, database) need these types,
// so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
