// Package content provides the source adapters over the content repository.
//
// Each adapter turns one category of record (documents, metadata records,
// settings) into domain.SourceRecord values with a label and locators, and
// writes replacements back one field at a time. The document adapter also
// captures a revision before a write.
package content
