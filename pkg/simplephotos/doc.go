// Package simplephotos provides a small library for managing a photo
// collection split across two stores: an object store holding the image
// bytes and a relational database holding user and asset records.
//
// It exposes a single Service interface that orchestrates the operations a
// photo client needs (statistics, listings, upload, download, user
// registration) and keeps the two stores consistent: image bytes are always
// written to the object store before the matching asset row is recorded.
// Implementations of metadata stores (memory, Postgres) and object stores
// (memory, filesystem, S3) are provided under subpackages.
package simplephotos
