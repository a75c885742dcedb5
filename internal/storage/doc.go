// Package storage implements the image persistence pipeline: downloading the
// generated image bytes from their remote URL, verifying they decode as an
// image, backing up any colliding destination file, and writing the final
// file under a timestamp-derived name. It is a local-filesystem adapter and
// holds no state beyond its configuration.
package storage
