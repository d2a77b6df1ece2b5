// Package imgenc encodes rendered palette images and writes them to disk.
//
// The output format is selected by file extension via [ForPath]: PNG (the
// default, also used for extensionless paths), BMP, GIF, JPEG, PPM, and
// TIFF. [WriteFile] encodes through a pending temp file and atomically
// replaces the destination only on success, so an interrupted or failed run
// never leaves a truncated image behind.
package imgenc
