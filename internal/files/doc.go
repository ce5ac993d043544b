// Package files provides discovery of sales export files on disk. The
// analyzer CLI uses it to expand a directory argument into the set of
// exports worth analyzing, skipping editor temp files and unrelated
// formats.
package files
