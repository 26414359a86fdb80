// Package fsprime warms the operating system's page cache for a directory
// tree.
//
// It walks the tree depth-first, reads every regular file it finds in fixed
// chunks and discards the bytes, so that later reads against a slow
// network-backed or virtual filesystem are served from memory. Symlinks,
// junctions and other reparse-style entries are never followed, and no
// per-item failure ever aborts the run.
package fsprime
