// Package archive models jar files under construction and writes them.
//
// A Target accepts declarative instructions ("copy what this producer
// makes into directory D, renamed to N"). Nothing is copied when an
// instruction is issued; the Writer runs producers and lays out entries
// when the jar is written.
//
// Entry order inside a written jar:
//  1. META-INF/MANIFEST.MF
//  2. component content, sorted by path
//  3. embedded files, in instruction order
//
// Parent directory entries are emitted before the first file that needs them.
package archive
