// Package chaintbl holds containers that own deep copies of the keys and
// values stored in them.
//
// The hash table lives in package hashtbl. Package bytebuf has the byte
// comparison and hashing the table uses by default.
package chaintbl
