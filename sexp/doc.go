// Package sexp parses, serializes, and mutates S-expression documents.
// A Tree owns all the storage for one document — an arena of nodes and
// a table of interned atom bytes — and Node is a cheap, comparable
// handle into one of that Tree's nodes.
package sexp
