// Package miner drives the mining run (spec §4.8, §4.9): it takes an
// already-parsed graph database (see gspanio), prunes infrequent vertex and edge labels, optionally emits
// one-vertex closed patterns, and recurses through canonical DFS codes using
// the extension, canonical, closure, and failtrie packages as collaborators.
package miner
