// Package model defines the text model contract shared by the whole module:
// the TextModel interface sub-models implement, the Element unit templates
// are assembled from, and the Builder front end that merges adjacent literal
// fragments while tracking the aggregate statistics (static byte length,
// dynamic element count) the compiler bases its buffer strategy on. The
// compiler itself lives in pkg/compiler and is reached through the Compiler
// interface so alternative compilation strategies can be swapped in.
package model
