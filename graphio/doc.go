// Package graphio parses the line-oriented graph format consumed by the
// subiso CLI, modeled on VF3's ARG stream format:
//
//	<node count N>
//	<label for node 0>
//	<label for node 1>
//	...
//	<label for node N-1>
//	<edge count M>
//	<from> <to>
//	...
//	<from> <to>   (M lines)
//
// Blank lines and lines beginning with '#' are skipped. Node labels and
// edge endpoints are whitespace-separated integers.
package graphio
