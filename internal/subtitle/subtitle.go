package subtitle

// represents single subtitle entry
//
// Timing holds the timestamp line exactly as it appeared in the source
// file. It is never reparsed or reformatted, so output files reproduce
// the source timestamps byte for byte.
type Entry struct {
	Index  int
	Timing string
	Text   string
}
