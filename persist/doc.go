// Package persist mirrors the session's problem and answer to disk: a
// dump file holding the problem input plus any appended user dies, and
// a log file holding the answer output. Both are plain JSON; neither is
// read by the solver core itself.
package persist
