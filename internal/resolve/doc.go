package resolve

// Package resolve holds the pure decision logic between probing and
// downloading: choosing one entry among many (or producing a listing), and
// turning user flags into a concrete acquisition plan. No I/O happens here.
