// Package domain defines limits and errors for text tokenization.
package domain

// MaxTextSize is the maximum accepted text size in bytes for a single tokenization (64 KB).
const MaxTextSize = 65536
