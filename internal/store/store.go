// Package store holds the in-memory collections backing the POS API.
// Each store owns one entity type (single writer), takes its initial
// data through its constructor so tests build isolated fixtures, and
// guards its collection with a mutex because HTTP handlers call in
// concurrently. Notifications are emitted through an injected
// notify.Publisher and are always best-effort.
package store

import (
	"strconv"
	"strings"
	"time"
)

// seqID renders a display-formatted sequential id, e.g. ORD-007.
func seqID(prefix string, n int) string {
	return prefix + "-" + pad3(n)
}

func pad3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// nextSeq derives the next sequence number from existing ids so that
// stores constructed over seeded data keep allocating unique ids. Ids
// without a numeric suffix are ignored.
func nextSeq(ids []string) int {
	max := 0
	for _, id := range ids {
		i := strings.LastIndexByte(id, '-')
		if i < 0 {
			continue
		}
		n, err := strconv.Atoi(id[i+1:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

// utcNow is the default clock for every store; tests swap it per store
// through the Now field.
func utcNow() time.Time { return time.Now().UTC() }
