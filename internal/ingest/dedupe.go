package ingest

import (
	"strings"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

// fingerprintDescLen caps the description prefix used for identity.
const fingerprintDescLen = 50

// Fingerprint derives the duplicate-detection key for a transaction:
// ISO day, absolute amount to 2 decimals, and the first 50 characters of the
// description, lowercased and trimmed after truncation. Sign and description
// suffix are deliberately ignored.
func Fingerprint(t model.Transaction) string {
	desc := t.Description
	if r := []rune(desc); len(r) > fingerprintDescLen {
		desc = string(r[:fingerprintDescLen])
	}
	desc = strings.ToLower(strings.TrimSpace(desc))
	return t.Date.Format("2006-01-02") + "|" + t.Amount.Abs().StringFixed(2) + "|" + desc
}

// Deduper tracks seen fingerprints across an ingestion batch.
type Deduper struct {
	seen map[string]struct{}
}

// NewDeduper seeds a deduper with the fingerprints of every existing
// transaction, computed once.
func NewDeduper(existing []model.Transaction) *Deduper {
	d := &Deduper{seen: make(map[string]struct{}, len(existing))}
	for _, t := range existing {
		d.seen[Fingerprint(t)] = struct{}{}
	}
	return d
}

// Filter splits new transactions into unique and duplicate. Each accepted
// unique fingerprint joins the seen-set immediately, so duplicates within
// the same batch are caught as well.
func (d *Deduper) Filter(txns []model.Transaction) (unique, duplicates []model.Transaction) {
	for _, t := range txns {
		fp := Fingerprint(t)
		if _, ok := d.seen[fp]; ok {
			duplicates = append(duplicates, t)
			continue
		}
		d.seen[fp] = struct{}{}
		unique = append(unique, t)
	}
	return unique, duplicates
}
