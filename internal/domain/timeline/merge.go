package timeline

import (
	"sort"
	"time"

	"github.com/clinicstack/clinic-manager/internal/models"
)

type EntryType string

const (
	TypeVisit   EntryType = "VISIT"
	TypeInvoice EntryType = "INVOICE"
	TypeFile    EntryType = "FILE"
)

// Entry is one row of a patient's chronological timeline, tagging the source
// entity with its type.
type Entry struct {
	Type EntryType `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// typePriority breaks timestamp ties deterministically: a visit sorts before
// the invoice and files it produced.
var typePriority = map[EntryType]int{
	TypeVisit:   0,
	TypeInvoice: 1,
	TypeFile:    2,
}

// Merge combines a patient's visits, invoices and files into a single
// sequence ordered by each entity's own date field, newest first. Visits key
// on visit_at, invoices and files on created_at. Equal timestamps order by
// type (visit, invoice, file), then record id.
func Merge(visits []models.Visit, invoices []models.Invoice, files []models.FileRecord) []Entry {
	entries := make([]Entry, 0, len(visits)+len(invoices)+len(files))

	for _, v := range visits {
		entries = append(entries, Entry{Type: TypeVisit, ID: v.ID, At: v.VisitAt, Data: v})
	}
	for _, inv := range invoices {
		entries = append(entries, Entry{Type: TypeInvoice, ID: inv.ID, At: inv.CreatedAt, Data: inv})
	}
	for _, f := range files {
		entries = append(entries, Entry{Type: TypeFile, ID: f.ID, At: f.CreatedAt, Data: f})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.At.Equal(b.At) {
			return a.At.After(b.At)
		}
		if typePriority[a.Type] != typePriority[b.Type] {
			return typePriority[a.Type] < typePriority[b.Type]
		}
		return a.ID < b.ID
	})

	return entries
}
