package storage

// Store is the file-storage contract: a narrow upload/lookup surface over
// whichever backend holds invoices and design images. Paths are
// bucket-relative, e.g. "invoices/2025-01-10/<orderID>.pdf".
type Store interface {
	Upload(path string, data []byte) error
	Find(prefix, filename string) (string, bool, error)
	PublicURL(path string) string
}
