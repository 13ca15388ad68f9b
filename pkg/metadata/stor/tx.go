package stor

import (
	"gorm.io/gorm"
)

const txRetryCount = 3

// WithTxRetry runs fn in a transaction, retrying on failure. Sqlite
// returns busy errors under concurrent writers; a few retries cover it.
func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	for i := 0; i < txRetryCount; i++ {
		err = db.Transaction(fn)
		if err == nil {
			break
		}
	}

	return err
}
