package entity

import "time"

// CollectionResult counts the records moved or rewritten in one collection.
type CollectionResult struct {
	Collection string `json:"collection"`
	Strategy   string `json:"strategy"`
	Migrated   int    `json:"migrated"`
}

// MigrationFailure is a record that could not be rewritten.
type MigrationFailure struct {
	Collection string `json:"collection"`
	Key        string `json:"key"`
	Reason     string `json:"reason"`
	Err        error  `json:"-"`
}

// MigrationReport summarizes one identity migration run.
type MigrationReport struct {
	OldEmail        string             `json:"oldEmail"`
	NewEmail        string             `json:"newEmail"`
	OldKey          string             `json:"oldKey"`
	NewKey          string             `json:"newKey"`
	AlreadyMigrated bool               `json:"alreadyMigrated"`
	Collections     []CollectionResult `json:"collections"`
	Failures        []MigrationFailure `json:"failures,omitempty"`
	StartedAt       time.Time          `json:"startedAt"`
	FinishedAt      time.Time          `json:"finishedAt"`
}

// NewMigrationReport starts an empty report.
func NewMigrationReport(oldEmail, newEmail, oldKey, newKey string, startedAt time.Time) *MigrationReport {
	return &MigrationReport{
		OldEmail:  oldEmail,
		NewEmail:  newEmail,
		OldKey:    oldKey,
		NewKey:    newKey,
		StartedAt: startedAt,
	}
}

// Record adds migrated records to a collection, keeping first-seen order.
func (r *MigrationReport) Record(collection, strategy string, migrated int) {
	for i := range r.Collections {
		if r.Collections[i].Collection == collection {
			r.Collections[i].Migrated += migrated

			return
		}
	}
	r.Collections = append(r.Collections, CollectionResult{
		Collection: collection,
		Strategy:   strategy,
		Migrated:   migrated,
	})
}

// Fail records a record that could not be migrated.
func (r *MigrationReport) Fail(collection, key string, err error) {
	r.Failures = append(r.Failures, MigrationFailure{
		Collection: collection,
		Key:        key,
		Reason:     err.Error(),
		Err:        err,
	})
}

// Migrated returns the count for one collection.
func (r *MigrationReport) Migrated(collection string) int {
	for _, c := range r.Collections {
		if c.Collection == collection {
			return c.Migrated
		}
	}

	return 0
}

// Total returns the number of records migrated across all collections.
func (r *MigrationReport) Total() int {
	total := 0
	for _, c := range r.Collections {
		total += c.Migrated
	}

	return total
}

// Complete reports whether every matched record was migrated.
func (r *MigrationReport) Complete() bool {
	return len(r.Failures) == 0
}

// MigrationAuditRecord is one persisted migration run.
type MigrationAuditRecord struct {
	ID              int64     `json:"id"`
	OldEmail        string    `json:"oldEmail"`
	NewEmail        string    `json:"newEmail"`
	AlreadyMigrated bool      `json:"alreadyMigrated"`
	Migrated        int       `json:"migrated"`
	Failed          int       `json:"failed"`
	Error           string    `json:"error,omitempty"`
	Report          []byte    `json:"-"`
	StartedAt       time.Time `json:"startedAt"`
	FinishedAt      time.Time `json:"finishedAt"`
}
