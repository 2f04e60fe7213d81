package model

import "github.com/google/uuid"

// ensureID assigns a fresh UUID when the record has none yet.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every persisted model for migrations.
func All() []any {
	return []any{
		&Job{},
		&Application{},
		&Interview{},
		&Test{},
		&TestResult{},
		&QualificationTask{},
		&User{},
	}
}
