package repoargs

import "github.com/google/uuid"

type UpsertUser struct {
	ID    uuid.UUID
	Name  string
	Email string
}
