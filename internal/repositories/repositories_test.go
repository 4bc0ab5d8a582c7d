package repositories

import (
	"github.com/google/uuid"

	"github.com/sbilibin2017/rdrx/internal/models"
)

func testUser() *models.UserDB {
	return &models.UserDB{
		UID:          uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
	}
}
