package store

import (
	"time"

	"github.com/riskwatch/riskwatch/internal/models"
)

// Directory returns the fixed user roster shown on the admin view. Only the
// analyst and admin accounts can actually log in.
func Directory() []models.User {
	now := time.Now()
	day := 24 * time.Hour
	return []models.User{
		{ID: "user-1", Name: "Alex Ray", Email: "analyst@riskwatch.com", Role: models.RoleAnalyst, Status: models.UserActive, CreatedAt: now.Add(-30 * day)},
		{ID: "user-2", Name: "Jane Doe", Email: "admin@riskwatch.com", Role: models.RoleAdmin, Status: models.UserActive, CreatedAt: now.Add(-90 * day)},
		{ID: "user-3", Name: "Sam Wilson", Email: "sam.w@riskwatch.com", Role: models.RoleAnalyst, Status: models.UserActive, CreatedAt: now.Add(-10 * day)},
		{ID: "user-4", Name: "Maria Hill", Email: "maria.h@riskwatch.com", Role: models.RoleViewer, Status: models.UserActive, CreatedAt: now.Add(-5 * day)},
		{ID: "user-5", Name: "John Smith", Email: "john.s@riskwatch.com", Role: models.RoleAnalyst, Status: models.UserSuspended, CreatedAt: now.Add(-60 * day)},
	}
}
