package seed

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/medrota/rota-checker/backend/internal/domain"
	"github.com/medrota/rota-checker/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const demoCoordinatorUsername = "demo.coordinator"

// SeedDemoData inserts a demo coordinator account and a four-week general
// medicine rota owned by it. Running it twice reuses the existing account
// and inserts a second copy of the rota.
func SeedDemoData(r *repository.Repository, demoPassword string) {
	user, err := r.GetUserByUsername(demoCoordinatorUsername)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
			if err != nil {
				slog.Error("failed to hash the demo password", "error", err)
				return
			}

			user = &domain.User{
				Username:     demoCoordinatorUsername,
				PasswordHash: string(hash),
				FullName:     "Demo Coordinator",
				Email:        "demo.coordinator@example.org",
				Role:         domain.RoleCoordinator,
			}

			if err := r.CreateUser(user); err != nil {
				slog.Error("failed to insert the demo coordinator", "error", err)
				return
			}
		default:
			slog.Error("failed to look up the demo coordinator", "error", err)
			return
		}
	}

	endDate := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	rota := &domain.Rota{
		Name:              "General Medicine SHO rota",
		Site:              "St Margaret's Hospital",
		Specialty:         "General Medicine",
		ScheduleStartDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), // a Monday
		EndDate:           &endDate,
		TotalWeeks:        4,
		LeaveEntitlement:  27,
		OptedOut:          false,
		OwnerID:           user.ID,
		Definitions: []domain.ShiftDefinition{
			{DutyCode: "D", Name: "Day ward shift", Type: domain.DutyNormal, StartTime: "09:00", FinishTime: "17:00", BreakMinutes: 30},
			{DutyCode: "L", Name: "Long day", Type: domain.DutyNormal, StartTime: "08:00", FinishTime: "20:30", BreakMinutes: 60},
			{DutyCode: "N", Name: "Night shift", Type: domain.DutyNormal, StartTime: "20:30", FinishTime: "09:00", BreakMinutes: 90},
			{DutyCode: "OC", Name: "Weekend on-call", Type: domain.DutyOnCall, StartTime: "09:00", FinishTime: "21:00", BreakMinutes: 0},
		},
		Grid: [][]string{
			{"D", "D", "D", "D", "L", "OC", ""},
			{"D", "D", "L", "D", "D", "", ""},
			{"N", "N", "N", "N", "", "", ""},
			{"", "D", "D", "L", "D", "OC", ""},
		},
	}

	if err := r.CreateRota(rota); err != nil {
		slog.Error("failed to insert the demo rota", "error", err)
		return
	}

	slog.Info("demo data inserted", "rota_id", rota.ID, "owner_id", user.ID)
}
