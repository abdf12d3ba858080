package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/medrota/rota-checker/backend/internal/domain"
)

const rotaMetaColumns = `
	id, name, site, specialty, schedule_start_date, end_date, total_weeks,
	leave_entitlement, opted_out, owner_id, created_at, version
`

func scanRotaMeta(scan func(dst ...any) error) (*domain.Rota, error) {
	rota := &domain.Rota{}
	dst := []any{
		&rota.ID, &rota.Name, &rota.Site, &rota.Specialty, &rota.ScheduleStartDate,
		&rota.EndDate, &rota.TotalWeeks, &rota.LeaveEntitlement, &rota.OptedOut,
		&rota.OwnerID, &rota.CreatedAt, &rota.Version,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}
	return rota, nil
}

// GetRotaByID loads a full rota document: metadata, duty definitions and the
// week/day grid. The grid is reconstructed into total_weeks rows of 7 cells;
// absent cells stay empty, meaning an off day.
func (r *Repository) GetRotaByID(id int64) (*domain.Rota, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT ` + rotaMetaColumns + ` FROM rotas WHERE id = $1`

	row := r.dbpool.QueryRowContext(ctx, query, id)
	rota, err := scanRotaMeta(row.Scan)
	if err != nil {
		return nil, err
	}

	query = `
		SELECT id, duty_code, name, duty_type, start_time, finish_time, break_minutes
		FROM rota_duties
		WHERE rota_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rota.Definitions = make([]domain.ShiftDefinition, 0)
	for rows.Next() {
		def := domain.ShiftDefinition{}
		dst := []any{&def.ID, &def.DutyCode, &def.Name, &def.Type, &def.StartTime, &def.FinishTime, &def.BreakMinutes}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		rota.Definitions = append(rota.Definitions, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT week, day, duty_code
		FROM rota_grid_cells
		WHERE rota_id = $1
		ORDER BY week, day
	`

	cellRows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer cellRows.Close()

	rota.Grid = make([][]string, rota.TotalWeeks)
	for week := range rota.Grid {
		rota.Grid[week] = make([]string, 7)
	}

	for cellRows.Next() {
		var week, day int32
		var dutyCode string
		if err := cellRows.Scan(&week, &day, &dutyCode); err != nil {
			return nil, err
		}
		// rows outside the declared cycle can linger after a weeks shrink;
		// they are not part of the document
		if week < 0 || week >= rota.TotalWeeks || day < 0 || day > 6 {
			continue
		}
		rota.Grid[week][day] = dutyCode
	}
	if err := cellRows.Err(); err != nil {
		return nil, err
	}

	return rota, nil
}

func (r *Repository) GetRotasByOwner(ownerID int64) ([]*domain.Rota, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT ` + rotaMetaColumns + ` FROM rotas WHERE owner_id = $1 ORDER BY id`

	rows, err := r.dbpool.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rotas := make([]*domain.Rota, 0)
	for rows.Next() {
		rota, err := scanRotaMeta(rows.Scan)
		if err != nil {
			return nil, err
		}
		rotas = append(rotas, rota)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rotas, nil
}

func (r *Repository) GetAllRotas() ([]*domain.Rota, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT ` + rotaMetaColumns + ` FROM rotas ORDER BY id`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rotas := make([]*domain.Rota, 0)
	for rows.Next() {
		rota, err := scanRotaMeta(rows.Scan)
		if err != nil {
			return nil, err
		}
		rotas = append(rotas, rota)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rotas, nil
}

func (r *Repository) CreateRota(rota *domain.Rota) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO rotas (name, site, specialty, schedule_start_date, end_date, total_weeks, leave_entitlement, opted_out, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, version
	`

	args := []any{
		rota.Name, rota.Site, rota.Specialty, rota.ScheduleStartDate, rota.EndDate,
		rota.TotalWeeks, rota.LeaveEntitlement, rota.OptedOut, rota.OwnerID,
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&rota.ID, &rota.CreatedAt, &rota.Version); err != nil {
		return err
	}

	if err := insertRotaChildren(ctx, tx, rota); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateRota replaces the whole document: metadata in place with an
// optimistic version bump, duties and grid cells by delete-and-reinsert.
func (r *Repository) UpdateRota(rota *domain.Rota) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE rotas
		SET
			name = $1,
			site = $2,
			specialty = $3,
			schedule_start_date = $4,
			end_date = $5,
			total_weeks = $6,
			leave_entitlement = $7,
			opted_out = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version
	`

	args := []any{
		rota.Name, rota.Site, rota.Specialty, rota.ScheduleStartDate, rota.EndDate,
		rota.TotalWeeks, rota.LeaveEntitlement, rota.OptedOut, rota.ID, rota.Version,
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&rota.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rota_duties WHERE rota_id = $1`, rota.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rota_grid_cells WHERE rota_id = $1`, rota.ID); err != nil {
		return err
	}

	if err := insertRotaChildren(ctx, tx, rota); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) DeleteRota(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM rotas WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func insertRotaChildren(ctx context.Context, tx *sql.Tx, rota *domain.Rota) error {
	for i := range rota.Definitions {
		query := `
			INSERT INTO rota_duties (rota_id, duty_code, name, duty_type, start_time, finish_time, break_minutes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		def := &rota.Definitions[i]
		args := []any{rota.ID, def.DutyCode, def.Name, def.Type, def.StartTime, def.FinishTime, def.BreakMinutes}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&def.ID); err != nil {
			return err
		}
	}

	for week := range rota.Grid {
		for day, dutyCode := range rota.Grid[week] {
			if dutyCode == "" {
				continue
			}
			query := `
				INSERT INTO rota_grid_cells (rota_id, week, day, duty_code)
				VALUES ($1, $2, $3, $4)
			`
			if _, err := tx.ExecContext(ctx, query, rota.ID, week, day, dutyCode); err != nil {
				return err
			}
		}
	}

	return nil
}
