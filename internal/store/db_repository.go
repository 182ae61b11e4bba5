package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/TheoAcker12/weekly-scheduler/internal/database"
	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

type categoryRow struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type fieldRow struct {
	ID         int    `db:"id"`
	CategoryID int    `db:"cat_id"`
	Name       string `db:"name"`
	SortOrder  int    `db:"sort_order"`
}

type scheduleRow struct {
	ID        int            `db:"id"`
	Amount    string         `db:"amount"`
	ItemName  string         `db:"item_name"`
	ItemNotes sql.NullString `db:"item_notes"`
	Monday    bool           `db:"monday"`
	Tuesday   bool           `db:"tuesday"`
	Wednesday bool           `db:"wednesday"`
	Thursday  bool           `db:"thursday"`
	Friday    bool           `db:"friday"`
	Saturday  bool           `db:"saturday"`
	Sunday    bool           `db:"sunday"`
}

type scheduleFieldRow struct {
	ScheduleID int `db:"schedule_id"`
	schedule.FieldRef
}

// DBRepository reads categories and schedules from MySQL or SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindCategories returns all categories ordered by id, with fields ordered by sort order.
func (r *DBRepository) FindCategories(ctx context.Context) ([]schedule.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name FROM categories ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if len(rows) == 0 {
		return []schedule.Category{}, nil
	}

	categoryIDs := make([]int, len(rows))
	for i, row := range rows {
		categoryIDs[i] = row.ID
	}
	query, args, err := sqlx.In("SELECT id, cat_id, name, sort_order FROM fields WHERE cat_id IN (?) ORDER BY sort_order, id", categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("build fields query: %w", err)
	}
	var fields []fieldRow
	if err := r.db.SelectContext(ctx, &fields, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load fields: %w", err)
	}

	fieldsByCategory := make(map[int][]schedule.Field, len(rows))
	for _, f := range fields {
		fieldsByCategory[f.CategoryID] = append(fieldsByCategory[f.CategoryID], schedule.Field{
			ID:    f.ID,
			Name:  f.Name,
			Order: f.SortOrder,
		})
	}

	categories := make([]schedule.Category, 0, len(rows))
	for _, row := range rows {
		categoryFields := fieldsByCategory[row.ID]
		if categoryFields == nil {
			categoryFields = []schedule.Field{}
		}
		categories = append(categories, schedule.Category{
			ID:     row.ID,
			Name:   row.Name,
			Fields: categoryFields,
		})
	}
	return categories, nil
}

// FindSchedules returns all schedules ordered by their item's sort order, with attached fields.
func (r *DBRepository) FindSchedules(ctx context.Context) ([]schedule.ScheduleRecord, error) {
	var rows []scheduleRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT s.id, s.amount, i.name AS item_name, i.notes AS item_notes,
	s.monday, s.tuesday, s.wednesday, s.thursday, s.friday, s.saturday, s.sunday
FROM schedules s
JOIN items i ON i.id = s.item_id
ORDER BY i.sort_order, s.id`); err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}
	if len(rows) == 0 {
		return []schedule.ScheduleRecord{}, nil
	}

	scheduleIDs := make([]int, len(rows))
	for i, row := range rows {
		scheduleIDs[i] = row.ID
	}
	query, args, err := sqlx.In(`SELECT sf.schedule_id, sf.field_id, f.cat_id
FROM schedule_fields sf
JOIN fields f ON f.id = sf.field_id
WHERE sf.schedule_id IN (?)
ORDER BY sf.schedule_id, sf.field_id`, scheduleIDs)
	if err != nil {
		return nil, fmt.Errorf("build schedule fields query: %w", err)
	}
	var refs []scheduleFieldRow
	if err := r.db.SelectContext(ctx, &refs, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load schedule fields: %w", err)
	}
	refsBySchedule := make(map[int][]schedule.FieldRef, len(rows))
	for _, ref := range refs {
		refsBySchedule[ref.ScheduleID] = append(refsBySchedule[ref.ScheduleID], ref.FieldRef)
	}

	schedules := make([]schedule.ScheduleRecord, 0, len(rows))
	for _, row := range rows {
		schedules = append(schedules, row.toRecord(refsBySchedule[row.ID]))
	}
	return schedules, nil
}

func (row scheduleRow) toRecord(refs []schedule.FieldRef) schedule.ScheduleRecord {
	if refs == nil {
		refs = []schedule.FieldRef{}
	}
	var notes *string
	if row.ItemNotes.Valid {
		notes = &row.ItemNotes.String
	}
	return schedule.ScheduleRecord{
		Amount:     row.Amount,
		Item:       schedule.Item{Name: row.ItemName, Notes: notes},
		Categories: refs,
		Monday:     row.Monday,
		Tuesday:    row.Tuesday,
		Wednesday:  row.Wednesday,
		Thursday:   row.Thursday,
		Friday:     row.Friday,
		Saturday:   row.Saturday,
		Sunday:     row.Sunday,
	}
}

// ReplaceScheduleFields sets the fields attached to a schedule in a single transaction.
func (r *DBRepository) ReplaceScheduleFields(ctx context.Context, scheduleID int, fieldIDs []int) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM schedules WHERE id = ?", scheduleID); err != nil {
			return fmt.Errorf("find schedule %d: %w", scheduleID, err)
		}
		if count == 0 {
			return fmt.Errorf("schedule %d: %w", scheduleID, ErrScheduleNotFound)
		}

		var uniqueIDs []int
		seen := make(map[int]bool, len(fieldIDs))
		for _, id := range fieldIDs {
			if !seen[id] {
				seen[id] = true
				uniqueIDs = append(uniqueIDs, id)
			}
		}
		if err := checkFieldsExist(ctx, tx, uniqueIDs); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM schedule_fields WHERE schedule_id = ?", scheduleID); err != nil {
			return fmt.Errorf("delete schedule fields: %w", err)
		}
		if len(uniqueIDs) == 0 {
			return nil
		}

		args := make([]interface{}, 0, len(uniqueIDs)*2)
		for _, id := range uniqueIDs {
			args = append(args, scheduleID, id)
		}
		q := buildMultiRowInsert("schedule_fields", []string{"schedule_id", "field_id"}, len(uniqueIDs))
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert schedule fields: %w", err)
		}
		return nil
	})
}

// checkFieldsExist returns ErrFieldNotFound naming the ids that have no field row.
func checkFieldsExist(ctx context.Context, tx *sqlx.Tx, fieldIDs []int) error {
	if len(fieldIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In("SELECT id FROM fields WHERE id IN (?)", fieldIDs)
	if err != nil {
		return fmt.Errorf("build fields query: %w", err)
	}
	var found []int
	if err := tx.SelectContext(ctx, &found, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("find fields: %w", err)
	}

	exists := make(map[int]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}
	var missing []int
	for _, id := range fieldIDs {
		if !exists[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("fields %v: %w", missing, ErrFieldNotFound)
	}
	return nil
}

// ReplaceAll replaces every category, item and schedule with the contents of snapshot.
// Category and field ids are kept. Items are created per distinct name and notes
// in the order schedules first mention them.
func (r *DBRepository) ReplaceAll(ctx context.Context, snapshot Snapshot) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, table := range []string{"schedule_fields", "schedules", "items", "fields", "categories"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if len(snapshot.Categories) > 0 {
			var catArgs []interface{}
			for _, c := range snapshot.Categories {
				catArgs = append(catArgs, c.ID, c.Name)
			}
			q := buildMultiRowInsert("categories", []string{"id", "name"}, len(snapshot.Categories))
			if _, err := tx.ExecContext(ctx, q, catArgs...); err != nil {
				return fmt.Errorf("insert categories: %w", err)
			}
		}

		var fieldArgs []interface{}
		var fieldCount int
		for _, c := range snapshot.Categories {
			for _, f := range c.Fields {
				fieldArgs = append(fieldArgs, f.ID, c.ID, f.Name, f.Order)
				fieldCount++
			}
		}
		if fieldCount > 0 {
			q := buildMultiRowInsert("fields", []string{"id", "cat_id", "name", "sort_order"}, fieldCount)
			if _, err := tx.ExecContext(ctx, q, fieldArgs...); err != nil {
				return fmt.Errorf("insert fields: %w", err)
			}
		}
		if len(snapshot.Schedules) == 0 {
			return nil
		}

		type itemKey struct {
			name  string
			notes string
			null  bool
		}
		itemIDs := make(map[itemKey]int)
		var itemArgs, scheduleArgs, refArgs []interface{}
		var refCount int
		for i, s := range snapshot.Schedules {
			key := itemKey{name: s.Item.Name, null: s.Item.Notes == nil}
			if s.Item.Notes != nil {
				key.notes = *s.Item.Notes
			}
			itemID, ok := itemIDs[key]
			if !ok {
				itemID = len(itemIDs) + 1
				itemIDs[key] = itemID
				itemArgs = append(itemArgs, itemID, s.Item.Name, s.Item.Notes, itemID-1)
			}

			scheduleID := i + 1
			scheduleArgs = append(scheduleArgs, scheduleID, itemID, s.Amount,
				s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday, s.Saturday, s.Sunday)

			seen := make(map[int]bool, len(s.Categories))
			for _, ref := range s.Categories {
				if seen[ref.ID] {
					continue
				}
				seen[ref.ID] = true
				refArgs = append(refArgs, scheduleID, ref.ID)
				refCount++
			}
		}

		q := buildMultiRowInsert("items", []string{"id", "name", "notes", "sort_order"}, len(itemIDs))
		if _, err := tx.ExecContext(ctx, q, itemArgs...); err != nil {
			return fmt.Errorf("insert items: %w", err)
		}
		q = buildMultiRowInsert("schedules", []string{
			"id", "item_id", "amount",
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		}, len(snapshot.Schedules))
		if _, err := tx.ExecContext(ctx, q, scheduleArgs...); err != nil {
			return fmt.Errorf("insert schedules: %w", err)
		}
		if refCount > 0 {
			q = buildMultiRowInsert("schedule_fields", []string{"schedule_id", "field_id"}, refCount)
			if _, err := tx.ExecContext(ctx, q, refArgs...); err != nil {
				return fmt.Errorf("insert schedule fields: %w", err)
			}
		}
		return nil
	})
}

// buildMultiRowInsert builds a multi-row INSERT query.
func buildMultiRowInsert(table string, columns []string, rowCount int) string {
	placeholder := "(" + strings.Repeat("?, ", len(columns)-1) + "?)"
	values := strings.Repeat(placeholder+", ", rowCount-1) + placeholder
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(columns, ", "), values)
}
