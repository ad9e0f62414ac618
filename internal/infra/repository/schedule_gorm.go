package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
	"github.com/ckreative/trainer-scheduler/internal/models"
)

// ScheduleGormRepository persists availability schedules in postgres. It is
// the only place that knows the row layout; everything above it speaks the
// domain aggregate.
type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ScheduleGormRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]domain.Schedule, error) {

	var rows []models.AvailabilitySchedule
	if err := r.db.WithContext(ctx).
		Preload("Days").
		Preload("Overrides").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Schedule, 0, len(rows))
	for _, row := range rows {
		s, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *ScheduleGormRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (domain.Schedule, error) {

	var row models.AvailabilitySchedule
	if err := r.db.WithContext(ctx).
		Preload("Days").
		Preload("Overrides").
		First(&row, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Schedule{}, domain.ErrNotFound
		}
		return domain.Schedule{}, err
	}

	return toDomain(row)
}

func (r *ScheduleGormRepository) CountByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AvailabilitySchedule{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ScheduleGormRepository) Create(
	ctx context.Context,
	s *domain.Schedule,
) error {

	row, err := fromDomain(*s)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	s.CreatedAt = row.CreatedAt
	s.UpdatedAt = row.UpdatedAt
	return nil
}

// Update rewrites the aggregate: the schedule row is saved and its day and
// override children are replaced wholesale inside one transaction. Simpler
// than diffing 7 rows, and the editor always submits the full template.
func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	s *domain.Schedule,
) error {

	row, err := fromDomain(*s)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.AvailabilitySchedule
		if err := tx.First(&existing, "id = ?", s.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := tx.Where("schedule_id = ?", s.ID).
			Delete(&models.ScheduleDay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("schedule_id = ?", s.ID).
			Delete(&models.ScheduleOverride{}).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"name":             row.Name,
			"timezone":         row.Timezone,
			"is_default":       row.IsDefault,
			"event_type_count": row.EventTypeCount,
		}
		if err := tx.Model(&models.AvailabilitySchedule{}).
			Where("id = ?", s.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		if len(row.Days) > 0 {
			if err := tx.Create(&row.Days).Error; err != nil {
				return err
			}
		}
		if len(row.Overrides) > 0 {
			if err := tx.Create(&row.Overrides).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	refreshed, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = refreshed
	return nil
}

func (r *ScheduleGormRepository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).
			Delete(&models.ScheduleDay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("schedule_id = ?", id).
			Delete(&models.ScheduleOverride{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.AvailabilitySchedule{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *ScheduleGormRepository) SetDefault(
	ctx context.Context,
	ownerID uuid.UUID,
	id uuid.UUID,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.AvailabilitySchedule
		if err := tx.First(&target, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&models.AvailabilitySchedule{}).
			Where("owner_id = ? AND is_default = ?", ownerID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.AvailabilitySchedule{}).
			Where("id = ?", id).
			Update("is_default", true).Error
	})
}

// --------------------------------------------------
// Row <-> aggregate mapping
// --------------------------------------------------

func toDomain(row models.AvailabilitySchedule) (domain.Schedule, error) {
	s := domain.Schedule{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		Name:           row.Name,
		IsDefault:      row.IsDefault,
		Timezone:       row.Timezone,
		WeeklyTemplate: domain.EmptyTemplate(),
		EventTypeCount: row.EventTypeCount,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	for _, day := range row.Days {
		if day.Weekday < 0 || day.Weekday > 6 {
			continue
		}
		slots, err := decodeSlots(day.Slots)
		if err != nil {
			return domain.Schedule{}, err
		}
		w := domain.Weekday(day.Weekday)
		s.WeeklyTemplate[w] = domain.DayTemplate{
			Day:     w,
			Enabled: day.Enabled,
			Slots:   slots,
		}
	}

	overrides := make([]domain.DateOverride, 0, len(row.Overrides))
	for _, ov := range row.Overrides {
		slots, err := decodeSlots(ov.Slots)
		if err != nil {
			return domain.Schedule{}, err
		}
		overrides = append(overrides, domain.DateOverride{
			Date:  ov.Date,
			Type:  domain.OverrideType(ov.Type),
			Slots: slots,
		})
	}
	sort.Slice(overrides, func(i, j int) bool {
		return overrides[i].Date < overrides[j].Date
	})
	s.Overrides = overrides

	return s, nil
}

func fromDomain(s domain.Schedule) (models.AvailabilitySchedule, error) {
	row := models.AvailabilitySchedule{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		Name:           s.Name,
		IsDefault:      s.IsDefault,
		Timezone:       s.Timezone,
		EventTypeCount: s.EventTypeCount,
	}

	for w, day := range s.WeeklyTemplate {
		encoded, err := encodeSlots(day.Slots)
		if err != nil {
			return models.AvailabilitySchedule{}, err
		}
		row.Days = append(row.Days, models.ScheduleDay{
			ScheduleID: s.ID,
			Weekday:    w,
			Enabled:    day.Enabled,
			Slots:      encoded,
		})
	}

	for _, ov := range s.Overrides {
		encoded, err := encodeSlots(ov.Slots)
		if err != nil {
			return models.AvailabilitySchedule{}, err
		}
		row.Overrides = append(row.Overrides, models.ScheduleOverride{
			ScheduleID: s.ID,
			Date:       ov.Date,
			Type:       string(ov.Type),
			Slots:      encoded,
		})
	}

	return row, nil
}

func decodeSlots(raw string) ([]domain.TimeSlot, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var slots []domain.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func encodeSlots(slots []domain.TimeSlot) (string, error) {
	if len(slots) == 0 {
		return "", nil
	}
	b, err := json.Marshal(slots)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
