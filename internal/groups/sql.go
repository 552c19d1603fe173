package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"groupedit/internal/domain"
)

// groupRow is the database representation of a group
type groupRow struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	NameKey     string `gorm:"uniqueIndex;not null"`
	Description string
	Public      bool
	AddAllowed  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (groupRow) TableName() string { return "group_records" }

func (r *groupRow) record(policy domain.Policy) *domain.GroupRecord {
	return &domain.GroupRecord{
		ID:               r.ID,
		Name:             r.Name,
		Description:      r.Description,
		Public:           r.Public,
		AddToGroupPolicy: policy,
		AddAllowed:       domain.AddAllowed(r.AddAllowed),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *groupRow) apply(fields domain.GroupFields) {
	r.Name = fields.Name
	r.NameKey = nameKey(fields.Name)
	r.Description = fields.Description
	r.Public = fields.Public
	if fields.AddAllowed != nil {
		r.AddAllowed = string(*fields.AddAllowed)
	}
}

// SQLGroupStore stores groups through gorm
type SQLGroupStore struct {
	db     *gorm.DB
	policy domain.Policy
}

// OpenSQLGroupStore opens (and migrates) a sqlite database at dsn
func OpenSQLGroupStore(dsn string, policy domain.Policy) (*SQLGroupStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return NewSQLGroupStore(db, policy)
}

// NewSQLGroupStore wraps an open gorm connection and migrates the schema
func NewSQLGroupStore(db *gorm.DB, policy domain.Policy) (*SQLGroupStore, error) {
	if err := db.AutoMigrate(&groupRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return &SQLGroupStore{db: db, policy: policy}, nil
}

// Close closes the underlying connection
func (s *SQLGroupStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLGroupStore) List(ctx context.Context) ([]*domain.GroupRecord, error) {
	var rows []groupRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	result := make([]*domain.GroupRecord, len(rows))
	for i := range rows {
		result[i] = rows[i].record(s.policy)
	}
	return result, nil
}

func (s *SQLGroupStore) Get(ctx context.Context, id int64) (*domain.GroupRecord, error) {
	var row groupRow
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group %d: %w", id, err)
	}
	return row.record(s.policy), nil
}

func (s *SQLGroupStore) Create(ctx context.Context, fields domain.GroupFields) (*domain.GroupRecord, error) {
	fields, err := ValidateFields(fields)
	if err != nil {
		return nil, err
	}

	var row groupRow
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkName(tx, fields.Name, 0); err != nil {
			return err
		}
		row.apply(fields)
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, s.translate(err, "create")
	}
	return row.record(s.policy), nil
}

func (s *SQLGroupStore) Update(ctx context.Context, record *domain.GroupRecord, fields domain.GroupFields) (*domain.GroupRecord, error) {
	fields, err := ValidateFields(fields)
	if err != nil {
		return nil, err
	}

	var row groupRow
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, record.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}
		if err := s.checkName(tx, fields.Name, row.ID); err != nil {
			return err
		}
		row.apply(fields)
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, s.translate(err, "update")
	}
	return row.record(s.policy), nil
}

// checkName fails when another group already uses name
func (s *SQLGroupStore) checkName(tx *gorm.DB, name string, selfID int64) error {
	var count int64
	err := tx.Model(&groupRow{}).
		Where("name_key = ? AND id <> ?", nameKey(name), selfID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nameTaken()
	}
	return nil
}

// translate keeps domain errors intact and wraps everything else
func (s *SQLGroupStore) translate(err error, op string) error {
	var fe *domain.FieldError
	if errors.As(err, &fe) || errors.Is(err, ErrGroupNotFound) {
		return err
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nameTaken()
	}
	return fmt.Errorf("failed to %s group: %w", op, err)
}
