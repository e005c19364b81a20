package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "user-service/internal/domain/user"
	pkgerrors "user-service/pkg/errors"
)

// UserRepoPG implements the user Repository interface using PostgreSQL and GORM.
//
// Id-assignment policy: the users table owns identity. A user saved with
// ID == 0 gets the next auto-increment value, which is written back into the
// entity. A user saved with a non-zero ID is upserted under that ID.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement"` // Unique identifier with auto-increment
	Name  string `gorm:"not null"`                 // User's full name (required)
	Email string `gorm:"not null;unique"`          // User's unique email address (required, unique)
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Migrate creates or updates the users table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{})
}

// FindByID retrieves a user by ID. A missing row is (nil, nil), not an error.
func (r *UserRepoPG) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found", zap.Uint64("id", id))
			return nil, nil
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Uint64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &domain.User{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
	}, nil
}

// Save persists the user. A zero ID triggers an insert and the generated ID
// is written back into u; a non-zero ID updates the existing row.
func (r *UserRepoPG) Save(ctx context.Context, u *domain.User) error {
	if u == nil {
		return errors.New("user cannot be nil")
	}

	model := UserSchema{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		if isDuplicateKeyError(err) {
			r.log.Warn("duplicate email on save", zap.String("email", u.Email))
			return pkgerrors.NewAlreadyExistsError("user",
				fmt.Sprintf("user with email %s already exists", u.Email))
		}
		r.log.Error("failed to save user in db", zap.Error(err), zap.String("email", u.Email))
		return fmt.Errorf("failed to save user: %w", err)
	}

	u.ID = model.ID
	r.log.Info("user saved in db", zap.Uint64("id", model.ID))
	return nil
}

// isDuplicateKeyError reports whether err is a unique-constraint violation.
// GORM translates driver errors when TranslateError is enabled; the string
// checks cover drivers that do not translate.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
