package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByPhoneNumber(ctx context.Context, phone string) (*Employee, error)
	FindByActive(ctx context.Context, active bool) ([]Employee, error)
	SearchByFullName(ctx context.Context, name string) ([]Employee, error)
	FindPage(ctx context.Context, page, size int, filter ListFilter) ([]Employee, int64, error)
}

type repository struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn().WithContext(ctx).Create(empl).Error
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.conn().WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.conn().WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.conn().WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.conn().WithContext(ctx).First(&empl, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.conn().WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByPhoneNumber(ctx context.Context, phone string) (*Employee, error) {
	var empl Employee
	err := r.conn().WithContext(ctx).First(&empl, "phone_number = ?", phone).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByActive(ctx context.Context, active bool) ([]Employee, error) {
	var empls []Employee
	err := r.conn().WithContext(ctx).
		Where("active = ?", active).
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) SearchByFullName(ctx context.Context, name string) ([]Employee, error) {
	var empls []Employee
	err := r.conn().WithContext(ctx).
		Where("full_name ILIKE ?", "%"+name+"%").
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

// FindPage returns one zero-indexed page ordered by id plus the total record
// count for the same filter.
func (r *repository) FindPage(ctx context.Context, page, size int, filter ListFilter) ([]Employee, int64, error) {
	q := r.conn().WithContext(ctx).Model(&Employee{})
	if filter.Name != "" {
		q = q.Where("full_name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var empls []Employee
	err := q.Order("id ASC").
		Limit(size).
		Offset(page * size).
		Find(&empls).Error
	if err != nil {
		return nil, 0, err
	}

	return empls, total, nil
}
