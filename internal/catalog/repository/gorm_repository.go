package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

// GormCategoryRepository stores categories through GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if _, err := r.FindByName(ctx, category.Name); err == nil {
		return domain.ErrDuplicateCategory
	}
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

func (r *GormCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&count).Error
	return count, err
}

// GormProductRepository stores products through GORM
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// AutoMigrate creates the catalog tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Category{}, &domain.Product{})
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(ctx context.Context, categoryID uint) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Search(ctx context.Context, term string) ([]domain.Product, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("id").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
