package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracedProductRepository wraps a ProductRepository with tracing
type TracedProductRepository struct {
	next domain.ProductRepository
}

// NewTracedProductRepository creates a new repository with tracing
func NewTracedProductRepository(next domain.ProductRepository) *TracedProductRepository {
	return &TracedProductRepository{next: next}
}

func (r *TracedProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.CreateProduct",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.Int("product.category_id", int(product.CategoryID)),
			attribute.String("product.price", product.Price.String()),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, product); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

func (r *TracedProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindProductByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.model_url", product.ModelURL),
	)
	return product, nil
}

func (r *TracedProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAllProducts")
	defer span.End()

	products, err := r.next.FindAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracedProductRepository) FindByCategory(ctx context.Context, categoryID uint) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindProductsByCategory",
		trace.WithAttributes(attribute.Int("query.category_id", int(categoryID))),
	)
	defer span.End()

	products, err := r.next.FindByCategory(ctx, categoryID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracedProductRepository) Search(ctx context.Context, term string) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.SearchProducts",
		trace.WithAttributes(attribute.String("query.term", term)),
	)
	defer span.End()

	products, err := r.next.Search(ctx, term)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracedProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountProducts")
	defer span.End()

	count, err := r.next.Count(ctx)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

// recordError marks the span failed; a missing record is an expected outcome
// and is recorded without an error status.
func recordError(span trace.Span, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		span.SetAttributes(attribute.Bool("result.found", false))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
