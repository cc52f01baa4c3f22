package impl

import (
	"context"
	"testing"
	"time"

	"bdgaraj/internal/domain/entity"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/infra/persistence/document"
	"bdgaraj/internal/infra/persistence/memory"
	"bdgaraj/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service *resourceService[*entity.Product, usecase.ProductInput, usecase.ProductPatch]
	clock   *fakeClock
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	clock := newFakeClock()
	repo := document.NewProductRepository(memory.New())

	return productServiceFixtures{
		service: newResourceService[*entity.Product, usecase.ProductInput, usecase.ProductPatch](
			repo, productDefinition, discardLogger(), clock.Now,
		),
		clock: clock,
	}
}

func TestResourceService_CreateAppliesProductDefaults(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.Create(ctx, &usecase.ProductInput{
		Category: "vehicle_sale",
		Title:    "Honda PCX",
		Price:    250.0,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, entity.DefaultProductCurrency, product.Currency)
	assert.Equal(t, entity.DefaultProductStatus, product.Status)
	assert.Equal(t, []string{}, product.Images)
	assert.Equal(t, map[string]string{}, product.Specs)
	assert.True(t, fx.clock.Now().Equal(product.CreatedAt))
	assert.True(t, product.CreatedAt.Equal(product.UpdatedAt))

	stored, err := fx.service.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Title, stored.Title)
	assert.True(t, product.CreatedAt.Equal(stored.CreatedAt))
}

func TestResourceService_UpdateIsPartial(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.Create(ctx, &usecase.ProductInput{
		Category:    "vehicle_sale",
		Title:       "Honda PCX",
		Description: "Az kullanılmış",
		Price:       250.0,
		Specs:       map[string]string{"km": "12000"},
	})
	require.NoError(t, err)

	fx.clock.Advance(time.Hour)

	updated, err := fx.service.Update(ctx, product.ID, &usecase.ProductPatch{Price: ptr(275.0)})
	require.NoError(t, err)

	assert.Equal(t, 275.0, updated.Price)
	assert.Equal(t, "Honda PCX", updated.Title)
	assert.Equal(t, "Az kullanılmış", updated.Description)
	assert.Equal(t, "12000", updated.Specs["km"])
	assert.True(t, product.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(product.UpdatedAt))
}

func TestResourceService_UpdatedAtAdvancesWithinOneMillisecond(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.Create(ctx, &usecase.ProductInput{Category: "parts", Title: "Balata", Price: 40})
	require.NoError(t, err)

	fx.clock.Advance(300 * time.Microsecond)

	first, err := fx.service.Update(ctx, product.ID, &usecase.ProductPatch{Price: ptr(45.0)})
	require.NoError(t, err)
	assert.True(t, first.UpdatedAt.Equal(product.CreatedAt.Add(time.Millisecond)))

	second, err := fx.service.Update(ctx, product.ID, &usecase.ProductPatch{Price: ptr(50.0)})
	require.NoError(t, err)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.True(t, product.CreatedAt.Equal(second.CreatedAt))
}

func TestResourceService_UpdateClearsCollections(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.Create(ctx, &usecase.ProductInput{
		Category: "vehicle_sale",
		Title:    "Honda PCX",
		Images:   []string{"/uploads/products/pcx.jpg"},
		Specs:    map[string]string{"km": "12000"},
	})
	require.NoError(t, err)

	updated, err := fx.service.Update(ctx, product.ID, &usecase.ProductPatch{
		Images: ptr([]string{}),
		Specs:  ptr(map[string]string{}),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Images)
	assert.Empty(t, updated.Specs)
	assert.Equal(t, "Honda PCX", updated.Title)
}

func TestResourceService_EmptyUpdateReturnsCurrent(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.Create(ctx, &usecase.ProductInput{Category: "parts", Title: "Balata", Price: 40})
	require.NoError(t, err)

	fx.clock.Advance(time.Hour)

	same, err := fx.service.Update(ctx, product.ID, &usecase.ProductPatch{})
	require.NoError(t, err)
	assert.Equal(t, product.Title, same.Title)
	assert.True(t, product.UpdatedAt.Equal(same.UpdatedAt))
}

func TestResourceService_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	_, err := fx.service.Get(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = fx.service.Update(ctx, "missing", &usecase.ProductPatch{Price: ptr(1.0)})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = fx.service.Update(ctx, "missing", &usecase.ProductPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	assert.ErrorIs(t, fx.service.Delete(ctx, "missing"), domainerrors.ErrProductNotFound)
}

func TestResourceService_ListFiltersAndSortsNewestFirst(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	inputs := []usecase.ProductInput{
		{Category: "vehicle_sale", Title: "old active", Status: "active"},
		{Category: "vehicle_sale", Title: "sold", Status: "sold"},
		{Category: "parts", Title: "part", Status: "active"},
		{Category: "vehicle_sale", Title: "new active", Status: "active"},
	}
	for i := range inputs {
		_, err := fx.service.Create(ctx, &inputs[i])
		require.NoError(t, err)
		fx.clock.Advance(time.Minute)
	}

	products, err := fx.service.List(ctx, repository.Filter{"category": "vehicle_sale", "status": "active"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "new active", products[0].Title)
	assert.Equal(t, "old active", products[1].Title)

	all, err := fx.service.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestResourceService_DeleteRemovesDocument(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.Create(ctx, &usecase.ProductInput{Category: "parts", Title: "Zincir"})
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, product.ID))

	_, err = fx.service.Get(ctx, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestResourceService_OrderedListing(t *testing.T) {
	repo := document.NewFeatureRepository(memory.New())
	srv := NewFeatureService(repo, discardLogger())
	ctx := context.Background()

	for _, in := range []usecase.FeatureInput{
		{Icon: "c", Title: "third", Description: "c", Order: 3},
		{Icon: "a", Title: "first", Description: "a", Order: 1},
		{Icon: "b", Title: "second", Description: "b", Order: 2},
	} {
		_, err := srv.Create(ctx, &in)
		require.NoError(t, err)
	}

	features, err := srv.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, "first", features[0].Title)
	assert.Equal(t, "second", features[1].Title)
	assert.Equal(t, "third", features[2].Title)
}

func TestResourceService_BlogAuthorDefault(t *testing.T) {
	srv := NewBlogPostService(document.NewBlogPostRepository(memory.New()), discardLogger())

	post, err := srv.Create(context.Background(), &usecase.BlogPostInput{Title: "Kış bakımı", Content: "..."})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultBlogAuthor, post.Author)
}

func TestResourceService_UntimedEntityUpdate(t *testing.T) {
	srv := NewServiceService(document.NewServiceRepository(memory.New()), discardLogger())
	ctx := context.Background()

	created, err := srv.Create(ctx, &usecase.ServiceInput{Name: "Lastik", Description: "Lastik değişimi", Icon: "🛞"})
	require.NoError(t, err)

	updated, err := srv.Update(ctx, created.ID, &usecase.ServicePatch{ImageURL: ptr("/uploads/services/x.png")})
	require.NoError(t, err)
	assert.Equal(t, "Lastik", updated.Name)
	assert.Equal(t, "/uploads/services/x.png", updated.ImageURL)
}
