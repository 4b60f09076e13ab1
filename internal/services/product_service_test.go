package services_test

import (
	"fmt"
	"testing"

	"karigari/internal/apperrors"
	"karigari/internal/models"
	"karigari/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Banarasi Silk Scarf", Category: "Textiles", ArtisanID: "artisan-1", Price: 1200.0, Stock: 10},
		{ID: "2", Name: "Terracotta Vase", Category: "Pottery", ArtisanID: "artisan-2", Price: 450.0, Stock: 25},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Banarasi Silk Scarf", Category: "Textiles", ArtisanID: "artisan-1", Price: 1200.0}

	// Successful catalog lookup returns price, category and owning artisan.
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	// Unknown product signals not-found.
	mockRepo.On("GetByID", "99").Return(nil, apperrors.NotFound("product", "99")).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByArtisan(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{{ID: "2", Name: "Terracotta Vase", ArtisanID: "artisan-2"}}
	mockRepo.On("GetByArtisanID", "artisan-2").Return(expected, nil).Once()

	products, err := service.GetProductsByArtisan("artisan-2")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Blue Pottery Bowl", Category: "Pottery", ArtisanID: "artisan-2", Price: 250.0, Stock: 20}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)

	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct("1"))

	mockRepo.On("Delete", "99").Return(apperrors.NotFound("product", "99")).Once()
	assert.Error(t, service.DeleteProduct("99"))
	mockRepo.AssertExpectations(t)
}
