// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jere Mattila

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/mock"
	"github.com/jmattila/webshop/internal/store"
	"github.com/jmattila/webshop/models"
)

func newTestProductService(t *testing.T, ctrl *gomock.Controller) (ProductService, *mock.MockProductRepository) {
	t.Helper()
	mockRepo := mock.NewMockProductRepository(ctrl)
	svc := NewProductService(mockRepo, logger.Nop())
	return svc, mockRepo
}

func TestCreateProduct_ValidationMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProductService(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		payload  models.NewProduct
		messages []string
	}{
		{
			name:     "everything missing",
			payload:  models.NewProduct{},
			messages: []string{"Missing name", "Missing price"},
		},
		{
			name:     "zero price",
			payload:  models.NewProduct{Name: "Mouse"},
			messages: []string{"Missing price"},
		},
		{
			name:     "negative price",
			payload:  models.NewProduct{Name: "Mouse", Price: -5},
			messages: []string{"Missing price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tt.payload)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.messages, validationErr.Messages)
		})
	}
}

func TestCreateProduct_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProductService(t, ctrl)
	ctx := context.Background()

	payload := models.NewProduct{
		Name:        "Wireless Mouse",
		Price:       24.99,
		Image:       "mouse.png",
		Description: "A mouse without a tail",
	}

	mockRepo.EXPECT().CreateProduct(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, product models.Product) (models.Product, error) {
			assert.Equal(t, payload.Name, product.Name)
			assert.Equal(t, payload.Price, product.Price)
			product.ID = "6719a1f0c4d2b8a9e3f5d7c1"
			return product, nil
		},
	)

	created, err := svc.CreateProduct(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "6719a1f0c4d2b8a9e3f5d7c1", created.ID)
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProductService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateProduct(ctx, gomock.Any()).Return(models.Product{}, store.ErrProductAlreadyExists)

	_, err := svc.CreateProduct(ctx, models.NewProduct{Name: "Wireless Mouse", Price: 24.99})
	assert.ErrorIs(t, err, store.ErrProductAlreadyExists)
}

func TestUpdateProduct_TargetNotFoundBeforeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProductService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindProductByID(ctx, "6719a1f0c4d2b8a9e3f5d7c1").Return(models.Product{}, store.ErrProductNotFound)

	// The payload is invalid too, but the unknown target wins.
	_, err := svc.UpdateProduct(ctx, "6719a1f0c4d2b8a9e3f5d7c1", models.NewProduct{})
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestUpdateProduct_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProductService(t, ctrl)
	ctx := context.Background()
	id := "6719a1f0c4d2b8a9e3f5d7c1"

	mockRepo.EXPECT().FindProductByID(ctx, id).Return(models.Product{ID: id}, nil)

	_, err := svc.UpdateProduct(ctx, id, models.NewProduct{Name: "Mouse"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Missing price"}, validationErr.Messages)
}

func TestUpdateProduct_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProductService(t, ctrl)
	ctx := context.Background()
	id := "6719a1f0c4d2b8a9e3f5d7c1"

	payload := models.NewProduct{Name: "Wireless Mouse v2", Price: 29.99}

	gomock.InOrder(
		mockRepo.EXPECT().FindProductByID(ctx, id).Return(models.Product{ID: id}, nil),
		mockRepo.EXPECT().UpdateProduct(ctx, models.Product{
			ID:    id,
			Name:  payload.Name,
			Price: payload.Price,
		}).Return(models.Product{ID: id, Name: payload.Name, Price: payload.Price}, nil),
	)

	updated, err := svc.UpdateProduct(ctx, id, payload)
	require.NoError(t, err)
	assert.Equal(t, payload.Name, updated.Name)
}

func TestRemoveProduct_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProductService(t, ctrl)
	ctx := context.Background()
	id := "6719a1f0c4d2b8a9e3f5d7c1"

	mockRepo.EXPECT().DeleteProduct(ctx, id).Return(models.Product{ID: id}, nil)

	deleted, err := svc.RemoveProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)
}
