// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jere Mattila

package models

// NewUser is the registration payload accepted by POST /api/register.
// Role may be supplied by the client but is validated only; every account is
// created as a customer regardless of the requested role.
type NewUser struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=10"`
	Role     Role   `json:"role" validate:"omitempty,oneof=customer admin"`
}

// RoleChange is the payload accepted by PUT /api/users/{id}. Role is a
// pointer so a missing field can be told apart from an invalid one.
type RoleChange struct {
	Role *Role `json:"role"`
}

// NewProduct is the payload accepted by POST /api/products and
// PUT /api/products/{id}.
type NewProduct struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// NewOrder is the payload accepted by POST /api/orders. All nested fields
// are pointers: the validator distinguishes an absent field from a zero value
// the same way the document schema of the storefront client does.
type NewOrder struct {
	Items []NewOrderItem `json:"items" validate:"required,min=1,dive"`
}

// NewOrderItem is one line of an incoming order.
type NewOrderItem struct {
	Product  *NewOrderedProduct `json:"product" validate:"required"`
	Quantity *int               `json:"quantity" validate:"required"`
}

// NewOrderedProduct is the product snapshot supplied with an order item.
type NewOrderedProduct struct {
	ID    *string  `json:"id" validate:"required"`
	Name  *string  `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}
