package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/jmattila/webshop/models"
)

// validate is the shared validator instance. Validation rules live in the
// struct tags on the payload types in the models package; this file only
// translates field errors into the message strings the API contract uses.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateNewUser checks a registration payload and returns a
// *ValidationError listing every problem, or nil.
func validateNewUser(payload models.NewUser) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.StructField() {
		case "Name":
			messages = append(messages, "Missing name")
		case "Email":
			if fe.Tag() == "required" {
				messages = append(messages, "Missing email")
			} else {
				messages = append(messages, "Invalid email")
			}
		case "Password":
			if fe.Tag() == "required" {
				messages = append(messages, "Missing password")
			} else {
				messages = append(messages, "Password must be at least 10 characters")
			}
		case "Role":
			messages = append(messages, "Unknown role")
		}
	}

	return &ValidationError{Messages: messages}
}

// validateNewProduct checks a product payload. A price that is absent, zero
// or negative is reported the same way.
func validateNewProduct(payload models.NewProduct) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.StructField() {
		case "Name":
			messages = append(messages, "Missing name")
		case "Price":
			messages = append(messages, "Missing price")
		}
	}

	return &ValidationError{Messages: messages}
}

// validateNewOrder checks an order payload. Item fields are pointers so the
// validator reports structurally absent fields, matching what the storefront
// client submits.
func validateNewOrder(payload models.NewOrder) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.StructField() {
		case "Items":
			messages = append(messages, "Missing list of products")
		case "Quantity":
			messages = append(messages, "Missing product quantity")
		case "Product":
			messages = append(messages, "Missing product")
		case "ID":
			messages = append(messages, "Missing product id")
		case "Name":
			messages = append(messages, "Missing product name")
		case "Price":
			messages = append(messages, "Missing product price")
		}
	}

	return &ValidationError{Messages: messages}
}
