// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jere Mattila

package store

const (
	createUser = `INSERT INTO users (id, name, email, password, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, email, password, role;`

	findUserByEmail = `SELECT id, name, email, password, role
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password, role
    FROM users
    WHERE id = $1;`

	findAllUsers = `SELECT id, name, email, password, role
    FROM users
    ORDER BY id;`

	updateUserRole = `UPDATE users
    SET role = $2
    WHERE id = $1
    RETURNING id, name, email, password, role;`

	deleteUser = `DELETE FROM users
    WHERE id = $1
    RETURNING id, name, email, password, role;`

	createProduct = `INSERT INTO products (id, name, price, image, description)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, price, image, description;`

	findProductByID = `SELECT id, name, price, image, description
    FROM products
    WHERE id = $1;`

	findAllProducts = `SELECT id, name, price, image, description
    FROM products
    ORDER BY id;`

	deleteProduct = `DELETE FROM products
    WHERE id = $1
    RETURNING id, name, price, image, description;`

	createOrder = `INSERT INTO orders (id, customer_id)
    VALUES ($1, $2)
    RETURNING id, customer_id;`

	createOrderItem = `INSERT INTO order_items (order_id, position, product_id, product_name, product_price, quantity)
    VALUES ($1, $2, $3, $4, $5, $6);`

	findOrderByID = `SELECT id, customer_id
    FROM orders
    WHERE id = $1;`

	findOrderItems = `SELECT product_id, product_name, product_price, quantity
    FROM order_items
    WHERE order_id = $1
    ORDER BY position;`
)
