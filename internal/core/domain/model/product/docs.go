// Package product holds the catalog entity referenced by order items.
package product
