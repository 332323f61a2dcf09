package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/products - the storefront catalog.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:       p.ID,
			Name:     p.Name,
			Price:    amount(p.Price),
			Unit:     p.Unit,
			Category: p.Category,
			Image:    p.Image,
			Quantity: p.StockQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	in, err := s.bindProduct(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(in)
	if err != nil {
		return s.respondError(ctx, err)
	}

	id, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ProductCreated{
		Message: "Product created successfully",
		Id:      id,
	})
}

// UpdateProduct handles PUT /api/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productID int64) error {
	in, err := s.bindProduct(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, in)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Product updated successfully"})
}

// DeleteProduct handles DELETE /api/products/{productId}. Products referenced by
// orders are kept and reported as a conflict.
func (s *Server) DeleteProduct(ctx echo.Context, productID int64) error {
	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Product deleted successfully"})
}

func (s *Server) bindProduct(ctx echo.Context) (commands.ProductInput, error) {
	var body servers.ProductInput
	if err := ctx.Bind(&body); err != nil {
		return commands.ProductInput{}, invalidRequest(err)
	}
	if err := ctx.Validate(&body); err != nil {
		return commands.ProductInput{}, err
	}

	price, err := s.amounts.Parse("price", body.Price.Raw())
	if err != nil {
		return commands.ProductInput{}, err
	}

	return commands.ProductInput{
		Name:          body.Name,
		Price:         price,
		Unit:          deref(body.Unit),
		Category:      deref(body.Category),
		Image:         deref(body.Image),
		StockQuantity: deref(body.Quantity),
	}, nil
}
