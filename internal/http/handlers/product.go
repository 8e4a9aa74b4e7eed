package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solemate/solemate-backend/internal/http/response"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
	"github.com/solemate/solemate-backend/internal/services"
)

type ProductHandler struct {
	catalog services.CatalogService
}

func NewProductHandler(catalog services.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

var productFilterKeys = []string{"brand", "category", "name", "size", "color"}

// GET /products?brand=&category=&name=&size=&color=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}

	filters := map[string]string{}
	for _, key := range productFilterKeys {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}

	var err error
	var products any
	if len(filters) > 0 {
		products, err = h.catalog.SearchProducts(dbc, filters)
	} else {
		products, err = h.catalog.GetAllProducts(dbc)
	}
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, products)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := parseProductID(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	product, err := h.catalog.GetProductByID(dbc, id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, product)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	product, err := h.catalog.CreateProduct(dbc, input)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parseProductID(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	product, err := h.catalog.UpdateProduct(dbc, id, input)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, product)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parseProductID(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	if err := h.catalog.DeleteProduct(dbc, id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}

func parseProductID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
