package handlers

import (
	"net/http"
	"strings"

	response "repair_orders/internal/adapter/http/dto/response"
	"repair_orders/internal/usecase/interfaces"
	"repair_orders/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes catalog reads so clients can preview the prices a
// new task would copy.
type CatalogHandler struct {
	catalog interfaces.ICatalog
}

func NewCatalogHandler(catalog interfaces.ICatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary  Get a catalog item
// @Tags     catalog
// @Produce  json
// @Param    id  path  string  true  "Catalog item ID"
// @Success  200  {object}  response.CatalogItemResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /catalog/{id} [get]
func (h *CatalogHandler) GetItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" || h.catalog == nil {
		abortWith(c, pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound))
		return
	}
	item, err := h.catalog.GetItem(c.Request.Context(), id)
	if err != nil {
		abortWith(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	if item.ID == "" {
		abortWith(c, pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}
