package router

import (
	"forest/internal/handlers/cart"
	"forest/internal/handlers/notification"
	"forest/internal/handlers/order"
	"forest/internal/handlers/product"
	"forest/internal/handlers/productfile"
	"forest/internal/handlers/specialinterval"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Product         product.Handler
	SpecialInterval specialinterval.Handler
	ProductFile     productfile.Handler
	Cart            cart.Handler
	Order           order.Handler
	Notification    notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain under /v1. Product sub-resources share the /products tree.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Route("/products", func(products chi.Router) {
			r.DomainHandlers.Product.Router(products)

			products.Route("/{id}/special-intervals", r.DomainHandlers.SpecialInterval.Router)
			products.Route("/{id}/files", r.DomainHandlers.ProductFile.Router)
		})

		r.DomainHandlers.Cart.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
