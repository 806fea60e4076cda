package handler

import (
	"net/http"

	"connectrpc.com/connect"
)

// CatalogServiceName はカタログサービスの完全修飾名です
const CatalogServiceName = "zonaapk.catalog.v1.CatalogService"

// 各RPCのパスです
const (
	SearchListingsProcedure = "/" + CatalogServiceName + "/SearchListings"
	ListCategoriesProcedure = "/" + CatalogServiceName + "/ListCategories"
	BrowseCategoryProcedure = "/" + CatalogServiceName + "/BrowseCategory"
	GetListingProcedure     = "/" + CatalogServiceName + "/GetListing"
)

// NewCatalogServiceHandler はハンドラーをConnectのサービスとして登録し、
// マウントするパスと http.Handler を返します
func NewCatalogServiceHandler(h *CatalogHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(SearchListingsProcedure, connect.NewUnaryHandler(SearchListingsProcedure, h.SearchListings, opts...))
	mux.Handle(ListCategoriesProcedure, connect.NewUnaryHandler(ListCategoriesProcedure, h.ListCategories, opts...))
	mux.Handle(BrowseCategoryProcedure, connect.NewUnaryHandler(BrowseCategoryProcedure, h.BrowseCategory, opts...))
	mux.Handle(GetListingProcedure, connect.NewUnaryHandler(GetListingProcedure, h.GetListing, opts...))
	return "/" + CatalogServiceName + "/", mux
}
