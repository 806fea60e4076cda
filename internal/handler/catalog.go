package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"jo3qma.com/zona_apk/internal/domain/model"
	"jo3qma.com/zona_apk/internal/usecase"
)

// ListingFinder はアプリの検索と取得を行うユースケースです
type ListingFinder interface {
	Search(ctx context.Context, params model.ViewParams) (*model.CardPage, error)
	GetListing(ctx context.Context, id string) (*model.Listing, error)
}

// CategoryBrowser はカテゴリ画面のユースケースです
type CategoryBrowser interface {
	Categories(ctx context.Context) ([]model.CategorySummary, error)
	Browse(ctx context.Context, params model.ViewParams) (*model.BrowseResult, error)
}

// CatalogHandler はConnectのハンドラー実装です
// プロトコル層（google.protobuf.Struct）とドメイン層（usecase）を橋渡しします
type CatalogHandler struct {
	listings   ListingFinder
	categories CategoryBrowser
	validator  *Validator
	logger     *zap.Logger
}

// NewCatalogHandler は新しいCatalogHandlerインスタンスを作成します
func NewCatalogHandler(listings ListingFinder, categories CategoryBrowser, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{
		listings:   listings,
		categories: categories,
		validator:  NewValidator(),
		logger:     logger,
	}
}

type searchRequest struct {
	Query    string `json:"query" validate:"max=200"`
	Offset   int    `json:"offset" validate:"gte=0"`
	PageSize int    `json:"page_size" validate:"gte=0,lte=100"`
}

type browseRequest struct {
	CategoryID string `json:"category_id" validate:"max=100"`
	Offset     int    `json:"offset" validate:"gte=0"`
	PageSize   int    `json:"page_size" validate:"gte=0,lte=100"`
}

type getListingRequest struct {
	ID string `json:"id" validate:"required,max=200"`
}

type pageResponse struct {
	Items      []model.Card `json:"items"`
	TotalCount int          `json:"total_count"`
	HasNext    bool         `json:"has_next"`
	NextOffset int          `json:"next_offset"`
}

type categoriesResponse struct {
	Categories []model.CategorySummary `json:"categories"`
}

type browseResponse struct {
	Mode       model.BrowseMode        `json:"mode"`
	Title      string                  `json:"title"`
	Categories []model.CategorySummary `json:"categories,omitempty"`
	*pageResponse
}

// SearchListings は検索語でアプリを検索するRPCハンドラーです
func (h *CatalogHandler) SearchListings(
	ctx context.Context,
	req *connect.Request[structpb.Struct],
) (*connect.Response[structpb.Struct], error) {
	var in searchRequest
	if err := h.decode(req.Msg, &in); err != nil {
		return nil, err
	}

	page, err := h.listings.Search(ctx, model.ViewParams{
		Query:    in.Query,
		Offset:   in.Offset,
		PageSize: in.PageSize,
	})
	if err != nil {
		return nil, h.toConnectError("search listings", err)
	}

	return h.respond(newPageResponse(page))
}

// ListCategories はカテゴリ一覧を返すRPCハンドラーです
func (h *CatalogHandler) ListCategories(
	ctx context.Context,
	req *connect.Request[structpb.Struct],
) (*connect.Response[structpb.Struct], error) {
	categories, err := h.categories.Categories(ctx)
	if err != nil {
		return nil, h.toConnectError("list categories", err)
	}

	return h.respond(categoriesResponse{Categories: nonNil(categories)})
}

// BrowseCategory はカテゴリ画面の内容を返すRPCハンドラーです
func (h *CatalogHandler) BrowseCategory(
	ctx context.Context,
	req *connect.Request[structpb.Struct],
) (*connect.Response[structpb.Struct], error) {
	var in browseRequest
	if err := h.decode(req.Msg, &in); err != nil {
		return nil, err
	}

	result, err := h.categories.Browse(ctx, model.ViewParams{
		CategoryID: in.CategoryID,
		Offset:     in.Offset,
		PageSize:   in.PageSize,
	})
	if err != nil {
		return nil, h.toConnectError("browse category", err)
	}

	resp := browseResponse{
		Mode:  result.Mode,
		Title: result.Title,
	}
	switch result.Mode {
	case model.BrowseModeCategories:
		resp.Categories = nonNil(result.Categories)
	default:
		resp.pageResponse = newPageResponse(result.Page)
	}

	return h.respond(resp)
}

// GetListing はアプリの詳細情報を返すRPCハンドラーです
func (h *CatalogHandler) GetListing(
	ctx context.Context,
	req *connect.Request[structpb.Struct],
) (*connect.Response[structpb.Struct], error) {
	var in getListingRequest
	if err := h.decode(req.Msg, &in); err != nil {
		return nil, err
	}

	listing, err := h.listings.GetListing(ctx, in.ID)
	if err != nil {
		return nil, h.toConnectError("get listing", err)
	}

	return h.respond(listing)
}

// decode はリクエストのStructを構造体に変換し、バリデーションを行います
func (h *CatalogHandler) decode(msg *structpb.Struct, out any) error {
	if msg == nil {
		msg = &structpb.Struct{}
	}

	b, err := protojson.Marshal(msg)
	if err != nil {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid request: %w", err))
	}
	if err := json.Unmarshal(b, out); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid request: %w", err))
	}
	if err := h.validator.Validate(out); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// respond はレスポンス用の値をStructに変換します
func (h *CatalogHandler) respond(v any) (*connect.Response[structpb.Struct], error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, h.toConnectError("encode response", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, h.toConnectError("encode response", err)
	}
	return connect.NewResponse(out), nil
}

// toConnectError はユースケースのエラーをConnectのエラーコードに変換します
func (h *CatalogHandler) toConnectError(op string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrListingNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	h.logger.Error("catalog request failed", zap.String("op", op), zap.Error(err))
	return connect.NewError(connect.CodeInternal, err)
}

func newPageResponse(page *model.CardPage) *pageResponse {
	if page == nil {
		return &pageResponse{Items: []model.Card{}}
	}
	return &pageResponse{
		Items:      nonNil(page.Cards),
		TotalCount: page.TotalCount,
		HasNext:    page.HasNext,
		NextOffset: page.NextOffset,
	}
}

// nonNil は空の結果を null ではなく [] としてエンコードするためのものです
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
