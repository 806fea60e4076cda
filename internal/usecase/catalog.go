package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"jo3qma.com/zona_apk/internal/domain/catalog"
	"jo3qma.com/zona_apk/internal/domain/display"
	"jo3qma.com/zona_apk/internal/domain/model"
	"jo3qma.com/zona_apk/internal/domain/repository"
)

// ErrListingNotFound は指定されたIDのアプリがカタログにない場合のエラーです
var ErrListingNotFound = errors.New("listing not found")

// CatalogUsecase はカタログの検索・カテゴリ表示のビジネスロジックを担当します
// カタログは最初の呼び出しで一度だけ読み込み、以降は同じスナップショットを使います
type CatalogUsecase struct {
	repo     repository.ListingRepository
	pageSize int
	locale   language.Tag
	logger   *zap.Logger

	mu       sync.Mutex
	snapshot []*model.Listing
	loaded   bool
}

// Option は CatalogUsecase の設定を変更します
type Option func(*CatalogUsecase)

// WithPageSize は1ページあたりの既定の件数を設定します
func WithPageSize(n int) Option {
	return func(u *CatalogUsecase) {
		if n > 0 {
			u.pageSize = n
		}
	}
}

// WithLocale はカテゴリ名の並び替えに使う言語を設定します
func WithLocale(tag language.Tag) Option {
	return func(u *CatalogUsecase) {
		u.locale = tag
	}
}

// WithLogger はロガーを設定します
func WithLogger(logger *zap.Logger) Option {
	return func(u *CatalogUsecase) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// NewCatalogUsecase は新しいCatalogUsecaseインスタンスを作成します
func NewCatalogUsecase(repo repository.ListingRepository, opts ...Option) *CatalogUsecase {
	u := &CatalogUsecase{
		repo:     repo,
		pageSize: model.DefaultPageSize,
		locale:   language.Spanish,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// PageSize は既定の1ページあたりの件数を返します
func (u *CatalogUsecase) PageSize() int {
	return u.pageSize
}

// Warm はカタログを先に読み込みます。サーバー起動時に呼び出します
func (u *CatalogUsecase) Warm(ctx context.Context) error {
	_, err := u.listings(ctx)
	return err
}

// Search は検索語またはカテゴリで絞り込んだカードの1ページを返します
func (u *CatalogUsecase) Search(ctx context.Context, params model.ViewParams) (*model.CardPage, error) {
	listings, err := u.listings(ctx)
	if err != nil {
		return nil, err
	}

	if params.PageSize <= 0 {
		params.PageSize = u.pageSize
	}
	page := catalog.QueryPage(listings, params)

	u.logger.Debug("catalog searched",
		zap.String("query", params.Query),
		zap.String("category_id", params.CategoryID),
		zap.Int("offset", params.Offset),
		zap.Int("total", page.TotalCount),
	)

	return &model.CardPage{
		Cards:      display.NewCards(page.Items),
		TotalCount: page.TotalCount,
		HasNext:    page.HasNext,
		NextOffset: page.NextOffset,
	}, nil
}

// GetListing は指定されたIDのアプリの全情報を返します
func (u *CatalogUsecase) GetListing(ctx context.Context, id string) (*model.Listing, error) {
	listings, err := u.listings(ctx)
	if err != nil {
		return nil, err
	}

	id = strings.TrimSpace(id)
	for _, l := range listings {
		if l.ID != "" && l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
}

// listings はスナップショットを返します。未読み込みの場合はリポジトリから読み込みます
// 読み込みに失敗した場合は保持せず、次の呼び出しで再試行します
func (u *CatalogUsecase) listings(ctx context.Context) ([]*model.Listing, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.loaded {
		return u.snapshot, nil
	}

	listings, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	u.snapshot = listings
	u.loaded = true
	u.logger.Info("catalog snapshot ready", zap.Int("listings", len(listings)))
	return u.snapshot, nil
}
