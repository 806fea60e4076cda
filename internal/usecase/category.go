package usecase

import (
	"context"
	"strings"

	"jo3qma.com/zona_apk/internal/domain/catalog"
	"jo3qma.com/zona_apk/internal/domain/display"
	"jo3qma.com/zona_apk/internal/domain/model"
)

// categoriesTitle はカテゴリ指定がない場合の見出しです
const categoriesTitle = "Explora Todas las Categorías"

// Categories はカテゴリごとのアプリ数を表示名順で返します
func (u *CatalogUsecase) Categories(ctx context.Context) ([]model.CategorySummary, error) {
	listings, err := u.listings(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.GroupByCategory(listings, u.locale), nil
}

// Browse はカテゴリ画面の内容を返します
// カテゴリが指定されていればそのカテゴリのアプリ一覧を、
// 指定がなければカテゴリのグリッドを返します。検索語は使いません
func (u *CatalogUsecase) Browse(ctx context.Context, params model.ViewParams) (*model.BrowseResult, error) {
	categoryID := strings.TrimSpace(params.CategoryID)
	if categoryID == "" {
		categories, err := u.Categories(ctx)
		if err != nil {
			return nil, err
		}
		return &model.BrowseResult{
			Mode:       model.BrowseModeCategories,
			Title:      categoriesTitle,
			Categories: categories,
		}, nil
	}

	page, err := u.Search(ctx, model.ViewParams{
		CategoryID: categoryID,
		Offset:     params.Offset,
		PageSize:   params.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return &model.BrowseResult{
		Mode:  model.BrowseModeListings,
		Title: "Categoría: " + display.CategoryTitle(categoryID),
		Page:  page,
	}, nil
}
