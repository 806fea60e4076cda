package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"jo3qma.com/zona_apk/internal/domain/model"
	"jo3qma.com/zona_apk/internal/usecase"
)

type fakeListingFinder struct {
	page    *model.CardPage
	listing *model.Listing
	err     error

	gotParams model.ViewParams
}

func (f *fakeListingFinder) Search(ctx context.Context, params model.ViewParams) (*model.CardPage, error) {
	f.gotParams = params
	return f.page, f.err
}

func (f *fakeListingFinder) GetListing(ctx context.Context, id string) (*model.Listing, error) {
	return f.listing, f.err
}

type fakeCategoryBrowser struct {
	categories []model.CategorySummary
	result     *model.BrowseResult
	err        error
}

func (f fakeCategoryBrowser) Categories(ctx context.Context) ([]model.CategorySummary, error) {
	return f.categories, f.err
}

func (f fakeCategoryBrowser) Browse(ctx context.Context, params model.ViewParams) (*model.BrowseResult, error) {
	return f.result, f.err
}

func newRequest(t *testing.T, fields map[string]any) *connect.Request[structpb.Struct] {
	t.Helper()

	msg, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	return connect.NewRequest(msg)
}

func connectCode(t *testing.T, err error) connect.Code {
	t.Helper()

	var ce *connect.Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *connect.Error, got %T: %v", err, err)
	}
	return ce.Code()
}

func samplePage() *model.CardPage {
	score := 4.3
	return &model.CardPage{
		Cards: []model.Card{
			{
				ID:               "wa",
				Name:             "WhatsApp Messenger",
				DisplayName:      "WhatsApp Messenger",
				DisplayDeveloper: "WhatsApp LLC",
				Score:            &score,
				ScoreLabel:       "4.3",
				DetailRef:        "whatsapp-messenger-wa",
				DetailPath:       "/apks/whatsapp-messenger-wa.html",
			},
		},
		TotalCount: 13,
		HasNext:    true,
		NextOffset: 12,
	}
}

func TestCatalogHandler_SearchListings_mapsDomainToStruct(t *testing.T) {
	t.Parallel()

	finder := &fakeListingFinder{page: samplePage()}
	h := NewCatalogHandler(finder, nil, nil)

	req := newRequest(t, map[string]any{"query": "whats", "offset": 0, "page_size": 12})
	resp, err := h.SearchListings(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if finder.gotParams.Query != "whats" || finder.gotParams.PageSize != 12 {
		t.Fatalf("params got %+v, want query=whats page_size=12", finder.gotParams)
	}

	fields := resp.Msg.GetFields()
	if got := fields["total_count"].GetNumberValue(); got != 13 {
		t.Fatalf("total_count got %v, want 13", got)
	}
	if got := fields["has_next"].GetBoolValue(); !got {
		t.Fatalf("has_next got false, want true")
	}
	if got := fields["next_offset"].GetNumberValue(); got != 12 {
		t.Fatalf("next_offset got %v, want 12", got)
	}

	items := fields["items"].GetListValue().GetValues()
	if len(items) != 1 {
		t.Fatalf("items len got %d, want 1", len(items))
	}
	item := items[0].GetStructValue().GetFields()
	if got := item["display_name"].GetStringValue(); got != "WhatsApp Messenger" {
		t.Fatalf("display_name got %q, want %q", got, "WhatsApp Messenger")
	}
	if got := item["detail_path"].GetStringValue(); got != "/apks/whatsapp-messenger-wa.html" {
		t.Fatalf("detail_path got %q, want %q", got, "/apks/whatsapp-messenger-wa.html")
	}
	if got := item["score"].GetNumberValue(); got != 4.3 {
		t.Fatalf("score got %v, want 4.3", got)
	}
}

func TestCatalogHandler_SearchListings_emptyItemsIsList(t *testing.T) {
	t.Parallel()

	h := NewCatalogHandler(&fakeListingFinder{page: &model.CardPage{}}, nil, nil)

	resp, err := h.SearchListings(context.Background(), newRequest(t, map[string]any{"query": "zzz"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Msg.GetFields()["items"].GetListValue() == nil {
		t.Fatalf("items is not a list")
	}
}

func TestCatalogHandler_SearchListings_rejectsInvalidRequest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		fields map[string]any
	}{
		{name: "negative offset", fields: map[string]any{"offset": -1}},
		{name: "page size too large", fields: map[string]any{"page_size": 1000}},
		{name: "fractional offset", fields: map[string]any{"offset": 1.5}},
		{name: "offset as string", fields: map[string]any{"offset": "12"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewCatalogHandler(&fakeListingFinder{page: samplePage()}, nil, nil)
			_, err := h.SearchListings(context.Background(), newRequest(t, tc.fields))
			if err == nil {
				t.Fatalf("expected error")
			}
			if code := connectCode(t, err); code != connect.CodeInvalidArgument {
				t.Fatalf("code got %v, want %v", code, connect.CodeInvalidArgument)
			}
		})
	}
}

func TestCatalogHandler_SearchListings_returnsInternalOnUsecaseError(t *testing.T) {
	t.Parallel()

	h := NewCatalogHandler(&fakeListingFinder{err: errors.New("load failed")}, nil, nil)

	_, err := h.SearchListings(context.Background(), newRequest(t, nil))
	if code := connectCode(t, err); code != connect.CodeInternal {
		t.Fatalf("code got %v, want %v", code, connect.CodeInternal)
	}
}

func TestCatalogHandler_GetListing(t *testing.T) {
	t.Parallel()

	listing := &model.Listing{ID: "tg", Name: "Telegram", Screenshots: []string{"https://example.com/1.png"}}
	h := NewCatalogHandler(&fakeListingFinder{listing: listing}, nil, nil)

	resp, err := h.GetListing(context.Background(), newRequest(t, map[string]any{"id": "tg"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := resp.Msg.GetFields()
	if got := fields["name"].GetStringValue(); got != "Telegram" {
		t.Fatalf("name got %q, want %q", got, "Telegram")
	}
	if got := len(fields["screenshots"].GetListValue().GetValues()); got != 1 {
		t.Fatalf("screenshots len got %d, want 1", got)
	}
}

func TestCatalogHandler_GetListing_errors(t *testing.T) {
	t.Parallel()

	notFound := NewCatalogHandler(&fakeListingFinder{err: usecase.ErrListingNotFound}, nil, nil)
	_, err := notFound.GetListing(context.Background(), newRequest(t, map[string]any{"id": "missing"}))
	if code := connectCode(t, err); code != connect.CodeNotFound {
		t.Fatalf("code got %v, want %v", code, connect.CodeNotFound)
	}

	_, err = notFound.GetListing(context.Background(), newRequest(t, nil))
	if code := connectCode(t, err); code != connect.CodeInvalidArgument {
		t.Fatalf("code got %v, want %v", code, connect.CodeInvalidArgument)
	}
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	t.Parallel()

	browser := fakeCategoryBrowser{categories: []model.CategorySummary{
		{ID: "communication", Name: "Comunicación", Count: 2},
		{ID: "tools", Name: "Herramientas", Count: 5},
	}}
	h := NewCatalogHandler(nil, browser, nil)

	resp, err := h.ListCategories(context.Background(), newRequest(t, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	categories := resp.Msg.GetFields()["categories"].GetListValue().GetValues()
	if len(categories) != 2 {
		t.Fatalf("categories len got %d, want 2", len(categories))
	}
	second := categories[1].GetStructValue().GetFields()
	if second["id"].GetStringValue() != "tools" || second["count"].GetNumberValue() != 5 {
		t.Fatalf("categories[1] got %v, want tools/5", second)
	}
}

func TestCatalogHandler_BrowseCategory_modes(t *testing.T) {
	t.Parallel()

	grid := NewCatalogHandler(nil, fakeCategoryBrowser{result: &model.BrowseResult{
		Mode:       model.BrowseModeCategories,
		Title:      "Explora Todas las Categorías",
		Categories: []model.CategorySummary{{ID: "tools", Name: "Herramientas", Count: 1}},
	}}, nil)

	resp, err := grid.BrowseCategory(context.Background(), newRequest(t, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := resp.Msg.GetFields()
	if got := fields["mode"].GetStringValue(); got != "categories" {
		t.Fatalf("mode got %q, want %q", got, "categories")
	}
	if _, ok := fields["items"]; ok {
		t.Fatalf("items should be absent in categories mode")
	}

	listings := NewCatalogHandler(nil, fakeCategoryBrowser{result: &model.BrowseResult{
		Mode:  model.BrowseModeListings,
		Title: "Categoría: Tools",
		Page:  samplePage(),
	}}, nil)

	resp, err = listings.BrowseCategory(context.Background(), newRequest(t, map[string]any{"category_id": "tools"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields = resp.Msg.GetFields()
	if got := fields["mode"].GetStringValue(); got != "listings" {
		t.Fatalf("mode got %q, want %q", got, "listings")
	}
	if got := fields["title"].GetStringValue(); got != "Categoría: Tools" {
		t.Fatalf("title got %q, want %q", got, "Categoría: Tools")
	}
	if got := fields["total_count"].GetNumberValue(); got != 13 {
		t.Fatalf("total_count got %v, want 13", got)
	}
}

func TestCatalogServiceHandler_overConnect(t *testing.T) {
	t.Parallel()

	h := NewCatalogHandler(&fakeListingFinder{page: samplePage()}, nil, nil)
	path, svc := NewCatalogServiceHandler(h)

	mux := http.NewServeMux()
	mux.Handle(path, svc)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	for _, opts := range [][]connect.ClientOption{nil, {connect.WithProtoJSON()}} {
		client := connect.NewClient[structpb.Struct, structpb.Struct](srv.Client(), srv.URL+SearchListingsProcedure, opts...)

		resp, err := client.CallUnary(context.Background(), newRequest(t, map[string]any{"query": "whats"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resp.Msg.GetFields()["total_count"].GetNumberValue(); got != 13 {
			t.Fatalf("total_count got %v, want 13", got)
		}
	}
}
