// Package datafile はサイトの data.js（const apkList = [...];）からカタログを読み込みます。
package datafile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"jo3qma.com/zona_apk/internal/domain/model"
	"jo3qma.com/zona_apk/internal/domain/repository"
)

// ErrListDeclarationNotFound は apkList の宣言が見つからない場合のエラーです
var ErrListDeclarationNotFound = errors.New("apkList declaration not found")

// declPattern は "const apkList = " のような配列宣言の開始位置にマッチします
var declPattern = regexp.MustCompile(`(?:const|let|var)\s+apkList\s*=\s*`)

type fileRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileRepository はファイルからカタログを読み込む ListingRepository を作成します
// path が .html / .htm の場合はページ内の <script> から apkList を探します
func NewFileRepository(path string, logger *zap.Logger) repository.ListingRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fileRepository{
		path:   path,
		logger: logger,
	}
}

// LoadAll はファイルを読み込み、カタログ全件を返します
func (r *fileRepository) LoadAll(ctx context.Context) ([]*model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	src := string(content)
	if isHTML(r.path) {
		src, err = extractScript(strings.NewReader(src))
		if err != nil {
			return nil, err
		}
	}

	raws, err := parseAPKList(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}

	listings := r.toModels(raws)
	r.logger.Info("catalog file loaded",
		zap.String("path", r.path),
		zap.Int("listings", len(listings)),
	)
	return listings, nil
}

// toModels はドメインモデルに変換し、重複した ID は最初のものだけを残します
func (r *fileRepository) toModels(raws []rawListing) []*model.Listing {
	listings := make([]*model.Listing, 0, len(raws))
	seen := make(map[string]bool, len(raws))

	for i := range raws {
		l := raws[i].toModel()
		if l.ID != "" {
			if seen[l.ID] {
				r.logger.Warn("duplicate listing id skipped",
					zap.String("id", l.ID),
					zap.Int("index", i),
				)
				continue
			}
			seen[l.ID] = true
		}
		listings = append(listings, l)
	}
	return listings
}

// parseAPKList は JavaScript のソースから apkList の配列を取り出してパースします
// 宣言の直後から JSON の値を1つだけ読み、それ以降の内容は無視します
func parseAPKList(src string) ([]rawListing, error) {
	loc := declPattern.FindStringIndex(src)
	if loc == nil {
		return nil, ErrListDeclarationNotFound
	}

	var raws []rawListing
	dec := json.NewDecoder(strings.NewReader(src[loc[1]:]))
	if err := dec.Decode(&raws); err != nil {
		return nil, fmt.Errorf("failed to unmarshal apkList: %w", err)
	}
	return raws, nil
}

// extractScript はHTMLから apkList を宣言している <script> の内容を返します
func extractScript(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var script string
	doc.Find("script").EachWithBreak(func(i int, s *goquery.Selection) bool {
		content := s.Text()
		if declPattern.MatchString(content) {
			script = content
			return false
		}
		return true
	})

	if script == "" {
		return "", fmt.Errorf("no inline script in page: %w", ErrListDeclarationNotFound)
	}
	return script, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
