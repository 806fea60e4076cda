package repository

import (
	"context"

	"jo3qma.com/zona_apk/internal/domain/model"
)

// ListingRepository はカタログのスナップショットの取得方法を抽象化します。
// 実装がファイルなのか、HTMLページに埋め込まれたデータなのかはドメイン層は知りません。
type ListingRepository interface {
	// LoadAll はカタログ全件を読み込みます
	// 返されたスライスは呼び出し側で変更しないでください
	LoadAll(ctx context.Context) ([]*model.Listing, error)
}
