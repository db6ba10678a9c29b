package repository

import (
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore"

	"Ringmaster-Agent/internal/domain/model"
)

// referenceFields 文字列化が必要なオーナー・主催者参照フィールド
var referenceFields = []string{"owner", "organizer"}

// NormalizePlace ストアの生レコードから正規化済みのPlaceを新規に構築する
// 取得したレコードをその場で書き換えるのではなく、必ず新しいマップを作る
// "_id" はプレーンな文字列になり、参照フィールドもストア固有のID型から文字列に変換される
func NormalizePlace(id string, raw map[string]interface{}) model.Place {
	place := make(model.Place, len(raw)+1)
	for key, value := range raw {
		place[key] = value
	}
	place["_id"] = id

	for _, field := range referenceFields {
		if value, ok := place[field]; ok {
			place[field] = stringifyReference(value)
		}
	}

	return place
}

// stringifyReference ストア固有のID型をプレーンな文字列に変換する
func stringifyReference(value interface{}) string {
	switch ref := value.(type) {
	case string:
		return ref
	case *firestore.DocumentRef:
		return ref.ID
	case int64:
		return strconv.FormatInt(ref, 10)
	case float64:
		// JSON経由の数値IDはfloat64で届く
		return strconv.FormatFloat(ref, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", ref)
	}
}

// MatchesCity 都市名の大文字小文字を区別しない部分一致判定
func MatchesCity(recordCity, queryCity string) bool {
	return strings.Contains(strings.ToLower(recordCity), strings.ToLower(queryCity))
}
