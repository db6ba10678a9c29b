package repository

import (
	"testing"

	"cloud.google.com/go/firestore"
)

func TestNormalizePlace(t *testing.T) {
	t.Run("ドキュメントIDはプレーンな文字列の_idになる", func(t *testing.T) {
		raw := map[string]interface{}{
			"name": "Jaipur Palace Hotel",
			"city": "Jaipur",
		}

		place := NormalizePlace("abc123", raw)

		id, ok := place["_id"].(string)
		if !ok {
			t.Fatalf("_idが文字列ではありません: %T", place["_id"])
		}
		if id != "abc123" {
			t.Errorf("_idが不正: got %q", id)
		}
	})

	t.Run("DocumentRef参照は文字列化される", func(t *testing.T) {
		raw := map[string]interface{}{
			"place":     "Accor Arena",
			"organizer": &firestore.DocumentRef{ID: "user789"},
		}

		place := NormalizePlace("e1", raw)

		organizer, ok := place["organizer"].(string)
		if !ok {
			t.Fatalf("organizerが文字列ではありません: %T", place["organizer"])
		}
		if organizer != "user789" {
			t.Errorf("organizerが不正: got %q", organizer)
		}
	})

	t.Run("数値のオーナー参照も文字列化される", func(t *testing.T) {
		raw := map[string]interface{}{
			"name":  "Pink City Residency",
			"owner": int64(42),
		}

		place := NormalizePlace("h2", raw)

		if owner, ok := place["owner"].(string); !ok || owner != "42" {
			t.Errorf("ownerが不正: got %v (%T)", place["owner"], place["owner"])
		}
	})

	t.Run("元のレコードは書き換えられない", func(t *testing.T) {
		ref := &firestore.DocumentRef{ID: "user1"}
		raw := map[string]interface{}{
			"owner": ref,
		}

		NormalizePlace("h1", raw)

		if raw["owner"] != ref {
			t.Error("取得したレコードがその場で書き換えられています")
		}
		if _, exists := raw["_id"]; exists {
			t.Error("取得したレコードに_idが追加されています")
		}
	})

	t.Run("その他のフィールドはそのままコピーされる", func(t *testing.T) {
		raw := map[string]interface{}{
			"name":            "Hotel Le Marais",
			"price_per_night": 150.0,
		}

		place := NormalizePlace("h3", raw)

		if place.GetString("name") != "Hotel Le Marais" {
			t.Errorf("nameが不正: got %q", place.GetString("name"))
		}
		if place.PricePerNight() != 150.0 {
			t.Errorf("price_per_nightが不正: got %f", place.PricePerNight())
		}
	})
}

func TestMatchesCity(t *testing.T) {
	cases := []struct {
		name       string
		recordCity string
		queryCity  string
		want       bool
	}{
		{"完全一致", "Jaipur", "Jaipur", true},
		{"大文字小文字を区別しない", "JAIPUR", "jaipur", true},
		{"部分一致", "Greater Jaipur", "Jaipur", true},
		{"不一致", "Paris", "Jaipur", false},
		{"空のレコード都市", "", "Jaipur", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesCity(tc.recordCity, tc.queryCity); got != tc.want {
				t.Errorf("MatchesCity(%q, %q) = %v, want %v", tc.recordCity, tc.queryCity, got, tc.want)
			}
		})
	}
}
