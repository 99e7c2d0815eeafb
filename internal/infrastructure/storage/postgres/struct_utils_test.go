package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
)

func TestExtractDBColumns_FlattensEmbedded(t *testing.T) {
	cols := ExtractDBColumns[product.Product]()

	expectedCols := []string{
		"id", "version", "created_at", "updated_at",
		"name", "dimensions", "material", "unit_price",
	}

	assert.Len(t, cols, len(expectedCols))
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap(t *testing.T) {
	p := product.NewProduct("بلوک سیمانی", types.NewMoney(1000))
	p.Dimensions = "20x20x40"

	m := StructToMap(p)

	assert.Equal(t, p.ID, m["id"])
	assert.Equal(t, 1, m["version"])
	assert.Equal(t, "بلوک سیمانی", m["name"])
	assert.Equal(t, "20x20x40", m["dimensions"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
}
