package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sparseRecord = `{"id":"a","title":"t","price":{"current":1,"original":2,"currency":"USD","discount":50},` +
	`"seller":{"name":"s","rating":4,"reviews":1},"images":[],"highlights":[],"promotions":[],` +
	`"shipping":{"free":true},"originalPrice":2}`

func TestProduct_RoundTripsSourceRecord(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(sparseRecord), &p))

	assert.Equal(t, "a", p.ID)
	assert.Equal(t, 2.0, p.Price.Original)
	assert.NotNil(t, p.Images)
	assert.Empty(t, p.Images)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, sparseRecord, string(out))
	assert.NotContains(t, string(out), `"stock"`, "absent fields must not be invented")

	out, err = json.Marshal(&p)
	require.NoError(t, err)
	assert.JSONEq(t, sparseRecord, string(out))
}

func TestProduct_RoundTripsInsideSlice(t *testing.T) {
	doc := `[` + sparseRecord + `,{"id":"b","stock":3}]`
	var products []Product
	require.NoError(t, json.Unmarshal([]byte(doc), &products))
	require.Len(t, products, 2)
	assert.Equal(t, 3, products[1].Stock)

	out, err := json.Marshal(products)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
}

func TestProduct_MarshalWithoutSource(t *testing.T) {
	p := Product{ID: "built", Images: []string{}, Highlights: []string{"x"}, Promotions: []string{}}

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.Equal(t, "built", fields["id"])
	assert.Equal(t, []interface{}{}, fields["images"])
	assert.Equal(t, []interface{}{"x"}, fields["highlights"])
	assert.Contains(t, fields, "promotions")
}

func TestProduct_UnmarshalErrors(t *testing.T) {
	var p Product
	assert.Error(t, json.Unmarshal([]byte(`{"id": 5}`), &p))

	var products []Product
	require.NoError(t, json.Unmarshal([]byte(`[null]`), &products))
	require.Len(t, products, 1)
	assert.Empty(t, products[0].ID, "a null record decodes to the zero Product")
}
