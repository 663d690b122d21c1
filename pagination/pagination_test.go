package pagination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams_Defaults(t *testing.T) {
	params, err := ParseParams("", "")
	require.NoError(t, err)
	assert.Equal(t, Params{Page: 1, Size: 50}, params)
}

func TestParseParams_Values(t *testing.T) {
	params, err := ParseParams("3", "10")
	require.NoError(t, err)
	assert.Equal(t, Params{Page: 3, Size: 10}, params)
}

func TestParseParams_Invalid(t *testing.T) {
	_, err := ParseParams("0", "101")
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "page")
	assert.Contains(t, vErr.Fields, "size")

	_, err = ParseParams("one", "")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "must be an integer", vErr.Fields["page"])
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, Params{Page: 1, Size: 2})
	assert.Equal(t, []int{1, 2}, page.Items)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)

	page = Paginate(items, Params{Page: 3, Size: 2})
	assert.Equal(t, []int{5}, page.Items)

	page = Paginate(items, Params{Page: 4, Size: 2})
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 5, page.Total)
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate([]string(nil), DefaultParams())
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
	assert.Zero(t, page.Pages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Size)
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	items := []int{1, 2, 3}
	page := Paginate(items, Params{Page: 1, Size: 2})
	page.Items[0] = 99
	assert.Equal(t, 1, items[0])
}

func TestPaginate_HugePageNumber(t *testing.T) {
	params, err := ParseParams("9223372036854775807", "100")
	require.NoError(t, err)

	var page Page[int]
	assert.NotPanics(t, func() {
		page = Paginate([]int{1, 2, 3}, params)
	})
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Pages)
	assert.Equal(t, params.Page, page.Page)
}
