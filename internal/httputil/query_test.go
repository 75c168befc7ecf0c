package httputil_test

import (
	"net/url"
	"testing"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/stretchr/testify/assert"
)

func TestGetURLFields(t *testing.T) {
	url, _ := url.Parse("http://example.com/v1/transactions?search=rent&amountMin=0&category=")

	setFields := httputil.GetURLFields(url, struct {
		Search    string `form:"search"`
		Type      string `form:"type"`
		Category  string `form:"category"`
		AmountMin string `form:"amountMin"`
		AmountMax string `form:"amountMax"`
	}{})

	assert.Equal(t, []string{"Search", "Category", "AmountMin"}, setFields)
}
