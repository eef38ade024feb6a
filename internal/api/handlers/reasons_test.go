package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/internal/api/handlers"
)

func TestListReasonCodes(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterReasonRoutes(api)

	resp := api.Get("/api/v1/reason-codes")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Reasons []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"reasons"`
		NoLocationMessage string `json:"noLocationMessage"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	codes := make([]string, 0, len(body.Reasons))
	for _, r := range body.Reasons {
		codes = append(codes, r.Code)
		assert.NotEmpty(t, r.Message, r.Code)
	}
	assert.Equal(t, []string{"NO_COUNTRY_MATCH", "CITY_REQUIRED", "NO_CITY_MATCH"}, codes)
	assert.Contains(t, body.NoLocationMessage, "country")
}
