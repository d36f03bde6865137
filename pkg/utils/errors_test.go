package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_RenderNestsListItems(t *testing.T) {
	errs := FieldErrors{
		"title":          {"This field may not be blank."},
		"genres[0].name": {"This field may not be blank."},
		"genres[2].name": {"Ensure this field has no more than 127 characters."},
	}

	body, err := json.Marshal(errs.Render())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title": ["This field may not be blank."],
		"genres": [
			{"name": ["This field may not be blank."]},
			{},
			{"name": ["Ensure this field has no more than 127 characters."]}
		]
	}`, string(body))
}

func TestFieldErrors_RenderTopLevelMessageWins(t *testing.T) {
	errs := FieldErrors{
		"genres":         {"This list may not be empty."},
		"genres[0].name": {"This field may not be blank."},
	}

	assert.Equal(t, map[string]any{"genres": []string{"This list may not be empty."}}, errs.Render())
}

func TestResponseValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseValidation(rec, FieldErrors{"items[1].name": {"Invalid value."}})

	assert.Equal(t, 400, rec.Code)
	assert.JSONEq(t, `{"items":[{},{"name":["Invalid value."]}]}`, rec.Body.String())
}
