package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindItem struct {
	Name string `json:"name" validate:"required,max=5"`
}

type bindTarget struct {
	Title    string     `json:"title" validate:"required,max=10"`
	Email    string     `json:"email" validate:"omitempty,email"`
	Stars    *int       `json:"stars" validate:"required,min=1,max=5"`
	Note     *string    `json:"note" nullable:"true"`
	Flag     bool       `json:"flag"`
	Items    []bindItem `json:"items" validate:"required,min=1,dive"`
	Username string     `json:"username" validate:"omitempty,username"`
}

func bindBody(t *testing.T, body string) (*bindTarget, FieldErrors, error) {
	t.Helper()
	var dst bindTarget
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	errs, err := BindJSON(req, &dst)
	return &dst, errs, err
}

func TestBindJSON_Valid(t *testing.T) {
	dst, errs, err := bindBody(t, `{"title":"Heat","stars":4,"note":null,"flag":true,"items":[{"name":"a"}]}`)
	require.NoError(t, err)
	assert.Nil(t, errs)

	assert.Equal(t, "Heat", dst.Title)
	require.NotNil(t, dst.Stars)
	assert.Equal(t, 4, *dst.Stars)
	assert.Nil(t, dst.Note)
	assert.True(t, dst.Flag)
	assert.Len(t, dst.Items, 1)
}

func TestBindJSON_MissingFields(t *testing.T) {
	_, errs, err := bindBody(t, `{}`)
	require.NoError(t, err)

	assert.Equal(t, FieldErrors{
		"title": {"This field is required."},
		"stars": {"This field is required."},
		"items": {"This field is required."},
	}, errs)
}

func TestBindJSON_EmptyBodyIsMissingFields(t *testing.T) {
	_, errs, err := bindBody(t, ``)
	require.NoError(t, err)
	assert.Contains(t, errs, "title")
}

func TestBindJSON_Messages(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{"blank string", `{"title":""}`, "title", "This field may not be blank."},
		{"too long", `{"title":"abcdefghijk"}`, "title", "Ensure this field has no more than 10 characters."},
		{"null not allowed", `{"title":null}`, "title", "This field may not be null."},
		{"wrong type string", `{"title":12}`, "title", "Not a valid string."},
		{"wrong type int", `{"stars":"x"}`, "stars", "A valid integer is required."},
		{"below min", `{"stars":0}`, "stars", "Ensure this value is greater than or equal to 1."},
		{"above max", `{"stars":6}`, "stars", "Ensure this value is less than or equal to 5."},
		{"bad bool", `{"flag":"maybe"}`, "flag", "Must be a valid boolean."},
		{"bad email", `{"email":"nope"}`, "email", "Enter a valid email address."},
		{"empty list", `{"items":[]}`, "items", "This list may not be empty."},
		{"not a list", `{"items":"Drama"}`, "items", `Expected a list of items but got type "str".`},
		{"nested item", `{"items":[{"name":"abcdefg"}]}`, "items[0].name", "Ensure this field has no more than 5 characters."},
		{"bad username", `{"username":"a b"}`, "username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := bindBody(t, tt.body)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, errs[tt.field])
		})
	}
}

func TestBindJSON_CollectsEveryField(t *testing.T) {
	_, errs, err := bindBody(t, `{"title":"","stars":9,"items":"x"}`)
	require.NoError(t, err)

	assert.Len(t, errs, 3)
	assert.True(t, errs.Has("title"))
	assert.True(t, errs.Has("stars"))
	assert.True(t, errs.Has("items"))
}

func TestBindJSON_Malformed(t *testing.T) {
	for _, body := range []string{`{"title":`, `[1,2]`, `"text"`} {
		_, errs, err := bindBody(t, body)
		assert.ErrorIs(t, err, ErrMalformedBody, body)
		assert.Nil(t, errs)
		assert.True(t, strings.HasPrefix(err.Error(), "JSON parse error - "))
	}
}

type messengerErr struct{}

func (messengerErr) Error() string        { return "boom" }
func (messengerErr) FieldMessage() string { return "Custom message." }

type customField struct{}

func (*customField) UnmarshalJSON([]byte) error { return messengerErr{} }

func TestBindJSON_FieldMessenger(t *testing.T) {
	var dst struct {
		Custom *customField `json:"custom"`
	}
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"custom":"anything"}`))

	errs, err := BindJSON(req, &dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"Custom message."}, errs["custom"])
}

func TestBindJSON_TrimsStrings(t *testing.T) {
	dst, errs, err := bindBody(t, `{"title":"  Heat\t","stars":4,"note":" hi ","items":[{"name":" Crime "}]}`)
	require.NoError(t, err)
	assert.Nil(t, errs)

	assert.Equal(t, "Heat", dst.Title)
	assert.Equal(t, "hi", *dst.Note)
	assert.Equal(t, "Crime", dst.Items[0].Name)

	_, errs, err = bindBody(t, `{"title":"   ","items":[{"name":"  "}]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"This field may not be blank."}, errs["title"])
	assert.Equal(t, []string{"This field may not be blank."}, errs["items[0].name"])
}

func TestBindJSON_TrimOptOut(t *testing.T) {
	var dst struct {
		Secret string `json:"secret" trim:"false" validate:"required"`
	}
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"secret":" pass "}`))

	errs, err := BindJSON(req, &dst)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, " pass ", dst.Secret)
}

func TestBindJSON_IntegralNumbers(t *testing.T) {
	for _, stars := range []string{`3.0`, `3.00`, `"3"`, `"3.0"`} {
		dst, errs, err := bindBody(t, `{"title":"Heat","stars":`+stars+`,"items":[{"name":"a"}]}`)
		require.NoError(t, err)
		assert.Nil(t, errs, stars)
		require.NotNil(t, dst.Stars, stars)
		assert.Equal(t, 3, *dst.Stars, stars)
	}

	for _, stars := range []string{`3.5`, `"3.1"`, `"three"`, `true`, `1e400`} {
		_, errs, err := bindBody(t, `{"stars":`+stars+`}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"A valid integer is required."}, errs["stars"], stars)
	}
}
