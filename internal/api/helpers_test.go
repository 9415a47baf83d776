package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	type input struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "well-formed body",
			body: `{"title": "standup"}`,
		},
		{
			name:    "malformed json",
			body:    `{"title": `,
			wantErr: "badly-formed JSON",
		},
		{
			name:    "wrong field type",
			body:    `{"title": 42}`,
			wantErr: `incorrect JSON type for field "title"`,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: "body must not be empty",
		},
		{
			name:    "unknown key",
			body:    `{"nope": "x"}`,
			wantErr: "unknown key",
		},
		{
			name:    "multiple json values",
			body:    `{"title": "a"}{"title": "b"}`,
			wantErr: "single JSON value",
		},
	}

	a := &Api{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			err := a.readJSON(w, r, &input{})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDateTimeJSON(t *testing.T) {
	d := dateTime(time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15 10:30"`, string(data))

	var parsed dateTime
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, time.Time(d).Equal(time.Time(parsed)))

	err = json.Unmarshal([]byte(`"2024-03-15T10:30:00Z"`), &parsed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), dateTimeFormat)
}

func TestParseCategoryTypeQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/schedules/monthly", nil)
	got, err := parseCategoryTypeQuery(r)
	require.NoError(t, err)
	assert.Nil(t, got, "absent parameter means no filter")

	r = httptest.NewRequest("GET", "/schedules/monthly?category_type=TODO", nil)
	got, err = parseCategoryTypeQuery(r)
	require.NoError(t, err)
	require.NotNil(t, got)

	r = httptest.NewRequest("GET", "/schedules/monthly?category_type=bogus", nil)
	_, err = parseCategoryTypeQuery(r)
	assert.Error(t, err)
}
