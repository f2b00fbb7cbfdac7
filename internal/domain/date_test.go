package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-05-06", want: "2024-05-06"},
		{in: " 2024-05-06 ", want: "2024-05-06"},
		{in: "2024-05-06T15:04:05Z", want: "2024-05-06"},
		{in: "2024-05-06T00:00:00.000", want: "2024-05-06"},
		{in: "06/05/2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := domain.ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date     domain.Date  `json:"date"`
		FollowUp *domain.Date `json:"followUp"`
	}

	raw, err := json.Marshal(payload{Date: domain.NewDate(2024, time.May, 6)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-05-06","followUp":null}`, string(raw))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-05-06","followUp":"2024-05-20"}`), &p))
	assert.Equal(t, "2024-05-06", p.Date.String())
	require.NotNil(t, p.FollowUp)
	assert.Equal(t, "2024-05-20", p.FollowUp.String())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d domain.Date
	require.NoError(t, d.Scan(time.Date(2024, time.May, 6, 13, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-05-06", d.String())

	require.NoError(t, d.Scan("2024-06-01"))
	assert.Equal(t, "2024-06-01", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-02T00:00:00Z")))
	assert.Equal(t, "2024-06-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := domain.NewDate(2024, time.May, 6).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06", v)

	v, err = domain.Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateOf(t *testing.T) {
	d := domain.DateOf(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2024-12-31", d.String())
	assert.True(t, domain.NewDate(2024, time.January, 1).Before(d))
	assert.False(t, d.Before(d))
}
