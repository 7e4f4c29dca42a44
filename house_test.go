package dbsapi_test

import (
	"testing"

	"github.com/dbsapi/dbsapi"
	"github.com/stretchr/testify/assert"
)

func TestHouseForColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		color string
		want  dbsapi.House
		ok    bool
	}{
		{"d62828", dbsapi.HouseRed, true},
		{"#D62828", dbsapi.HouseRed, true},
		{" #007A3D ", dbsapi.HouseGreen, true},
		{"003f87", dbsapi.HouseBlue, true},
		{"#fcd856", dbsapi.HouseYellow, true},
		{"#ffffff", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.color, func(t *testing.T) {
			t.Parallel()

			house, ok := dbsapi.HouseForColor(tt.color)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, house)
		})
	}
}
